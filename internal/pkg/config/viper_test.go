package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, yaml string) *Viper {
	t.Helper()

	cfg, err := NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	return cfg
}

func TestGetArray(t *testing.T) {
	t.Parallel()

	t.Run("splits a comma separated string", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t, `
cors:
  allowed_origins: "https://a.example,https://b.example"
`)

		require.Equal(t,
			[]string{"https://a.example", "https://b.example"},
			cfg.GetArray("cors.allowed_origins"))
	})

	t.Run("single value stays a single element", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t, `
cors:
  allowed_origins: "*"
`)

		require.Equal(t, []string{"*"}, cfg.GetArray("cors.allowed_origins"))
	})
}

func TestDurationGetters(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, `
session:
  ttl_minutes: 30
otp:
  sweep_interval_minutes: 1
database:
  pool:
    max_conn_idle_seconds: 300
`)

	require.Equal(t, 30*time.Minute, cfg.GetMinute("session.ttl_minutes"))
	require.Equal(t, time.Minute, cfg.GetMinute("otp.sweep_interval_minutes"))
	require.Equal(t, 300*time.Second, cfg.GetSecond("database.pool.max_conn_idle_seconds"))
}
