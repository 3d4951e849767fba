package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256(t *testing.T) {
	t.Parallel()

	h := NewSHA256()

	hashed, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	require.True(t, h.Verify(string(hashed), "secret123"))
	require.False(t, h.Verify(string(hashed), "secret124"))
	require.False(t, h.Verify("", "secret123"))
}

func TestSHA256Deterministic(t *testing.T) {
	t.Parallel()

	h := NewSHA256()

	a, err := h.Hash("same input")
	require.NoError(t, err)
	b, err := h.Hash("same input")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBcrypt(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(4)

	hashed, err := h.Hash("secret123")
	require.NoError(t, err)

	require.True(t, h.Verify(string(hashed), "secret123"))
	require.False(t, h.Verify(string(hashed), "wrong"))
}
