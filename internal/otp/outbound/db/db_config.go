package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/otpgate/otpgate/internal/otp/entity"
)

// GetConfig reads the single config row. A missing row is re-seeded with the
// defaults first, so a cold database never stalls code generation.
func (s *DB) GetConfig(ctx context.Context) (cfg *entity.Config, err error) {
	ctx, span := s.startSpan(ctx, "GetConfig")
	defer func() { s.endSpan(span, err) }()

	var c entity.Config
	scanErr := s.conn.QueryRow(ctx,
		`SELECT length, ttl_seconds FROM otp_config WHERE id = 1`,
	).Scan(&c.Length, &c.TTLSeconds)

	if errors.Is(scanErr, pgx.ErrNoRows) {
		scanErr = s.conn.QueryRow(ctx, `
			INSERT INTO otp_config (id, length, ttl_seconds)
			VALUES (1, 6, 300)
			ON CONFLICT (id) DO UPDATE SET id = otp_config.id
			RETURNING length, ttl_seconds`,
		).Scan(&c.Length, &c.TTLSeconds)
	}

	if scanErr != nil {
		err = s.mapError(scanErr)
		return nil, err
	}

	return &c, nil
}
