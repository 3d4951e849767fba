package db

import "context"

// UpdateConfig upserts the single config row; last write wins.
func (s *DB) UpdateConfig(ctx context.Context, length, ttlSeconds int) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateConfig")
	defer func() { s.endSpan(span, err) }()

	_, execErr := s.conn.Exec(ctx, `
		INSERT INTO otp_config (id, length, ttl_seconds)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET length = EXCLUDED.length, ttl_seconds = EXCLUDED.ttl_seconds`,
		length, ttlSeconds,
	)
	err = s.mapError(execErr)
	return err
}
