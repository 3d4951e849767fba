package db

import (
	"context"
	"time"
)

// MarkUsed flips one row to USED if and only if it is still ACTIVE. Zero
// affected rows means another caller consumed the code first.
func (s *DB) MarkUsed(ctx context.Context, id int64) (used bool, err error) {
	ctx, span := s.startSpan(ctx, "MarkUsed")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx, `
		UPDATE otp_codes
		SET status = 'USED'
		WHERE id = $1 AND status = 'ACTIVE'`,
		id,
	)
	if execErr != nil {
		err = s.mapError(execErr)
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// ExpireStale flips every ACTIVE row created before the cutoff to EXPIRED.
func (s *DB) ExpireStale(ctx context.Context, cutoff time.Time) (n int64, err error) {
	ctx, span := s.startSpan(ctx, "ExpireStale")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx, `
		UPDATE otp_codes
		SET status = 'EXPIRED'
		WHERE status = 'ACTIVE' AND created_at < $1`,
		cutoff,
	)
	if execErr != nil {
		err = s.mapError(execErr)
		return 0, err
	}

	return tag.RowsAffected(), nil
}
