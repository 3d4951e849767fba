package db

import (
	"context"

	"github.com/otpgate/otpgate/internal/otp/entity"
)

// GetOtpByCode returns the oldest row carrying the code. Codes are not unique
// and the first match is authoritative.
func (s *DB) GetOtpByCode(ctx context.Context, code string) (o *entity.Otp, err error) {
	ctx, span := s.startSpan(ctx, "GetOtpByCode")
	defer func() { s.endSpan(span, err) }()

	var (
		otp    entity.Otp
		status string
	)
	scanErr := s.conn.QueryRow(ctx, `
		SELECT id, user_id, operation_id, code, status, created_at
		FROM otp_codes
		WHERE code = $1
		ORDER BY id
		LIMIT 1`,
		code,
	).Scan(&otp.ID, &otp.UserID, &otp.OperationID, &otp.Code, &status, &otp.CreatedAt)
	if scanErr != nil {
		err = s.mapError(scanErr)
		return nil, err
	}

	otp.Status = entity.Status(status)
	return &otp, nil
}

func (s *DB) GetUsername(ctx context.Context, userID int64) (username string, err error) {
	ctx, span := s.startSpan(ctx, "GetUsername")
	defer func() { s.endSpan(span, err) }()

	scanErr := s.conn.QueryRow(ctx,
		`SELECT username FROM users WHERE id = $1`, userID,
	).Scan(&username)
	if scanErr != nil {
		err = s.mapError(scanErr)
		return "", err
	}

	return username, nil
}
