package db

import (
	"context"

	"github.com/otpgate/otpgate/internal/otp/entity"
)

func (s *DB) CreateOtp(ctx context.Context, otp entity.Otp) (err error) {
	ctx, span := s.startSpan(ctx, "CreateOtp")
	defer func() { s.endSpan(span, err) }()

	_, execErr := s.conn.Exec(ctx, `
		INSERT INTO otp_codes (id, user_id, operation_id, code, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		otp.ID, otp.UserID, otp.OperationID, otp.Code, string(otp.Status), otp.CreatedAt,
	)
	err = s.mapError(execErr)
	return err
}
