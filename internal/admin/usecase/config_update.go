package usecase

import (
	"context"
	"log/slog"

	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

type UpdateConfigInput struct {
	Length     int `validate:"required,min=1,max=10"`
	TTLSeconds int `validate:"required,min=1"`
}

// UpdateConfig replaces the shared OTP config row. The new values apply to
// every generation and validation from the next read on, including codes
// already in flight.
func (s *Usecase) UpdateConfig(ctx context.Context, in UpdateConfigInput) error {
	ctx, span := s.startSpan(ctx, "UpdateConfig")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdateConfig(ctx, in.Length, in.TTLSeconds); err != nil {
		slog.ErrorContext(ctx, "failed to repo update otp config", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
