package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/otpgate/otpgate/internal/otp/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

type GenerateInput struct {
	UserID      int64 `validate:"required"`
	OperationID *string
}

// Generate draws a fresh code under the current config and persists it as
// ACTIVE. Codes are not checked for collisions; the validation path treats
// the first match as authoritative.
func (s *Usecase) Generate(ctx context.Context, in GenerateInput) (string, error) {
	ctx, span := s.startSpan(ctx, "Generate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return "", goerror.NewInvalidInput(err)
	}

	cfg, err := s.repoDB.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return "", goerror.NewBusiness("OTP configuration not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo get otp config", "error", err)
		return "", goerror.NewServer(err)
	}

	code, err := s.codegen.Digits(cfg.Length)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate code", "length", cfg.Length, "error", err)
		return "", goerror.NewServer(err)
	}

	otp := entity.Otp{
		ID:          s.uid.Generate(),
		UserID:      in.UserID,
		OperationID: in.OperationID,
		Code:        code,
		Status:      entity.StatusActive,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repoDB.CreateOtp(ctx, otp); err != nil {
		slog.ErrorContext(ctx, "failed to repo create otp", "user_id", in.UserID, "error", err)
		return "", goerror.NewServer(err)
	}

	return code, nil
}
