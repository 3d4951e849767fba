package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/otpgate/otpgate/internal/otp/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

type ValidateInput struct {
	Code string `validate:"required"`
}

// Validate consumes a code. It returns false for an unknown code, a row that
// is no longer ACTIVE, or a row older than the TTL currently configured.
//
// The flip to USED is a conditional update keyed on the ACTIVE status, so of
// two concurrent calls with the same code at most one returns true.
func (s *Usecase) Validate(ctx context.Context, in ValidateInput) (bool, error) {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return false, goerror.NewInvalidInput(err)
	}

	otp, err := s.repoDB.GetOtpByCode(ctx, in.Code)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return false, nil
		}

		slog.ErrorContext(ctx, "failed to repo get otp by code", "error", err)
		return false, goerror.NewServer(err)
	}

	if otp.Status != entity.StatusActive {
		return false, nil
	}

	cfg, err := s.repoDB.GetConfig(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get otp config", "error", err)
		return false, goerror.NewServer(err)
	}

	if s.clock.Now().After(otp.CreatedAt.Add(cfg.TTL())) {
		// The row is stale. Kick the bulk sweep so it and its peers get
		// flipped to EXPIRED without blocking this request. The sweep must
		// outlive the request context.
		s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
			return s.MarkExpired(ctx)
		})

		return false, nil
	}

	used, err := s.repoDB.MarkUsed(ctx, otp.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo mark otp used", "otp_id", otp.ID, "error", err)
		return false, goerror.NewServer(err)
	}

	return used, nil
}
