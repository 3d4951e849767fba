package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

type DeleteUserInput struct {
	ID int64 `validate:"required"`
}

// DeleteUser removes an account and its OTP rows in one transaction, so a
// failure partway leaves the roster untouched.
func (s *Usecase) DeleteUser(ctx context.Context, in DeleteUserInput) error {
	ctx, span := s.startSpan(ctx, "DeleteUser")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteUser(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo delete user", "user_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
