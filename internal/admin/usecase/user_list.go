package usecase

import (
	"context"
	"log/slog"

	"github.com/otpgate/otpgate/internal/admin/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/samber/lo"
)

type UserOutput struct {
	ID       int64
	Username string
	Role     string
}

// ListUsers returns every non-admin account on the roster.
func (s *Usecase) ListUsers(ctx context.Context) ([]UserOutput, error) {
	ctx, span := s.startSpan(ctx, "ListUsers")
	defer span.End()

	users, err := s.repoDB.ListUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list users", "error", err)
		return nil, goerror.NewServer(err)
	}

	return lo.Map(users, func(u entity.User, _ int) UserOutput {
		return UserOutput{ID: u.ID, Username: u.Username, Role: u.Role}
	}), nil
}
