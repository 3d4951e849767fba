package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/otpgate/otpgate/internal/identity/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

type SignUpInput struct {
	Username string `validate:"required,min=3,max=100"`
	Password string `validate:"required,password"`
	Role     string `validate:"required"`
}

// SignUp registers a new account. The role comes from the client; the single
// admin rule is checked here and enforced again by the store's partial unique
// index, so a concurrent second admin still ends in a conflict.
func (s *Usecase) SignUp(ctx context.Context, in SignUpInput) error {
	ctx, span := s.startSpan(ctx, "SignUp")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return goerror.NewInvalidInput(nil, "role", "must be ADMIN or USER")
	}

	if role == entity.RoleAdmin {
		exists, err := s.repoDB.AdminExists(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo check admin existence", "error", err)
			return goerror.NewServer(err)
		}
		if exists {
			return goerror.NewBusiness("An administrator already exists", goerror.CodeConflict)
		}
	}

	hashed, err := s.hash.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	user := entity.User{
		ID:           s.uid.Generate(),
		Username:     in.Username,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := s.repoDB.CreateUser(ctx, user); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Username already exists", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create user", "username", user.Username, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
