package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

type SignInInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type SignInOutput struct {
	Token string
}

// SignIn verifies credentials and mints an opaque bearer token. Unknown
// usernames and wrong passwords share one message so the endpoint does not
// leak which accounts exist.
func (s *Usecase) SignIn(ctx context.Context, in SignInInput) (*SignInOutput, error) {
	ctx, span := s.startSpan(ctx, "SignIn")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Invalid username or password", goerror.CodeUnauthorized)
		}

		slog.ErrorContext(ctx, "failed to repo get user by username", "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.hash.Verify(user.PasswordHash, in.Password) {
		return nil, goerror.NewBusiness("Invalid username or password", goerror.CodeUnauthorized)
	}

	sess := s.sessions.Issue(user.ID, user.Username, string(user.Role))

	return &SignInOutput{Token: sess.Token}, nil
}
