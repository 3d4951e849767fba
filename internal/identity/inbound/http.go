package inbound

import (
	"context"

	"github.com/otpgate/otpgate/internal/identity/usecase"
	"github.com/otpgate/otpgate/internal/pkg/router"
)

type uc interface {
	SignUp(ctx context.Context, in usecase.SignUpInput) error
	SignIn(ctx context.Context, in usecase.SignInInput) (*usecase.SignInOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/signup", end.SignUp)
	r.POST("/signin", end.SignIn)
}
