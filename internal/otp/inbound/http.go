package inbound

import (
	"context"

	"github.com/otpgate/otpgate/internal/otp/usecase"
	"github.com/otpgate/otpgate/internal/pkg/router"
)

type uc interface {
	Send(ctx context.Context, in usecase.SendInput) error
	Validate(ctx context.Context, in usecase.ValidateInput) (bool, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/otp/new", end.New, r.RequireRole("USER"))
	r.POST("/otp/check", end.Check, r.RequireRole("USER"))
}
