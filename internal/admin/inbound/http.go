package inbound

import (
	"context"

	"github.com/otpgate/otpgate/internal/admin/usecase"
	"github.com/otpgate/otpgate/internal/pkg/router"
)

type uc interface {
	UpdateConfig(ctx context.Context, in usecase.UpdateConfigInput) error
	ListUsers(ctx context.Context) ([]usecase.UserOutput, error)
	DeleteUser(ctx context.Context, in usecase.DeleteUserInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.PATCH("/admin/config", end.UpdateConfig, r.RequireRole("ADMIN"))
	r.GET("/admin/users", end.ListUsers, r.RequireRole("ADMIN"))
	r.DELETE("/admin/users/:id", end.DeleteUser, r.RequireRole("ADMIN"))
}
