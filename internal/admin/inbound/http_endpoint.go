package inbound

import (
	"github.com/otpgate/otpgate/internal/admin/usecase"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/otpgate/otpgate/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes the administrative handlers.
type HTTPEndpoint struct {
	uc uc
}

// UpdateConfig replaces the OTP length and TTL, returning 204.
func (h *HTTPEndpoint) UpdateConfig(r *router.Request) (any, error) {
	var req UpdateConfigRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.UpdateConfig(r.Context(), usecase.UpdateConfigInput{
		Length:     req.Length,
		TTLSeconds: req.TTLSeconds,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// ListUsers returns the non-admin roster.
func (h *HTTPEndpoint) ListUsers(r *router.Request) (any, error) {
	users, err := h.uc.ListUsers(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(users, func(u usecase.UserOutput, _ int) UserResponse {
		return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
	}), nil
}

// DeleteUser removes an account by id, returning 204.
func (h *HTTPEndpoint) DeleteUser(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("Invalid user id")
	}

	if err := h.uc.DeleteUser(r.Context(), usecase.DeleteUserInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}
