package inbound

import (
	"github.com/otpgate/otpgate/internal/identity/usecase"
	"github.com/otpgate/otpgate/internal/pkg/router"
)

// HTTPEndpoint exposes the registration and sign-in handlers.
type HTTPEndpoint struct {
	uc uc
}

// SignUp registers a new account and returns 201 on success.
func (h *HTTPEndpoint) SignUp(r *router.Request) (any, error) {
	var req SignUpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SignUp(r.Context(), usecase.SignUpInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}); err != nil {
		return nil, err
	}

	return SignUpResponse{Message: "User registered"}, nil
}

// SignIn exchanges credentials for an opaque bearer token.
func (h *HTTPEndpoint) SignIn(r *router.Request) (any, error) {
	var req SignInRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SignIn(r.Context(), usecase.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return SignInResponse{Token: resp.Token}, nil
}
