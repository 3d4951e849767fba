package inbound

import (
	"github.com/otpgate/otpgate/internal/otp/usecase"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/otpgate/otpgate/internal/pkg/router"
)

// HTTPEndpoint exposes the OTP issue and check handlers.
type HTTPEndpoint struct {
	uc uc
}

// New issues a code for the given user and sends it over the requested
// channel. Returns 202: delivery already happened synchronously, but the
// contract is at-least-once, not confirmed receipt.
func (h *HTTPEndpoint) New(r *router.Request) (any, error) {
	var req NewRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Send(r.Context(), usecase.SendInput{
		UserID:      req.UserID,
		OperationID: req.OperationID,
		Channel:     req.Channel,
	}); err != nil {
		return nil, err
	}

	return NewResponse{Message: "OTP sent"}, nil
}

// Check consumes a code. A valid code returns 200; anything else is a 400
// with one shared message.
func (h *HTTPEndpoint) Check(r *router.Request) (any, error) {
	var req CheckRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	valid, err := h.uc.Validate(r.Context(), usecase.ValidateInput{Code: req.Code})
	if err != nil {
		return nil, err
	}

	if !valid {
		return nil, goerror.NewBusiness("Invalid or expired code", goerror.CodeInvalidInput)
	}

	return CheckResponse{Message: "OTP is valid"}, nil
}
