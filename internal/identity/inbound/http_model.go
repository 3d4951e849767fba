package inbound

import "net/http"

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SignUpResponse struct {
	Message string `json:"message"`
}

func (SignUpResponse) StatusCode() int {
	return http.StatusCreated
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token string `json:"token"`
}
