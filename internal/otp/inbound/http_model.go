package inbound

import "net/http"

type NewRequest struct {
	UserID      int64   `json:"userId"`
	OperationID *string `json:"operationId"`
	Channel     string  `json:"channel"`
}

type NewResponse struct {
	Message string `json:"message"`
}

func (NewResponse) StatusCode() int {
	return http.StatusAccepted
}

type CheckRequest struct {
	Code string `json:"code"`
}

type CheckResponse struct {
	Message string `json:"message"`
}
