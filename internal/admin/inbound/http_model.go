package inbound

type UpdateConfigRequest struct {
	Length     int `json:"length"`
	TTLSeconds int `json:"ttlSeconds"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
