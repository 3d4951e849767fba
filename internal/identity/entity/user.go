package entity

import "errors"

// ErrUnknownRole is returned when a role string is not part of the enum.
var ErrUnknownRole = errors.New("unknown role")

// Role is the authorization level of a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

// User is a registered account. PasswordHash never leaves the store layer
// boundary except to be verified.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}
