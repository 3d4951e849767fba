package db

import (
	"context"

	"github.com/otpgate/otpgate/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, execErr := s.conn.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, string(user.Role),
	)
	err = s.mapError(execErr)
	return err
}
