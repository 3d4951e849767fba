package db

import (
	"context"

	"github.com/otpgate/otpgate/internal/identity/entity"
)

func (s *DB) GetUserByUsername(ctx context.Context, username string) (u *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByUsername")
	defer func() { s.endSpan(span, err) }()

	var (
		user entity.User
		role string
	)
	row := s.conn.QueryRow(ctx, `
		SELECT id, username, password_hash, role
		FROM users
		WHERE username = $1`,
		username,
	)
	if scanErr := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &role); scanErr != nil {
		err = s.mapError(scanErr)
		return nil, err
	}

	user.Role = entity.Role(role)
	return &user, nil
}

func (s *DB) AdminExists(ctx context.Context) (exists bool, err error) {
	ctx, span := s.startSpan(ctx, "AdminExists")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE role = 'ADMIN')`)
	if scanErr := row.Scan(&exists); scanErr != nil {
		err = s.mapError(scanErr)
		return false, err
	}

	return exists, nil
}
