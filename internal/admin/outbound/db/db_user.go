package db

import (
	"context"

	"github.com/otpgate/otpgate/internal/admin/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

func (s *DB) ListUsers(ctx context.Context) (users []entity.User, err error) {
	ctx, span := s.startSpan(ctx, "ListUsers")
	defer func() { s.endSpan(span, err) }()

	rows, queryErr := s.conn.Query(ctx, `
		SELECT id, username, role
		FROM users
		WHERE role <> 'ADMIN'
		ORDER BY id`,
	)
	if queryErr != nil {
		err = s.mapError(queryErr)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u entity.User
		if scanErr := rows.Scan(&u.ID, &u.Username, &u.Role); scanErr != nil {
			err = s.mapError(scanErr)
			return nil, err
		}
		users = append(users, u)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		err = s.mapError(rowsErr)
		return nil, err
	}

	return users, nil
}

// DeleteUser removes the user's OTP rows and then the user itself in one
// transaction. A missing user reports ErrNotFound and rolls back.
func (s *DB) DeleteUser(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteUser")
	defer func() { s.endSpan(span, err) }()

	tx, txErr := s.conn.Begin(ctx)
	if txErr != nil {
		err = s.mapError(txErr)
		return err
	}
	//nolint:errcheck // rollback after commit is a no-op
	defer tx.Rollback(ctx)

	if _, execErr := tx.Exec(ctx, `DELETE FROM otp_codes WHERE user_id = $1`, id); execErr != nil {
		err = s.mapError(execErr)
		return err
	}

	tag, execErr := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if execErr != nil {
		err = s.mapError(execErr)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		err = s.mapError(commitErr)
		return err
	}

	return nil
}
