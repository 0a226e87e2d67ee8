package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/trustbank/ledger-server/internal/storage/user"
)

type userStore struct {
	q querier
}

var _ user.Reader = (*userStore)(nil)

func (s *userStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	var firstName, lastName sql.NullString
	err := s.q.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, created_at FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &firstName, &lastName, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	u.FirstName = firstName.String
	u.LastName = lastName.String
	return &u, nil
}
