package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/storage/account"
)

const accountColumns = `id, user_id, name, account_number, balance, type, created_at`

type accountStore struct {
	q querier
}

var _ account.Reader = (*accountStore)(nil)

func (s *accountStore) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*account.Account, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND user_id = $2`,
		id, ownerID)
	return scanAccount(row)
}

func (s *accountStore) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 ORDER BY created_at ASC, id ASC`,
		ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []*account.Account
	for rows.Next() {
		acc, err := scanAccountRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, acc)
	}
	return result, mapError(rows.Err())
}

func (s *accountStore) CountForOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx,
		`SELECT count(*) FROM accounts WHERE user_id = $1`, ownerID).Scan(&count)
	return count, mapError(err)
}

// accountTx adds write operations on top of the shared read queries.
type accountTx struct {
	accountStore
	tx *sql.Tx
}

var _ account.Writer = (*accountTx)(nil)

func (t *accountTx) FindByIDForUpdate(ctx context.Context, id, ownerID uuid.UUID) (*account.Account, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		id, ownerID)
	return scanAccount(row)
}

func (t *accountTx) Insert(ctx context.Context, create *account.AccountCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO accounts (id, user_id, name, account_number, balance, type)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, create.UserID, create.Name, create.AccountNumber, create.Balance, string(create.Kind))
	if err != nil {
		return uuid.Nil, mapError(err)
	}
	return id, nil
}

func (t *accountTx) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	_, err := t.tx.ExecContext(ctx,
		`UPDATE accounts SET balance = $1 WHERE id = $2`, balance, id)
	return mapError(err)
}

type accountScanner interface {
	Scan(dest ...any) error
}

func scanAccountRow(sc accountScanner) (*account.Account, error) {
	var acc account.Account
	var kind string
	err := sc.Scan(&acc.ID, &acc.UserID, &acc.Name, &acc.AccountNumber, &acc.Balance, &kind, &acc.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	acc.Kind = account.Kind(kind)
	return &acc, nil
}

func scanAccount(row *sql.Row) (*account.Account, error) {
	acc, err := scanAccountRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return acc, err
}
