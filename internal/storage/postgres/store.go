package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/trustbank/ledger-server/internal/config"
	"github.com/trustbank/ledger-server/internal/storage"
	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
	"github.com/trustbank/ledger-server/internal/storage/user"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so the same query code
// serves plain reads and reads inside a write unit.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store is the Postgres-backed implementation of storage.Storage.
type Store struct {
	db *sql.DB
}

var _ storage.Storage = (*Store)(nil)

// Open connects to Postgres using the environment configuration.
func Open(env *config.Config) (*Store, error) {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Users() user.Reader {
	return &userStore{q: s.db}
}

func (s *Store) Accounts() account.Reader {
	return &accountStore{q: s.db}
}

func (s *Store) Transactions() transaction.Reader {
	return &transactionStore{q: s.db}
}

// Write begins one database transaction. Read Committed is enough: every
// balance the engine reads-then-writes is fetched FOR UPDATE, so overlapping
// operations serialize on the rows they share.
func (s *Store) Write(ctx context.Context) (storage.Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapError(err)
	}
	return &writer{tx: tx}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type writer struct {
	tx *sql.Tx
}

func (w *writer) Accounts() account.Writer {
	return &accountTx{accountStore: accountStore{q: w.tx}, tx: w.tx}
}

func (w *writer) Transactions() transaction.Writer {
	return &transactionTx{transactionStore: transactionStore{q: w.tx}, tx: w.tx}
}

func (w *writer) Commit() error {
	return mapError(w.tx.Commit())
}

func (w *writer) Rollback() error {
	return w.tx.Rollback()
}

// mapError converts Postgres transaction-rollback failures (deadlock
// detected, serialization failure) into storage.ErrConflict so callers can
// retry the whole unit. Everything else passes through untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "40" {
		return fmt.Errorf("%w: %v", storage.ErrConflict, err)
	}
	return err
}
