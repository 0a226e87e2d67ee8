package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Kind classifies an account. The set is open; storage keeps it as text so
// new kinds need no migration.
type Kind string

const (
	KindChecking Kind = "checking"
	KindSavings  Kind = "savings"
	KindCredit   Kind = "credit"
)

// Account represents an account record. Balance is always the sum of the
// signed transaction amounts recorded against the account since creation.
type Account struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	AccountNumber string
	Balance       decimal.Decimal
	Kind          Kind
	CreatedAt     time.Time
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID        uuid.UUID
	Name          string
	AccountNumber string
	Balance       decimal.Decimal
	Kind          Kind
}

// Reader provides ownership-checked read access to accounts. Every lookup
// takes the owner ID; an account that exists but belongs to someone else is
// indistinguishable from one that does not exist.
type Reader interface {
	// FindByID returns the account only if owned by ownerID, (nil, nil) otherwise.
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Account, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Account, error)
	CountForOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// Writer mutates accounts inside a single write unit. Balances may only be
// changed through it, and only by the ledger engine's actions.
type Writer interface {
	Reader

	// FindByIDForUpdate is FindByID plus an exclusive lock on the row,
	// held until the surrounding unit commits or rolls back.
	FindByIDForUpdate(ctx context.Context, id, ownerID uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
