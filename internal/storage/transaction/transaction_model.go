package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Status of a transaction record.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// Type of balance movement. Amount sign must agree with the type: credits
// carry positive amounts, debits negative.
type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

// Transaction represents one immutable transaction record. Seq is the
// insertion order assigned by storage; AccountName is populated only by
// owner-scoped listings, which join against the accounts table.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	AccountName string
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Status      Status
	Type        Type
	Seq         int64
	CreatedAt   time.Time
}

// TransactionCreate is the input for appending a new transaction record.
type TransactionCreate struct {
	AccountID   uuid.UUID
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Status      Status
	Type        Type
}

// Reader provides read access to the transaction log.
//
// ListForOwner returns records for every account owned by ownerID, ordered
// by date descending then insertion order descending. The ordering is
// deterministic: repeated calls with no intervening writes return identical
// results.
type Reader interface {
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Transaction, error)
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]*Transaction, error)
}

// Writer appends to the transaction log inside a write unit. The log is
// append-only: no update or delete operation exists.
type Writer interface {
	Reader

	Append(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
}
