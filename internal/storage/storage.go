package storage

import (
	"context"
	"errors"

	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
	"github.com/trustbank/ledger-server/internal/storage/user"
)

// ErrConflict reports that a write unit lost a concurrency race (deadlock or
// serialization failure). The unit has been rolled back; the whole operation
// is safe to retry from scratch.
var ErrConflict = errors.New("storage: concurrent update conflict")

// Storage is the system of record for money. Reads outside a write unit see
// committed state only; all mutations go through Write.
//
// This abstraction allows swapping the implementation (Postgres, memory)
// without changing callers.
type Storage interface {
	Users() user.Reader
	Accounts() account.Reader
	Transactions() transaction.Reader

	// Write opens one atomic unit. Every mutation performed through the
	// returned Writer commits together or not at all.
	Write(ctx context.Context) (Writer, error)

	Close() error
}

// Writer is one open atomic unit against the ledger.
type Writer interface {
	Accounts() account.Writer
	Transactions() transaction.Writer

	Commit() error
	Rollback() error
}
