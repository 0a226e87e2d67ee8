package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/ledger"
	"github.com/trustbank/ledger-server/internal/storage"
	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
)

// Deposit credits Amount to one owned account and appends a single credit
// record. External funds enter the ledger only through deposits.
type Deposit struct {
	OwnerID     uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time

	IAction
}

func (d *Deposit) Perform(ctx context.Context, writer storage.Writer) error {
	if err := ledger.ValidateAmount(d.Amount); err != nil {
		return err
	}

	acc, err := ownedAccount(ctx, writer.Accounts(), d.AccountID, d.OwnerID)
	if err != nil {
		return err
	}

	if err := writer.Accounts().UpdateBalance(ctx, acc.ID, acc.Balance.Add(d.Amount)); err != nil {
		return err
	}

	_, err = writer.Transactions().Append(ctx, &transaction.TransactionCreate{
		AccountID:   acc.ID,
		Date:        dateOrToday(d.Date),
		Description: orDefault(d.Description, "Deposit"),
		Category:    orDefault(d.Category, "Deposit"),
		Amount:      d.Amount,
		Status:      transaction.StatusCompleted,
		Type:        transaction.TypeCredit,
	})
	return err
}

// ownedAccount fetches and locks one account, translating a missing or
// foreign row into the ledger's not-found failure.
func ownedAccount(ctx context.Context, accounts account.Writer, id, ownerID uuid.UUID) (*account.Account, error) {
	acc, err := accounts.FindByIDForUpdate(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ledger.ErrAccountNotFound
	}
	return acc, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// dateOrToday truncates to a calendar date; records store dates, not instants.
func dateOrToday(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
