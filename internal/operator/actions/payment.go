package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/ledger"
	"github.com/trustbank/ledger-server/internal/storage"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
)

// Payment debits Amount from one owned account and appends a single debit
// record carrying the negated amount. Funds leave the ledger only through
// payments.
type Payment struct {
	OwnerID     uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time

	IAction
}

func (p *Payment) Perform(ctx context.Context, writer storage.Writer) error {
	if err := ledger.ValidateAmount(p.Amount); err != nil {
		return err
	}

	acc, err := ownedAccount(ctx, writer.Accounts(), p.AccountID, p.OwnerID)
	if err != nil {
		return err
	}

	if acc.Balance.LessThan(p.Amount) {
		return ledger.ErrInsufficientFunds
	}

	if err := writer.Accounts().UpdateBalance(ctx, acc.ID, acc.Balance.Sub(p.Amount)); err != nil {
		return err
	}

	_, err = writer.Transactions().Append(ctx, &transaction.TransactionCreate{
		AccountID:   acc.ID,
		Date:        dateOrToday(p.Date),
		Description: orDefault(p.Description, "Payment"),
		Category:    orDefault(p.Category, "Payment"),
		Amount:      p.Amount.Neg(),
		Status:      transaction.StatusCompleted,
		Type:        transaction.TypeDebit,
	})
	return err
}
