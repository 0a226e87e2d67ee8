package actions

import (
	"bytes"
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/ledger"
	"github.com/trustbank/ledger-server/internal/storage"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
)

// Transfer moves Amount between two accounts of the same owner. It debits
// the source, credits the destination, and appends one debit and one credit
// record whose magnitudes match and whose descriptions cross-reference the
// other account.
type Transfer struct {
	OwnerID       uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Memo          string
	Date          time.Time

	IAction
}

func (t *Transfer) Perform(ctx context.Context, writer storage.Writer) error {
	if err := ledger.ValidateAmount(t.Amount); err != nil {
		return err
	}
	if t.FromAccountID == t.ToAccountID {
		return ledger.ErrSameAccount
	}

	accounts := writer.Accounts()

	// Lock both rows before mutating either, always in ascending account-ID
	// order so two opposite-direction transfers between the same pair cannot
	// deadlock.
	firstID, secondID := t.FromAccountID, t.ToAccountID
	if bytes.Compare(secondID.Bytes(), firstID.Bytes()) < 0 {
		firstID, secondID = secondID, firstID
	}

	first, err := accounts.FindByIDForUpdate(ctx, firstID, t.OwnerID)
	if err != nil {
		return err
	}
	second, err := accounts.FindByIDForUpdate(ctx, secondID, t.OwnerID)
	if err != nil {
		return err
	}
	if first == nil || second == nil {
		return ledger.ErrAccountNotFound
	}

	from, to := first, second
	if from.ID != t.FromAccountID {
		from, to = second, first
	}

	if from.Balance.LessThan(t.Amount) {
		return ledger.ErrInsufficientFunds
	}

	if err := accounts.UpdateBalance(ctx, from.ID, from.Balance.Sub(t.Amount)); err != nil {
		return err
	}
	if err := accounts.UpdateBalance(ctx, to.ID, to.Balance.Add(t.Amount)); err != nil {
		return err
	}

	log := writer.Transactions()
	date := dateOrToday(t.Date)

	_, err = log.Append(ctx, &transaction.TransactionCreate{
		AccountID:   from.ID,
		Date:        date,
		Description: withMemo("Transfer to "+to.Name, t.Memo),
		Category:    "Transfer",
		Amount:      t.Amount.Neg(),
		Status:      transaction.StatusCompleted,
		Type:        transaction.TypeDebit,
	})
	if err != nil {
		return err
	}

	_, err = log.Append(ctx, &transaction.TransactionCreate{
		AccountID:   to.ID,
		Date:        date,
		Description: withMemo("Transfer from "+from.Name, t.Memo),
		Category:    "Transfer",
		Amount:      t.Amount,
		Status:      transaction.StatusCompleted,
		Type:        transaction.TypeCredit,
	})
	return err
}

func withMemo(description, memo string) string {
	if memo == "" {
		return description
	}
	return description + ": " + memo
}
