package actions

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/storage"
	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
)

var openingBalance = decimal.RequireFromString("500.00")

// SeedAccounts bootstraps a brand-new owner with a checking and a savings
// account, each holding the opening balance and a matching opening-deposit
// record so the balance/log invariant holds from the first row. The
// zero-accounts guard runs inside the unit, which makes the action a no-op
// for any owner that already has accounts.
type SeedAccounts struct {
	OwnerID uuid.UUID

	IAction
}

func (s *SeedAccounts) Perform(ctx context.Context, writer storage.Writer) error {
	accounts := writer.Accounts()

	count, err := accounts.CountForOwner(ctx, s.OwnerID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []account.AccountCreate{
		{
			UserID:        s.OwnerID,
			Name:          "Trust Bank Checking",
			AccountNumber: maskedNumber(),
			Balance:       openingBalance,
			Kind:          account.KindChecking,
		},
		{
			UserID:        s.OwnerID,
			Name:          "Trust Bank Savings",
			AccountNumber: maskedNumber(),
			Balance:       openingBalance,
			Kind:          account.KindSavings,
		},
	}

	for i := range seeds {
		id, err := accounts.Insert(ctx, &seeds[i])
		if err != nil {
			return err
		}

		_, err = writer.Transactions().Append(ctx, &transaction.TransactionCreate{
			AccountID:   id,
			Date:        dateOrToday(time.Time{}),
			Description: "Opening Deposit",
			Category:    "Deposit",
			Amount:      openingBalance,
			Status:      transaction.StatusCompleted,
			Type:        transaction.TypeCredit,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func maskedNumber() string {
	return fmt.Sprintf("****%04d", 1000+rand.Intn(9000))
}
