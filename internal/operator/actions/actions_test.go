package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/trustbank/ledger-server/internal/storage"
	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/memory"
	"github.com/trustbank/ledger-server/internal/storage/user"
)

// perform runs one action the way an operator worker does: inside a write
// unit, committed on success, rolled back on failure.
func perform(t *testing.T, store storage.Storage, action IAction) error {
	t.Helper()

	writer, err := store.Write(context.Background())
	require.NoError(t, err)

	if performErr := action.Perform(context.Background(), writer); performErr != nil {
		require.NoError(t, writer.Rollback())
		return performErr
	}
	require.NoError(t, writer.Commit())
	return nil
}

// newLedger builds a memory store holding one owner with a checking and a
// savings account at $500.00 each, seeded through the bootstrap action so the
// balance/log invariant holds from the start.
func newLedger(t *testing.T) (*memory.Store, uuid.UUID, *account.Account, *account.Account) {
	t.Helper()

	store := memory.NewStore()
	ownerID := uuid.Must(uuid.NewV4())
	store.AddUser(&user.User{ID: ownerID, Email: "owner@example.com"})

	require.NoError(t, perform(t, store, &SeedAccounts{OwnerID: ownerID}))

	accounts, err := store.Accounts().ListForOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	checking, savings := accounts[0], accounts[1]
	require.Equal(t, account.KindChecking, checking.Kind)
	require.Equal(t, account.KindSavings, savings.Kind)
	return store, ownerID, checking, savings
}

func balanceOf(t *testing.T, store *memory.Store, id, ownerID uuid.UUID) decimal.Decimal {
	t.Helper()
	acc, err := store.Accounts().FindByID(context.Background(), id, ownerID)
	require.NoError(t, err)
	require.NotNil(t, acc)
	return acc.Balance
}

// sumOfLog computes the signed sum of all records against one account.
func sumOfLog(t *testing.T, store *memory.Store, accountID uuid.UUID) decimal.Decimal {
	t.Helper()
	records, err := store.Transactions().ListForAccount(context.Background(), accountID)
	require.NoError(t, err)

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}
	return total
}

// requireLogInvariant asserts balance == sum of the account's log amounts.
func requireLogInvariant(t *testing.T, store *memory.Store, id, ownerID uuid.UUID) {
	t.Helper()
	balance := balanceOf(t, store, id, ownerID)
	logged := sumOfLog(t, store, id)
	require.True(t, balance.Equal(logged),
		"balance %s diverged from log sum %s", balance, logged)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
