package actions

import (
	"context"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/memory"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
	"github.com/trustbank/ledger-server/internal/storage/user"
)

func TestSeedAccounts_CreatesOpeningPair(t *testing.T) {
	store := memory.NewStore()
	ownerID := uuid.Must(uuid.NewV4())
	store.AddUser(&user.User{ID: ownerID, Email: "new@example.com"})

	require.NoError(t, perform(t, store, &SeedAccounts{OwnerID: ownerID}))

	accounts, err := store.Accounts().ListForOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	checking, savings := accounts[0], accounts[1]
	assert.Equal(t, account.KindChecking, checking.Kind)
	assert.Equal(t, account.KindSavings, savings.Kind)
	assert.True(t, checking.Balance.Equal(amount("500.00")))
	assert.True(t, savings.Balance.Equal(amount("500.00")))
	assert.True(t, strings.HasPrefix(checking.AccountNumber, "****"))

	for _, acc := range accounts {
		records, listErr := store.Transactions().ListForAccount(context.Background(), acc.ID)
		require.NoError(t, listErr)
		require.Len(t, records, 1)
		assert.Equal(t, "Opening Deposit", records[0].Description)
		assert.Equal(t, transaction.TypeCredit, records[0].Type)
		assert.True(t, records[0].Amount.Equal(amount("500.00")))
		requireLogInvariant(t, store, acc.ID, ownerID)
	}
}

func TestSeedAccounts_NoOpWhenAccountsExist(t *testing.T) {
	store, ownerID, _, _ := newLedger(t)

	require.NoError(t, perform(t, store, &SeedAccounts{OwnerID: ownerID}))

	accounts, err := store.Accounts().ListForOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, accounts, 2, "re-seeding must not add accounts")

	records, err := store.Transactions().ListForOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, records, 2, "re-seeding must not add records")
}

func TestSeedAccounts_ScopedToOwner(t *testing.T) {
	store, firstOwner, _, _ := newLedger(t)

	secondOwner := uuid.Must(uuid.NewV4())
	store.AddUser(&user.User{ID: secondOwner, Email: "second@example.com"})
	require.NoError(t, perform(t, store, &SeedAccounts{OwnerID: secondOwner}))

	first, err := store.Accounts().ListForOwner(context.Background(), firstOwner)
	require.NoError(t, err)
	second, err := store.Accounts().ListForOwner(context.Background(), secondOwner)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Len(t, second, 2)
	for _, acc := range second {
		assert.Equal(t, secondOwner, acc.UserID)
	}
}
