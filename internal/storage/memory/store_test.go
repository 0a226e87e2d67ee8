package memory

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
	"github.com/trustbank/ledger-server/internal/storage/user"
)

func newOwner(t *testing.T, store *Store) uuid.UUID {
	t.Helper()
	ownerID := uuid.Must(uuid.NewV4())
	store.AddUser(&user.User{ID: ownerID, Email: "owner@example.com"})
	return ownerID
}

func insertAccount(t *testing.T, store *Store, ownerID uuid.UUID, name string, balance string) uuid.UUID {
	t.Helper()

	writer, err := store.Write(context.Background())
	require.NoError(t, err)
	id, err := writer.Accounts().Insert(context.Background(), &account.AccountCreate{
		UserID:  ownerID,
		Name:    name,
		Balance: decimal.RequireFromString(balance),
		Kind:    account.KindChecking,
	})
	require.NoError(t, err)
	require.NoError(t, writer.Commit())
	return id
}

func TestFindByEmail_UnknownReturnsNil(t *testing.T) {
	store := NewStore()

	u, err := store.Users().FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFindByID_ScopedToOwner(t *testing.T) {
	store := NewStore()
	ownerID := newOwner(t, store)
	otherID := uuid.Must(uuid.NewV4())
	accountID := insertAccount(t, store, ownerID, "Checking", "100.00")

	acc, err := store.Accounts().FindByID(context.Background(), accountID, ownerID)
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "Checking", acc.Name)

	// Another owner's ID must not see the account.
	acc, err = store.Accounts().FindByID(context.Background(), accountID, otherID)
	require.NoError(t, err)
	assert.Nil(t, acc)
}

func TestRollback_DiscardsAllStagedChanges(t *testing.T) {
	store := NewStore()
	ownerID := newOwner(t, store)
	accountID := insertAccount(t, store, ownerID, "Checking", "100.00")

	writer, err := store.Write(context.Background())
	require.NoError(t, err)

	require.NoError(t, writer.Accounts().UpdateBalance(context.Background(), accountID, decimal.RequireFromString("999.99")))
	_, err = writer.Transactions().Append(context.Background(), &transaction.TransactionCreate{
		AccountID: accountID,
		Amount:    decimal.RequireFromString("899.99"),
		Status:    transaction.StatusCompleted,
		Type:      transaction.TypeCredit,
	})
	require.NoError(t, err)
	require.NoError(t, writer.Rollback())

	acc, err := store.Accounts().FindByID(context.Background(), accountID, ownerID)
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("100.00")))

	records, err := store.Transactions().ListForAccount(context.Background(), accountID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriter_SeesOwnStagedChanges(t *testing.T) {
	store := NewStore()
	ownerID := newOwner(t, store)
	accountID := insertAccount(t, store, ownerID, "Checking", "100.00")

	writer, err := store.Write(context.Background())
	require.NoError(t, err)
	defer func() { _ = writer.Rollback() }()

	require.NoError(t, writer.Accounts().UpdateBalance(context.Background(), accountID, decimal.RequireFromString("250.00")))

	staged, err := writer.Accounts().FindByIDForUpdate(context.Background(), accountID, ownerID)
	require.NoError(t, err)
	assert.True(t, staged.Balance.Equal(decimal.RequireFromString("250.00")))

	// The live store still shows the committed value.
	live, err := store.Accounts().FindByID(context.Background(), accountID, ownerID)
	require.NoError(t, err)
	assert.True(t, live.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestListForOwner_OrdersByDateThenInsertion(t *testing.T) {
	store := NewStore()
	ownerID := newOwner(t, store)
	accountID := insertAccount(t, store, ownerID, "Checking", "0.00")

	monday := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	writer, err := store.Write(context.Background())
	require.NoError(t, err)
	for _, record := range []struct {
		date        time.Time
		description string
	}{
		{monday, "old first"},
		{monday, "old second"},
		{tuesday, "new"},
	} {
		_, err = writer.Transactions().Append(context.Background(), &transaction.TransactionCreate{
			AccountID:   accountID,
			Date:        record.date,
			Description: record.description,
			Amount:      decimal.RequireFromString("1.00"),
			Status:      transaction.StatusCompleted,
			Type:        transaction.TypeCredit,
		})
		require.NoError(t, err)
	}
	require.NoError(t, writer.Commit())

	records, err := store.Transactions().ListForOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest date first; same-day records in reverse insertion order.
	assert.Equal(t, "new", records[0].Description)
	assert.Equal(t, "old second", records[1].Description)
	assert.Equal(t, "old first", records[2].Description)

	// Repeated reads return the identical order.
	again, err := store.Transactions().ListForOwner(context.Background(), ownerID)
	require.NoError(t, err)
	for i := range records {
		assert.Equal(t, records[i].ID, again[i].ID)
	}
}

func TestListForOwner_JoinsAccountName(t *testing.T) {
	store := NewStore()
	ownerID := newOwner(t, store)
	accountID := insertAccount(t, store, ownerID, "Trust Bank Savings", "0.00")

	writer, err := store.Write(context.Background())
	require.NoError(t, err)
	_, err = writer.Transactions().Append(context.Background(), &transaction.TransactionCreate{
		AccountID: accountID,
		Amount:    decimal.RequireFromString("5.00"),
		Status:    transaction.StatusCompleted,
		Type:      transaction.TypeCredit,
	})
	require.NoError(t, err)
	require.NoError(t, writer.Commit())

	records, err := store.Transactions().ListForOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Trust Bank Savings", records[0].AccountName)
}

func TestWriteUnits_Serialize(t *testing.T) {
	store := NewStore()
	ownerID := newOwner(t, store)
	accountID := insertAccount(t, store, ownerID, "Checking", "0.00")

	first, err := store.Write(context.Background())
	require.NoError(t, err)

	secondOpened := make(chan struct{})
	go func() {
		second, err := store.Write(context.Background())
		if err == nil {
			_ = second.Rollback()
		}
		close(secondOpened)
	}()

	select {
	case <-secondOpened:
		t.Fatal("second write unit opened while the first was still active")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, first.Accounts().UpdateBalance(context.Background(), accountID, decimal.RequireFromString("10.00")))
	require.NoError(t, first.Commit())

	select {
	case <-secondOpened:
	case <-time.After(time.Second):
		t.Fatal("second write unit never opened after the first committed")
	}
}
