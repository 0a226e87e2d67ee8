package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
)

// Account represents an account in the service layer.
type Account struct {
	ID            uuid.UUID
	Name          string
	AccountNumber string
	Balance       decimal.Decimal
	Kind          account.Kind
	CreatedAt     time.Time
}

// Transaction represents a transaction record in the service layer.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	AccountName string
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Status      transaction.Status
	Type        transaction.Type
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:            row.ID,
		Name:          row.Name,
		AccountNumber: row.AccountNumber,
		Balance:       row.Balance,
		Kind:          row.Kind,
		CreatedAt:     row.CreatedAt,
	}
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		AccountName: row.AccountName,
		Date:        row.Date,
		Description: row.Description,
		Category:    row.Category,
		Amount:      row.Amount,
		Status:      row.Status,
		Type:        row.Type,
	}
}
