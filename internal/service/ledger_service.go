package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/ledger"
	"github.com/trustbank/ledger-server/internal/operator/actions"
	"github.com/trustbank/ledger-server/internal/storage"
	"github.com/trustbank/ledger-server/internal/storage/user"
)

// LedgerService fronts the ledger engine: it resolves the owner, validates
// the request, and dispatches one action per operation. All balance and log
// mutations happen inside the dispatched action's atomic unit.
type LedgerService struct {
	storage   storage.Storage
	processor actionProcessor
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store storage.Storage, processor actionProcessor) *LedgerService {
	return &LedgerService{storage: store, processor: processor}
}

// Transfer moves amount between two of the owner's accounts.
func (s *LedgerService) Transfer(ctx context.Context, ownerEmail string, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, memo string) error {
	if err := ledger.ValidateAmount(amount); err != nil {
		return err
	}
	if fromAccountID == toAccountID {
		return ledger.ErrSameAccount
	}

	owner, err := s.owner(ctx, ownerEmail)
	if err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.Transfer{
		OwnerID:       owner.ID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Memo:          memo,
	})
}

// Deposit credits amount to one of the owner's accounts.
func (s *LedgerService) Deposit(ctx context.Context, ownerEmail string, accountID uuid.UUID, amount decimal.Decimal, description, category string) error {
	if err := ledger.ValidateAmount(amount); err != nil {
		return err
	}

	owner, err := s.owner(ctx, ownerEmail)
	if err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.Deposit{
		OwnerID:     owner.ID,
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Category:    category,
	})
}

// Payment debits amount from one of the owner's accounts.
func (s *LedgerService) Payment(ctx context.Context, ownerEmail string, accountID uuid.UUID, amount decimal.Decimal, description, category string) error {
	if err := ledger.ValidateAmount(amount); err != nil {
		return err
	}

	owner, err := s.owner(ctx, ownerEmail)
	if err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.Payment{
		OwnerID:     owner.ID,
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Category:    category,
	})
}

// ListAccounts returns the owner's accounts. An owner seen for the first
// time gets the default checking and savings accounts; the seeding action
// re-checks the zero-accounts guard inside its unit, so concurrent first
// queries stay idempotent.
func (s *LedgerService) ListAccounts(ctx context.Context, ownerEmail string) ([]Account, error) {
	owner, err := s.owner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Accounts().ListForOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		if err := s.processor.Process(ctx, &actions.SeedAccounts{OwnerID: owner.ID}); err != nil {
			return nil, err
		}
		rows, err = s.storage.Accounts().ListForOwner(ctx, owner.ID)
		if err != nil {
			return nil, err
		}
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = accountFromStorage(row)
	}
	return converted, nil
}

// ListTransactions returns all records across the owner's accounts, most
// recent first.
func (s *LedgerService) ListTransactions(ctx context.Context, ownerEmail string) ([]Transaction, error) {
	owner, err := s.owner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions().ListForOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, nil
}

func (s *LedgerService) owner(ctx context.Context, email string) (*user.User, error) {
	owner, err := s.storage.Users().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ledger.ErrOwnerNotFound
	}
	return owner, nil
}
