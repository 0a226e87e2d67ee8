// Package memory is an in-memory implementation of storage.Storage. It backs
// engine and service tests; write units stage against a copy of the state and
// publish it on commit, so rollback has zero observable effect.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/storage"
	"github.com/trustbank/ledger-server/internal/storage/account"
	"github.com/trustbank/ledger-server/internal/storage/transaction"
	"github.com/trustbank/ledger-server/internal/storage/user"
)

// Store holds all ledger state in memory. One write unit runs at a time; the
// unit-wide lock is the memory equivalent of row locks held for the full
// duration of the operation.
type Store struct {
	writeMu sync.Mutex // held by the open write unit
	stateMu sync.RWMutex
	state   *state
}

type state struct {
	users        map[string]*user.User
	accounts     map[uuid.UUID]*account.Account
	accountOrder []uuid.UUID
	transactions []*transaction.Transaction
	nextSeq      int64
}

var _ storage.Storage = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		state: &state{
			users:    make(map[string]*user.User),
			accounts: make(map[uuid.UUID]*account.Account),
			nextSeq:  1,
		},
	}
}

// AddUser registers an owner directly. Registration is out of the ledger's
// scope, so tests seed owners through this instead of a write unit.
func (s *Store) AddUser(u *user.User) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	copied := *u
	s.state.users[u.Email] = &copied
}

func (s *Store) Users() user.Reader {
	return &userReader{store: s}
}

func (s *Store) Accounts() account.Reader {
	return &accountReader{store: s}
}

func (s *Store) Transactions() transaction.Reader {
	return &transactionReader{store: s}
}

func (s *Store) Write(ctx context.Context) (storage.Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writeMu.Lock()

	s.stateMu.RLock()
	staged := s.state.clone()
	s.stateMu.RUnlock()

	return &writer{store: s, staged: staged}, nil
}

func (s *Store) Close() error {
	return nil
}

func (st *state) clone() *state {
	copied := &state{
		users:        make(map[string]*user.User, len(st.users)),
		accounts:     make(map[uuid.UUID]*account.Account, len(st.accounts)),
		accountOrder: append([]uuid.UUID(nil), st.accountOrder...),
		transactions: append([]*transaction.Transaction(nil), st.transactions...),
		nextSeq:      st.nextSeq,
	}
	for email, u := range st.users {
		copied.users[email] = u
	}
	for id, acc := range st.accounts {
		accCopy := *acc
		copied.accounts[id] = &accCopy
	}
	return copied
}

type writer struct {
	store  *Store
	staged *state
	done   bool
}

func (w *writer) Accounts() account.Writer {
	return &accountWriter{accountReader: accountReader{staged: w.staged}, staged: w.staged}
}

func (w *writer) Transactions() transaction.Writer {
	return &transactionWriter{transactionReader: transactionReader{staged: w.staged}, staged: w.staged}
}

func (w *writer) Commit() error {
	if w.done {
		return errors.New("memory: write unit already closed")
	}
	w.done = true

	w.store.stateMu.Lock()
	w.store.state = w.staged
	w.store.stateMu.Unlock()

	w.store.writeMu.Unlock()
	return nil
}

func (w *writer) Rollback() error {
	if w.done {
		return errors.New("memory: write unit already closed")
	}
	w.done = true
	w.store.writeMu.Unlock()
	return nil
}

// Readers work either against the live store (store != nil) or against the
// staged state of an open write unit.

type userReader struct {
	store  *Store
	staged *state
}

func (r *userReader) snapshot() (*state, func()) {
	if r.staged != nil {
		return r.staged, func() {}
	}
	r.store.stateMu.RLock()
	return r.store.state, r.store.stateMu.RUnlock
}

func (r *userReader) FindByEmail(_ context.Context, email string) (*user.User, error) {
	st, release := r.snapshot()
	defer release()

	u, ok := st.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

type accountReader struct {
	store  *Store
	staged *state
}

func (r *accountReader) snapshot() (*state, func()) {
	if r.staged != nil {
		return r.staged, func() {}
	}
	r.store.stateMu.RLock()
	return r.store.state, r.store.stateMu.RUnlock
}

func (r *accountReader) FindByID(_ context.Context, id, ownerID uuid.UUID) (*account.Account, error) {
	st, release := r.snapshot()
	defer release()

	acc, ok := st.accounts[id]
	if !ok || acc.UserID != ownerID {
		return nil, nil
	}
	copied := *acc
	return &copied, nil
}

func (r *accountReader) ListForOwner(_ context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	st, release := r.snapshot()
	defer release()

	var result []*account.Account
	for _, id := range st.accountOrder {
		acc := st.accounts[id]
		if acc.UserID == ownerID {
			copied := *acc
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *accountReader) CountForOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	st, release := r.snapshot()
	defer release()

	count := 0
	for _, acc := range st.accounts {
		if acc.UserID == ownerID {
			count++
		}
	}
	return count, nil
}

type accountWriter struct {
	accountReader
	staged *state
}

// FindByIDForUpdate needs no extra locking here: the write unit already owns
// the store-wide write lock for its full duration.
func (w *accountWriter) FindByIDForUpdate(ctx context.Context, id, ownerID uuid.UUID) (*account.Account, error) {
	return w.FindByID(ctx, id, ownerID)
}

func (w *accountWriter) Insert(_ context.Context, create *account.AccountCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	w.staged.accounts[id] = &account.Account{
		ID:            id,
		UserID:        create.UserID,
		Name:          create.Name,
		AccountNumber: create.AccountNumber,
		Balance:       create.Balance,
		Kind:          create.Kind,
	}
	w.staged.accountOrder = append(w.staged.accountOrder, id)
	return id, nil
}

func (w *accountWriter) UpdateBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	acc, ok := w.staged.accounts[id]
	if !ok {
		return errors.New("memory: account not found")
	}
	acc.Balance = balance
	return nil
}

type transactionReader struct {
	store  *Store
	staged *state
}

func (r *transactionReader) snapshot() (*state, func()) {
	if r.staged != nil {
		return r.staged, func() {}
	}
	r.store.stateMu.RLock()
	return r.store.state, r.store.stateMu.RUnlock
}

func (r *transactionReader) ListForOwner(_ context.Context, ownerID uuid.UUID) ([]*transaction.Transaction, error) {
	st, release := r.snapshot()
	defer release()

	var result []*transaction.Transaction
	for _, tx := range st.transactions {
		acc, ok := st.accounts[tx.AccountID]
		if !ok || acc.UserID != ownerID {
			continue
		}
		copied := *tx
		copied.AccountName = acc.Name
		result = append(result, &copied)
	}
	sortTransactions(result)
	return result, nil
}

func (r *transactionReader) ListForAccount(_ context.Context, accountID uuid.UUID) ([]*transaction.Transaction, error) {
	st, release := r.snapshot()
	defer release()

	var result []*transaction.Transaction
	for _, tx := range st.transactions {
		if tx.AccountID != accountID {
			continue
		}
		copied := *tx
		if acc, ok := st.accounts[tx.AccountID]; ok {
			copied.AccountName = acc.Name
		}
		result = append(result, &copied)
	}
	sortTransactions(result)
	return result, nil
}

// sortTransactions orders date descending, then insertion order descending.
func sortTransactions(txs []*transaction.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].Seq > txs[j].Seq
	})
}

type transactionWriter struct {
	transactionReader
	staged *state
}

func (w *transactionWriter) Append(_ context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	w.staged.transactions = append(w.staged.transactions, &transaction.Transaction{
		ID:          id,
		AccountID:   create.AccountID,
		Date:        create.Date,
		Description: create.Description,
		Category:    create.Category,
		Amount:      create.Amount,
		Status:      create.Status,
		Type:        create.Type,
		Seq:         w.staged.nextSeq,
	})
	w.staged.nextSeq++
	return id, nil
}
