package postgres

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"

	"github.com/trustbank/ledger-server/internal/storage/transaction"
)

type transactionStore struct {
	q querier
}

var _ transaction.Reader = (*transactionStore)(nil)

const transactionSelect = `
	SELECT t.id, t.account_id, a.name, t.date, t.description, t.category,
	       t.amount, t.status, t.type, t.seq, t.created_at
	FROM transactions t
	JOIN accounts a ON t.account_id = a.id`

// ListForOwner joins against accounts so only the owner's records come back.
// seq is the final tiebreaker: date DESC alone is not deterministic and both
// legs of a transfer share created_at (Postgres fixes now() at tx start).
func (s *transactionStore) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*transaction.Transaction, error) {
	rows, err := s.q.QueryContext(ctx,
		transactionSelect+`
	WHERE a.user_id = $1
	ORDER BY t.date DESC, t.seq DESC`,
		ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	return collectTransactions(rows)
}

func (s *transactionStore) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]*transaction.Transaction, error) {
	rows, err := s.q.QueryContext(ctx,
		transactionSelect+`
	WHERE t.account_id = $1
	ORDER BY t.date DESC, t.seq DESC`,
		accountID)
	if err != nil {
		return nil, mapError(err)
	}
	return collectTransactions(rows)
}

type transactionTx struct {
	transactionStore
	tx *sql.Tx
}

var _ transaction.Writer = (*transactionTx)(nil)

// Append writes one immutable record. There is deliberately no update or
// delete statement anywhere in this package.
func (t *transactionTx) Append(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO transactions (id, account_id, date, description, category, amount, status, type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, create.AccountID, create.Date, create.Description, create.Category,
		create.Amount, string(create.Status), string(create.Type))
	if err != nil {
		return uuid.Nil, mapError(err)
	}
	return id, nil
}

func collectTransactions(rows *sql.Rows) ([]*transaction.Transaction, error) {
	defer rows.Close()

	var result []*transaction.Transaction
	for rows.Next() {
		var tx transaction.Transaction
		var status, txType string
		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.AccountName, &tx.Date, &tx.Description,
			&tx.Category, &tx.Amount, &status, &txType, &tx.Seq, &tx.CreatedAt)
		if err != nil {
			return nil, mapError(err)
		}
		tx.Status = transaction.Status(status)
		tx.Type = transaction.Type(txType)
		result = append(result, &tx)
	}
	return result, mapError(rows.Err())
}
