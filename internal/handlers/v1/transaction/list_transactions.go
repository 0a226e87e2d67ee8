package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/trustbank/ledger-server/internal/ledger"
	"github.com/trustbank/ledger-server/internal/logging"
	"github.com/trustbank/ledger-server/internal/service"
)

const dateLayout = "2006-01-02"

// ListTransactionsInput is the Huma input for listing an owner's transactions.
type ListTransactionsInput struct {
	OwnerEmail string `query:"ownerEmail" required:"true" minLength:"1" doc:"Email of the account owner"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Records across all of the owner's accounts, most recent first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, ownerEmail string) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	Ledger transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Ledger: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns all transaction records across the owner's accounts, ordered by date then insertion order, descending.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.Ledger.ListTransactions(ctx, input.OwnerEmail)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, ledger.ErrOwnerNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "owner not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}

	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			ID:          tx.ID.String(),
			AccountID:   tx.AccountID.String(),
			AccountName: tx.AccountName,
			Date:        tx.Date.Format(dateLayout),
			Description: tx.Description,
			Category:    tx.Category,
			Amount:      tx.Amount.StringFixed(2),
			Status:      string(tx.Status),
			Type:        string(tx.Type),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
