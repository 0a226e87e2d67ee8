package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/trustbank/ledger-server/internal/ledger"
	"github.com/trustbank/ledger-server/internal/logging"
	"github.com/trustbank/ledger-server/internal/service"
)

// ListAccountsInput is the Huma input for listing an owner's accounts.
type ListAccountsInput struct {
	OwnerEmail string `query:"ownerEmail" required:"true" minLength:"1" doc:"Email of the account owner"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"The owner's accounts"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context, ownerEmail string) ([]service.Account, error)
}

// ListAccountsHandler handles GET /accounts.
type ListAccountsHandler struct {
	Ledger accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{Ledger: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/accounts",
		Summary:     "List accounts",
		Description: "Returns all of the owner's accounts, seeding the defaults for a new owner.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	accounts, err := h.Ledger.ListAccounts(ctx, input.OwnerEmail)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, ledger.ErrOwnerNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "owner not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list accounts", err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := ListAccountsResponseBody{
		Accounts: make([]Account, len(accounts)),
	}

	for i, acc := range accounts {
		resp.Accounts[i] = Account{
			ID:            acc.ID.String(),
			Name:          acc.Name,
			AccountNumber: acc.AccountNumber,
			Balance:       acc.Balance.StringFixed(2),
			Type:          string(acc.Kind),
		}
	}

	return &ListAccountsOutput{Body: resp}, nil
}
