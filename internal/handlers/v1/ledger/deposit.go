package ledger

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/logging"
)

// DepositBody is the request body for crediting an account with external
// funds.
type DepositBody struct {
	OwnerEmail  string `json:"ownerEmail" required:"true" minLength:"1" doc:"Email of the account owner"`
	AccountID   string `json:"accountId" required:"true" doc:"Account UUID"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, e.g. '50.00'"`
	Description string `json:"description,omitempty" doc:"Record description, defaults to 'Deposit'"`
	Category    string `json:"category,omitempty" doc:"Record category, defaults to 'Deposit'"`
}

// DepositInput is the Huma input for a deposit.
type DepositInput struct {
	Body DepositBody
}

// depositor is the interface for executing deposits.
type depositor interface {
	Deposit(ctx context.Context, ownerEmail string, accountID uuid.UUID, amount decimal.Decimal, description, category string) error
}

// DepositHandler handles POST /deposit.
type DepositHandler struct {
	Ledger depositor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(svc depositor) *DepositHandler {
	return &DepositHandler{Ledger: svc}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/deposit",
		Summary:     "Deposit funds",
		Description: "Atomically credits an account and records the deposit.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*OperationOutput, error) {
	logData := logging.GetLogData(ctx)

	accountID, err := parseAccountID(input.Body.AccountID, "accountId")
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("depositMs")
	}
	err = h.Ledger.Deposit(ctx, input.Body.OwnerEmail, accountID, amount, input.Body.Description, input.Body.Category)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, translateError(err)
	}

	if logData != nil {
		logData.AddData("accountID", accountID.String())
	}

	return &OperationOutput{Body: OperationResponse{Success: true}}, nil
}
