package ledger

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/logging"
)

// TransferBody is the request body for moving money between two of the
// owner's accounts.
type TransferBody struct {
	OwnerEmail    string `json:"ownerEmail" required:"true" minLength:"1" doc:"Email of the owner of both accounts"`
	FromAccountID string `json:"fromAccountId" required:"true" doc:"Source account UUID"`
	ToAccountID   string `json:"toAccountId" required:"true" doc:"Destination account UUID"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount, e.g. '200.00'"`
	Memo          string `json:"memo,omitempty" doc:"Memo recorded on both transaction records"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	Body TransferBody
}

// transferrer is the interface for executing transfers.
type transferrer interface {
	Transfer(ctx context.Context, ownerEmail string, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, memo string) error
}

// TransferHandler handles POST /transfer.
type TransferHandler struct {
	Ledger transferrer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc transferrer) *TransferHandler {
	return &TransferHandler{Ledger: svc}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        "/transfer",
		Summary:     "Transfer between accounts",
		Description: "Atomically moves money between two accounts of the same owner.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*OperationOutput, error) {
	logData := logging.GetLogData(ctx)

	fromAccountID, err := parseAccountID(input.Body.FromAccountID, "fromAccountId")
	if err != nil {
		return nil, err
	}
	toAccountID, err := parseAccountID(input.Body.ToAccountID, "toAccountId")
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	err = h.Ledger.Transfer(ctx, input.Body.OwnerEmail, fromAccountID, toAccountID, amount, input.Body.Memo)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, translateError(err)
	}

	if logData != nil {
		logData.AddData("fromAccountID", fromAccountID.String())
		logData.AddData("toAccountID", toAccountID.String())
	}

	return &OperationOutput{Body: OperationResponse{Success: true}}, nil
}
