package ledger

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/trustbank/ledger-server/internal/logging"
)

// PaymentBody is the request body for paying external funds out of an
// account.
type PaymentBody struct {
	OwnerEmail  string `json:"ownerEmail" required:"true" minLength:"1" doc:"Email of the account owner"`
	AccountID   string `json:"accountId" required:"true" doc:"Account UUID"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, e.g. '120.00'"`
	Description string `json:"description,omitempty" doc:"Record description, defaults to 'Payment'"`
	Category    string `json:"category,omitempty" doc:"Record category, defaults to 'Payment'"`
}

// PaymentInput is the Huma input for a payment.
type PaymentInput struct {
	Body PaymentBody
}

// payer is the interface for executing payments.
type payer interface {
	Payment(ctx context.Context, ownerEmail string, accountID uuid.UUID, amount decimal.Decimal, description, category string) error
}

// PaymentHandler handles POST /payment.
type PaymentHandler struct {
	Ledger payer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc payer) *PaymentHandler {
	return &PaymentHandler{Ledger: svc}
}

// Register registers the payment endpoint with the Huma API.
func (h *PaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "payment",
		Method:      http.MethodPost,
		Path:        "/payment",
		Summary:     "Make a payment",
		Description: "Atomically debits an account and records the payment.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *PaymentHandler) handle(ctx context.Context, input *PaymentInput) (*OperationOutput, error) {
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
		stopTimer = logData.AddTiming("paymentMs")
	}
	err = h.Ledger.Payment(ctx, input.Body.OwnerEmail, accountID, amount, input.Body.Description, input.Body.Category)
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
