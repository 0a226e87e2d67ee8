// Package ledger holds the handlers for the three money-moving operations.
// They map requests onto the ledger service and translate failure kinds;
// no business logic lives here.
package ledger

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/trustbank/ledger-server/internal/ledger"
	"github.com/trustbank/ledger-server/internal/storage"
)

// OperationResponse is the response body for a successful ledger operation.
type OperationResponse struct {
	Success bool `json:"success" doc:"Always true on success"`
}

// OperationOutput is the Huma output shared by transfer, deposit, and payment.
type OperationOutput struct {
	Body OperationResponse
}

// translateError maps engine failures to caller-facing responses. Not-found
// and insufficient-funds get distinct messages since they need different
// corrective action; conflicts are retryable; anything else surfaces as a
// generic failure without storage detail.
func translateError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrOwnerNotFound), errors.Is(err, ledger.ErrAccountNotFound):
		return huma.NewError(http.StatusBadRequest, "account not found")
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return huma.NewError(http.StatusBadRequest, "insufficient funds")
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrSameAccount):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrConflict):
		return huma.NewError(http.StatusConflict, "operation conflicted with a concurrent update, retry")
	default:
		return huma.NewError(http.StatusInternalServerError, "operation failed")
	}
}

func parseAccountID(value, field string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}
