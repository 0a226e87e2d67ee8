package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	ledgererrors "github.com/trustbank/ledger-server/internal/ledger"
	"github.com/trustbank/ledger-server/internal/storage"
)

type mockTransferrer struct {
	mock.Mock
}

func (m *mockTransferrer) Transfer(ctx context.Context, ownerEmail string, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, memo string) error {
	args := m.Called(ctx, ownerEmail, fromAccountID, toAccountID, amount, memo)
	return args.Error(0)
}

func newTransferTestAPI(t *testing.T, svc transferrer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewTransferHandler(svc).Register(api)
	return api
}

func TestHTTP_Transfer_Success(t *testing.T) {
	fromID := uuid.Must(uuid.NewV4())
	toID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransferrer)
	mockSvc.On("Transfer", mock.Anything, "owner@example.com", fromID, toID,
		mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.RequireFromString("200.00"))
		}), "savings top-up").Return(nil)

	resp := newTransferTestAPI(t, mockSvc).Post("/transfer", TransferBody{
		OwnerEmail:    "owner@example.com",
		FromAccountID: fromID.String(),
		ToAccountID:   toID.String(),
		Amount:        "200.00",
		Memo:          "savings top-up",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body OperationResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Transfer_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransferrer)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTransferTestAPI(t, mockSvc).Post("/transfer", TransferBody{
		OwnerEmail: "owner@example.com",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Transfer")
}

func TestHTTP_Transfer_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockTransferrer)

	resp := newTransferTestAPI(t, mockSvc).Post("/transfer", TransferBody{
		OwnerEmail:    "owner@example.com",
		FromAccountID: "not-a-uuid",
		ToAccountID:   uuid.Must(uuid.NewV4()).String(),
		Amount:        "10.00",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Transfer")
}

func TestHTTP_Transfer_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransferrer)

	resp := newTransferTestAPI(t, mockSvc).Post("/transfer", TransferBody{
		OwnerEmail:    "owner@example.com",
		FromAccountID: uuid.Must(uuid.NewV4()).String(),
		ToAccountID:   uuid.Must(uuid.NewV4()).String(),
		Amount:        "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Transfer")
}

func TestHTTP_Transfer_ErrorTranslation(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"account not found", ledgererrors.ErrAccountNotFound, http.StatusBadRequest},
		{"owner not found", ledgererrors.ErrOwnerNotFound, http.StatusBadRequest},
		{"insufficient funds", ledgererrors.ErrInsufficientFunds, http.StatusBadRequest},
		{"same account", ledgererrors.ErrSameAccount, http.StatusBadRequest},
		{"non-positive amount", ledgererrors.ErrInvalidAmount, http.StatusBadRequest},
		{"conflict", storage.ErrConflict, http.StatusConflict},
		{"storage failure", errors.New("database unavailable"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := new(mockTransferrer)
			mockSvc.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(tc.serviceErr)

			resp := newTransferTestAPI(t, mockSvc).Post("/transfer", TransferBody{
				OwnerEmail:    "owner@example.com",
				FromAccountID: uuid.Must(uuid.NewV4()).String(),
				ToAccountID:   uuid.Must(uuid.NewV4()).String(),
				Amount:        "10.00",
			})

			assert.Equal(t, tc.wantStatus, resp.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}
