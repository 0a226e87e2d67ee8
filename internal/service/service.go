package service

import (
	"context"

	"github.com/trustbank/ledger-server/internal/operator/actions"
	"github.com/trustbank/ledger-server/internal/storage"
)

// actionProcessor runs one action as an atomic unit. Satisfied by
// operator.OperatorDelegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Ledger *LedgerService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store storage.Storage, processor actionProcessor) *Service {
	return &Service{
		Ledger: NewLedgerService(store, processor),
	}
}
