package actions

import (
	"context"

	"github.com/trustbank/ledger-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer storage.Writer) error
}
