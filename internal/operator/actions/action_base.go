package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// IAction is one mutation of the ledger. Actions run one at a time.
type IAction interface {
	Perform(ctx context.Context, store *ledger.Store) error
}
