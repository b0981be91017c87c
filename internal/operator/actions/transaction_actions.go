package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

type AddTransaction struct {
	Input ledger.TransactionInput

	// Result is set once Perform succeeds.
	Result ledger.Transaction
}

func (a *AddTransaction) Perform(ctx context.Context, store *ledger.Store) error {
	tx, err := store.Add(ctx, a.Input)
	if err != nil {
		return err
	}

	a.Result = tx
	return nil
}

type EditTransaction struct {
	Request ledger.EditRequest

	Result ledger.Transaction
}

func (e *EditTransaction) Perform(ctx context.Context, store *ledger.Store) error {
	tx, err := store.Edit(ctx, e.Request)
	if err != nil {
		return err
	}

	e.Result = tx
	return nil
}

type DeleteTransaction struct {
	ID int64
}

func (d *DeleteTransaction) Perform(ctx context.Context, store *ledger.Store) error {
	return store.Delete(ctx, d.ID)
}
