package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64  `json:"id" doc:"Transaction id"`
	Date        string `json:"date" doc:"Date as DD-MM-YYYY"`
	Type        string `json:"type" doc:"credit or debit"`
	Description string `json:"description" doc:"Free text description"`
	Amount      string `json:"amount" doc:"Decimal amount"`
}

// TransactionBody is the request body for creating or editing a transaction.
type TransactionBody struct {
	Date        string `json:"date" doc:"Date as DD-MM-YYYY"`
	Type        string `json:"type" doc:"credit or debit"`
	Description string `json:"description" doc:"Free text description"`
	Amount      string `json:"amount" doc:"Non-negative decimal amount"`
}

// actionProcessor runs ledger mutations one at a time.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func newTransaction(tx ledger.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Date:        tx.Date,
		Type:        string(tx.Type),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
	}
}

// parseTransactionBody converts the API body into ledger input. Field rules
// beyond parsing are left to the ledger.
func parseTransactionBody(body TransactionBody) (ledger.TransactionInput, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return ledger.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	txType, err := ledger.ParseTransactionType(body.Type)
	if err != nil {
		return ledger.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	return ledger.TransactionInput{
		Date:        body.Date,
		Type:        txType,
		Description: body.Description,
		Amount:      amount,
	}, nil
}

// toHTTPError maps ledger errors onto API status codes.
func toHTTPError(err error, msg string) error {
	var validationErr *ledger.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, ledger.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
