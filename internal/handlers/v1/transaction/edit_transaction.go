package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// EditTransactionInput is the Huma input for editing a transaction.
type EditTransactionInput struct {
	ID   int64 `path:"id" doc:"Transaction id"`
	Body TransactionBody
}

// EditTransactionOutput is the Huma output for editing a transaction.
type EditTransactionOutput struct {
	Body Transaction
}

// EditTransactionHandler handles PUT /v1/transaction/{id}.
type EditTransactionHandler struct {
	Operator actionProcessor
}

func NewEditTransactionHandler(op actionProcessor) *EditTransactionHandler {
	return &EditTransactionHandler{Operator: op}
}

func (h *EditTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Edit transaction",
		Description: "Replaces every editable field of a transaction in place.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *EditTransactionHandler) handle(ctx context.Context, input *EditTransactionInput) (*EditTransactionOutput, error) {
	txInput, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", input.ID)
	}

	action := &actions.EditTransaction{
		Request: ledger.EditRequest{ID: input.ID, TransactionInput: txInput},
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, toHTTPError(err, "failed to edit transaction")
	}

	return &EditTransactionOutput{Body: newTransaction(action.Result)}, nil
}
