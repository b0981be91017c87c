package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/view"
)

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It bundles position and limit so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Type   string                  `json:"type,omitempty" doc:"Only list credit or debit transactions"`
	Query  string                  `json:"query,omitempty" doc:"Case-insensitive description substring"`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// Entry is one ledger row with its running balance.
type Entry struct {
	Index            int    `json:"index" doc:"1-based position in the ledger"`
	ID               int64  `json:"id" doc:"Transaction id"`
	Date             string `json:"date" doc:"Date as DD-MM-YYYY"`
	Type             string `json:"type" doc:"credit or debit"`
	TypeLabel        string `json:"typeLabel" doc:"Display label for the type"`
	Description      string `json:"description" doc:"Free text description"`
	Amount           string `json:"amount" doc:"Decimal amount"`
	RunningBalance   string `json:"runningBalance" doc:"Balance after this row, in ledger order"`
	FormattedAmount  string `json:"formattedAmount" doc:"Amount formatted in the ledger currency"`
	FormattedBalance string `json:"formattedBalance" doc:"Running balance formatted in the ledger currency"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Entries    []Entry                 `json:"entries" doc:"Page of ledger rows"`
	NextCursor *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// entryLister is the interface for listing ledger rows.
type entryLister interface {
	ListEntries(ctx context.Context, filter ledger.TransactionFilter, cursor *service.EntryCursor) ([]service.Entry, *service.EntryCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	LedgerService entryLister
	Formatter     *view.Formatter
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc entryLister, formatter *view.Formatter) *ListTransactionsHandler {
	return &ListTransactionsHandler{LedgerService: svc, Formatter: formatter}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a paginated list of ledger rows with running balances using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// Without a cursor, the service uses its default limit.
func parseListTransactionsInput(input *ListTransactionsInput) (ledger.TransactionFilter, *service.EntryCursor, error) {
	filter := ledger.TransactionFilter{Query: input.Body.Query}
	if input.Body.Type != "" {
		txType, err := ledger.ParseTransactionType(input.Body.Type)
		if err != nil {
			return ledger.TransactionFilter{}, nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		filter.Type = txType
	}

	if input.Body.Cursor == nil {
		return filter, nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return ledger.TransactionFilter{}, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	return filter, &service.EntryCursor{
		Position: input.Body.Cursor.Position,
		Limit:    input.Body.Cursor.Limit,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filter, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listEntriesMs")
	}
	entries, nextCursor, err := h.LedgerService.ListEntries(ctx, filter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("entryCount", len(entries))
	}

	resp := ListTransactionsResponseBody{
		Entries: make([]Entry, len(entries)),
	}

	rows := view.Rows(entries, h.Formatter)
	for i, entry := range entries {
		tx := entry.Transaction
		resp.Entries[i] = Entry{
			Index:            rows[i].Index,
			ID:               tx.ID,
			Date:             tx.Date,
			Type:             string(tx.Type),
			TypeLabel:        rows[i].Type,
			Description:      tx.Description,
			Amount:           tx.Amount.StringFixed(2),
			RunningBalance:   entry.RunningBalance.StringFixed(2),
			FormattedAmount:  rows[i].Amount,
			FormattedBalance: rows[i].Balance,
		}
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
