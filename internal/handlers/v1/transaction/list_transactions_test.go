package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/view"
)

type mockEntryLister struct {
	mock.Mock
}

func (m *mockEntryLister) ListEntries(ctx context.Context, filter ledger.TransactionFilter, cursor *service.EntryCursor) ([]service.Entry, *service.EntryCursor, error) {
	args := m.Called(ctx, filter, cursor)
	entries, _ := args.Get(0).([]service.Entry)
	next, _ := args.Get(1).(*service.EntryCursor)
	return entries, next, args.Error(2)
}

func newListTestAPI(t *testing.T, svc entryLister) humatest.TestAPI {
	t.Helper()
	formatter, err := view.NewFormatter("USD")
	require.NoError(t, err)

	_, api := humatest.New(t)
	NewListTransactionsHandler(svc, formatter).Register(api)
	return api
}

func rentEntry() service.Entry {
	return service.Entry{
		Index: 2,
		Transaction: ledger.Transaction{
			ID:          1704153600000,
			Date:        "02-01-2024",
			Type:        ledger.TransactionTypeDebit,
			Description: "Rent",
			Amount:      decimal.RequireFromString("400"),
		},
		RunningBalance: decimal.RequireFromString("600"),
	}
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	filter, cursor, err := parseListTransactionsInput(&ListTransactionsInput{})

	assert.NoError(t, err)
	assert.Equal(t, ledger.TransactionFilter{}, filter)
	assert.Nil(t, cursor)
}

func TestParseListTransactionsInput_WithFilterAndCursor(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			Type:  "DEBIT",
			Query: "rent",
			Cursor: &ListTransactionsCursor{
				Position: 40,
				Limit:    10,
			},
		},
	}

	filter, cursor, err := parseListTransactionsInput(input)

	assert.NoError(t, err)
	assert.Equal(t, ledger.TransactionTypeDebit, filter.Type)
	assert.Equal(t, "rent", filter.Query)
	require.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
}

func TestParseListTransactionsInput_InvalidType(t *testing.T) {
	_, _, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{Type: "transfer"},
	})

	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_SinglePage(t *testing.T) {
	mockSvc := new(mockEntryLister)
	mockSvc.On("ListEntries", mock.Anything, ledger.TransactionFilter{}, (*service.EntryCursor)(nil)).
		Return([]service.Entry{rentEntry()}, (*service.EntryCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Entries, 1)
	assert.Equal(t, Entry{
		Index:            2,
		ID:               1704153600000,
		Date:             "02-01-2024",
		Type:             "debit",
		TypeLabel:        "Debit",
		Description:      "Rent",
		Amount:           "400.00",
		RunningBalance:   "600.00",
		FormattedAmount:  "$400.00",
		FormattedBalance: "$600.00",
	}, body.Entries[0])
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_MultiplePages(t *testing.T) {
	mockSvc := new(mockEntryLister)
	mockSvc.On("ListEntries", mock.Anything, mock.Anything, (*service.EntryCursor)(nil)).
		Return([]service.Entry{rentEntry()}, &service.EntryCursor{Position: 20, Limit: 20}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 20, body.NextCursor.Position)
	assert.Equal(t, 20, body.NextCursor.Limit)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_WithFilterAndCursor(t *testing.T) {
	mockSvc := new(mockEntryLister)
	mockSvc.On("ListEntries", mock.Anything,
		ledger.TransactionFilter{Type: ledger.TransactionTypeCredit, Query: "sal"},
		mock.MatchedBy(func(c *service.EntryCursor) bool {
			return c != nil && c.Position == 40 && c.Limit == 10
		}),
	).Return(([]service.Entry)(nil), (*service.EntryCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		Type:   "credit",
		Query:  "sal",
		Cursor: &ListTransactionsCursor{Position: 40, Limit: 10},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Entries)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_CursorLimitTooLarge(t *testing.T) {
	mockSvc := new(mockEntryLister)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		Cursor: &ListTransactionsCursor{Position: 0, Limit: 1000},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListEntries")
}

func TestHTTP_ListTransactions_InvalidType(t *testing.T) {
	mockSvc := new(mockEntryLister)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{Type: "transfer"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListEntries")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockEntryLister)
	mockSvc.On("ListEntries", mock.Anything, mock.Anything, mock.Anything).
		Return(([]service.Entry)(nil), (*service.EntryCursor)(nil), errors.New("ledger unavailable"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
