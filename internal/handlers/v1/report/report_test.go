package report

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

type mockLedgerReader struct {
	mock.Mock
}

func (m *mockLedgerReader) Entries(ctx context.Context, filter ledger.TransactionFilter) ([]service.Entry, error) {
	args := m.Called(ctx, filter)
	entries, _ := args.Get(0).([]service.Entry)
	return entries, args.Error(1)
}

func (m *mockLedgerReader) Summary(ctx context.Context) (ledger.Summary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(ledger.Summary)
	return summary, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockLedgerReader) humatest.TestAPI {
	t.Helper()
	formatter, err := view.NewFormatter("USD")
	require.NoError(t, err)

	_, api := humatest.New(t)
	NewBalanceHandler(svc, formatter).Register(api)
	NewPrintHandler(svc, formatter).Register(api)
	return api
}

func sampleSummary() ledger.Summary {
	return ledger.Summary{
		Count:   2,
		Credits: decimal.RequireFromString("1000"),
		Debits:  decimal.RequireFromString("400"),
		Balance: decimal.RequireFromString("600"),
	}
}

// -- Balance tests --

func TestHTTP_Balance_Success(t *testing.T) {
	svc := new(mockLedgerReader)
	svc.On("Summary", mock.Anything).Return(sampleSummary(), nil)

	resp := newTestAPI(t, svc).Get("/v1/balance")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BalanceBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, BalanceBody{
		Balance:          "600.00",
		FormattedBalance: "$600.00",
		Credits:          "1000.00",
		Debits:           "400.00",
		Count:            2,
		Currency:         "USD",
	}, body)
	svc.AssertExpectations(t)
}

func TestHTTP_Balance_ServiceError(t *testing.T) {
	svc := new(mockLedgerReader)
	svc.On("Summary", mock.Anything).Return(ledger.Summary{}, errors.New("ledger unavailable"))

	resp := newTestAPI(t, svc).Get("/v1/balance")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	svc.AssertExpectations(t)
}

// -- Print tests --

func TestHTTP_Print_Success(t *testing.T) {
	svc := new(mockLedgerReader)
	svc.On("Entries", mock.Anything, ledger.TransactionFilter{}).Return([]service.Entry{
		{
			Index: 1,
			Transaction: ledger.Transaction{
				ID:          1704067200000,
				Date:        "01-01-2024",
				Type:        ledger.TransactionTypeCredit,
				Description: "Salary",
				Amount:      decimal.RequireFromString("1000"),
			},
			RunningBalance: decimal.RequireFromString("1000"),
		},
	}, nil)
	svc.On("Summary", mock.Anything).Return(sampleSummary(), nil)

	resp := newTestAPI(t, svc).Get("/v1/ledger/print?title=January")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
	page := resp.Body.String()
	assert.Contains(t, page, "<title>January</title>")
	assert.Contains(t, page, "<td>Salary</td>")
	assert.Contains(t, page, "$600.00")
	svc.AssertExpectations(t)
}

func TestHTTP_Print_EntriesError(t *testing.T) {
	svc := new(mockLedgerReader)
	svc.On("Entries", mock.Anything, mock.Anything).Return(([]service.Entry)(nil), errors.New("ledger unavailable"))

	resp := newTestAPI(t, svc).Get("/v1/ledger/print")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	svc.AssertNotCalled(t, "Summary", mock.Anything)
}
