package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/view"
)

// PrintInput is the Huma input for the print endpoint.
type PrintInput struct {
	Title string `query:"title" doc:"Page title, defaults to Ledger"`
}

// PrintOutput carries a complete HTML page.
type PrintOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type ledgerReader interface {
	Entries(ctx context.Context, filter ledger.TransactionFilter) ([]service.Entry, error)
	Summary(ctx context.Context) (ledger.Summary, error)
}

// PrintHandler handles GET /v1/ledger/print.
type PrintHandler struct {
	LedgerService ledgerReader
	Formatter     *view.Formatter
}

func NewPrintHandler(svc ledgerReader, formatter *view.Formatter) *PrintHandler {
	return &PrintHandler{LedgerService: svc, Formatter: formatter}
}

func (h *PrintHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "print-ledger",
		Method:      http.MethodGet,
		Path:        "/v1/ledger/print",
		Summary:     "Print ledger",
		Description: "Returns the whole ledger as a print-ready HTML page.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *PrintHandler) handle(ctx context.Context, input *PrintInput) (*PrintOutput, error) {
	entries, err := h.LedgerService.Entries(ctx, ledger.TransactionFilter{})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read ledger", err)
	}
	summary, err := h.LedgerService.Summary(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute balance", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("entryCount", len(entries))
	}

	printable := view.NewPrintable(input.Title, summary.Balance, view.Rows(entries, h.Formatter), h.Formatter)
	page, err := printable.HTML()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to render ledger", err)
	}

	return &PrintOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        page,
	}, nil
}
