package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/view"
)

// BalanceBody is the response body for the balance endpoint.
type BalanceBody struct {
	Balance          string `json:"balance" doc:"Signed sum of every transaction"`
	FormattedBalance string `json:"formattedBalance" doc:"Balance formatted in the ledger currency"`
	Credits          string `json:"credits" doc:"Sum of all credits"`
	Debits           string `json:"debits" doc:"Sum of all debits"`
	Count            int    `json:"count" doc:"Number of transactions"`
	Currency         string `json:"currency" doc:"ISO 4217 code used for formatting"`
}

// BalanceOutput is the Huma output for the balance endpoint.
type BalanceOutput struct {
	Body BalanceBody
}

type summarizer interface {
	Summary(ctx context.Context) (ledger.Summary, error)
}

// BalanceHandler handles GET /v1/balance.
type BalanceHandler struct {
	LedgerService summarizer
	Formatter     *view.Formatter
}

func NewBalanceHandler(svc summarizer, formatter *view.Formatter) *BalanceHandler {
	return &BalanceHandler{LedgerService: svc, Formatter: formatter}
}

func (h *BalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/v1/balance",
		Summary:     "Get balance",
		Description: "Returns the current balance and ledger totals.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *BalanceHandler) handle(ctx context.Context, _ *struct{}) (*BalanceOutput, error) {
	summary, err := h.LedgerService.Summary(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute balance", err)
	}

	return &BalanceOutput{Body: BalanceBody{
		Balance:          summary.Balance.StringFixed(2),
		FormattedBalance: h.Formatter.Format(summary.Balance),
		Credits:          summary.Credits.StringFixed(2),
		Debits:           summary.Debits.StringFixed(2),
		Count:            summary.Count,
		Currency:         h.Formatter.Currency(),
	}}, nil
}
