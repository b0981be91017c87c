package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Entry is one visible ledger row.
type Entry struct {
	// Index is the 1-based position in the full ledger, not in the page.
	Index          int
	Transaction    ledger.Transaction
	RunningBalance decimal.Decimal
}

// EntryCursor identifies a position in a paginated result set
// and carries the limit so subsequent pages are consistent.
type EntryCursor struct {
	Position int
	Limit    int
}
