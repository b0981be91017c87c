package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType is either a credit (increases the balance) or a debit (decreases it).
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// Label is the display name used by views.
func (t TransactionType) Label() string {
	if t == TransactionTypeCredit {
		return "Credit"
	}
	return "Debit"
}

// ParseTransactionType accepts "credit" or "debit" in any letter case.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Reason: "must be credit or debit"}
	}
	return t, nil
}

// Transaction is a single ledger row.
type Transaction struct {
	ID          int64
	Date        string // DD-MM-YYYY
	Type        TransactionType
	Description string
	Amount      decimal.Decimal
}

// SignedAmount is +Amount for credits and -Amount for everything else.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeCredit {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionInput holds the user editable fields of a transaction.
type TransactionInput struct {
	Date        string
	Type        TransactionType
	Description string
	Amount      decimal.Decimal
}

// EditRequest replaces every editable field of the transaction with ID.
type EditRequest struct {
	ID int64
	TransactionInput
}

// TransactionFilter selects transactions for listing. Zero values match everything.
type TransactionFilter struct {
	Type  TransactionType
	Query string // case-insensitive substring of the description
}

func (f TransactionFilter) Matches(tx Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.Query)) {
		return false
	}
	return true
}

// Summary aggregates the whole ledger.
type Summary struct {
	Count   int
	Credits decimal.Decimal
	Debits  decimal.Decimal
	Balance decimal.Decimal
}
