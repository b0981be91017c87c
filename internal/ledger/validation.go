package ledger

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmountScale is the largest number of decimal places an amount may carry.
const MaxAmountScale = 4

// MaxAmount is the exclusive upper bound on the magnitude of one amount.
var MaxAmount = decimal.New(1, 12)

// ValidateDate checks that date is three dash separated positive numbers.
// Calendar validity is not checked, "31-02-2024" is accepted.
func ValidateDate(date string) error {
	if date == "" {
		return &ValidationError{Field: "date", Reason: "is required"}
	}

	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return &ValidationError{Field: "date", Reason: "must use the DD-MM-YYYY format"}
	}

	for _, part := range parts {
		if !isDigits(part) {
			return &ValidationError{Field: "date", Reason: "must use the DD-MM-YYYY format"}
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return &ValidationError{Field: "date", Reason: "day, month and year must be positive"}
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Normalize trims the text fields and validates the result.
func (in TransactionInput) Normalize() (TransactionInput, error) {
	out := TransactionInput{
		Date:        strings.TrimSpace(in.Date),
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
	}

	if err := ValidateDate(out.Date); err != nil {
		return TransactionInput{}, err
	}
	if !out.Type.Valid() {
		return TransactionInput{}, &ValidationError{Field: "type", Reason: "must be credit or debit"}
	}
	if out.Description == "" {
		return TransactionInput{}, &ValidationError{Field: "description", Reason: "is required"}
	}
	if out.Amount.IsNegative() {
		return TransactionInput{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if err := ValidateAmountRange(out.Amount); err != nil {
		return TransactionInput{}, err
	}

	return out, nil
}

// ValidateAmountRange checks magnitude and precision only, so it also applies
// to the signed amounts of older stored data.
func ValidateAmountRange(amount decimal.Decimal) error {
	if amount.Abs().GreaterThanOrEqual(MaxAmount) {
		return &ValidationError{Field: "amount", Reason: "must be less than " + MaxAmount.String()}
	}
	if !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return &ValidationError{Field: "amount", Reason: "must have at most " + strconv.Itoa(MaxAmountScale) + " decimal places"}
	}
	return nil
}
