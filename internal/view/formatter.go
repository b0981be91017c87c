package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = money.INR

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// Formatter renders decimal amounts in one currency.
type Formatter struct {
	currency *money.Currency
}

func NewFormatter(code string) (*Formatter, error) {
	cur := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if cur == nil {
		return nil, fmt.Errorf("view: unknown currency %q", code)
	}
	return &Formatter{currency: cur}, nil
}

func (f *Formatter) Currency() string {
	return f.currency.Code
}

// Format rounds amount to the currency's minor unit, e.g. ₹1,000.00.
// Amounts beyond the int64 minor-unit range are written without grouping.
func (f *Formatter) Format(amount decimal.Decimal) string {
	minor := amount.Shift(int32(f.currency.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		sign := ""
		if amount.IsNegative() {
			sign = "-"
		}
		return sign + f.currency.Grapheme + amount.Abs().StringFixed(int32(f.currency.Fraction))
	}
	return f.currency.Formatter().Format(minor.IntPart())
}
