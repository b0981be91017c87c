package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	valid := []string{"01-01-2024", "1-1-2024", "31-12-1999", "31-02-2024", "99-99-9999"}
	for _, date := range valid {
		assert.NoError(t, ValidateDate(date), date)
	}

	invalid := []string{"", "01-01", "01-01-2024-01", "00-01-2024", "01-00-2024", "01-01-0", "aa-01-2024", "-1-01-2024", "01--2024", "01/01/2024", " 01-01-2024"}
	for _, date := range invalid {
		err := ValidateDate(date)
		assert.ErrorIs(t, err, ErrValidation, date)
	}
}

func TestNormalize_TrimsFields(t *testing.T) {
	out, err := TransactionInput{
		Date:        " 02-01-2024 ",
		Type:        TransactionTypeDebit,
		Description: "\tRent\n",
		Amount:      decimal.RequireFromString("400"),
	}.Normalize()

	require.NoError(t, err)
	assert.Equal(t, "02-01-2024", out.Date)
	assert.Equal(t, "Rent", out.Description)
}

func TestNormalize_ZeroAmountAllowed(t *testing.T) {
	_, err := TransactionInput{
		Date:        "02-01-2024",
		Type:        TransactionTypeCredit,
		Description: "Nothing",
		Amount:      decimal.Zero,
	}.Normalize()

	assert.NoError(t, err)
}

func TestNormalize_ReportsField(t *testing.T) {
	_, err := TransactionInput{
		Date:        "02-01-2024",
		Type:        TransactionTypeCredit,
		Description: "Refund",
		Amount:      decimal.RequireFromString("-0.01"),
	}.Normalize()

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}

func TestNormalize_AmountBounds(t *testing.T) {
	input := func(amount string) TransactionInput {
		return TransactionInput{
			Date:        "02-01-2024",
			Type:        TransactionTypeCredit,
			Description: "Bonus",
			Amount:      decimal.RequireFromString(amount),
		}
	}

	for _, amount := range []string{"999999999999.9999", "0.0001", "12.50000000"} {
		_, err := input(amount).Normalize()
		assert.NoError(t, err, amount)
	}

	for _, amount := range []string{"1000000000000", "100000000000000000", "1e400", "0.00001", "1e-400"} {
		_, err := input(amount).Normalize()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, amount)
		assert.Equal(t, "amount", validationErr.Field, amount)
	}
}

func TestValidateAmountRange_AllowsNegative(t *testing.T) {
	assert.NoError(t, ValidateAmountRange(decimal.RequireFromString("-250.75")))
	assert.ErrorIs(t, ValidateAmountRange(decimal.RequireFromString("-1e13")), ErrValidation)
}

func TestParseTransactionType(t *testing.T) {
	credit, err := ParseTransactionType(" Credit ")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeCredit, credit)
	assert.Equal(t, "Credit", credit.Label())

	debit, err := ParseTransactionType("DEBIT")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeDebit, debit)
	assert.Equal(t, "Debit", debit.Label())

	_, err = ParseTransactionType("transfer")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("12.50")

	credit := Transaction{Type: TransactionTypeCredit, Amount: amount}
	debit := Transaction{Type: TransactionTypeDebit, Amount: amount}

	assert.True(t, credit.SignedAmount().Equal(amount))
	assert.True(t, debit.SignedAmount().Equal(amount.Neg()))
}
