package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// storedTransaction is the persisted shape. Amounts are JSON numbers.
type storedTransaction struct {
	ID          int64       `json:"id"`
	Date        string      `json:"date"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
}

func encodeTransactions(txs []Transaction) ([]byte, error) {
	stored := make([]storedTransaction, len(txs))
	for i, tx := range txs {
		stored[i] = storedTransaction{
			ID:          tx.ID,
			Date:        tx.Date,
			Type:        string(tx.Type),
			Description: tx.Description,
			Amount:      json.Number(tx.Amount.String()),
		}
	}
	return json.Marshal(stored)
}

// decodeTransactions rejects anything that is not an array of well typed records
// or that holds an amount outside the accepted range. Other field contents are
// not re-validated so older data with loose values still loads.
func decodeTransactions(data []byte) ([]Transaction, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var stored []storedTransaction
	if err := decoder.Decode(&stored); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, fmt.Errorf("unexpected data after ledger array")
	}

	txs := make([]Transaction, len(stored))
	for i, s := range stored {
		txType := TransactionType(s.Type)
		if !txType.Valid() {
			return nil, fmt.Errorf("record %d: unknown type %q", i, s.Type)
		}
		amount, err := decimal.NewFromString(s.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("record %d: amount: %w", i, err)
		}
		if err := ValidateAmountRange(amount); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txs[i] = Transaction{
			ID:          s.ID,
			Date:        s.Date,
			Type:        txType,
			Description: s.Description,
			Amount:      amount,
		}
	}
	return txs, nil
}
