package view

import (
	"github.com/carson-networks/ledger-server/internal/service"
)

// Row is one rendered ledger line. Amount and Balance are already formatted.
type Row struct {
	Index       int
	ID          int64
	Date        string
	Type        string
	Description string
	Amount      string
	Balance     string
}

func Rows(entries []service.Entry, f *Formatter) []Row {
	rows := make([]Row, len(entries))
	for i, entry := range entries {
		tx := entry.Transaction
		rows[i] = Row{
			Index:       entry.Index,
			ID:          tx.ID,
			Date:        tx.Date,
			Type:        tx.Type.Label(),
			Description: tx.Description,
			Amount:      f.Format(tx.Amount),
			Balance:     f.Format(entry.RunningBalance),
		}
	}
	return rows
}
