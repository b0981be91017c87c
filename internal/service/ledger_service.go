package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const defaultLimit = 20

// LedgerService builds the read models shown to users.
type LedgerService struct {
	store *ledger.Store
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *ledger.Store) *LedgerService {
	return &LedgerService{store: store}
}

// ListEntries returns a page of the rows matching filter using cursor-based pagination.
// Running balances are computed over the whole ledger before filtering.
func (s *LedgerService) ListEntries(ctx context.Context, filter ledger.TransactionFilter, cursor *EntryCursor) ([]Entry, *EntryCursor, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	limit := defaultLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		if cursor.Position > 0 {
			offset = cursor.Position
		}
	}

	matched := s.entries(filter)
	if offset >= len(matched) {
		return nil, nil, nil
	}

	page := matched[offset:]
	var nextCursor *EntryCursor
	if len(page) > limit {
		page = page[:limit]
		nextCursor = &EntryCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	return page, nextCursor, nil
}

// Entries returns every row matching filter.
func (s *LedgerService) Entries(ctx context.Context, filter ledger.TransactionFilter) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.entries(filter), nil
}

func (s *LedgerService) entries(filter ledger.TransactionFilter) []Entry {
	txs := s.store.Transactions()
	balances := ledger.RunningBalances(txs)

	matched := []Entry{}
	for i, tx := range txs {
		if !filter.Matches(tx) {
			continue
		}
		matched = append(matched, Entry{
			Index:          i + 1,
			Transaction:    tx,
			RunningBalance: balances[i],
		})
	}
	return matched
}

// Summary returns the totals of the whole ledger.
func (s *LedgerService) Summary(ctx context.Context) (ledger.Summary, error) {
	if err := ctx.Err(); err != nil {
		return ledger.Summary{}, err
	}
	return s.store.Summary(), nil
}
