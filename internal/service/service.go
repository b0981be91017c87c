package service

import (
	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Service holds all business logic services.
type Service struct {
	Ledger *LedgerService
}

// NewService creates a new Service reading from the given ledger.
func NewService(store *ledger.Store) *Service {
	return &Service{
		Ledger: NewLedgerService(store),
	}
}
