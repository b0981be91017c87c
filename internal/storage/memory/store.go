package memory

import (
	"context"
	"sync"

	"github.com/carson-networks/ledger-server/internal/storage/kv"
)

var _ kv.IKeyValueStore = (*Store)(nil)

// Store is a map backed key-value store. Contents are lost when the process exits.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewStore() *Store {
	return &Store{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the value so callers can't modify the stored bytes.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	copied := make([]byte, len(value))
	copy(copied, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = copied
	return nil
}
