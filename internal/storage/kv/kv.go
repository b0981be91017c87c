package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value is stored under the key.
var ErrKeyNotFound = errors.New("kv: key not found")

// IKeyValueStore is a byte oriented key-value store. Values are replaced
// wholesale by Put.
// This abstraction allows swapping the backend (memory, file, SQLite) without changing callers.
//
//go:generate mockery --name IKeyValueStore --inpackage --with-expecter --filename mock_IKeyValueStore.go
type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
