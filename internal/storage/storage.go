package storage

import (
	"database/sql"
	"fmt"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/file"
	"github.com/carson-networks/ledger-server/internal/storage/kv"
	"github.com/carson-networks/ledger-server/internal/storage/memory"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type Storage struct {
	// DB is only set for the sqlite backend.
	DB        *sql.DB
	KeyValues kv.IKeyValueStore
}

func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StorageBackend {
	case config.BackendMemory:
		return &Storage{KeyValues: memory.NewStore()}, nil

	case config.BackendFile:
		return &Storage{KeyValues: file.NewStore(env.DataDir)}, nil

	case config.BackendSQLite:
		db, err := sqlconfig.Open(env.SQLitePath())
		if err != nil {
			return nil, err
		}
		if _, err := sqlconfig.Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("storage: migrate: %w", err)
		}
		return &Storage{
			DB:        db,
			KeyValues: sqlconfig.NewKeyValueTable(db),
		}, nil
	}

	return nil, fmt.Errorf("storage: unknown backend %q", env.StorageBackend)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
