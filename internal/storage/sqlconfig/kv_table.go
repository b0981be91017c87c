package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/storage/kv"
)

const kvTableName = "kv_entries"

var _ kv.IKeyValueStore = (*KeyValueTable)(nil)

// KeyValueTable stores values in the kv_entries table, one row per key.
type KeyValueTable struct {
	exec bob.Executor
	now  func() time.Time
}

func NewKeyValueTable(db *sql.DB) *KeyValueTable {
	return &KeyValueTable{exec: bob.NewDB(db), now: time.Now}
}

// Get returns the value stored under key.
func (t *KeyValueTable) Get(ctx context.Context, key string) ([]byte, error) {
	query := sqlite.Select(
		sm.Columns("value"),
		sm.From(kvTableName),
		sm.Where(sqlite.Quote("key").EQ(sqlite.Arg(key))),
	)

	value, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[[]byte])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put inserts or replaces the value stored under key.
func (t *KeyValueTable) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	query := sqlite.Insert(
		im.Into(kvTableName, "key", "value", "updated_at"),
		im.Values(sqlite.Arg(key, value, t.now().UTC().Format(time.RFC3339Nano))),
		im.OnConflict("key").DoUpdate(im.SetExcluded("value", "updated_at")),
	)

	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
