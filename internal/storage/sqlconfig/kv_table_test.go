package sqlconfig

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/storage/kv"
)

func newTestTable(t *testing.T) *KeyValueTable {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = Migrate(db)
	require.NoError(t, err)

	return NewKeyValueTable(db)
}

// -- Migrate tests --

func TestMigrate_FreshAndRepeated(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	status, err := Migrate(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), status.PreMigrationVersion)
	assert.Equal(t, uint(1), status.PostMigrationVersion)

	status, err = Migrate(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), status.PreMigrationVersion)
	assert.Equal(t, uint(1), status.PostMigrationVersion)
}

// -- KeyValueTable tests --

func TestGet_Missing(t *testing.T) {
	table := newTestTable(t)

	value, err := table.Get(context.Background(), "transactions")

	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	assert.Nil(t, value)
}

func TestPut_InsertThenUpsert(t *testing.T) {
	table := newTestTable(t)
	ctx := context.Background()

	require.NoError(t, table.Put(ctx, "transactions", []byte(`[]`)))
	value, err := table.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))

	require.NoError(t, table.Put(ctx, "transactions", []byte(`[{"id":1}]`)))
	value, err = table.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(value))
}

func TestPut_KeysAreIndependent(t *testing.T) {
	table := newTestTable(t)
	ctx := context.Background()

	require.NoError(t, table.Put(ctx, "a", []byte("1")))
	require.NoError(t, table.Put(ctx, "b", []byte("2")))

	a, err := table.Get(ctx, "a")
	require.NoError(t, err)
	b, err := table.Get(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, "1", string(a))
	assert.Equal(t, "2", string(b))
}
