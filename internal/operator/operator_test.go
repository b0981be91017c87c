package operator

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/memory"
)

func newTestDelegator(t *testing.T) (*OperatorDelegator, *ledger.Store) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	store := ledger.Open(context.Background(), memory.NewStore(), logger, ledger.DefaultStorageKey)
	d := NewOperatorDelegator(store, 16)
	d.Start()
	t.Cleanup(d.Stop)
	return d, store
}

func credit(amount string) ledger.TransactionInput {
	return ledger.TransactionInput{
		Date:        "01-01-2024",
		Type:        ledger.TransactionTypeCredit,
		Description: "Deposit",
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestProcess_AddEditDelete(t *testing.T) {
	d, store := newTestDelegator(t)
	ctx := context.Background()

	add := &actions.AddTransaction{Input: credit("10")}
	require.NoError(t, d.Process(ctx, add))
	assert.NotZero(t, add.Result.ID)

	edit := &actions.EditTransaction{Request: ledger.EditRequest{ID: add.Result.ID, TransactionInput: credit("25")}}
	require.NoError(t, d.Process(ctx, edit))
	assert.True(t, edit.Result.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "25.00", store.CurrentBalance().StringFixed(2))

	require.NoError(t, d.Process(ctx, &actions.DeleteTransaction{ID: add.Result.ID}))
	assert.Equal(t, 0, store.Len())
}

func TestProcess_PropagatesActionErrors(t *testing.T) {
	d, _ := newTestDelegator(t)

	err := d.Process(context.Background(), &actions.DeleteTransaction{ID: 99})

	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestProcess_ConcurrentCallersAreSerialized(t *testing.T) {
	d, store := newTestDelegator(t)
	ctx := context.Background()

	const callers = 50
	var wg sync.WaitGroup
	ids := make(chan int64, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			add := &actions.AddTransaction{Input: credit("1")}
			if assert.NoError(t, d.Process(ctx, add)) {
				ids <- add.Result.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, callers)
	assert.Equal(t, callers, store.Len())
	assert.Equal(t, "50.00", store.CurrentBalance().StringFixed(2))
}

func TestProcess_CanceledContext(t *testing.T) {
	d, store := newTestDelegator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.AddTransaction{Input: credit("1")})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Len())
}

func TestProcess_AfterStop(t *testing.T) {
	d, _ := newTestDelegator(t)
	d.Stop()

	err := d.Process(context.Background(), &actions.AddTransaction{Input: credit("1")})

	assert.ErrorIs(t, err, ErrStopped)
}
