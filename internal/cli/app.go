// Package cli implements ledgerctl, a command line client working directly on
// the configured ledger storage.
//
// ledgerctl does not coordinate with a running ledger-server. The server keeps
// the ledger in memory and rewrites the whole key on every change, so edits
// made with ledgerctl while the server is up are lost on its next write.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/view"
)

// as a short lived CLI, output streams are package variables so tests can capture them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&listCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&printCmd{}, "reports")
	c.Register(&dumpCmd{}, "reports")
}

// app is everything a command needs, opened from the environment configuration.
type app struct {
	storage   *storage.Storage
	ledger    *ledger.Store
	service   *service.LedgerService
	formatter *view.Formatter
}

func openApp(ctx context.Context) (*app, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	logger := logging.SetupLogging()
	logger.SetOutput(stderr)
	logger.SetLevel(env.LogLevel)

	formatter, err := view.NewFormatter(env.Currency)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return nil, err
	}

	l := ledger.Open(ctx, store.KeyValues, logger, env.StorageKey)
	return &app{
		storage:   store,
		ledger:    l,
		service:   service.NewLedgerService(l),
		formatter: formatter,
	}, nil
}

func (a *app) Close() {
	if err := a.storage.Close(); err != nil {
		fmt.Fprintf(stderr, "Error closing storage: %v\n", err)
	}
}

// withApp opens the app, runs fn and reports its error.
func withApp(ctx context.Context, fn func(a *app) error) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := fn(a); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, ledger.ErrValidation) || errors.Is(err, ledger.ErrNotFound) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
