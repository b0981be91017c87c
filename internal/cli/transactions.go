package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const dateLayout = "02-01-2006"

const serverWarning = `
  Do not run while ledger-server uses the same storage: the server overwrites
  the stored ledger with its in-memory copy on its next change.
`

type addCmd struct {
	date        string
	txType      string
	description string
	amount      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a transaction to the ledger" }
func (*addCmd) Usage() string {
	return `ledgerctl add -type credit|debit -desc <description> -amount <amount> [-date DD-MM-YYYY]

  Appends a transaction. The date defaults to today.
` + serverWarning
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", time.Now().Format(dateLayout), "transaction date as DD-MM-YYYY")
	f.StringVar(&c.txType, "type", "", "credit or debit")
	f.StringVar(&c.description, "desc", "", "description")
	f.StringVar(&c.amount, "amount", "", "non-negative amount")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, err := parseInput(c.date, c.txType, c.description, c.amount)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withApp(ctx, func(a *app) error {
		tx, err := a.ledger.Add(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Added transaction %d\n", tx.ID)
		return nil
	})
}

// editCmd replaces the fields given on the command line and keeps the others.
type editCmd struct {
	id          int64
	date        string
	txType      string
	description string
	amount      string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change a transaction in place" }
func (*editCmd) Usage() string {
	return `ledgerctl edit -id <id> [-date DD-MM-YYYY] [-type credit|debit] [-desc <description>] [-amount <amount>]

  Edits a transaction. Omitted fields keep their current value.
` + serverWarning
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "transaction id")
	f.StringVar(&c.date, "date", "", "new date as DD-MM-YYYY")
	f.StringVar(&c.txType, "type", "", "new type")
	f.StringVar(&c.description, "desc", "", "new description")
	f.StringVar(&c.amount, "amount", "", "new amount")
}

func (c *editCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		current, ok := a.ledger.Find(c.id)
		if !ok {
			return &ledger.NotFoundError{ID: c.id}
		}

		input, err := parseInput(
			orDefault(c.date, current.Date),
			orDefault(c.txType, string(current.Type)),
			orDefault(c.description, current.Description),
			orDefault(c.amount, current.Amount.String()),
		)
		if err != nil {
			return err
		}

		tx, err := a.ledger.Edit(ctx, ledger.EditRequest{ID: c.id, TransactionInput: input})
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Updated transaction %d\n", tx.ID)
		return nil
	})
}

type deleteCmd struct {
	id int64
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a transaction" }
func (*deleteCmd) Usage() string {
	return `ledgerctl delete -id <id>
` + serverWarning
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "transaction id")
}

func (c *deleteCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		if err := a.ledger.Delete(ctx, c.id); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Deleted transaction %d\n", c.id)
		return nil
	})
}

func parseInput(date, txType, description, amount string) (ledger.TransactionInput, error) {
	t, err := ledger.ParseTransactionType(txType)
	if err != nil {
		return ledger.TransactionInput{}, err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return ledger.TransactionInput{}, &ledger.ValidationError{Field: "amount", Reason: "must be a number"}
	}
	return ledger.TransactionInput{
		Date:        date,
		Type:        t,
		Description: description,
		Amount:      value,
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
