package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/subcommands"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/view"
)

type listCmd struct {
	txType string
	query  string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions with running balances" }
func (*listCmd) Usage() string {
	return `ledgerctl list [-type credit|debit] [-q <text>]
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "", "only list credit or debit transactions")
	f.StringVar(&c.query, "q", "", "only list descriptions containing this text")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := ledger.TransactionFilter{Query: c.query}
	if c.txType != "" {
		t, err := ledger.ParseTransactionType(c.txType)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.Type = t
	}

	return withApp(ctx, func(a *app) error {
		entries, err := a.service.Entries(ctx, filter)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tID\tDATE\tTYPE\tDESCRIPTION\tAMOUNT\tBALANCE")
		for _, row := range view.Rows(entries, a.formatter) {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
				row.Index, row.ID, row.Date, row.Type, row.Description, row.Amount, row.Balance)
		}
		return w.Flush()
	})
}

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the current balance" }
func (*balanceCmd) Usage() string {
	return `ledgerctl balance
`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (*balanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		summary, err := a.service.Summary(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Balance: %s\n", a.formatter.Format(summary.Balance))
		fmt.Fprintf(stdout, "Credits: %s\n", a.formatter.Format(summary.Credits))
		fmt.Fprintf(stdout, "Debits:  %s\n", a.formatter.Format(summary.Debits))
		fmt.Fprintf(stdout, "Count:   %d\n", summary.Count)
		return nil
	})
}

type printCmd struct {
	title string
	html  string
	width int
	plain bool
}

func (*printCmd) Name() string     { return "print" }
func (*printCmd) Synopsis() string { return "render the ledger for printing" }
func (*printCmd) Usage() string {
	return `ledgerctl print [-title <title>] [-html <file>] [-width <cols>] [-markdown]

  Renders the whole ledger in the terminal, or writes a print-ready HTML page.
`
}

func (c *printCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "document title")
	f.StringVar(&c.html, "html", "", "write an HTML page to this file instead of the terminal")
	f.IntVar(&c.width, "width", 100, "terminal width")
	f.BoolVar(&c.plain, "markdown", false, "print raw markdown")
}

func (c *printCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		entries, err := a.service.Entries(ctx, ledger.TransactionFilter{})
		if err != nil {
			return err
		}
		summary, err := a.service.Summary(ctx)
		if err != nil {
			return err
		}
		printable := view.NewPrintable(c.title, summary.Balance, view.Rows(entries, a.formatter), a.formatter)

		switch {
		case c.html != "":
			page, err := printable.HTML()
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.html, page, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s\n", c.html)
		case c.plain:
			fmt.Fprint(stdout, printable.Markdown())
		default:
			out, err := printable.Terminal(c.width)
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, out)
		}
		return nil
	})
}

type dumpCmd struct{}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "dump the loaded transactions for debugging" }
func (*dumpCmd) Usage() string {
	return `ledgerctl dump
`
}

func (*dumpCmd) SetFlags(*flag.FlagSet) {}

func (*dumpCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		config := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		config.Fdump(stdout, a.ledger.Transactions())
		return nil
	})
}
