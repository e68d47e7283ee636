package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
	"github.com/AndreKlarosk/finance/renderer"
)

type txCmd struct {
	month    string
	category string
	tag      string
	head     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded transactions" }
func (*txCmd) Usage() string {
	return `fm tx [-m <month>] [-category <name>] [-tag <tag>] [-head <n>]

  Lists transactions, newest first, with options for filtering and limiting
  the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Only transactions of this month (2006-01)")
	f.StringVar(&c.category, "category", "", "Only transactions of this category")
	f.StringVar(&c.tag, "tag", "", "Only transactions carrying this tag")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, settings, err := openWithSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var txs []finance.Transaction
	switch {
	case c.tag != "":
		txs, err = finance.ByTag(ctx, s, c.tag)
	case c.category != "":
		txs, err = finance.ByField[finance.Transaction](ctx, s, "category", c.category)
	default:
		txs, err = finance.All[finance.Transaction](ctx, s)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.month != "" {
		month, err := finance.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		txs = finance.FilterMonth(txs, month)
	}
	if c.head > 0 {
		txs = finance.RecentTransactions(txs, c.head)
	}

	printMarkdown(renderer.TransactionsMarkdown(txs, settings.Currency))
	return subcommands.ExitSuccess
}
