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

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	month string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the finance overview for a month" }
func (*dashboardCmd) Usage() string {
	return `fm dashboard [-m <month>]

  Displays the month totals, budget utilization, active alerts, the most
  recent transactions and the investment summary. The month defaults to the
  current one.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to display (2006-01, defaults to the current month)")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := finance.ThisMonth()
	if c.month != "" {
		var err error
		if month, err = finance.ParseMonth(c.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, settings, err := openWithSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	txs, err := finance.All[finance.Transaction](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	budgets, err := finance.All[finance.Budget](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	goals, err := finance.All[finance.Goal](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	investments, err := finance.All[finance.Investment](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	d := renderer.NewDashboard(txs, budgets, goals, investments, settings, month, finance.Today())
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
