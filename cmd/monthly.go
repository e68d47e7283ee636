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

type monthlyCmd struct {
	month string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly report" }
func (*monthlyCmd) Usage() string {
	return `fm monthly [-m <month>]

  Displays the totals, the expense breakdown by category and the tag
  analysis for one month. The month defaults to the current one.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to report on (2006-01, defaults to the current month)")
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := finance.NewMonthlyReport(txs, month)
	printMarkdown(renderer.RenderMonthly(renderer.NewMonthlyView(report, settings.Currency)))
	return subcommands.ExitSuccess
}
