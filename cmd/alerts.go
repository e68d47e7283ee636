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

type alertsCmd struct{}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "display the active budget and goal alerts" }
func (*alertsCmd) Usage() string {
	return `fm alerts

  Evaluates the budgets of the current month and every goal, and lists the
  active warnings. The budget and goal alert toggles in the settings are
  honored.
`
}

func (*alertsCmd) SetFlags(f *flag.FlagSet) {}

func (c *alertsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, settings, err := openWithSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var rows []renderer.AlertRow
	if settings.BudgetAlerts {
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
		for _, a := range finance.BudgetAlerts(budgets, txs, finance.ThisMonth()) {
			rows = append(rows, renderer.AlertRow{Level: string(a.Level), Title: a.Title, Message: a.Message})
		}
	}
	if settings.GoalAlerts {
		goals, err := finance.All[finance.Goal](ctx, s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, a := range finance.GoalAlerts(goals, finance.Today()) {
			rows = append(rows, renderer.AlertRow{Level: string(a.Level), Title: a.Title, Message: a.Message})
		}
	}

	printMarkdown(renderer.RenderAlerts(rows))
	return subcommands.ExitSuccess
}
