package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/AndreKlarosk/finance"
	"github.com/AndreKlarosk/finance/renderer"
)

type budgetCmd struct {
	category string
	amount   string
	month    string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set and review monthly category budgets" }
func (*budgetCmd) Usage() string {
	return `fm budget [-category <name> -amount <amount>] [-m <month>]

  Without -category, lists the budgets of the month with their utilization.
  With -category and -amount, creates a budget for that month. The month
  defaults to the current one.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category to budget")
	f.StringVar(&c.amount, "amount", "", "Budget amount")
	f.StringVar(&c.month, "m", "", "Month of the budget (2006-01, defaults to the current month)")
}

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.category != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil || amount.IsNegative() {
			fmt.Fprintf(os.Stderr, "Error: -amount must be a non-negative number, got %q\n", c.amount)
			return subcommands.ExitUsageError
		}
		b := finance.Budget{Category: c.category, Amount: amount, Month: month}
		id, err := finance.Create(ctx, s, &b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created budget %d: %s for %s in %s\n", id, b.Amount, b.Category, b.Month)
		return subcommands.ExitSuccess
	}

	budgets, err := finance.ByField[finance.Budget](ctx, s, "month", month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	txs, err := finance.All[finance.Transaction](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Budgets for %s\n", month)
	if len(budgets) == 0 {
		b.WriteString("\nNo budgets for this month.\n")
	} else {
		b.WriteString("\n| ID | Category | Spent | Budget | Used |\n|---:|:---|---:|---:|---:|\n")
		for _, budget := range budgets {
			u := finance.BudgetUtilization(budget, txs)
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %.0f%% |\n",
				budget.ID, budget.Category,
				renderer.M(u.Spent, settings.Currency),
				renderer.M(budget.Amount, settings.Currency),
				u.Percentage)
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
