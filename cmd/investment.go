package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/AndreKlarosk/finance"
	"github.com/AndreKlarosk/finance/renderer"
)

type investmentCmd struct {
	name   string
	typ    string
	amount string
	value  string
	date   string
	id     uint
}

func (*investmentCmd) Name() string     { return "investment" }
func (*investmentCmd) Synopsis() string { return "track investment positions" }
func (*investmentCmd) Usage() string {
	return `fm investment [-name <name> -type <type> -amount <amount> [-value <amount>] [-d <date>]] [-id <id> -value <amount>]

  Without flags, lists the positions and the portfolio summary. -name
  creates a position; -id with -value updates the current value of an
  existing one. Types: stocks, funds, crypto, bonds, savings, other.
`
}

func (c *investmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Create a position with this name")
	f.StringVar(&c.typ, "type", "other", "Type of the new position")
	f.StringVar(&c.amount, "amount", "", "Invested amount of the new position")
	f.StringVar(&c.value, "value", "", "Current value (defaults to the invested amount)")
	f.StringVar(&c.date, "d", "", "Date of the investment (defaults to today)")
	f.UintVar(&c.id, "id", 0, "Position to update the current value of")
}

func (c *investmentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, settings, err := openWithSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		typ, err := finance.ParseInvestmentType(c.typ)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		amount, err := decimal.NewFromString(c.amount)
		if err != nil || !amount.IsPositive() {
			fmt.Fprintf(os.Stderr, "Error: -amount must be a positive number, got %q\n", c.amount)
			return subcommands.ExitUsageError
		}
		value := amount
		if c.value != "" {
			if value, err = decimal.NewFromString(c.value); err != nil {
				fmt.Fprintf(os.Stderr, "Error: -value must be a number, got %q\n", c.value)
				return subcommands.ExitUsageError
			}
		}
		date := finance.Today()
		if c.date != "" {
			if date, err = finance.ParseDate(c.date); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		inv := finance.Investment{Name: c.name, Type: typ, Amount: amount, CurrentValue: value, Date: date}
		id, err := finance.Create(ctx, s, &inv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created investment %d: %s (%s)\n", id, inv.Name, inv.Type)
		return subcommands.ExitSuccess
	}

	if c.id != 0 {
		if c.value == "" {
			fmt.Fprintln(os.Stderr, "Error: -value is required with -id")
			return subcommands.ExitUsageError
		}
		value, err := decimal.NewFromString(c.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -value must be a number, got %q\n", c.value)
			return subcommands.ExitUsageError
		}
		inv, err := finance.Get[finance.Investment](ctx, s, c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		inv.CurrentValue = value
		if err := finance.Replace(ctx, s, inv); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Updated investment %d, return is now %s\n", inv.ID, inv.Return())
		return subcommands.ExitSuccess
	}

	investments, err := finance.All[finance.Investment](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InvestmentsMarkdown(investments, settings.Currency))
	return subcommands.ExitSuccess
}
