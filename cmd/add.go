package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/AndreKlarosk/finance"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	typ      string
	amount   string
	desc     string
	category string
	date     string
	tags     string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `fm add -type <income|expense> -amount <amount> -category <name> [-desc <text>] [-d <date>] [-tags <a,b>] [-notes <text>]

  Records a transaction. The date defaults to today; tags are a
  comma-separated list.

Usage Examples:
# Record a tagged expense.
$ fm add -type expense -amount 80 -category Alimentação -desc "groceries" -tags food,weekly

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "expense", "Transaction type (income or expense)")
	f.StringVar(&c.amount, "amount", "", "Amount of the transaction")
	f.StringVar(&c.desc, "desc", "", "Description")
	f.StringVar(&c.category, "category", "", "Category name")
	f.StringVar(&c.date, "d", "", "Date of the transaction (defaults to today)")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finance.ParseTransactionType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil || !amount.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -amount must be a positive number, got %q\n", c.amount)
		return subcommands.ExitUsageError
	}
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category is required")
		return subcommands.ExitUsageError
	}
	date := finance.Today()
	if c.date != "" {
		if date, err = finance.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tx := finance.Transaction{
		Type:        typ,
		Amount:      amount,
		Description: c.desc,
		Category:    c.category,
		Date:        date,
		Tags:        finance.ParseTags(c.tags),
		Notes:       c.notes,
	}
	id, err := finance.Create(ctx, s, &tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded transaction %d: %s %s in %s on %s\n", id, tx.Type, tx.Amount, tx.Category, tx.Date)
	return subcommands.ExitSuccess
}
