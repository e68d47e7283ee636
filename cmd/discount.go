package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

type discountCmd struct {
	original float64
	percent  float64
	amount   float64
}

func (*discountCmd) Name() string     { return "discount" }
func (*discountCmd) Synopsis() string { return "compute a discount from a percentage or an amount" }
func (*discountCmd) Usage() string {
	return `fm discount -original <price> [-percent <p> | -amount <a>]

  Completes a discount quote from whichever input is given: with a percent
  the amount is derived, with an amount the percent is derived.
`
}

func (c *discountCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.original, "original", 0, "Original price")
	f.Float64Var(&c.percent, "percent", 0, "Discount percentage (25 is 25%)")
	f.Float64Var(&c.amount, "amount", 0, "Discount amount")
}

func (c *discountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q := finance.Discount(c.original, c.percent, c.amount)

	var b strings.Builder
	b.WriteString("# Discount\n\n")
	fmt.Fprintf(&b, "| | |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Original price | %.2f |\n", q.Original)
	fmt.Fprintf(&b, "| Discount | %.2f (%.1f%%) |\n", q.Amount, q.Percent)
	fmt.Fprintf(&b, "| Final price | %.2f |\n", q.Final)
	fmt.Fprintf(&b, "| You save | %.2f |\n", q.Savings)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
