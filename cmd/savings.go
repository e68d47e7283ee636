package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

type savingsCmd struct {
	amount float64
	rate   float64
	period int
}

func (*savingsCmd) Name() string     { return "savings" }
func (*savingsCmd) Synopsis() string { return "project the future value of periodic deposits" }
func (*savingsCmd) Usage() string {
	return `fm savings -amount <deposit> -rate <per-period rate> -period <n>

  Future value of depositing the amount every period, each deposit
  compounding at the given rate until the end.

Usage Examples:
# 100 a month for two years at 0.5% monthly.
$ fm savings -amount 100 -rate 0.005 -period 24

`
}

func (c *savingsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Deposit per period")
	f.Float64Var(&c.rate, "rate", 0, "Interest rate per period (0.005 is 0.5%)")
	f.IntVar(&c.period, "period", 0, "Number of periods")
}

func (c *savingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan := finance.Savings(c.amount, c.rate, c.period)

	var b strings.Builder
	b.WriteString("# Savings Projection\n\n")
	fmt.Fprintf(&b, "| | Amount |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Future value | %.2f |\n", plan.FutureValue)
	fmt.Fprintf(&b, "| Total invested | %.2f |\n", plan.TotalInvested)
	fmt.Fprintf(&b, "| Interest earned | %.2f |\n", plan.Interest)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
