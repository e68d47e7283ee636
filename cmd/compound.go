package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

type compoundCmd struct {
	initial float64
	monthly float64
	rate    float64
	years   int
}

func (*compoundCmd) Name() string     { return "compound" }
func (*compoundCmd) Synopsis() string { return "project compound interest with monthly contributions" }
func (*compoundCmd) Usage() string {
	return `fm compound -initial <amount> [-monthly <amount>] -rate <annual rate> -years <n>

  Projects an initial capital plus a fixed monthly contribution at an annual
  rate compounded monthly.
`
}

func (c *compoundCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "initial", 0, "Initial capital")
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly contribution")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate (0.12 is 12%)")
	f.IntVar(&c.years, "years", 0, "Number of years")
}

func (c *compoundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan := finance.Compound(c.initial, c.monthly, c.rate, c.years)

	var b strings.Builder
	b.WriteString("# Compound Interest\n\n")
	fmt.Fprintf(&b, "| | Amount |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Future value | %.2f |\n", plan.FutureValue)
	fmt.Fprintf(&b, "| Total invested | %.2f |\n", plan.TotalInvested)
	fmt.Fprintf(&b, "| Interest earned | %.2f |\n", plan.Interest)
	fmt.Fprintf(&b, "| Return | %.2f%% |\n", plan.ReturnPercentage)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
