package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

type inflationCmd struct {
	value  float64
	rate   float64
	period int
}

func (*inflationCmd) Name() string     { return "inflation" }
func (*inflationCmd) Synopsis() string { return "project the erosion of purchasing power" }
func (*inflationCmd) Usage() string {
	return `fm inflation -value <amount> -rate <per-period rate> -period <n>

  Shows what the value will nominally cost after the period, and what
  today's money will then be worth.
`
}

func (c *inflationCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.value, "value", 0, "Current value")
	f.Float64Var(&c.rate, "rate", 0, "Inflation rate per period (0.10 is 10%)")
	f.IntVar(&c.period, "period", 0, "Number of periods")
}

func (c *inflationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	impact := finance.Inflation(c.value, c.rate, c.period)

	var b strings.Builder
	b.WriteString("# Inflation Impact\n\n")
	fmt.Fprintf(&b, "| | Amount |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Future cost of today's value | %.2f |\n", impact.FutureValue)
	fmt.Fprintf(&b, "| Total inflation | %.2f |\n", impact.TotalInflation)
	fmt.Fprintf(&b, "| Present value after the period | %.2f |\n", impact.PresentValue)
	fmt.Fprintf(&b, "| Purchasing power lost | %.2f%% |\n", impact.PurchasingPowerLoss)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
