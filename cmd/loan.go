package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

type loanCmd struct {
	principal float64
	rate      float64
	period    int
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "compute the fixed payment of a loan" }
func (*loanCmd) Usage() string {
	return `fm loan -principal <amount> -rate <per-period rate> -period <n>

  Fixed payment to amortize the principal over the given number of
  installments. A zero rate splits the principal evenly.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Loan principal")
	f.Float64Var(&c.rate, "rate", 0, "Interest rate per installment (0.01 is 1%)")
	f.IntVar(&c.period, "period", 0, "Number of installments")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.period <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -period must be positive")
		return subcommands.ExitUsageError
	}
	plan := finance.Loan(c.principal, c.rate, c.period)

	var b strings.Builder
	b.WriteString("# Loan Payment\n\n")
	fmt.Fprintf(&b, "| | Amount |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Payment per installment | %.2f |\n", plan.Payment)
	fmt.Fprintf(&b, "| Total paid | %.2f |\n", plan.TotalPayment)
	fmt.Fprintf(&b, "| Total interest | %.2f |\n", plan.Interest)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
