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

type retirementCmd struct {
	age     int
	retire  int
	desired float64
}

func (*retirementCmd) Name() string     { return "retirement" }
func (*retirementCmd) Synopsis() string { return "estimate the saving effort for a retirement income" }
func (*retirementCmd) Usage() string {
	return `fm retirement -age <current> -retire-at <age> -desired <monthly income>

  Capital needed to draw the desired monthly income for 25 years, and the
  monthly saving required to build it, assuming a 0.8% monthly return.
`
}

func (c *retirementCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.age, "age", 0, "Current age")
	f.IntVar(&c.retire, "retire-at", 0, "Retirement age")
	f.Float64Var(&c.desired, "desired", 0, "Desired monthly income")
}

func (c *retirementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := finance.Retirement(c.age, c.retire, c.desired)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var b strings.Builder
	b.WriteString("# Retirement Plan\n\n")
	fmt.Fprintf(&b, "| | |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Years to retirement | %d |\n", plan.YearsToRetirement)
	fmt.Fprintf(&b, "| Required capital | %.2f |\n", plan.RequiredCapital)
	fmt.Fprintf(&b, "| Monthly saving | %.2f |\n", plan.MonthlySavings)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
