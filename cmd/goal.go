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

type goalCmd struct {
	name     string
	target   string
	deadline string
	id       uint
	progress string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "track savings goals" }
func (*goalCmd) Usage() string {
	return `fm goal [-name <name> -target <amount> -deadline <date>] [-id <id> -add-progress <amount>]

  Without flags, lists the goals with their progress. -name creates a goal;
  -add-progress adds saved money to the goal given by -id.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Create a goal with this name")
	f.StringVar(&c.target, "target", "", "Target amount of the new goal")
	f.StringVar(&c.deadline, "deadline", "", "Deadline of the new goal")
	f.UintVar(&c.id, "id", 0, "Goal to add progress to")
	f.StringVar(&c.progress, "add-progress", "", "Amount to add to the goal's progress")
}

func (c *goalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, settings, err := openWithSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		target, err := decimal.NewFromString(c.target)
		if err != nil || !target.IsPositive() {
			fmt.Fprintf(os.Stderr, "Error: -target must be a positive number, got %q\n", c.target)
			return subcommands.ExitUsageError
		}
		deadline, err := finance.ParseDate(c.deadline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		g := finance.Goal{Name: c.name, Target: target, Deadline: deadline}
		id, err := finance.Create(ctx, s, &g)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created goal %d: %s, %s until %s\n", id, g.Name, g.Target, g.Deadline)
		return subcommands.ExitSuccess
	}

	if c.progress != "" {
		delta, err := decimal.NewFromString(c.progress)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -add-progress must be a number, got %q\n", c.progress)
			return subcommands.ExitUsageError
		}
		g, err := finance.Get[finance.Goal](ctx, s, c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		g = g.AddProgress(delta)
		if err := finance.Replace(ctx, s, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Goal %d is now at %.1f%%\n", g.ID, g.Progress())
		return subcommands.ExitSuccess
	}

	goals, err := finance.All[finance.Goal](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("# Goals\n")
	if len(goals) == 0 {
		b.WriteString("\nNo goals recorded.\n")
	} else {
		b.WriteString("\n| ID | Name | Saved | Target | Progress | Deadline |\n|---:|:---|---:|---:|---:|:---|\n")
		for _, g := range goals {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %.1f%% | %s |\n",
				g.ID, g.Name,
				renderer.M(g.Current, settings.Currency),
				renderer.M(g.Target, settings.Currency),
				g.Progress(), g.Deadline)
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
