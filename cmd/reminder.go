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

type reminderCmd struct {
	title  string
	desc   string
	date   string
	typ    string
	toggle uint
	due    bool
}

func (*reminderCmd) Name() string     { return "reminder" }
func (*reminderCmd) Synopsis() string { return "manage dated reminders" }
func (*reminderCmd) Usage() string {
	return `fm reminder [-title <title> [-desc <text>] [-d <date>] [-type <type>]] [-toggle <id>] [-due]

  Without flags, lists the reminders. -title creates one; -toggle flips the
  completed flag; -due lists only the reminders due today. Types: payment,
  income, investment, review, other.
`
}

func (c *reminderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Create a reminder with this title")
	f.StringVar(&c.desc, "desc", "", "Description of the new reminder")
	f.StringVar(&c.date, "d", "", "Date of the new reminder (defaults to today)")
	f.StringVar(&c.typ, "type", "other", "Type of the new reminder")
	f.UintVar(&c.toggle, "toggle", 0, "Flip the completed flag of this reminder")
	f.BoolVar(&c.due, "due", false, "List only reminders due today")
}

func (c *reminderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.title != "" {
		typ, err := finance.ParseReminderType(c.typ)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		date := finance.Today()
		if c.date != "" {
			if date, err = finance.ParseDate(c.date); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		r := finance.Reminder{Title: c.title, Description: c.desc, Date: date, Type: typ}
		id, err := finance.Create(ctx, s, &r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created reminder %d: %s on %s\n", id, r.Title, r.Date)
		return subcommands.ExitSuccess
	}

	if c.toggle != 0 {
		r, err := finance.Get[finance.Reminder](ctx, s, c.toggle)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		r = r.Toggle()
		if err := finance.Replace(ctx, s, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		state := "pending"
		if r.Completed {
			state = "completed"
		}
		fmt.Printf("Reminder %d is now %s\n", r.ID, state)
		return subcommands.ExitSuccess
	}

	reminders, err := finance.All[finance.Reminder](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.due {
		reminders = finance.DueReminders(reminders, finance.Today())
	}

	var b strings.Builder
	b.WriteString("# Reminders\n")
	if len(reminders) == 0 {
		b.WriteString("\nNothing here.\n")
	} else {
		b.WriteString("\n| ID | Date | Title | Type | Done |\n|---:|:---|:---|:---|:---|\n")
		for _, r := range reminders {
			done := ""
			if r.Completed {
				done = "x"
			}
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", r.ID, r.Date, r.Title, r.Type, done)
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
