package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

type rmCmd struct {
	kind string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record by identifier" }
func (*rmCmd) Usage() string {
	return `fm rm [-kind <collection>] <id>...

  Deletes records from a collection. The kind is one of transaction,
  category, budget, goal, investment or reminder.

Usage Examples:
# Delete transaction 3.
$ fm rm 3

# Delete budget 2.
$ fm rm -kind budget 2

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "transaction", "Collection to delete from")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one id is required")
		return subcommands.ExitUsageError
	}
	remove, ok := removers[c.kind]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, arg := range f.Args() {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid id %q\n", arg)
			return subcommands.ExitUsageError
		}
		if err := remove(ctx, s, uint(id)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted %s %d\n", c.kind, id)
	}
	return subcommands.ExitSuccess
}

// removers maps the user-facing collection names to their typed Remove.
var removers = map[string]func(context.Context, *finance.Store, uint) error{
	"transaction": finance.Remove[finance.Transaction],
	"category":    finance.Remove[finance.Category],
	"budget":      finance.Remove[finance.Budget],
	"goal":        finance.Remove[finance.Goal],
	"investment":  finance.Remove[finance.Investment],
	"reminder":    finance.Remove[finance.Reminder],
}
