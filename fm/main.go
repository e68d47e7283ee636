package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/AndreKlarosk/finance/cmd"
)

func main() {
	// Shell completion: fires and exits only when the shell asks for it.
	completion().Complete("fm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	sub := map[string]*complete.Command{}
	for _, name := range []string{
		"add", "tx", "rm",
		"category", "budget", "goal", "investment", "reminder",
		"dashboard", "monthly", "alerts", "query",
		"savings", "loan", "retirement", "compound", "discount", "inflation",
		"export", "import", "clear", "settings", "watch",
		"topic",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{Sub: sub}
}
