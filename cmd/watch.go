package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

type watchCmd struct {
	backupNow bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "run the background backup and reminder loops" }
func (*watchCmd) Usage() string {
	return `fm watch [-backup-now]

  Runs until interrupted: writes automatic backups at the cadence set in the
  settings and prints reminders when they become due. -backup-now writes one
  backup immediately on start.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.backupNow, "backup-now", false, "Write a backup immediately on start")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, settings, err := openWithSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	notify := func(title, message string) {
		fmt.Printf("%s: %s\n", title, message)
	}
	scheduler := finance.NewScheduler(s, *backupDir, notify)

	if c.backupNow {
		if err := scheduler.BackupNow(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	scheduler.Start(ctx, settings)
	fmt.Printf("Watching (backup %s). Interrupt to stop.\n", settings.BackupFrequency)
	<-ctx.Done()
	scheduler.Stop()
	return subcommands.ExitSuccess
}
