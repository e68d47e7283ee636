// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")

	c.Register(&categoryCmd{}, "collections")
	c.Register(&budgetCmd{}, "collections")
	c.Register(&goalCmd{}, "collections")
	c.Register(&investmentCmd{}, "collections")
	c.Register(&reminderCmd{}, "collections")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&alertsCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&savingsCmd{}, "calculators")
	c.Register(&loanCmd{}, "calculators")
	c.Register(&retirementCmd{}, "calculators")
	c.Register(&compoundCmd{}, "calculators")
	c.Register(&discountCmd{}, "calculators")
	c.Register(&inflationCmd{}, "calculators")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&clearCmd{}, "data")
	c.Register(&settingsCmd{}, "data")
	c.Register(&watchCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "finance.db", "Path to the finance database file")
var backupDir = flag.String("backup-dir", "backups", "Directory where automatic backups are written")

// openStore opens the app database.
func openStore() (*finance.Store, error) {
	return finance.Open(*dbFile)
}

// openWithSettings opens the app database and loads the settings on top of
// the defaults.
func openWithSettings(ctx context.Context) (*finance.Store, finance.Settings, error) {
	s, err := openStore()
	if err != nil {
		return nil, finance.Settings{}, err
	}
	settings, err := finance.LoadSettings(ctx, s)
	if err != nil {
		return nil, finance.Settings{}, err
	}
	return s, settings, nil
}
