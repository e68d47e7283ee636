package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/AndreKlarosk/finance"
)

type settingsCmd struct {
	currency     string
	darkMode     string
	budgetAlerts string
	goalAlerts   string
	backup       string
	module       string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the application settings" }
func (*settingsCmd) Usage() string {
	return `fm settings [-currency <code>] [-dark-mode <bool>] [-budget-alerts <bool>] [-goal-alerts <bool>] [-backup <cadence>] [-module <name>=<bool>]

  Without flags, shows the current settings. Each flag changes one setting;
  unchanged settings are left as they are. The backup cadence is one of
  never, daily, weekly or monthly.

Usage Examples:
# Disable the planning module.
$ fm settings -module planning=false

`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Display currency (ISO code)")
	f.StringVar(&c.darkMode, "dark-mode", "", "Dark mode (true or false)")
	f.StringVar(&c.budgetAlerts, "budget-alerts", "", "Budget alerts (true or false)")
	f.StringVar(&c.goalAlerts, "goal-alerts", "", "Goal alerts (true or false)")
	f.StringVar(&c.backup, "backup", "", "Automatic backup cadence")
	f.StringVar(&c.module, "module", "", "Toggle a feature module, as name=bool")
}

func (c *settingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, settings, err := openWithSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.currency != "" {
		settings.Currency = strings.ToUpper(c.currency)
		changed = true
	}
	for _, b := range []struct {
		value string
		field *bool
		name  string
	}{
		{c.darkMode, &settings.DarkMode, "-dark-mode"},
		{c.budgetAlerts, &settings.BudgetAlerts, "-budget-alerts"},
		{c.goalAlerts, &settings.GoalAlerts, "-goal-alerts"},
	} {
		if b.value == "" {
			continue
		}
		v, err := strconv.ParseBool(b.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s must be true or false, got %q\n", b.name, b.value)
			return subcommands.ExitUsageError
		}
		*b.field = v
		changed = true
	}
	if c.backup != "" {
		freq, err := finance.ParseFrequency(c.backup)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		settings.BackupFrequency = freq
		changed = true
	}
	if c.module != "" {
		name, value, ok := strings.Cut(c.module, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: -module wants name=bool, got %q\n", c.module)
			return subcommands.ExitUsageError
		}
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -module wants name=bool, got %q\n", c.module)
			return subcommands.ExitUsageError
		}
		settings.SetModule(name, enabled)
		changed = true
	}

	if changed {
		if err := finance.SaveSettings(ctx, s, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	var b strings.Builder
	b.WriteString("# Settings\n\n")
	fmt.Fprintf(&b, "| Setting | Value |\n|:---|:---|\n")
	fmt.Fprintf(&b, "| Currency | %s |\n", settings.Currency)
	fmt.Fprintf(&b, "| Dark mode | %t |\n", settings.DarkMode)
	fmt.Fprintf(&b, "| Budget alerts | %t |\n", settings.BudgetAlerts)
	fmt.Fprintf(&b, "| Goal alerts | %t |\n", settings.GoalAlerts)
	fmt.Fprintf(&b, "| Backup | %s |\n", settings.BackupFrequency)
	for _, name := range finance.ModuleNames {
		fmt.Fprintf(&b, "| Module %s | %t |\n", name, settings.ModuleEnabled(name))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
