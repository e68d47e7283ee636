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

type categoryCmd struct {
	add   string
	icon  string
	color string
	seed  bool
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "manage transaction categories" }
func (*categoryCmd) Usage() string {
	return `fm category [-seed] [-add <name> [-icon <icon>] [-color <hex>]]

  Without flags, lists the categories. -seed inserts the default set into an
  empty store; -add creates one category.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create a category with this name")
	f.StringVar(&c.icon, "icon", finance.FallbackIcon, "Icon of the new category")
	f.StringVar(&c.color, "color", finance.FallbackColor, "Color of the new category")
	f.BoolVar(&c.seed, "seed", false, "Seed the default categories into an empty store")
}

func (c *categoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.seed {
		if err := s.SeedDefaultCategories(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Seeded default categories.")
	}

	if c.add != "" {
		cat := finance.Category{Name: c.add, Icon: c.icon, Color: c.color}
		id, err := finance.Create(ctx, s, &cat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created category %d: %s\n", id, cat.Name)
	}

	if c.seed || c.add != "" {
		return subcommands.ExitSuccess
	}

	categories, err := finance.All[finance.Category](ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("# Categories\n")
	if len(categories) == 0 {
		b.WriteString("\nNo categories. Run `fm category -seed` to create the default set.\n")
	} else {
		b.WriteString("\n| ID | Name | Icon | Color |\n|---:|:---|:---|:---|\n")
		for _, cat := range categories {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", cat.ID, cat.Name, cat.Icon, cat.Color)
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
