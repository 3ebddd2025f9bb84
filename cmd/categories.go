package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct {
	month string
	tp    string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display one month's totals grouped by category" }
func (*categoriesCmd) Usage() string {
	return `finboard categories [-m <yyyy-mm-dd>] [-type income|expense]

  Displays the category breakdown of one month's transactions, largest
  total first.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", finboard.Today().String(), "Any date inside the month to report on")
	f.StringVar(&c.tp, "type", "expense", "Transaction type to break down")
}

func (c *categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finboard.ParseDate(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	tp, err := finboard.ParseTransactionType(c.tp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	dashboard := finboard.NewDashboard(store, Logger())
	for _, t := range dashboard.Categories(ctx, User(), on.MonthOf(), tp) {
		fmt.Printf("%-24s %14s (%d)\n", t.Category, t.Total, t.Count)
	}
	return subcommands.ExitSuccess
}
