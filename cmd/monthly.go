package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	back  int
	ahead int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display income and expense per calendar month" }
func (*monthlyCmd) Usage() string {
	return `finboard monthly [-back <n>] [-ahead <n>]

  Displays one bucket per calendar month around the current one. Future
  months include projected occurrences of active recurring definitions.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.back, "back", finboard.DefaultBucketWindow.Back, "Months before the current one")
	f.IntVar(&c.ahead, "ahead", finboard.DefaultBucketWindow.Ahead, "Months after the current one")
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	dashboard := finboard.NewDashboard(store, Logger())
	dashboard.SetBucketWindow(finboard.BucketWindow{Back: c.back, Ahead: c.ahead})

	fmt.Printf("%-8s %14s %14s %14s\n", "month", "income", "expense", "net")
	for _, b := range dashboard.MonthlyOverview(ctx, User()) {
		fmt.Printf("%-8s %14s %14s %14s\n", b.Month, b.Income, b.Expense, b.Net().SignedString())
	}
	return subcommands.ExitSuccess
}
