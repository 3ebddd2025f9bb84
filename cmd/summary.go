package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	days int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the current balance and its daily history" }
func (*summaryCmd) Usage() string {
	return `finboard summary [-days <n>]

  Displays the all-time balance and the daily running balance over the
  trailing window.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", finboard.DefaultBalanceWindowDays, "Trailing window in days")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	dashboard := finboard.NewDashboard(store, Logger())
	dashboard.SetBalanceWindow(c.days)
	view := dashboard.BalanceHistory(ctx, User())

	fmt.Printf("Current balance: %s\n\n", view.Current)
	for _, p := range view.Series {
		fmt.Printf("%s  %s\n", p.Date, p.Balance)
	}
	return subcommands.ExitSuccess
}
