package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// tradingCmd holds the flags for the 'trading' subcommand.
type tradingCmd struct {
	initial  string
	currency string
}

func (*tradingCmd) Name() string     { return "trading" }
func (*tradingCmd) Synopsis() string { return "display trading performance statistics" }
func (*tradingCmd) Usage() string {
	return `finboard trading [-init <balance>]

  Displays win rate, profit factor, gross and net results and balance
  growth. With -init, first saves the initial balance the growth is
  computed against.
`
}

func (c *tradingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.initial, "init", "", "Set the initial balance before reporting")
	f.StringVar(&c.currency, "c", "EUR", "Currency code for -init")
}

func (c *tradingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.initial != "" {
		initial, err := finboard.ParseMoney(c.initial, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		settings := finboard.TradingSettings{User: User(), InitialBalance: initial, Currency: c.currency}
		if err := store.UpsertSettings(ctx, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	stats := finboard.NewDashboard(store, Logger()).TradingSummary(ctx, User())

	fmt.Printf("Trades:         %d (%d open, %d closed)\n", stats.TotalTrades, stats.OpenTrades, stats.ClosedTrades)
	fmt.Printf("Win rate:       %s (%d/%d)\n", stats.WinRate, stats.WinningTrades, stats.ClosedTrades)
	fmt.Printf("Gross profit:   %s\n", stats.GrossProfit)
	fmt.Printf("Gross loss:     %s\n", stats.GrossLoss)
	fmt.Printf("Profit factor:  %s\n", stats.ProfitFactor)
	fmt.Printf("Total result:   %s\n", stats.TotalResult.SignedString())
	fmt.Printf("Balance:        %s (%s)\n", stats.CurrentBalance, stats.Growth.SignedString())
	return subcommands.ExitSuccess
}
