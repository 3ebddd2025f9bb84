package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// tradeCmd holds the flags for the 'trade' subcommand.
type tradeCmd struct {
	symbol   string
	side     string
	quantity string
	entry    string
	currency string
	date     string
	closeID  string
	exit     string
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "open or close a trade" }
func (*tradeCmd) Usage() string {
	return `finboard trade -symbol <sym> -qty <n> -entry <price> [-side LONG|SHORT]
finboard trade -close <id> -exit <price>

  Opens a position, or closes one fixing its exit price, exit date and
  result. Closing is one-way: a closed trade is never recomputed.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Asset symbol")
	f.StringVar(&c.side, "side", "LONG", "Position side: LONG or SHORT")
	f.StringVar(&c.quantity, "qty", "", "Quantity")
	f.StringVar(&c.entry, "entry", "", "Entry price in major units")
	f.StringVar(&c.currency, "c", "EUR", "Currency code")
	f.StringVar(&c.date, "d", finboard.Today().String(), "Entry or exit date")
	f.StringVar(&c.closeID, "close", "", "Close the trade with this id")
	f.StringVar(&c.exit, "exit", "", "Exit price in major units")
}

func (c *tradeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finboard.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.closeID != "" {
		exit, err := finboard.ParseMoney(c.exit, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		trades, err := store.Trades(ctx, User(), finboard.TradeFilter{Status: finboard.Open})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, t := range trades {
			if t.ID != c.closeID {
				continue
			}
			if err := t.Close(exit, on); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			if err := store.SaveTrade(ctx, t); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Closed %s %s: result %s.\n", t.Side, t.Symbol, t.Result.SignedString())
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error: no open trade with id %s\n", c.closeID)
		return subcommands.ExitFailure
	}

	side, err := finboard.ParseTradeSide(c.side)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	qty, err := finboard.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !qty.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: quantity must be positive")
		return subcommands.ExitUsageError
	}
	entry, err := finboard.ParseMoney(c.entry, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	t := finboard.NewTrade(uuid.NewString(), User(), c.symbol, side, qty, entry, on)
	if err := store.SaveTrade(ctx, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Opened %s %s x%s at %s (id %s).\n", t.Side, t.Symbol, t.Quantity, t.EntryPrice, t.ID)
	return subcommands.ExitSuccess
}
