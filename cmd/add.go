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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	title    string
	tp       string
	amount   string
	currency string
	date     string
	category string
	account  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `finboard add -title <title> -amount <amount> [-type income|expense] [-d <date>]

  Records one transaction. The amount is always positive; the direction
  comes from the type.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Transaction title")
	f.StringVar(&c.tp, "type", "expense", "Transaction type")
	f.StringVar(&c.amount, "amount", "", "Amount in major units, e.g. 12.50")
	f.StringVar(&c.currency, "c", "EUR", "Currency code")
	f.StringVar(&c.date, "d", finboard.Today().String(), "Transaction date")
	f.StringVar(&c.category, "category", "", "Category reference")
	f.StringVar(&c.account, "account", "", "Account reference")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tp, err := finboard.ParseTransactionType(c.tp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := finboard.ParseMoney(c.amount, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if amount.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: amount must not be negative, use -type expense")
		return subcommands.ExitUsageError
	}
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

	tx := finboard.Transaction{
		ID:       uuid.NewString(),
		User:     User(),
		Title:    c.title,
		Type:     tp,
		Amount:   amount,
		Date:     on,
		Category: c.category,
		Account:  c.account,
	}
	if err := store.InsertTransaction(ctx, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %q of %s on %s.\n", tx.Type, tx.Title, tx.Amount, tx.Date)
	return subcommands.ExitSuccess
}
