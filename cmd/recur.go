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

// recurCmd holds the flags for the 'recur' subcommand.
type recurCmd struct {
	title     string
	tp        string
	amount    string
	currency  string
	frequency string
	next      string
	category  string
	account   string
	freeze    string
	resume    string
}

func (*recurCmd) Name() string     { return "recur" }
func (*recurCmd) Synopsis() string { return "define, freeze or resume a recurring transaction" }
func (*recurCmd) Usage() string {
	return `finboard recur -title <title> -amount <amount> -freq monthly [-next <date>]
finboard recur -freeze <id> | -resume <id>

  Defines a recurring transaction, or toggles an existing one. Freezing
  keeps the schedule pointer where it is; resuming an overdue definition
  catches it up on the next materialization.
`
}

func (c *recurCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Definition title")
	f.StringVar(&c.tp, "type", "expense", "Transaction type")
	f.StringVar(&c.amount, "amount", "", "Amount in major units")
	f.StringVar(&c.currency, "c", "EUR", "Currency code")
	f.StringVar(&c.frequency, "freq", "monthly", "Frequency: daily, weekly, monthly or yearly")
	f.StringVar(&c.next, "next", finboard.Today().String(), "First occurrence date")
	f.StringVar(&c.category, "category", "", "Category reference")
	f.StringVar(&c.account, "account", "", "Account reference")
	f.StringVar(&c.freeze, "freeze", "", "Freeze the definition with this id")
	f.StringVar(&c.resume, "resume", "", "Resume the definition with this id")
}

func (c *recurCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.freeze != "" || c.resume != "" {
		id, active := c.freeze, false
		if c.resume != "" {
			id, active = c.resume, true
		}
		if err := store.SetDefinitionActive(ctx, id, active); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

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
	freq, err := finboard.ParseFrequency(c.frequency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	next, err := finboard.ParseDate(c.next)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	def := finboard.RecurringDefinition{
		ID:             uuid.NewString(),
		User:           User(),
		Title:          c.title,
		Type:           tp,
		Amount:         amount,
		Frequency:      freq,
		NextOccurrence: next,
		Active:         true,
		Category:       c.category,
		Account:        c.account,
	}
	if err := store.SaveDefinition(ctx, def); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Defined %s %s %q of %s, next on %s (id %s).\n",
		def.Frequency, def.Type, def.Title, def.Amount, def.NextOccurrence, def.ID)
	return subcommands.ExitSuccess
}
