package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// materializeCmd holds the flags for the 'materialize' subcommand.
type materializeCmd struct{}

func (*materializeCmd) Name() string { return "materialize" }
func (*materializeCmd) Synopsis() string {
	return "write due recurring occurrences as real transactions"
}
func (*materializeCmd) Usage() string {
	return `finboard materialize

  Scans the user's active recurring definitions and writes one transaction
  per due occurrence, advancing each schedule pointer back into the future.
  Safe to run repeatedly; a second run right after is a no-op.
`
}

func (*materializeCmd) SetFlags(f *flag.FlagSet) {}

func (c *materializeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	n, err := finboard.NewMaterializer(store, Logger()).Run(ctx, User())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Materialization failed after %d transactions: %v\n", n, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Materialized %d transactions.\n", n)
	return subcommands.ExitSuccess
}
