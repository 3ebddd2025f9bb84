// Package cmd implements the subcommands of the finboard command-line tool.
package cmd

import (
	"flag"
	"os"

	"github.com/finboard/finboard/gormstore"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists every subcommand the binary registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&recurCmd{},
	&materializeCmd{},
	&summaryCmd{},
	&monthlyCmd{},
	&categoriesCmd{},
	&tradeCmd{},
	&tradingCmd{},
}

var dbPath = flag.String("db", "", "Path to the SQLite database (default $FINBOARD_DB or finboard.db)")
var user = flag.String("user", "", "User whose data to operate on (default $FINBOARD_USER)")

// OpenStore opens the configured database.
func OpenStore() (*gormstore.Store, error) {
	path := *dbPath
	if path == "" {
		path = os.Getenv("FINBOARD_DB")
	}
	if path == "" {
		path = "finboard.db"
	}
	return gormstore.Open(path)
}

// User resolves the user the commands act for.
func User() string {
	if *user != "" {
		return *user
	}
	return os.Getenv("FINBOARD_USER")
}

// Logger builds the console logger the subcommands share.
func Logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
