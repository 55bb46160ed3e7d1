package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fliplog/fliplog"
	"github.com/fliplog/fliplog/renderer"
	"github.com/google/subcommands"
)

// staleCmd holds the flags for the 'stale' subcommand.
type staleCmd struct {
	days int
}

func (*staleCmd) Name() string     { return "stale" }
func (*staleCmd) Synopsis() string { return "list items listed too long without selling" }
func (*staleCmd) Usage() string {
	return `flp stale [-days <n>]

  Lists every item that has been listed for the threshold number of
  days or more without selling, oldest first.
`
}

func (c *staleCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", Settings().StaleDays, "Staleness threshold in days.")
}

func (c *staleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid threshold %d days\n", c.days)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	today := fliplog.Today()
	stale := fliplog.StaleItems(ledger.Items(), today, c.days)
	printMarkdown(renderer.StaleMarkdown(stale, today, c.days))
	return subcommands.ExitSuccess
}
