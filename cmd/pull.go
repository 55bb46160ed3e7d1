package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fliplog/fliplog"
	"github.com/google/subcommands"
)

// pullCmd holds the flags for the 'pull' subcommand.
type pullCmd struct {
	url string
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "fetch a marketplace export from a URL and import it" }
func (*pullCmd) Usage() string {
	return `flp pull [-url <address>]

  Downloads a marketplace export and appends its records to the
  ledger, like 'flp import' does for a local file. The download is
  retried on transient failures and cached for the day. The address
  defaults to the sync_url configuration key.
`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Export address. Defaults to the sync_url configuration key.")
}

func (c *pullCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	addr := c.url
	if addr == "" {
		addr = Settings().SyncURL
	}
	if addr == "" {
		fmt.Fprintln(os.Stderr, "Error: no address, pass -url or set the sync_url configuration key.")
		return subcommands.ExitUsageError
	}

	imported, skipped, err := fliplog.FetchExport(ctx, addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching export from %q: %v\n", addr, err)
		return subcommands.ExitFailure
	}

	return mergeLedger(imported, skipped)
}
