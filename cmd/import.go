package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fliplog/fliplog"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import lots, items, expenses and trips from a marketplace export" }
func (*importCmd) Usage() string {
	return `flp import <export.json>

  Reads a marketplace export file and appends its lots, items,
  expenses and trips to the ledger. Malformed entries are reported
  and skipped; entries whose id already exists are rejected.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one export file is required.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	imported, skipped, err := fliplog.ImportExport(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export: %v\n", err)
		return subcommands.ExitFailure
	}

	return mergeLedger(imported, skipped)
}

// mergeLedger appends every record of the imported ledger to the
// configured one, reporting and skipping the ones that do not fit.
func mergeLedger(imported *fliplog.Ledger, skipped []error) subcommands.ExitStatus {
	for _, err := range skipped {
		fmt.Fprintf(os.Stderr, "Skipped: %v\n", err)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var appended, rejected int
	for r := range imported.Records() {
		if err := ledger.Append(r); err != nil {
			fmt.Fprintf(os.Stderr, "Rejected: %v\n", err)
			rejected++
			continue
		}
		appended++
	}

	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d record(s) (%d skipped, %d rejected) into %s\n",
		appended, len(skipped), rejected, Settings().Ledger)
	return subcommands.ExitSuccess
}
