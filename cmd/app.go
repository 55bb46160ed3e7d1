// Package cmd implements the CLI application to track resale profit.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fliplog/fliplog"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&lotCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&mileageCmd{}, "reports")
	c.Register(&staleCmd{}, "reports")

	c.Register(&addLotCmd{}, "ledger")
	c.Register(&addItemCmd{}, "ledger")
	c.Register(&sellCmd{}, "ledger")
	c.Register(&addExpenseCmd{}, "ledger")
	c.Register(&addTripCmd{}, "ledger")

	c.Register(&importCmd{}, "data")
	c.Register(&pullCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// As a CLI application the lifecycle is very short lived, so globals are fine.

// DecodeLedger decodes the ledger from the configured ledger file.
// A missing file is an empty ledger, not an error.
func DecodeLedger() (*fliplog.Ledger, error) {
	filename := Settings().Ledger
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fliplog.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()

	ledger, err := fliplog.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", filename, err)
	}
	return ledger, nil
}

// appendRecords validates records against the current ledger and appends
// them to the configured ledger file.
func appendRecords(records ...fliplog.Record) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(records...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	filename := Settings().Ledger
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, r := range records {
		if err := fliplog.EncodeRecord(f, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Appended %d record(s) to %s\n", len(records), filename)
	return subcommands.ExitSuccess
}
