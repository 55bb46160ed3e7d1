package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fliplog/fliplog"
	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	price string
	date  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an item" }
func (*sellCmd) Usage() string {
	return `flp sell <item-id> -price <amount> [-date <date>]

  Marks an item as sold at the given price. The sale date defaults to
  today. The ledger file is rewritten in canonical form.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "price", "", "Sale price.")
	f.StringVar(&c.date, "date", "", "Sale date (YYYY-MM-DD). Defaults to today.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is required.")
		return subcommands.ExitUsageError
	}
	if c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -price is required.")
		return subcommands.ExitUsageError
	}
	price, err := parseMoney(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	date, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id := f.Arg(0)
	item, ok := findItem(ledger, id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown item %q\n", id)
		return subcommands.ExitUsageError
	}
	if item.IsSold() {
		fmt.Fprintf(os.Stderr, "Item %q is already sold on %s\n", id, item.SaleDate)
		return subcommands.ExitUsageError
	}

	item.SalePrice = &price
	item.SaleDate = date
	item.Status = "" // rederived on validation
	if err := ledger.UpdateItem(item); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Sold %s for %s on %s\n", id, price, date)
	return subcommands.ExitSuccess
}

// findItem looks an item up by id across all lots.
func findItem(ledger *fliplog.Ledger, id string) (fliplog.Item, bool) {
	for _, item := range ledger.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return fliplog.Item{}, false
}

// saveLedger writes the whole ledger back to the configured file in
// canonical form.
func saveLedger(ledger *fliplog.Ledger) subcommands.ExitStatus {
	filename := Settings().Ledger
	f, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := fliplog.EncodeLedger(f, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
