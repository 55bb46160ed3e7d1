package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fliplog/fliplog"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// addItemCmd holds the flags for the 'add-item' subcommand.
type addItemCmd struct {
	id         string
	lot        string
	name       string
	retail     string
	listing    string
	cost       string
	listed     string
	unsellable bool
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "record an item belonging to a lot" }
func (*addItemCmd) Usage() string {
	return `flp add-item -lot <lot-id> [-name <name>] [-retail <amount>] [-listing <amount>] [-listed <date>] [-cost <amount>] [-unsellable] [-id <id>]

  Records an inventory item in the ledger. Passing -listing or -listed
  marks the item as listed; -listed defaults to today when only a
  listing price is given. An explicit -cost overrides the item's
  allocated share of the lot cost in profit reports.

Usage Examples:
$ flp add-item -lot storage-unit-12 -name "cordless drill" -retail 60 -listing 45
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id. Generated when empty.")
	f.StringVar(&c.lot, "lot", "", "Id of the lot this item belongs to.")
	f.StringVar(&c.name, "name", "", "Human readable item name.")
	f.StringVar(&c.retail, "retail", "", "Estimated retail value.")
	f.StringVar(&c.listing, "listing", "", "Listing price.")
	f.StringVar(&c.listed, "listed", "", "Listing date (YYYY-MM-DD).")
	f.StringVar(&c.cost, "cost", "", "Manual cost override for this item.")
	f.BoolVar(&c.unsellable, "unsellable", false, "Mark the item as unsellable junk.")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.lot == "" {
		fmt.Fprintln(os.Stderr, "Error: -lot is required.")
		return subcommands.ExitUsageError
	}

	retail, err := parseOptMoney(c.retail)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	listing, err := parseOptMoney(c.listing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	cost, err := parseOptMoney(c.cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var listed fliplog.Date
	if c.listed != "" {
		if listed, err = fliplog.ParseDate(c.listed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	} else if listing != nil {
		listed = fliplog.Today()
	}

	id := c.id
	if id == "" {
		id = uuid.NewString()
	}

	return appendRecords(fliplog.Item{
		ID:           id,
		LotID:        c.lot,
		Name:         c.name,
		RetailPrice:  retail,
		ListingPrice: listing,
		OverrideCost: cost,
		Sellable:     !c.unsellable,
		ListingDate:  listed,
	})
}
