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

// addLotCmd holds the flags for the 'add-lot' subcommand.
type addLotCmd struct {
	id   string
	name string
	cost string
	tax  string
	date string
}

func (*addLotCmd) Name() string     { return "add-lot" }
func (*addLotCmd) Synopsis() string { return "record a new lot purchase" }
func (*addLotCmd) Usage() string {
	return `flp add-lot -cost <amount> [-tax <amount>] [-name <name>] [-id <id>] [-date <date>]

  Records a lot purchase in the ledger. The date defaults to today and
  the id to a generated one.

Usage Examples:
$ flp add-lot -name "storage unit 12" -cost 480 -tax 20
`
}

func (c *addLotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Lot id. Generated when empty.")
	f.StringVar(&c.name, "name", "", "Human readable lot name.")
	f.StringVar(&c.cost, "cost", "", "Acquisition cost, before tax.")
	f.StringVar(&c.tax, "tax", "", "Tax paid on the acquisition.")
	f.StringVar(&c.date, "date", "", "Acquisition date (YYYY-MM-DD). Defaults to today.")
}

func (c *addLotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cost == "" {
		fmt.Fprintln(os.Stderr, "Error: -cost is required.")
		return subcommands.ExitUsageError
	}
	cost, err := parseMoney(c.cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	tax, err := parseOptMoney(c.tax)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	date, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	id := c.id
	if id == "" {
		id = uuid.NewString()
	}

	return appendRecords(fliplog.Lot{
		ID:              id,
		Name:            c.name,
		AcquisitionCost: cost,
		TaxAmount:       tax,
		AcquisitionDate: date,
	})
}
