package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fliplog/fliplog"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// addTripCmd holds the flags for the 'add-trip' subcommand.
type addTripCmd struct {
	id      string
	miles   string
	rate    string
	purpose string
	date    string
	lots    string
}

func (*addTripCmd) Name() string     { return "add-trip" }
func (*addTripCmd) Synopsis() string { return "log a business trip for the mileage deduction" }
func (*addTripCmd) Usage() string {
	return `flp add-trip -miles <n> [-purpose <text>] [-rate <amount>] [-lots <id,id,...>] [-date <date>] [-id <id>]

  Logs a trip in the ledger. The per-mile rate defaults to the
  configured standard rate and is stored with the trip, so later rate
  changes never affect it.

Usage Examples:
$ flp add-trip -miles 42 -purpose "pallet pickup"
`
}

func (c *addTripCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Trip id. Generated when empty.")
	f.StringVar(&c.miles, "miles", "", "Miles driven.")
	f.StringVar(&c.rate, "rate", "", "Per-mile rate. Defaults to the configured standard rate.")
	f.StringVar(&c.purpose, "purpose", "", "What the trip was for.")
	f.StringVar(&c.date, "date", "", "Trip date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.lots, "lots", "", "Comma separated lot ids this trip relates to.")
}

func (c *addTripCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.miles == "" {
		fmt.Fprintln(os.Stderr, "Error: -miles is required.")
		return subcommands.ExitUsageError
	}
	milesDec, err := decimal.NewFromString(c.miles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid miles %q: %v\n", c.miles, err)
		return subcommands.ExitUsageError
	}

	rate := fliplog.M(Settings().MileageRate, Settings().Currency)
	if c.rate != "" {
		if rate, err = parseMoney(c.rate); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	date, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var lotIDs []string
	for _, id := range strings.Split(c.lots, ",") {
		if id = strings.TrimSpace(id); id != "" {
			lotIDs = append(lotIDs, id)
		}
	}

	id := c.id
	if id == "" {
		id = uuid.NewString()
	}

	return appendRecords(fliplog.MileageTrip{
		ID:          id,
		Date:        date,
		Purpose:     c.purpose,
		Miles:       fliplog.Q(milesDec),
		RatePerMile: rate,
		LotIDs:      lotIDs,
	})
}
