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

// mileageCmd holds the flags for the 'mileage' subcommand.
type mileageCmd struct {
	period string
	from   string
	to     string
}

func (*mileageCmd) Name() string     { return "mileage" }
func (*mileageCmd) Synopsis() string { return "display the mileage deduction and trip log" }
func (*mileageCmd) Usage() string {
	return `flp mileage [-period <preset>] [-from <date>] [-to <date>]

  Displays total miles, the resulting deduction, and the trip log.
  Defaults to the current year to date.
`
}

func (c *mileageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "this_year", "Range preset to sum trips over.")
	f.StringVar(&c.from, "from", "", "Custom range start date (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", "", "Custom range end date (YYYY-MM-DD).")
}

func (c *mileageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.period, c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	trips := fliplog.TripsIn(ledger.Trips(), r)
	printMarkdown(renderer.MileageMarkdown(fliplog.SummarizeTrips(trips), trips, r.String()))
	return subcommands.ExitSuccess
}
