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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
	from   string
	to     string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a profit summary for a time range" }
func (*summaryCmd) Usage() string {
	return `flp summary [-period <preset>] [-from <date>] [-to <date>]

  Displays revenue, lot spend, expenses, mileage deduction and net
  profit over the selected range. Presets: this_month, this_quarter,
  last_quarter, this_year, last_year, q1..q4, all. Explicit -from/-to
  dates override the preset.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "Range preset to summarize.")
	f.StringVar(&c.from, "from", "", "Custom range start date (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", "", "Custom range end date (YYYY-MM-DD).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := fliplog.NewPeriodReport(ledger.Lots(), ledger.Items(), ledger.Expenses(), ledger.Trips(), r)
	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
