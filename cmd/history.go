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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	by     string
	period string
	from   string
	to     string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display one summary row per period bucket" }
func (*historyCmd) Usage() string {
	return `flp history [-by <period>] [-period <preset>] [-from <date>] [-to <date>]

  Breaks the selected range into buckets (day, week, month, quarter,
  year) and displays one summary row per bucket.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "month", "Bucket size (day, week, month, quarter, year).")
	f.StringVar(&c.period, "period", "this_year", "Range preset to break down.")
	f.StringVar(&c.from, "from", "", "Custom range start date (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", "", "Custom range end date (YYYY-MM-DD).")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := fliplog.ParsePeriod(c.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	r, err := parseRange(c.period, c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if r.From.IsZero() || r.To.IsZero() {
		fmt.Fprintln(os.Stderr, "history needs a bounded range, pick a preset or -from/-to dates")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows := fliplog.NewHistoryReport(ledger.Lots(), ledger.Items(), ledger.Expenses(), ledger.Trips(), r, p)
	printMarkdown(renderer.HistoryMarkdown(rows, p))
	return subcommands.ExitSuccess
}
