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

// lotCmd holds the flags for the 'lot' subcommand.
type lotCmd struct {
	allocation        string
	includeUnsellable bool
	items             bool
}

func (*lotCmd) Name() string     { return "lot" }
func (*lotCmd) Synopsis() string { return "display a profit report for one lot, or all lots" }
func (*lotCmd) Usage() string {
	return `flp lot [<lot-id>] [-allocation even|retail] [-items]

  Without an id, displays an overview table of every lot. With an id,
  displays that lot's full report: revenue, costs, net profit, ROI and
  remaining unsold value. With -items, also breaks profit down per item.
`
}

func (c *lotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.allocation, "allocation", "even", "Cost allocation strategy for the per-item breakdown (even, retail).")
	f.BoolVar(&c.includeUnsellable, "include-unsellable", false, "Spread lot cost over unsellable items too.")
	f.BoolVar(&c.items, "items", false, "Include a per-item profit breakdown.")
}

func (c *lotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		var reports []*fliplog.LotReport
		for _, lot := range ledger.Lots() {
			reports = append(reports, fliplog.NewLotReport(&lot, ledger.ItemsOf(lot.ID), ledger.ExpensesOf(lot.ID)))
		}
		printMarkdown(renderer.LotsMarkdown(reports))
		return subcommands.ExitSuccess
	}

	lot, ok := ledger.Lot(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown lot %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	items := ledger.ItemsOf(lot.ID)
	report := fliplog.NewLotReport(&lot, items, ledger.ExpensesOf(lot.ID))
	md := renderer.LotMarkdown(report)

	if c.items {
		strategy, err := parseAllocation(c.allocation, c.includeUnsellable)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		md += renderer.ItemProfitsMarkdown(items, fliplog.ItemProfits(lot, items, strategy))
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}
