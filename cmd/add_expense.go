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
)

// addExpenseCmd holds the flags for the 'add-expense' subcommand.
type addExpenseCmd struct {
	id       string
	amount   string
	category string
	date     string
	lots     string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a business expense" }
func (*addExpenseCmd) Usage() string {
	return `flp add-expense -amount <amount> [-category <name>] [-lots <id,id,...>] [-date <date>] [-id <id>]

  Records an expense in the ledger. Linking it to one or more lots
  splits the amount evenly across them in lot reports; an unlinked
  expense only shows up in period summaries.

Usage Examples:
$ flp add-expense -amount 12.50 -category shipping -lots pallet-7
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Expense id. Generated when empty.")
	f.StringVar(&c.amount, "amount", "", "Expense amount.")
	f.StringVar(&c.category, "category", "", "Expense category (shipping, supplies, fees...).")
	f.StringVar(&c.date, "date", "", "Expense date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.lots, "lots", "", "Comma separated lot ids this expense is linked to.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount is required.")
		return subcommands.ExitUsageError
	}
	amount, err := parseMoney(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
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

	return appendRecords(fliplog.Expense{
		ID:       id,
		Amount:   amount,
		Category: c.category,
		Date:     date,
		LotIDs:   lotIDs,
	})
}
