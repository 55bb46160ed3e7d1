package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fliplog/fliplog"
)

// SummaryMarkdown renders a period report to a markdown string.
func SummaryMarkdown(r *fliplog.PeriodReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Summary (%s)\n\n", r.Range)

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Revenue (%s) | %s |\n", plural(r.ItemsSold, "sale"), r.Revenue)
	fmt.Fprintf(&b, "| Lot spend | %s |\n", r.LotSpend)
	fmt.Fprintf(&b, "| Expenses (linked) | %s |\n", r.LinkedExpenses)
	fmt.Fprintf(&b, "| Expenses (unlinked) | %s |\n", r.UnlinkedExpenses)
	fmt.Fprintf(&b, "| Mileage deduction (%s mi) | %s |\n", r.Mileage.TotalMiles, r.Mileage.TotalDeduction)
	fmt.Fprintf(&b, "| **Net profit** | **%s** |\n", r.NetProfit.SignedString())

	ConditionalBlock(&b, func(w io.Writer) bool {
		if !r.HasAvgDaysToSell {
			return false
		}
		fmt.Fprintf(w, "\nItems sold in this period took %.1f days to sell on average.\n", r.AvgDaysToSell)
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if r.Skipped == 0 {
			return false
		}
		fmt.Fprintf(w, "\n%s skipped as malformed.\n", plural(r.Skipped, "record"))
		return true
	})

	return b.String()
}

// HistoryMarkdown renders one summary row per period bucket.
func HistoryMarkdown(rows []fliplog.HistoryRow, p fliplog.Period) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# History by %s\n\n", p.Name())
	if len(rows) == 0 {
		fmt.Fprintln(&b, "Nothing in this range.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Period | Sold | Revenue | Spend | Expenses | Mileage | Net Profit |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, row := range rows {
		r := row.Report
		expenses := r.LinkedExpenses.Add(r.UnlinkedExpenses)
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s |\n",
			bucketLabel(row.Range, p), r.ItemsSold,
			r.Revenue, r.LotSpend, expenses, r.Mileage.TotalDeduction,
			r.NetProfit.SignedString())
	}

	return b.String()
}

// bucketLabel computes a short insightful name for a period bucket.
func bucketLabel(r fliplog.Range, p fliplog.Period) string {
	switch p {
	case fliplog.Yearly:
		return r.From.Format("2006")
	case fliplog.Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (int(r.From.Month())-1)/3+1)
	case fliplog.Monthly:
		return r.From.Format("2006-January")
	default:
		return r.From.String()
	}
}
