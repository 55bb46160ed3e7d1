package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fliplog/fliplog"
)

// LotMarkdown renders a single lot report to a markdown string.
func LotMarkdown(r *fliplog.LotReport) string {
	var b strings.Builder

	title := r.Name
	if title == "" {
		title = r.LotID
	}
	if title == "" {
		title = "No lot"
	}
	fmt.Fprintf(&b, "# Lot Report: %s\n\n", title)
	if !r.Acquired.IsZero() {
		fmt.Fprintf(&b, "Acquired %s, %s.\n\n", r.Acquired, plural(r.TotalItems, "item"))
	}

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Revenue (%s sold) | %s |\n", plural(r.SoldItems, "item"), r.TotalRevenue)
	fmt.Fprintf(&b, "| Lot cost (incl. tax) | %s |\n", r.ItemCost)
	fmt.Fprintf(&b, "| Expense share | %s |\n", r.ExpenseTotal)
	fmt.Fprintf(&b, "| Total cost | %s |\n", r.TotalCost)
	fmt.Fprintf(&b, "| **Net profit** | **%s** |\n", r.NetProfit.SignedString())
	fmt.Fprintf(&b, "| ROI | %s |\n", r.ROI)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if r.UnsoldItems == 0 {
			return false
		}
		fmt.Fprintf(w, "\n%s still unsold, valued at %s.\n", plural(r.UnsoldItems, "item"), r.UnsoldValue)
		return true
	})

	return b.String()
}

// ItemProfitsMarkdown renders the per-item profit breakdown of a lot.
// Profits are keyed by item id, as returned by fliplog.ItemProfits.
func ItemProfitsMarkdown(items []fliplog.Item, profits map[string]fliplog.ProfitResult) string {
	var b strings.Builder

	fmt.Fprint(&b, "\n## Items\n\n")
	fmt.Fprintln(&b, "| Item | Status | Revenue | Cost | Net Profit | ROI |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	for _, item := range items {
		p := profits[item.ID]
		name := item.Name
		if name == "" {
			name = item.ID
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			name, item.Status, p.Revenue, p.Cost, p.NetProfit.SignedString(), p.ROI)
	}

	return b.String()
}

// LotsMarkdown renders an overview table over several lot reports.
func LotsMarkdown(reports []*fliplog.LotReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Lots Overview\n\n")
	if len(reports) == 0 {
		fmt.Fprintln(&b, "No lots recorded yet.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Lot | Acquired | Sold | Revenue | Total Cost | Net Profit | ROI |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	var total fliplog.Money
	for _, r := range reports {
		name := r.Name
		if name == "" {
			name = r.LotID
		}
		fmt.Fprintf(&b, "| %s | %s | %d/%d | %s | %s | %s | %s |\n",
			name, r.Acquired, r.SoldItems, r.TotalItems,
			r.TotalRevenue, r.TotalCost, r.NetProfit.SignedString(), r.ROI)
		total = total.Add(r.NetProfit)
	}
	fmt.Fprintf(&b, "| **Total** | | | | | **%s** | |\n", total.SignedString())

	return b.String()
}
