package renderer

import (
	"fmt"
	"strings"

	"github.com/fliplog/fliplog"
)

// StaleMarkdown renders the stale-inventory report: items listed without
// selling for longer than the threshold.
func StaleMarkdown(stale []fliplog.Item, today fliplog.Date, thresholdDays int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Stale Inventory (%d+ days)\n\n", thresholdDays)
	if len(stale) == 0 {
		fmt.Fprintln(&b, "Nothing stale. Keep it up.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Item | Listed | Days Listed | Asking |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, item := range stale {
		days, _ := fliplog.DaysSinceListed(item, today)
		asking := "-"
		if item.ListingPrice != nil {
			asking = item.ListingPrice.String()
		}
		name := item.Name
		if name == "" {
			name = item.ID
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", name, item.ListingDate, days, asking)
	}

	return b.String()
}
