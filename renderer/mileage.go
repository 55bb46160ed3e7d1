package renderer

import (
	"fmt"
	"strings"

	"github.com/fliplog/fliplog"
)

// MileageMarkdown renders a deduction summary with its trip log.
func MileageMarkdown(res fliplog.DeductionResult, trips []fliplog.MileageTrip, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Mileage: %s\n\n", title)
	fmt.Fprintf(&b, "%s over %s, deducting %s.\n\n",
		res.TotalMiles, plural(res.Trips, "trip"), res.TotalDeduction)

	if len(trips) > 0 {
		fmt.Fprintln(&b, "| Date | Purpose | Miles | Rate | Deduction |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
		for _, t := range trips {
			if t.Miles.IsNegative() {
				continue // skipped by the aggregation too
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				t.Date, t.Purpose, t.Miles, t.RatePerMile, t.Deduction())
		}
	}

	if res.Skipped > 0 {
		fmt.Fprintf(&b, "\n%s skipped as malformed.\n", plural(res.Skipped, "trip"))
	}

	return b.String()
}
