package fliplog

// DefaultStaleThresholdDays is the number of days after which an unsold
// listed item is flagged stale.
const DefaultStaleThresholdDays = 30

// DaysSinceListed returns the number of whole days since the item was listed,
// 0 for "listed today". ok is false when the item has no listing date.
func DaysSinceListed(item Item, today Date) (days int, ok bool) {
	if item.ListingDate.IsZero() {
		return 0, false
	}
	return today.DaysSince(item.ListingDate), true
}

// DaysToSell returns the number of whole days between listing and sale, 0 for
// a same-day sale. It is defined only for sold items carrying both dates.
func DaysToSell(item Item) (days int, ok bool) {
	if !item.IsSold() || item.ListingDate.IsZero() || item.SaleDate.IsZero() {
		return 0, false
	}
	return item.SaleDate.DaysSince(item.ListingDate), true
}

// IsStale reports whether the item has been listed without selling for at
// least thresholdDays. An item without a listing date is never stale,
// whatever the threshold.
func IsStale(item Item, today Date, thresholdDays int) bool {
	if item.IsSold() {
		return false
	}
	days, ok := DaysSinceListed(item, today)
	return ok && days >= thresholdDays
}

// StaleItems returns the items flagged stale, preserving input order.
func StaleItems(items []Item, today Date, thresholdDays int) []Item {
	var out []Item
	for _, item := range items {
		if IsStale(item, today, thresholdDays) {
			out = append(out, item)
		}
	}
	return out
}

// AverageDaysToSell returns the mean days-to-sell over qualifying sold items.
// ok is false when no item qualifies: callers must distinguish "no data"
// from "sells the same day".
func AverageDaysToSell(items []Item) (avg float64, ok bool) {
	var sum, n int
	for _, item := range items {
		if days, qualified := DaysToSell(item); qualified {
			sum += days
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
