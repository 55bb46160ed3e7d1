package fliplog

// This file buckets dated records into caller-specified ranges for the
// summary and history reports.

// ItemsSoldIn returns the items sold within the range, bounds included.
func ItemsSoldIn(items []Item, r Range) []Item {
	var out []Item
	for _, item := range items {
		if item.IsSold() && !item.SaleDate.IsZero() && r.Contains(item.SaleDate) {
			out = append(out, item)
		}
	}
	return out
}

// ExpensesIn returns the expenses dated within the range.
func ExpensesIn(expenses []Expense, r Range) []Expense {
	var out []Expense
	for _, e := range expenses {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// TripsIn returns the mileage trips dated within the range.
func TripsIn(trips []MileageTrip, r Range) []MileageTrip {
	var out []MileageTrip
	for _, t := range trips {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// LotsAcquiredIn returns the lots acquired within the range.
func LotsAcquiredIn(lots []Lot, r Range) []Lot {
	var out []Lot
	for _, lot := range lots {
		if r.Contains(lot.AcquisitionDate) {
			out = append(out, lot)
		}
	}
	return out
}

// PeriodReport is the period-scoped view of the whole business: what was
// sold, spent, and driven within a date range.
type PeriodReport struct {
	Range Range

	Revenue          Money // sale prices of items sold in the period
	LotSpend         Money // acquisition cost+tax of lots acquired in the period
	LinkedExpenses   Money // expenses linked to at least one lot
	UnlinkedExpenses Money // expenses linked to no lot
	Mileage          DeductionResult
	NetProfit        Money // revenue minus spend, expenses, and deductions

	ItemsSold int
	Skipped   int // malformed records ignored during aggregation

	AvgDaysToSell    float64
	HasAvgDaysToSell bool
}

// NewPeriodReport aggregates the given records over the range.
//
// One malformed record never aborts the aggregation: sold items without a
// price and trips with negative miles are skipped and counted.
func NewPeriodReport(lots []Lot, items []Item, expenses []Expense, trips []MileageTrip, r Range) *PeriodReport {
	report := &PeriodReport{Range: r}

	sold := ItemsSoldIn(items, r)
	for _, item := range sold {
		if item.SalePrice == nil {
			report.Skipped++
			continue
		}
		report.Revenue = report.Revenue.Add(*item.SalePrice)
		report.ItemsSold++
	}
	report.AvgDaysToSell, report.HasAvgDaysToSell = AverageDaysToSell(sold)

	for _, lot := range LotsAcquiredIn(lots, r) {
		report.LotSpend = report.LotSpend.Add(lot.CombinedCost())
	}

	for _, e := range ExpensesIn(expenses, r) {
		if len(e.LotIDs) == 0 {
			report.UnlinkedExpenses = report.UnlinkedExpenses.Add(e.Amount)
		} else {
			report.LinkedExpenses = report.LinkedExpenses.Add(e.Amount)
		}
	}

	report.Mileage = SummarizeTrips(TripsIn(trips, r))
	report.Skipped += report.Mileage.Skipped

	report.NetProfit = report.Revenue.
		Sub(report.LotSpend).
		Sub(report.LinkedExpenses).
		Sub(report.UnlinkedExpenses).
		Sub(report.Mileage.TotalDeduction)
	return report
}

// HistoryRow is one period bucket of a history report.
type HistoryRow struct {
	Range  Range
	Report *PeriodReport
}

// NewHistoryReport buckets the bounded range into sequential sub-periods and
// aggregates each one.
func NewHistoryReport(lots []Lot, items []Item, expenses []Expense, trips []MileageTrip, r Range, p Period) []HistoryRow {
	var rows []HistoryRow
	for bucket := range r.Periods(p) {
		rows = append(rows, HistoryRow{
			Range:  bucket,
			Report: NewPeriodReport(lots, items, expenses, trips, bucket),
		})
	}
	return rows
}
