package fliplog

// LotReport combines a lot's items and linked expenses into lot-level profit,
// ROI, and unsold valuation.
type LotReport struct {
	LotID    string
	Name     string
	Acquired Date
	Status   LotStatus

	TotalRevenue Money // sum of sale prices over sold items
	ItemCost     Money // the lot's own acquisition cost plus tax
	ExpenseTotal Money // even shares of linked expenses
	TotalCost    Money
	NetProfit    Money
	ROI          Percent
	UnsoldValue  Money // listing price, else retail price, over unsold items

	SoldItems   int
	UnsoldItems int
	TotalItems  int
}

// NewLotReport aggregates a lot. A nil lot yields an all-zero report, never
// an error: "no data yet" report screens rely on it.
//
// ItemCost is the lot's own stated cost, never re-derived by summing per-item
// allocations, so allocation rounding cannot double-count here. When items
// carry per-item override costs the lot total intentionally diverges from the
// sum of item-level costs.
func NewLotReport(lot *Lot, items []Item, expenses []Expense) *LotReport {
	if lot == nil {
		return &LotReport{}
	}

	r := &LotReport{
		LotID:    lot.ID,
		Name:     lot.Name,
		Acquired: lot.AcquisitionDate,
		Status:   lot.Status,
		ItemCost: lot.CombinedCost(),
	}

	for _, item := range items {
		r.TotalItems++
		if item.IsSold() {
			r.SoldItems++
			// a sold item without a recorded price contributes zero
			// revenue rather than aborting the report
			if item.SalePrice != nil {
				r.TotalRevenue = r.TotalRevenue.Add(*item.SalePrice)
			}
			continue
		}
		r.UnsoldItems++
		switch {
		case item.ListingPrice != nil:
			r.UnsoldValue = r.UnsoldValue.Add(*item.ListingPrice)
		case item.RetailPrice != nil:
			r.UnsoldValue = r.UnsoldValue.Add(*item.RetailPrice)
		}
	}

	r.ExpenseTotal = LotExpenseTotal(lot.ID, expenses)
	r.TotalCost = r.ItemCost.Add(r.ExpenseTotal)
	r.NetProfit = r.TotalRevenue.Sub(r.TotalCost)
	r.ROI = roi(r.NetProfit, r.TotalCost, r.NetProfit.IsPositive())
	return r
}

// ItemProfits computes every item's profit result using the given allocation
// strategy for items without a manual cost override.
func ItemProfits(lot Lot, items []Item, strategy AllocationStrategy) map[string]ProfitResult {
	if strategy == nil {
		strategy = DefaultAllocation
	}
	shares := strategy.Allocate(lot, items)
	out := make(map[string]ProfitResult, len(items))
	for _, item := range items {
		out[item.ID] = ItemProfit(item, shares[item.ID])
	}
	return out
}
