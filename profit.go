package fliplog

// ProfitResult is the derived financial outcome of a single item or a whole
// lot. It is computed, never stored.
type ProfitResult struct {
	Revenue   Money
	Cost      Money
	NetProfit Money
	ROI       Percent
}

// ItemProfit computes an item's profit and ROI from its sale price and its
// cost. The cost is the manual override when present, else the allocated
// share passed by the caller (usually from an [AllocationStrategy]), else
// zero. The override wins silently over the allocation.
//
// An item without a sale price yields an all-zero result: zero is the
// documented value for "nothing sold yet", not a sentinel.
func ItemProfit(item Item, allocated Money) ProfitResult {
	if item.SalePrice == nil {
		return ProfitResult{}
	}
	sale := *item.SalePrice

	cost := allocated
	if item.OverrideCost != nil {
		cost = *item.OverrideCost
	}

	profit := sale.Sub(cost)
	return ProfitResult{
		Revenue:   sale,
		Cost:      cost,
		NetProfit: profit,
		ROI:       roi(profit, cost, sale.IsPositive()),
	}
}

// roi computes (profit/cost)x100 with the zero-cost conventions: a sale with
// no cost is a 100% return, and a free item sold for nothing is 0%.
func roi(profit, cost Money, positiveRevenue bool) Percent {
	if cost.IsZero() {
		if positiveRevenue {
			return 100
		}
		return 0
	}
	return profit.RatioPercent(cost)
}
