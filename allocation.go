package fliplog

// AllocationStrategy splits a lot's combined acquisition cost and tax across
// its items. "Even share to sellable items" is a business policy, not a
// technical constraint, so alternate policies plug in here without touching
// callers.
type AllocationStrategy interface {
	// Allocate returns each item's share keyed by item id. Every input item
	// gets an entry, ineligible items get a zero share. An empty item slice
	// yields an empty map, never an error.
	Allocate(lot Lot, items []Item) map[string]Money
}

// EvenShare divides the combined cost equally among eligible items.
//
// There is no remainder redistribution: under decimal division the sum of
// shares may diverge from the combined cost by a rounding epsilon (e.g. a
// 100.00 lot over 3 items). Lot reports use the lot's stated cost directly,
// so the divergence never reaches lot totals.
type EvenShare struct {
	// IncludeUnsellable widens eligibility to items flagged unsellable;
	// by default unsellable items get a zero share.
	IncludeUnsellable bool
}

func (s EvenShare) Allocate(lot Lot, items []Item) map[string]Money {
	shares := make(map[string]Money, len(items))
	zero := M(0, lot.AcquisitionCost.Currency())

	eligible := 0
	for _, item := range items {
		if s.IncludeUnsellable || item.Sellable {
			eligible++
		}
	}
	if eligible == 0 {
		for _, item := range items {
			shares[item.ID] = zero
		}
		return shares
	}

	perShare := lot.CombinedCost().DivBy(eligible)
	for _, item := range items {
		if s.IncludeUnsellable || item.Sellable {
			shares[item.ID] = perShare
		} else {
			shares[item.ID] = zero
		}
	}
	return shares
}

// RetailWeighted splits the combined cost proportionally to each item's
// retail price. Items without a retail price get a zero share. When no item
// carries a retail price it falls back to an even split over sellable items.
type RetailWeighted struct{}

func (RetailWeighted) Allocate(lot Lot, items []Item) map[string]Money {
	zero := M(0, lot.AcquisitionCost.Currency())

	totalRetail := zero
	for _, item := range items {
		if item.RetailPrice != nil {
			totalRetail = totalRetail.Add(*item.RetailPrice)
		}
	}
	if totalRetail.IsZero() {
		return EvenShare{}.Allocate(lot, items)
	}

	shares := make(map[string]Money, len(items))
	total := lot.CombinedCost()
	for _, item := range items {
		if item.RetailPrice == nil {
			shares[item.ID] = zero
			continue
		}
		weight := item.RetailPrice.Amount().Div(totalRetail.Amount())
		shares[item.ID] = total.Mul(Q(weight))
	}
	return shares
}

// DefaultAllocation is the policy used by the reports: even shares over
// sellable items only.
var DefaultAllocation AllocationStrategy = EvenShare{}
