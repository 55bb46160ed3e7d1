package fliplog

import "testing"

func lotOf(cost, tax float64) Lot {
	l := Lot{ID: "lot-1", AcquisitionCost: USD(cost), AcquisitionDate: NewDate(2025, 1, 2)}
	if tax != 0 {
		l.TaxAmount = pUSD(tax)
	}
	return l
}

func sellableItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: string(rune('a' + i)), LotID: "lot-1", Sellable: true}
	}
	return items
}

func TestEvenShare_FourSellableItems(t *testing.T) {
	shares := EvenShare{}.Allocate(lotOf(100, 0), sellableItems(4))
	for id, share := range shares {
		if !share.Equal(USD(25)) {
			t.Errorf("item %q share = %s, want $25.00", id, share)
		}
	}
}

func TestEvenShare_UnsellableGetsZero(t *testing.T) {
	items := sellableItems(3)
	items[2].Sellable = false

	shares := EvenShare{}.Allocate(lotOf(100, 6), items)
	if want := USD(53); !shares["a"].Equal(want) {
		t.Errorf("sellable share = %s, want %s", shares["a"], want)
	}
	if !shares["c"].IsZero() {
		t.Errorf("unsellable share = %s, want zero", shares["c"])
	}

	// widening eligibility spreads the cost over all three
	shares = EvenShare{IncludeUnsellable: true}.Allocate(lotOf(100, 6), items)
	for id, share := range shares {
		if want := USD(106.0 / 3).Amount(); !share.Amount().Sub(want).Abs().LessThan(centEpsilon) {
			t.Errorf("item %q share = %s, want about $35.33", id, share)
		}
	}
}

func TestEvenShare_NoEligibleItems(t *testing.T) {
	items := sellableItems(2)
	items[0].Sellable = false
	items[1].Sellable = false

	shares := EvenShare{}.Allocate(lotOf(100, 0), items)
	if len(shares) != 2 {
		t.Fatalf("expected a zero share per item, got %d entries", len(shares))
	}
	for id, share := range shares {
		if !share.IsZero() {
			t.Errorf("item %q share = %s, want zero", id, share)
		}
	}
}

func TestEvenShare_NoItems(t *testing.T) {
	shares := EvenShare{}.Allocate(lotOf(100, 0), nil)
	if len(shares) != 0 {
		t.Errorf("expected an empty result for a lot with no items, got %v", shares)
	}
}

func TestEvenShare_SharesSumToTotalWithinEpsilon(t *testing.T) {
	// 100/3 does not divide evenly: there is no remainder redistribution,
	// the sum of shares may diverge from the total by a rounding epsilon.
	lot := lotOf(100, 0)
	items := sellableItems(3)

	shares := EvenShare{}.Allocate(lot, items)
	var sum Money
	for _, share := range shares {
		sum = sum.Add(share)
	}
	diff := sum.Amount().Sub(lot.CombinedCost().Amount()).Abs()
	if !diff.LessThan(centEpsilon) {
		t.Errorf("shares sum to %s, diverges from %s by more than a cent", sum, lot.CombinedCost())
	}
}

func TestRetailWeighted(t *testing.T) {
	items := []Item{
		{ID: "a", LotID: "lot-1", Sellable: true, RetailPrice: pUSD(75)},
		{ID: "b", LotID: "lot-1", Sellable: true, RetailPrice: pUSD(25)},
		{ID: "c", LotID: "lot-1", Sellable: true}, // no retail price
	}
	shares := RetailWeighted{}.Allocate(lotOf(100, 0), items)
	if !shares["a"].Equal(USD(75)) {
		t.Errorf("weighted share a = %s, want $75.00", shares["a"])
	}
	if !shares["b"].Equal(USD(25)) {
		t.Errorf("weighted share b = %s, want $25.00", shares["b"])
	}
	if !shares["c"].IsZero() {
		t.Errorf("share without retail price = %s, want zero", shares["c"])
	}
}

func TestRetailWeighted_FallsBackToEven(t *testing.T) {
	shares := RetailWeighted{}.Allocate(lotOf(100, 0), sellableItems(4))
	for id, share := range shares {
		if !share.Equal(USD(25)) {
			t.Errorf("fallback share %q = %s, want $25.00", id, share)
		}
	}
}
