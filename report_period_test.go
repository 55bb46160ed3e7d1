package fliplog

import (
	"reflect"
	"testing"
)

func periodFixture() (lots []Lot, items []Item, expenses []Expense, trips []MileageTrip) {
	lots = []Lot{
		{ID: "jan", AcquisitionCost: USD(200), AcquisitionDate: NewDate(2025, 1, 5)},
		{ID: "apr", AcquisitionCost: USD(300), TaxAmount: pUSD(24), AcquisitionDate: NewDate(2025, 4, 2)},
	}
	items = []Item{
		{ID: "i1", LotID: "jan", Status: ItemSold, SalePrice: pUSD(120), ListingDate: NewDate(2025, 1, 7), SaleDate: NewDate(2025, 1, 14)},
		{ID: "i2", LotID: "jan", Status: ItemSold, SalePrice: pUSD(80), ListingDate: NewDate(2025, 2, 1), SaleDate: NewDate(2025, 2, 4)},
		{ID: "i3", LotID: "apr", Status: ItemListed, ListingPrice: pUSD(60), ListingDate: NewDate(2025, 4, 4)},
	}
	expenses = []Expense{
		{ID: "e1", Amount: USD(40), Date: NewDate(2025, 1, 20), LotIDs: []string{"jan"}},
		{ID: "e2", Amount: USD(15), Date: NewDate(2025, 2, 10)}, // unlinked
		{ID: "e3", Amount: USD(33), Date: NewDate(2025, 5, 1), LotIDs: []string{"apr"}},
	}
	trips = []MileageTrip{
		{ID: "t1", Date: NewDate(2025, 1, 6), Miles: Q(100), RatePerMile: USD(0.67)},
		{ID: "t2", Date: NewDate(2025, 4, 3), Miles: Q(20), RatePerMile: USD(0.67)},
	}
	return
}

func TestPeriodFilters(t *testing.T) {
	lots, items, expenses, trips := periodFixture()
	q1 := NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31))

	sold := ItemsSoldIn(items, q1)
	if len(sold) != 2 {
		t.Fatalf("ItemsSoldIn(q1) = %d items, want 2", len(sold))
	}
	if got := ExpensesIn(expenses, q1); len(got) != 2 {
		t.Errorf("ExpensesIn(q1) = %d, want 2", len(got))
	}
	if got := TripsIn(trips, q1); len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("TripsIn(q1) = %v, want only t1", got)
	}
	if got := LotsAcquiredIn(lots, q1); len(got) != 1 || got[0].ID != "jan" {
		t.Errorf("LotsAcquiredIn(q1) = %v, want only jan", got)
	}

	// unbounded range includes everything
	if got := ExpensesIn(expenses, Range{}); len(got) != 3 {
		t.Errorf("ExpensesIn(all) = %d, want 3", len(got))
	}
}

func TestNewPeriodReport(t *testing.T) {
	lots, items, expenses, trips := periodFixture()
	q1 := NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31))

	r := NewPeriodReport(lots, items, expenses, trips, q1)

	if want := USD(200); !r.Revenue.Equal(want) {
		t.Errorf("Revenue = %s, want %s", r.Revenue, want)
	}
	if want := USD(200); !r.LotSpend.Equal(want) {
		t.Errorf("LotSpend = %s, want %s", r.LotSpend, want)
	}
	if want := USD(40); !r.LinkedExpenses.Equal(want) {
		t.Errorf("LinkedExpenses = %s, want %s", r.LinkedExpenses, want)
	}
	if want := USD(15); !r.UnlinkedExpenses.Equal(want) {
		t.Errorf("UnlinkedExpenses = %s, want %s", r.UnlinkedExpenses, want)
	}
	if want := USD(67); !r.Mileage.TotalDeduction.Equal(want) {
		t.Errorf("Mileage deduction = %s, want %s", r.Mileage.TotalDeduction, want)
	}
	// 200 - 200 - 40 - 15 - 67
	if want := USD(-122); !r.NetProfit.Equal(want) {
		t.Errorf("NetProfit = %s, want %s", r.NetProfit, want)
	}
	if r.ItemsSold != 2 {
		t.Errorf("ItemsSold = %d, want 2", r.ItemsSold)
	}
	// i1 took 7 days, i2 took 3 days
	if !r.HasAvgDaysToSell || r.AvgDaysToSell != 5 {
		t.Errorf("AvgDaysToSell = (%v,%v), want (5,true)", r.AvgDaysToSell, r.HasAvgDaysToSell)
	}
}

func TestNewPeriodReport_SkipAndContinue(t *testing.T) {
	items := []Item{
		{ID: "ok", LotID: "a", Status: ItemSold, SalePrice: pUSD(10), SaleDate: NewDate(2025, 1, 5)},
		{ID: "broken", LotID: "a", Status: ItemSold, SaleDate: NewDate(2025, 1, 6)}, // sold with no price
	}
	trips := []MileageTrip{
		{ID: "bad", Date: NewDate(2025, 1, 7), Miles: Q(-5), RatePerMile: USD(0.67)},
	}
	r := NewPeriodReport(nil, items, nil, trips, Range{})
	if r.ItemsSold != 1 {
		t.Errorf("ItemsSold = %d, want 1", r.ItemsSold)
	}
	if r.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2 (one item, one trip)", r.Skipped)
	}
	if want := USD(10); !r.Revenue.Equal(want) {
		t.Errorf("Revenue = %s, want %s", r.Revenue, want)
	}
}

func TestNewPeriodReport_Idempotent(t *testing.T) {
	lots, items, expenses, trips := periodFixture()
	rng := NewRange(NewDate(2025, 1, 1), NewDate(2025, 12, 31))

	first := NewPeriodReport(lots, items, expenses, trips, rng)
	second := NewPeriodReport(lots, items, expenses, trips, rng)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation diverges:\n%+v\n%+v", first, second)
	}
}

func TestNewHistoryReport(t *testing.T) {
	lots, items, expenses, trips := periodFixture()
	rng := NewRange(NewDate(2025, 1, 1), NewDate(2025, 6, 30))

	rows := NewHistoryReport(lots, items, expenses, trips, rng, Quarterly)
	if len(rows) != 2 {
		t.Fatalf("history rows = %d, want 2 quarters", len(rows))
	}
	if want := NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31)); rows[0].Range != want {
		t.Errorf("first bucket = %v, want %v", rows[0].Range, want)
	}
	if want := USD(200); !rows[0].Report.Revenue.Equal(want) {
		t.Errorf("Q1 revenue = %s, want %s", rows[0].Report.Revenue, want)
	}
	if rows[1].Report.ItemsSold != 0 {
		t.Errorf("Q2 sold = %d, want 0", rows[1].Report.ItemsSold)
	}
	if want := USD(324); !rows[1].Report.LotSpend.Equal(want) {
		t.Errorf("Q2 lot spend = %s, want %s", rows[1].Report.LotSpend, want)
	}
}
