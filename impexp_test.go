package fliplog

import (
	"strings"
	"testing"
)

const sampleExport = `{
  "export": {
    "version": 2,
    "currency": "USD",
    "lots": [
      {"id": "L1", "name": "tool pallet", "acquisitionCost": 500, "taxAmount": 30, "acquisitionDate": "2025-01-02"},
      {"id": "L2", "acquisitionCost": 100, "acquisitionDate": "not-a-date"}
    ],
    "items": [
      {"id": "I1", "lotId": "L1", "salePrice": 200, "listingDate": "2025-01-03", "saleDate": "2025-01-10", "status": "sold"},
      {"id": "I2", "lotId": "L1", "listingPrice": 45, "sellable": false}
    ],
    "expenses": [
      {"id": "E1", "amount": 50, "category": "fuel", "date": "2025-01-05", "lotId": "L1"}
    ],
    "mileage": [
      {"id": "T1", "date": "2025-01-04", "miles": 100, "ratePerMile": 0.67}
    ]
  }
}`

func TestImportExport(t *testing.T) {
	ledger, skipped, err := ImportExport(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("ImportExport() error = %v", err)
	}

	// L2 carries an invalid date: it is skipped, not fatal
	if len(skipped) != 1 {
		t.Fatalf("skipped = %v, want exactly one entry", skipped)
	}
	if !strings.Contains(skipped[0].Error(), "L2") {
		t.Errorf("skipped entry should name L2, got %v", skipped[0])
	}

	lot, ok := ledger.Lot("L1")
	if !ok {
		t.Fatal("lot L1 not imported")
	}
	if !lot.CombinedCost().Equal(USD(530)) {
		t.Errorf("L1 combined cost = %s, want $530.00", lot.CombinedCost())
	}
	if _, ok := ledger.Lot("L2"); ok {
		t.Error("malformed lot L2 must not be imported")
	}

	items := ledger.ItemsOf("L1")
	if len(items) != 2 {
		t.Fatalf("items of L1 = %d, want 2", len(items))
	}
	if !items[0].IsSold() || !items[0].SalePrice.Equal(USD(200)) {
		t.Errorf("I1 = %+v, want sold for $200.00", items[0])
	}
	if items[1].Sellable {
		t.Error("I2 sellable=false must be preserved")
	}

	expenses := ledger.Expenses()
	if len(expenses) != 1 {
		t.Fatalf("expenses = %d, want 1", len(expenses))
	}
	// the legacy single-lot linkage field becomes a one-element set
	if got := expenses[0].LotIDs; len(got) != 1 || got[0] != "L1" {
		t.Errorf("E1 lots = %v, want [L1]", got)
	}

	trips := ledger.Trips()
	if len(trips) != 1 || !trips[0].Deduction().Equal(USD(67)) {
		t.Errorf("trips = %v, want one $67.00 deduction", trips)
	}
}

func TestImportExport_Empty(t *testing.T) {
	if _, _, err := ImportExport(strings.NewReader(`{"export":{}}`)); err == nil {
		t.Error("an export without records must fail")
	}
	if _, _, err := ImportExport(strings.NewReader(`not json`)); err == nil {
		t.Error("an unparseable document must fail")
	}
}
