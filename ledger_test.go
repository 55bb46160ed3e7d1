package fliplog

import "testing"

func TestUpdateItem(t *testing.T) {
	ledger := NewLedger()
	err := ledger.Append(
		Lot{ID: "l1", AcquisitionCost: USD(100), AcquisitionDate: NewDate(2025, 1, 2)},
		Item{ID: "i1", LotID: "l1", Sellable: true, ListingDate: NewDate(2025, 1, 3)},
	)
	if err != nil {
		t.Fatalf("Append(): %v", err)
	}

	item := ledger.ItemsOf("l1")[0]
	item.SalePrice = pUSD(80)
	item.SaleDate = NewDate(2025, 1, 10)
	item.Status = ""
	if err := ledger.UpdateItem(item); err != nil {
		t.Fatalf("UpdateItem(): %v", err)
	}

	got := ledger.ItemsOf("l1")[0]
	if got.Status != ItemSold {
		t.Errorf("status = %q, want %q after sale", got.Status, ItemSold)
	}
	if got.SalePrice == nil || !got.SalePrice.Equal(USD(80)) {
		t.Errorf("sale price = %v, want $80", got.SalePrice)
	}
	if ledger.Len() != 2 {
		t.Errorf("Len() = %d, want 2: updates must not grow the ledger", ledger.Len())
	}
}

func TestUpdateItemErrors(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.Append(
		Lot{ID: "l1", AcquisitionCost: USD(100), AcquisitionDate: NewDate(2025, 1, 2)},
		Item{ID: "i1", LotID: "l1", Sellable: true},
	); err != nil {
		t.Fatalf("Append(): %v", err)
	}

	if err := ledger.UpdateItem(Item{ID: "nope", LotID: "l1"}); err == nil {
		t.Error("expected an error updating an unknown item")
	}
	if err := ledger.UpdateItem(Item{ID: "i1", LotID: "l2"}); err == nil {
		t.Error("expected an error moving an item to another lot")
	}
	if err := ledger.UpdateItem(Item{ID: "i1", LotID: "l1", Status: ItemSold, SalePrice: pUSD(10)}); err == nil {
		t.Error("expected an error selling an item without a sale date")
	}
}
