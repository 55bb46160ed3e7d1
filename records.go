package fliplog

import (
	"fmt"
	"slices"
)

// RecordType is a typed string identifying ledger record kinds.
type RecordType string

const (
	RecLot     RecordType = "lot"
	RecItem    RecordType = "item"
	RecExpense RecordType = "expense"
	RecTrip    RecordType = "trip"
)

// Record defines the common interface for all kinds of records stored in the
// ledger. Records are immutable snapshots: the engine never mutates them and
// always returns new derived values.
type Record interface {
	What() RecordType // What returns the record kind (e.g. "lot", "expense").
	When() Date       // When returns the date the record is anchored to.
	Validate(ledger *Ledger) (Record, error)
}

// LotStatus is the lifecycle state of a lot.
type LotStatus string

const (
	LotOpen     LotStatus = "open"
	LotArchived LotStatus = "archived"
)

// ItemStatus is the sale lifecycle state of an item.
type ItemStatus string

const (
	ItemUnlisted ItemStatus = "unlisted"
	ItemListed   ItemStatus = "listed"
	ItemSold     ItemStatus = "sold"
)

// Lot is a purchased batch of resale inventory (a "pallet").
type Lot struct {
	ID              string
	Name            string
	AcquisitionCost Money
	TaxAmount       *Money // nil when no tax was recorded
	AcquisitionDate Date
	Status          LotStatus
}

func (l Lot) What() RecordType { return RecLot }
func (l Lot) When() Date       { return l.AcquisitionDate }

// CombinedCost returns acquisition cost plus tax, treating absent tax as zero.
func (l Lot) CombinedCost() Money {
	if l.TaxAmount == nil {
		return l.AcquisitionCost
	}
	return l.AcquisitionCost.Add(*l.TaxAmount)
}

func (l Lot) Validate(ledger *Ledger) (Record, error) {
	if l.ID == "" {
		return nil, fmt.Errorf("lot has no id")
	}
	if l.AcquisitionDate.IsZero() {
		return nil, fmt.Errorf("lot %q has no acquisition date", l.ID)
	}
	if l.AcquisitionCost.IsNegative() {
		return nil, fmt.Errorf("lot %q has negative acquisition cost %s", l.ID, l.AcquisitionCost)
	}
	if l.TaxAmount != nil && l.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("lot %q has negative tax amount %s", l.ID, l.TaxAmount)
	}
	if l.Status == "" {
		l.Status = LotOpen
	}
	if l.Status != LotOpen && l.Status != LotArchived {
		return nil, fmt.Errorf("lot %q has unknown status %q", l.ID, l.Status)
	}
	return l, nil
}

// Item is a single inventory unit belonging to a lot, tracked from listing to
// sale. Its allocated cost is always derived, never stored.
type Item struct {
	ID           string
	LotID        string
	Name         string
	RetailPrice  *Money // estimated retail value, nil when unknown
	ListingPrice *Money
	SalePrice    *Money
	OverrideCost *Money // manual per-item cost, wins over the allocated share
	Sellable     bool
	ListingDate  Date // zero when not listed yet
	SaleDate     Date // zero when not sold yet
	Status       ItemStatus
}

func (i Item) What() RecordType { return RecItem }

// When anchors an item to its sale date when sold, otherwise its listing date.
func (i Item) When() Date {
	if !i.SaleDate.IsZero() {
		return i.SaleDate
	}
	return i.ListingDate
}

func (i Item) Validate(ledger *Ledger) (Record, error) {
	if i.ID == "" {
		return nil, fmt.Errorf("item has no id")
	}
	if i.LotID == "" {
		return nil, fmt.Errorf("item %q belongs to no lot", i.ID)
	}
	if ledger != nil {
		if _, ok := ledger.Lot(i.LotID); !ok {
			return nil, fmt.Errorf("item %q references unknown lot %q", i.ID, i.LotID)
		}
	}
	for _, p := range []struct {
		name  string
		value *Money
	}{
		{"retail price", i.RetailPrice},
		{"listing price", i.ListingPrice},
		{"sale price", i.SalePrice},
		{"override cost", i.OverrideCost},
	} {
		if p.value != nil && p.value.IsNegative() {
			return nil, fmt.Errorf("item %q has negative %s %s", i.ID, p.name, p.value)
		}
	}
	if i.Status == "" {
		switch {
		case !i.SaleDate.IsZero() || i.SalePrice != nil:
			i.Status = ItemSold
		case !i.ListingDate.IsZero():
			i.Status = ItemListed
		default:
			i.Status = ItemUnlisted
		}
	}
	switch i.Status {
	case ItemUnlisted, ItemListed, ItemSold:
	default:
		return nil, fmt.Errorf("item %q has unknown status %q", i.ID, i.Status)
	}
	if i.Status == ItemSold && i.SaleDate.IsZero() {
		return nil, fmt.Errorf("item %q is sold but has no sale date", i.ID)
	}
	if !i.SaleDate.IsZero() && !i.ListingDate.IsZero() && i.SaleDate.Before(i.ListingDate) {
		return nil, fmt.Errorf("item %q sold on %s before being listed on %s", i.ID, i.SaleDate, i.ListingDate)
	}
	return i, nil
}

// IsSold reports whether the item reached the sold state.
func (i Item) IsSold() bool { return i.Status == ItemSold }

// Expense is a business expense, optionally shared across several lots.
// An expense linked to no lot is excluded from lot aggregation but still
// counts toward the period report's unlinked total.
type Expense struct {
	ID       string
	Amount   Money
	Category string
	Date     Date
	LotIDs   []string // set semantics, normalized on Validate
}

func (e Expense) What() RecordType { return RecExpense }
func (e Expense) When() Date       { return e.Date }

func (e Expense) Validate(ledger *Ledger) (Record, error) {
	if e.ID == "" {
		return nil, fmt.Errorf("expense has no id")
	}
	if e.Date.IsZero() {
		return nil, fmt.Errorf("expense %q has no date", e.ID)
	}
	if e.Amount.IsNegative() {
		return nil, fmt.Errorf("expense %q has negative amount %s", e.ID, e.Amount)
	}
	e.LotIDs = normalizeLotIDs(e.LotIDs)
	if ledger != nil {
		for _, id := range e.LotIDs {
			if _, ok := ledger.Lot(id); !ok {
				return nil, fmt.Errorf("expense %q references unknown lot %q", e.ID, id)
			}
		}
	}
	return e, nil
}

// LinkedTo reports whether the expense is linked to the given lot.
func (e Expense) LinkedTo(lotID string) bool { return slices.Contains(e.LotIDs, lotID) }

// MileageTrip is a logged business trip. The per-mile rate is captured at
// trip-creation time so historical trips remain accurate if the standard rate
// later changes.
type MileageTrip struct {
	ID          string
	Date        Date
	Purpose     string
	Miles       Quantity
	RatePerMile Money
	LotIDs      []string
}

func (t MileageTrip) What() RecordType { return RecTrip }
func (t MileageTrip) When() Date       { return t.Date }

func (t MileageTrip) Validate(ledger *Ledger) (Record, error) {
	if t.ID == "" {
		return nil, fmt.Errorf("trip has no id")
	}
	if t.Date.IsZero() {
		return nil, fmt.Errorf("trip %q has no date", t.ID)
	}
	if t.Miles.IsNegative() {
		return nil, fmt.Errorf("trip %q has negative miles %s", t.ID, t.Miles)
	}
	if t.RatePerMile.IsNegative() {
		return nil, fmt.Errorf("trip %q has negative rate per mile %s", t.ID, t.RatePerMile)
	}
	t.LotIDs = normalizeLotIDs(t.LotIDs)
	return t, nil
}

// Deduction returns the monetary deduction for this single trip.
func (t MileageTrip) Deduction() Money { return t.RatePerMile.Mul(t.Miles) }

// normalizeLotIDs deduplicates lot links while preserving order and dropping
// empty ids.
func normalizeLotIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
