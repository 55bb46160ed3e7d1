package fliplog

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Ledger is the in-memory view of the record file. It indexes records for the
// reports but performs no computation itself.
//
// Records in a Ledger are kept in chronological order.
type Ledger struct {
	records []Record

	lots     map[string]Lot      // lots by id
	items    map[string][]string // item ids by lot id
	itemByID map[string]Item
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		lots:     make(map[string]Lot),
		items:    make(map[string][]string),
		itemByID: make(map[string]Item),
	}
}

// Append validates the record against the ledger and appends it.
func (l *Ledger) Append(records ...Record) error {
	for _, r := range records {
		validated, err := r.Validate(l)
		if err != nil {
			return err
		}
		switch rec := validated.(type) {
		case Lot:
			if _, exists := l.lots[rec.ID]; exists {
				return fmt.Errorf("duplicate lot %q", rec.ID)
			}
			l.lots[rec.ID] = rec
		case Item:
			if _, exists := l.itemByID[rec.ID]; exists {
				return fmt.Errorf("duplicate item %q", rec.ID)
			}
			l.itemByID[rec.ID] = rec
			l.items[rec.LotID] = append(l.items[rec.LotID], rec.ID)
		}
		l.records = append(l.records, validated)
	}
	l.sort()
	return nil
}

func (l *Ledger) sort() {
	slices.SortStableFunc(l.records, func(a, b Record) int {
		switch {
		case a.When().Before(b.When()):
			return -1
		case a.When().After(b.When()):
			return 1
		default:
			return 0
		}
	})
}

// UpdateItem replaces an existing item, revalidated against the ledger.
// This is how an item moves through its lifecycle, e.g. recording a sale.
func (l *Ledger) UpdateItem(item Item) error {
	previous, exists := l.itemByID[item.ID]
	if !exists {
		return fmt.Errorf("unknown item %q", item.ID)
	}
	if item.LotID != previous.LotID {
		return fmt.Errorf("item %q cannot move from lot %q to lot %q", item.ID, previous.LotID, item.LotID)
	}
	validated, err := item.Validate(l)
	if err != nil {
		return err
	}
	updated := validated.(Item)
	for i, r := range l.records {
		if it, ok := r.(Item); ok && it.ID == updated.ID {
			l.records[i] = updated
			break
		}
	}
	l.itemByID[updated.ID] = updated
	l.sort()
	return nil
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records iterates over all records in chronological order.
func (l *Ledger) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range l.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Lot returns the lot with the given id.
func (l *Ledger) Lot(id string) (Lot, bool) {
	lot, ok := l.lots[id]
	return lot, ok
}

// Lots returns all lots sorted by acquisition date then id.
func (l *Ledger) Lots() []Lot {
	out := make([]Lot, 0, len(l.lots))
	for _, lot := range l.lots {
		out = append(out, lot)
	}
	slices.SortFunc(out, func(a, b Lot) int {
		switch {
		case a.AcquisitionDate.Before(b.AcquisitionDate):
			return -1
		case a.AcquisitionDate.After(b.AcquisitionDate):
			return 1
		default:
			return strings.Compare(a.ID, b.ID)
		}
	})
	return out
}

// ItemsOf returns the items belonging to a lot, in insertion order.
func (l *Ledger) ItemsOf(lotID string) []Item {
	ids := l.items[lotID]
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, l.itemByID[id])
	}
	return out
}

// Items returns every item in the ledger.
func (l *Ledger) Items() []Item {
	var out []Item
	for _, r := range l.records {
		if item, ok := r.(Item); ok {
			out = append(out, item)
		}
	}
	return out
}

// Expenses returns every expense in chronological order.
func (l *Ledger) Expenses() []Expense {
	var out []Expense
	for _, r := range l.records {
		if e, ok := r.(Expense); ok {
			out = append(out, e)
		}
	}
	return out
}

// ExpensesOf returns the expenses linked to the given lot.
func (l *Ledger) ExpensesOf(lotID string) []Expense {
	var out []Expense
	for _, e := range l.Expenses() {
		if e.LinkedTo(lotID) {
			out = append(out, e)
		}
	}
	return out
}

// Trips returns every mileage trip in chronological order.
func (l *Ledger) Trips() []MileageTrip {
	var out []MileageTrip
	for _, r := range l.records {
		if t, ok := r.(MileageTrip); ok {
			out = append(out, t)
		}
	}
	return out
}
