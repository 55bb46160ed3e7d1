package fliplog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is JSONL: one record per line, identified by a "record"
// discriminator. Lots must appear before the items that reference them; the
// canonical encoder guarantees that order.

// baseRec carries the fields shared by every record line.
type baseRec struct {
	Record   RecordType `json:"record"`
	ID       string     `json:"id"`
	Date     Date       `json:"date"`
	Currency string     `json:"currency,omitempty"`
}

type jlot struct {
	baseRec
	Name   string           `json:"name,omitempty"`
	Cost   decimal.Decimal  `json:"cost"`
	Tax    *decimal.Decimal `json:"tax,omitempty"`
	Status LotStatus        `json:"status,omitempty"`
}

type jitem struct {
	baseRec
	Lot      string           `json:"lot"`
	Name     string           `json:"name,omitempty"`
	Retail   *decimal.Decimal `json:"retail,omitempty"`
	Listing  *decimal.Decimal `json:"listing,omitempty"`
	Sale     *decimal.Decimal `json:"sale,omitempty"`
	Cost     *decimal.Decimal `json:"cost,omitempty"` // manual cost override
	Sellable *bool            `json:"sellable,omitempty"`
	Listed   Date             `json:"listed,omitzero"`
	Sold     Date             `json:"sold,omitzero"`
	Status   ItemStatus       `json:"status,omitempty"`
}

type jexpense struct {
	baseRec
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category,omitempty"`
	Lots     []string        `json:"lots,omitempty"`
	Lot      string          `json:"lot,omitempty"` // legacy single-lot linkage
}

type jtrip struct {
	baseRec
	Miles   Quantity        `json:"miles"`
	Rate    decimal.Decimal `json:"rate"`
	Purpose string          `json:"purpose,omitempty"`
	Lots    []string        `json:"lots,omitempty"`
}

func optMoney(d *decimal.Decimal, currency string) *Money {
	if d == nil {
		return nil
	}
	m := M(*d, currency)
	return &m
}

// DecodeLedger decodes records from a stream of JSONL data, decodes each line
// into the appropriate record struct, and returns a validated Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		var decoded Record
		switch identifier.Record {
		case RecLot:
			var temp jlot
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("invalid lot line %q: %w", string(lineBytes), err)
			}
			decoded = Lot{
				ID:              temp.ID,
				Name:            temp.Name,
				AcquisitionCost: M(temp.Cost, temp.Currency),
				TaxAmount:       optMoney(temp.Tax, temp.Currency),
				AcquisitionDate: temp.Date,
				Status:          temp.Status,
			}
		case RecItem:
			var temp jitem
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("invalid item line %q: %w", string(lineBytes), err)
			}
			sellable := true
			if temp.Sellable != nil {
				sellable = *temp.Sellable
			}
			decoded = Item{
				ID:           temp.ID,
				LotID:        temp.Lot,
				Name:         temp.Name,
				RetailPrice:  optMoney(temp.Retail, temp.Currency),
				ListingPrice: optMoney(temp.Listing, temp.Currency),
				SalePrice:    optMoney(temp.Sale, temp.Currency),
				OverrideCost: optMoney(temp.Cost, temp.Currency),
				Sellable:     sellable,
				ListingDate:  temp.Listed,
				SaleDate:     temp.Sold,
				Status:       temp.Status,
			}
		case RecExpense:
			var temp jexpense
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("invalid expense line %q: %w", string(lineBytes), err)
			}
			lots := temp.Lots
			if len(lots) == 0 && temp.Lot != "" {
				// legacy single-lot field becomes a one-element set
				lots = []string{temp.Lot}
			}
			decoded = Expense{
				ID:       temp.ID,
				Amount:   M(temp.Amount, temp.Currency),
				Category: temp.Category,
				Date:     temp.Date,
				LotIDs:   lots,
			}
		case RecTrip:
			var temp jtrip
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("invalid trip line %q: %w", string(lineBytes), err)
			}
			decoded = MileageTrip{
				ID:          temp.ID,
				Date:        temp.Date,
				Purpose:     temp.Purpose,
				Miles:       temp.Miles,
				RatePerMile: M(temp.Rate, temp.Currency),
				LotIDs:      temp.Lots,
			}
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(lineBytes))
		}

		if err := ledger.Append(decoded); err != nil {
			return nil, fmt.Errorf("invalid record in line %q: %w", string(lineBytes), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return ledger, nil
}

// EncodeRecord appends a single record as one JSONL line.
func EncodeRecord(w io.Writer, r Record) error {
	var obj *jsonObjectWriter
	switch rec := r.(type) {
	case Lot:
		obj = new(jsonObjectWriter)
		obj.Append("record", RecLot).
			Append("id", rec.ID).
			Append("date", rec.AcquisitionDate).
			Optional("name", rec.Name).
			Amount("cost", rec.AcquisitionCost).
			OptionalAmount("tax", rec.TaxAmount).
			Optional("currency", rec.AcquisitionCost.Currency()).
			Optional("status", string(rec.Status))
	case Item:
		obj = new(jsonObjectWriter)
		obj.Append("record", RecItem).
			Append("id", rec.ID).
			Append("lot", rec.LotID).
			Optional("name", rec.Name).
			OptionalAmount("retail", rec.RetailPrice).
			OptionalAmount("listing", rec.ListingPrice).
			OptionalAmount("sale", rec.SalePrice).
			OptionalAmount("cost", rec.OverrideCost).
			Optional("currency", itemCurrency(rec))
		if !rec.Sellable {
			obj.Append("sellable", false)
		}
		obj.OptionalDate("date", rec.When()).
			OptionalDate("listed", rec.ListingDate).
			OptionalDate("sold", rec.SaleDate).
			Optional("status", string(rec.Status))
	case Expense:
		obj = new(jsonObjectWriter)
		obj.Append("record", RecExpense).
			Append("id", rec.ID).
			Append("date", rec.Date).
			Amount("amount", rec.Amount).
			Optional("currency", rec.Amount.Currency()).
			Optional("category", rec.Category)
		if len(rec.LotIDs) > 0 {
			obj.Append("lots", rec.LotIDs)
		}
	case MileageTrip:
		obj = new(jsonObjectWriter)
		obj.Append("record", RecTrip).
			Append("id", rec.ID).
			Append("date", rec.Date).
			Append("miles", rec.Miles).
			Amount("rate", rec.RatePerMile).
			Optional("currency", rec.RatePerMile.Currency()).
			Optional("purpose", rec.Purpose)
		if len(rec.LotIDs) > 0 {
			obj.Append("lots", rec.LotIDs)
		}
	default:
		return fmt.Errorf("unknown record type %T", r)
	}

	line, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", r.What(), err)
	}
	if _, err := w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("writing %s record: %w", r.What(), err)
	}
	return nil
}

// itemCurrency returns the currency carried by the item's first money field.
func itemCurrency(i Item) string {
	for _, m := range []*Money{i.RetailPrice, i.ListingPrice, i.SalePrice, i.OverrideCost} {
		if m != nil && m.Currency() != "" {
			return m.Currency()
		}
	}
	return ""
}

// EncodeLedger writes the whole ledger in canonical form: lots first (so that
// decoding can resolve item references), then the remaining records in
// chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, lot := range l.Lots() {
		if err := EncodeRecord(w, lot); err != nil {
			return err
		}
	}
	for r := range l.Records() {
		if _, ok := r.(Lot); ok {
			continue
		}
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}
