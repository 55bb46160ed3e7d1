package fliplog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file handles the hosted app's export format: a single nested JSON
// document produced by the mobile application's backup/export screen.
// Records are pulled out with jsonpath so that cosmetic changes in the
// surrounding document do not break the import.

// ImportExport reads an app export document and converts it into a Ledger.
//
// One malformed entry never aborts the whole import: it is skipped and
// reported in the returned slice.
func ImportExport(r io.Reader) (*Ledger, []error, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("cannot parse export document: %w", err)
	}

	currency, _ := jsonString(doc, "$.export.currency")

	ledger := NewLedger()
	var skipped []error

	appendAll := func(kind string, records []Record) {
		for _, rec := range records {
			if err := ledger.Append(rec); err != nil {
				skipped = append(skipped, fmt.Errorf("skipping %s: %w", kind, err))
			}
		}
	}

	lots, errs := importLots(doc, currency)
	skipped = append(skipped, errs...)
	appendAll("lot", lots)

	items, errs := importItems(doc, currency)
	skipped = append(skipped, errs...)
	appendAll("item", items)

	expenses, errs := importExpenses(doc, currency)
	skipped = append(skipped, errs...)
	appendAll("expense", expenses)

	trips, errs := importTrips(doc, currency)
	skipped = append(skipped, errs...)
	appendAll("trip", trips)

	if ledger.Len() == 0 && len(skipped) == 0 {
		return nil, nil, fmt.Errorf("export document contains no records")
	}
	return ledger, skipped, nil
}

func importLots(doc any, currency string) (out []Record, skipped []error) {
	for i, entry := range jsonEntries(doc, "$.export.lots") {
		id, _ := jsonString(entry, "$.id")
		name, _ := jsonString(entry, "$.name")
		cost, ok := jsonAmount(entry, "$.acquisitionCost")
		if !ok {
			skipped = append(skipped, fmt.Errorf("skipping lot #%d (%s): no acquisition cost", i, id))
			continue
		}
		day, err := jsonDate(entry, "$.acquisitionDate")
		if err != nil {
			skipped = append(skipped, fmt.Errorf("skipping lot #%d (%s): %w", i, id, err))
			continue
		}
		status, _ := jsonString(entry, "$.status")
		out = append(out, Lot{
			ID:              id,
			Name:            name,
			AcquisitionCost: M(cost, currency),
			TaxAmount:       jsonOptMoney(entry, "$.taxAmount", currency),
			AcquisitionDate: day,
			Status:          LotStatus(status),
		})
	}
	return out, skipped
}

func importItems(doc any, currency string) (out []Record, skipped []error) {
	for i, entry := range jsonEntries(doc, "$.export.items") {
		id, _ := jsonString(entry, "$.id")
		lotID, _ := jsonString(entry, "$.lotId")
		name, _ := jsonString(entry, "$.name")
		sellable := true
		if v, err := jsonpath.Get("$.sellable", entry); err == nil {
			if b, ok := v.(bool); ok {
				sellable = b
			}
		}
		listed, err := jsonOptDate(entry, "$.listingDate")
		if err != nil {
			skipped = append(skipped, fmt.Errorf("skipping item #%d (%s): %w", i, id, err))
			continue
		}
		sold, err := jsonOptDate(entry, "$.saleDate")
		if err != nil {
			skipped = append(skipped, fmt.Errorf("skipping item #%d (%s): %w", i, id, err))
			continue
		}
		status, _ := jsonString(entry, "$.status")
		out = append(out, Item{
			ID:           id,
			LotID:        lotID,
			Name:         name,
			RetailPrice:  jsonOptMoney(entry, "$.retailPrice", currency),
			ListingPrice: jsonOptMoney(entry, "$.listingPrice", currency),
			SalePrice:    jsonOptMoney(entry, "$.salePrice", currency),
			OverrideCost: jsonOptMoney(entry, "$.overrideCost", currency),
			Sellable:     sellable,
			ListingDate:  listed,
			SaleDate:     sold,
			Status:       ItemStatus(status),
		})
	}
	return out, skipped
}

func importExpenses(doc any, currency string) (out []Record, skipped []error) {
	for i, entry := range jsonEntries(doc, "$.export.expenses") {
		id, _ := jsonString(entry, "$.id")
		amount, ok := jsonAmount(entry, "$.amount")
		if !ok {
			skipped = append(skipped, fmt.Errorf("skipping expense #%d (%s): no amount", i, id))
			continue
		}
		day, err := jsonDate(entry, "$.date")
		if err != nil {
			skipped = append(skipped, fmt.Errorf("skipping expense #%d (%s): %w", i, id, err))
			continue
		}
		category, _ := jsonString(entry, "$.category")
		lots := jsonStrings(entry, "$.linkedLotIds")
		if len(lots) == 0 {
			// legacy exports carry a single-lot linkage field
			if single, ok := jsonString(entry, "$.lotId"); ok && single != "" {
				lots = []string{single}
			}
		}
		out = append(out, Expense{
			ID:       id,
			Amount:   M(amount, currency),
			Category: category,
			Date:     day,
			LotIDs:   lots,
		})
	}
	return out, skipped
}

func importTrips(doc any, currency string) (out []Record, skipped []error) {
	for i, entry := range jsonEntries(doc, "$.export.mileage") {
		id, _ := jsonString(entry, "$.id")
		day, err := jsonDate(entry, "$.date")
		if err != nil {
			skipped = append(skipped, fmt.Errorf("skipping trip #%d (%s): %w", i, id, err))
			continue
		}
		miles, ok := jsonAmount(entry, "$.miles")
		if !ok {
			skipped = append(skipped, fmt.Errorf("skipping trip #%d (%s): no miles", i, id))
			continue
		}
		rate, _ := jsonAmount(entry, "$.ratePerMile")
		purpose, _ := jsonString(entry, "$.purpose")
		out = append(out, MileageTrip{
			ID:          id,
			Date:        day,
			Purpose:     purpose,
			Miles:       Q(miles),
			RatePerMile: M(rate, currency),
			LotIDs:      jsonStrings(entry, "$.linkedLotIds"),
		})
	}
	return out, skipped
}

// jsonEntries extracts an array of objects at the given path, tolerating its
// absence.
func jsonEntries(doc any, path string) []any {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	list, _ := v.([]any)
	return list
}

func jsonString(doc any, path string) (string, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func jsonStrings(doc any, path string) []string {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func jsonAmount(doc any, path string) (decimal.Decimal, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return decimal.Zero, false
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}

func jsonOptMoney(doc any, path, currency string) *Money {
	d, ok := jsonAmount(doc, path)
	if !ok {
		return nil
	}
	m := M(d, currency)
	return &m
}

func jsonDate(doc any, path string) (Date, error) {
	s, ok := jsonString(doc, path)
	if !ok || s == "" {
		return Date{}, fmt.Errorf("missing date at %s", path)
	}
	return ParseDate(s)
}

func jsonOptDate(doc any, path string) (Date, error) {
	s, ok := jsonString(doc, path)
	if !ok || s == "" {
		return Date{}, nil
	}
	return ParseDate(s)
}
