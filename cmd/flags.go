package cmd

import (
	"fmt"

	"github.com/fliplog/fliplog"
	"github.com/shopspring/decimal"
)

// parseMoney parses an amount flag in the configured currency.
func parseMoney(s string) (fliplog.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fliplog.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return fliplog.M(d, Settings().Currency), nil
}

// parseOptMoney parses an optional amount flag; empty means absent.
func parseOptMoney(s string) (*fliplog.Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := parseMoney(s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// parseDateFlag parses a date flag; empty means today.
func parseDateFlag(s string) (fliplog.Date, error) {
	if s == "" {
		return fliplog.Today(), nil
	}
	return fliplog.ParseDate(s)
}

// parseRange resolves a period preset or an explicit from/to pair.
// Explicit bounds win over the preset; a missing bound leaves the
// range open on that side.
func parseRange(preset, from, to string) (fliplog.Range, error) {
	if from != "" || to != "" {
		var r fliplog.Range
		var err error
		if from != "" {
			if r.From, err = fliplog.ParseDate(from); err != nil {
				return fliplog.Range{}, fmt.Errorf("invalid start date: %w", err)
			}
		}
		if to != "" {
			if r.To, err = fliplog.ParseDate(to); err != nil {
				return fliplog.Range{}, fmt.Errorf("invalid end date: %w", err)
			}
		}
		return fliplog.NewRange(r.From, r.To), nil
	}

	p, err := fliplog.ParsePreset(preset)
	if err != nil {
		return fliplog.Range{}, err
	}
	return p.Range(fliplog.Today()), nil
}

// parseAllocation resolves the allocation strategy flag.
func parseAllocation(name string, includeUnsellable bool) (fliplog.AllocationStrategy, error) {
	switch name {
	case "", "even":
		return fliplog.EvenShare{IncludeUnsellable: includeUnsellable}, nil
	case "retail":
		return fliplog.RetailWeighted{}, nil
	default:
		return nil, fmt.Errorf("unknown allocation strategy %q (even, retail)", name)
	}
}
