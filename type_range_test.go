package fliplog

import (
	"reflect"
	"slices"
	"testing"
)

func TestNewRange_SwapsReversedBounds(t *testing.T) {
	got := NewRange(NewDate(2025, 3, 31), NewDate(2025, 1, 1))
	want := Range{From: NewDate(2025, 1, 1), To: NewDate(2025, 3, 31)}
	if got != want {
		t.Errorf("NewRange(reversed) = %v, want %v", got, want)
	}
	// a zero bound stays open, never swapped
	if got := NewRange(NewDate(2025, 3, 31), Date{}); !got.To.IsZero() {
		t.Errorf("NewRange(from, zero) = %v, want open end", got)
	}
}

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		d    Date
		want bool
	}{
		{"inside", NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31)), NewDate(2025, 2, 15), true},
		{"start bound included", NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31)), NewDate(2025, 1, 1), true},
		{"end bound included", NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31)), NewDate(2025, 3, 31), true},
		{"before", NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31)), NewDate(2024, 12, 31), false},
		{"after", NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31)), NewDate(2025, 4, 1), false},
		{"no start bound", Range{To: NewDate(2025, 3, 31)}, NewDate(1999, 1, 1), true},
		{"no end bound", Range{From: NewDate(2025, 1, 1)}, NewDate(2999, 1, 1), true},
		{"unbounded contains everything", Range{}, NewDate(2025, 6, 15), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.d); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestRange_Periods(t *testing.T) {
	r := NewRange(NewDate(2024, 2, 15), NewDate(2024, 4, 10))
	expected := []Range{
		NewRange(NewDate(2024, 2, 1), NewDate(2024, 2, 29)),
		NewRange(NewDate(2024, 3, 1), NewDate(2024, 3, 31)),
		NewRange(NewDate(2024, 4, 1), NewDate(2024, 4, 30)),
	}
	got := slices.Collect(r.Periods(Monthly))
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Range.Periods() = %v, want %v", got, expected)
	}
}

func TestPreset_Range(t *testing.T) {
	// presets resolve from an explicit "today", never from the wall clock
	today := NewDate(2025, 8, 20) // a Q3 day

	tests := []struct {
		preset string
		want   Range
	}{
		{"this_month", NewRange(NewDate(2025, 8, 1), NewDate(2025, 8, 31))},
		{"this_quarter", NewRange(NewDate(2025, 7, 1), NewDate(2025, 9, 30))},
		{"last_quarter", NewRange(NewDate(2025, 4, 1), NewDate(2025, 6, 30))},
		{"this_year", NewRange(NewDate(2025, 1, 1), NewDate(2025, 12, 31))},
		{"last_year", NewRange(NewDate(2024, 1, 1), NewDate(2024, 12, 31))},
		// named quarters resolve to the current calendar year whatever the
		// current month
		{"q1", NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31))},
		{"q2", NewRange(NewDate(2025, 4, 1), NewDate(2025, 6, 30))},
		{"q3", NewRange(NewDate(2025, 7, 1), NewDate(2025, 9, 30))},
		{"q4", NewRange(NewDate(2025, 10, 1), NewDate(2025, 12, 31))},
		{"all", Range{}},
		{"custom", Range{}},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			p, err := ParsePreset(tt.preset)
			if err != nil {
				t.Fatalf("ParsePreset(%q) error = %v", tt.preset, err)
			}
			if got := p.Range(today); got != tt.want {
				t.Errorf("Range(%s) = %v, want %v", today, got, tt.want)
			}
		})
	}
}

func TestPreset_Q1FromAnyToday(t *testing.T) {
	p, _ := ParsePreset("q1")
	for _, today := range []Date{
		NewDate(2025, 1, 1), NewDate(2025, 6, 15), NewDate(2025, 12, 31),
	} {
		want := NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31))
		if got := p.Range(today); got != want {
			t.Errorf("q1 from %s = %v, want %v", today, got, want)
		}
	}
}

func TestParsePreset_Unknown(t *testing.T) {
	if _, err := ParsePreset("fortnight"); err == nil {
		t.Error("ParsePreset() expected an error for an unknown preset")
	}
}
