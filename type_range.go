package fliplog

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// Range represents a range of dates, boundaries included.
//
// A zero From or To bound means the range is unbounded on that side; the zero
// Range contains every date.
type Range struct{ From, To Date }

// NewRange creates a new bounded date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// IsUnbounded returns true when the range has no bound on either side.
func (r Range) IsUnbounded() bool { return r.From.IsZero() && r.To.IsZero() }

func (r Range) String() string {
	switch {
	case r.IsUnbounded():
		return "all time"
	case r.From.IsZero():
		return fmt.Sprintf("until %s", r.To)
	case r.To.IsZero():
		return fmt.Sprintf("since %s", r.From)
	default:
		return fmt.Sprintf("%s to %s", r.From, r.To)
	}
}

// Days returns an iterator that yields each date within a bounded range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Periods returns an iterator that yields each sequential range of a given
// period 'p' that contains at least one day within the original range 'r'.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for current := r.From; !current.After(r.To); {
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			// Move to the day after the end of the yielded period.
			current = periodRange.To.Add(1)
		}
	}
}

// Preset is a named, clock-relative date range used for filtering reports.
type Preset int

const (
	PresetAll Preset = iota
	PresetThisMonth
	PresetThisQuarter
	PresetLastQuarter
	PresetThisYear
	PresetLastYear
	PresetQ1
	PresetQ2
	PresetQ3
	PresetQ4
)

func (p Preset) String() string {
	switch p {
	case PresetAll:
		return "all"
	case PresetThisMonth:
		return "this_month"
	case PresetThisQuarter:
		return "this_quarter"
	case PresetLastQuarter:
		return "last_quarter"
	case PresetThisYear:
		return "this_year"
	case PresetLastYear:
		return "last_year"
	case PresetQ1:
		return "q1"
	case PresetQ2:
		return "q2"
	case PresetQ3:
		return "q3"
	case PresetQ4:
		return "q4"
	default:
		return "unknown"
	}
}

// ParsePreset parses a preset name. "all" and "custom" both resolve to the
// unbounded preset.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "custom", "":
		return PresetAll, nil
	case "this_month":
		return PresetThisMonth, nil
	case "this_quarter":
		return PresetThisQuarter, nil
	case "last_quarter":
		return PresetLastQuarter, nil
	case "this_year":
		return PresetThisYear, nil
	case "last_year":
		return PresetLastYear, nil
	case "q1":
		return PresetQ1, nil
	case "q2":
		return PresetQ2, nil
	case "q3":
		return PresetQ3, nil
	case "q4":
		return PresetQ4, nil
	default:
		return PresetAll, fmt.Errorf("unknown period preset %q", s)
	}
}

// Range resolves the preset against an explicit "today". Presets are resolved
// at call time, never memoized.
//
// Named quarters (q1..q4) always resolve to the current calendar year
// regardless of the current month, unlike this_quarter which resolves to the
// quarter containing today.
func (p Preset) Range(today Date) Range {
	switch p {
	case PresetAll:
		return Range{}
	case PresetThisMonth:
		return Monthly.Range(today)
	case PresetThisQuarter:
		return Quarterly.Range(today)
	case PresetLastQuarter:
		return Quarterly.Range(today.StartOf(Quarterly).Add(-1))
	case PresetThisYear:
		return Yearly.Range(today)
	case PresetLastYear:
		return Yearly.Range(NewDate(today.Year()-1, time.January, 1))
	case PresetQ1, PresetQ2, PresetQ3, PresetQ4:
		q := int(p - PresetQ1) // in [0..3]
		return Quarterly.Range(NewDate(today.Year(), time.Month(q*3+1), 1))
	default:
		panic("unknown preset")
	}
}
