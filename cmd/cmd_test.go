package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fliplog/fliplog"
	"github.com/google/subcommands"
)

func TestMain(m *testing.M) {
	// Point the application at a throwaway ledger before any test can
	// load the settings.
	dir, err := os.MkdirTemp("", "fliplog-cmd-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("FLIPLOG_LEDGER", filepath.Join(dir, "ledger.jsonl"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestParseRange(t *testing.T) {
	r, err := parseRange("q1", "", "")
	if err != nil {
		t.Fatalf("parseRange(q1): %v", err)
	}
	if r.From.Month() != 1 || r.To.Month() != 3 {
		t.Errorf("q1 = %s, want a january to march range", r)
	}

	r, err = parseRange("all", "2025-01-01", "2025-06-30")
	if err != nil {
		t.Fatalf("parseRange(explicit): %v", err)
	}
	want := fliplog.NewRange(fliplog.NewDate(2025, 1, 1), fliplog.NewDate(2025, 6, 30))
	if r != want {
		t.Errorf("explicit bounds = %s, want %s (preset ignored)", r, want)
	}

	r, err = parseRange("all", "2025-01-01", "")
	if err != nil {
		t.Fatalf("parseRange(open end): %v", err)
	}
	if r.From != fliplog.NewDate(2025, 1, 1) || !r.To.IsZero() {
		t.Errorf("open end = %s, want since 2025-01-01", r)
	}

	if _, err := parseRange("fortnight", "", ""); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestParseAllocation(t *testing.T) {
	s, err := parseAllocation("", false)
	if err != nil {
		t.Fatalf("parseAllocation(default): %v", err)
	}
	if _, ok := s.(fliplog.EvenShare); !ok {
		t.Errorf("default strategy = %T, want EvenShare", s)
	}

	s, err = parseAllocation("retail", false)
	if err != nil {
		t.Fatalf("parseAllocation(retail): %v", err)
	}
	if _, ok := s.(fliplog.RetailWeighted); !ok {
		t.Errorf("retail strategy = %T, want RetailWeighted", s)
	}

	if _, err := parseAllocation("random", false); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}

func TestAppendRecordsRoundTrip(t *testing.T) {
	lot := fliplog.Lot{
		ID:              "test-lot",
		Name:            "test pallet",
		AcquisitionCost: fliplog.M(100, "USD"),
		AcquisitionDate: fliplog.NewDate(2025, 3, 1),
	}
	item := fliplog.Item{
		ID:       "test-item",
		LotID:    "test-lot",
		Sellable: true,
	}

	if got := appendRecords(lot, item); got != subcommands.ExitSuccess {
		t.Fatalf("appendRecords() = %v, want success", got)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger(): %v", err)
	}
	if _, ok := ledger.Lot("test-lot"); !ok {
		t.Error("appended lot not found after reload")
	}
	if got := len(ledger.ItemsOf("test-lot")); got != 1 {
		t.Errorf("items of test-lot = %d, want 1", got)
	}

	// A second append of the same ids must be rejected.
	if got := appendRecords(lot); got == subcommands.ExitSuccess {
		t.Error("duplicate append should fail")
	}
}
