package fliplog

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("record", "lot").
		Optional("name", "").         // skipped
		Optional("currency", "USD").  // kept
		Amount("cost", USD(12.5)).
		OptionalAmount("tax", nil).   // skipped
		OptionalAmount("sale", pUSD(3)).
		OptionalDate("sold", Date{}). // skipped
		OptionalDate("date", NewDate(2025, 1, 2))

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"record":"lot","currency":"USD","cost":12.5,"sale":3,"date":"2025-01-02"}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("MarshalJSON() = %s, want {}", got)
	}
}
