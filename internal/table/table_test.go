package table

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizedReindexesToSchema(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "Mercy General", Values: map[string]string{
		"Schedule": "4",
		"Stale":    "1",
	}})

	rows := tbl.Normalized([]string{"Schedule", "Location Fit"})

	want := map[string]string{"Schedule": "4", "Location Fit": DefaultCell}
	if !reflect.DeepEqual(rows[0].Values, want) {
		t.Errorf("normalized values = %v, want %v", rows[0].Values, want)
	}
	if rows[0].Program != "Mercy General" {
		t.Errorf("program = %q, want %q", rows[0].Program, "Mercy General")
	}
}

func TestNormalizedLeavesStoreUntouched(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "X", Values: map[string]string{"Stale": "1"}})

	before := tbl.Rows()
	_ = tbl.Normalized([]string{"A", "B"})

	if !reflect.DeepEqual(tbl.Rows(), before) {
		t.Error("Normalized must not mutate stored rows")
	}
}

func TestNormalizedKeepsEmptyStrings(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "X", Values: map[string]string{"A": ""}})

	rows := tbl.Normalized([]string{"A"})
	if rows[0].Values["A"] != "" {
		t.Errorf("empty cell = %q, want it preserved; defaulting is the parser's job", rows[0].Values["A"])
	}
}

func TestRowMutation(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "First"})
	tbl.Append(Row{Program: "Second"})

	if err := tbl.Update(1, Row{Program: "Renamed"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if tbl.Rows()[1].Program != "Renamed" {
		t.Errorf("program = %q, want %q", tbl.Rows()[1].Program, "Renamed")
	}

	if err := tbl.Delete(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if tbl.Len() != 1 || tbl.Rows()[0].Program != "Renamed" {
		t.Errorf("rows after delete = %v", tbl.Rows())
	}
}

func TestRowIndexErrors(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "Only"})

	tests := []struct {
		name string
		err  error
	}{
		{"update negative", tbl.Update(-1, Row{})},
		{"update past end", tbl.Update(1, Row{})},
		{"delete negative", tbl.Delete(-1)},
		{"delete past end", tbl.Delete(5)},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, ErrRowIndex) {
			t.Errorf("%s: err = %v, want ErrRowIndex", tt.name, tt.err)
		}
	}
}

func TestDuplicateProgramsAllowed(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "Same"})
	tbl.Append(Row{Program: "Same"})

	if tbl.Len() != 2 {
		t.Errorf("len = %d, want 2; duplicates are not deduplicated", tbl.Len())
	}
}

func TestAddColumnFillsOnlyMissing(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "A", Values: map[string]string{"New": "5"}})
	tbl.Append(Row{Program: "B", Values: map[string]string{}})
	tbl.Append(Row{Program: "C"})

	tbl.AddColumn("New")

	rows := tbl.Rows()
	if rows[0].Values["New"] != "5" {
		t.Errorf("existing value overwritten: %q", rows[0].Values["New"])
	}
	if rows[1].Values["New"] != DefaultCell || rows[2].Values["New"] != DefaultCell {
		t.Errorf("missing cells not defaulted: %v / %v", rows[1].Values, rows[2].Values)
	}
}

func TestDropColumns(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "A", Values: map[string]string{"X": "1", "Y": "2"}})

	tbl.DropColumns([]string{"X", "absent"})

	want := map[string]string{"Y": "2"}
	if !reflect.DeepEqual(tbl.Rows()[0].Values, want) {
		t.Errorf("values = %v, want %v", tbl.Rows()[0].Values, want)
	}
}

func TestReadValue(t *testing.T) {
	r := Row{Program: "A", Values: map[string]string{"X": "not a number"}}

	if v, ok := ReadValue(r, "X"); !ok || v != "not a number" {
		t.Errorf("ReadValue = %q, %v; raw values must come back uncoerced", v, ok)
	}
	if _, ok := ReadValue(r, "missing"); ok {
		t.Error("expected missing category to report absence")
	}
}

func TestRowsAreCopies(t *testing.T) {
	tbl := New()
	tbl.Append(Row{Program: "A", Values: map[string]string{"X": "1"}})

	rows := tbl.Rows()
	rows[0].Values["X"] = "tampered"
	rows[0].Program = "tampered"

	if got := tbl.Rows()[0]; got.Program != "A" || got.Values["X"] != "1" {
		t.Errorf("stored row mutated through snapshot: %v", got)
	}
}

func TestReplaceCopiesInput(t *testing.T) {
	tbl := New()
	in := []Row{{Program: "A", Values: map[string]string{"X": "1"}}}
	tbl.Replace(in)

	in[0].Values["X"] = "tampered"

	if got := tbl.Rows()[0].Values["X"]; got != "1" {
		t.Errorf("stored value = %q, want %q", got, "1")
	}
}
