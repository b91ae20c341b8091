package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	cols := []Column{{Header: "#", Align: AlignRight}, {Header: "label"}, {Header: "range"}}
	rows := [][]string{
		{"0", "First", "0-50"},
		{"10", "Second", "50-100"},
	}
	got := Format(cols, rows)
	want := []string{
		" #  label   range",
		" 0  First   0-50",
		"10  Second  50-100",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatWithoutHeaders(t *testing.T) {
	got := Format([]Column{{}, {}}, [][]string{{"a", "b"}, {"ccc", "d"}})
	if len(got) != 2 {
		t.Fatalf("expected no header row, got %q", got)
	}
	if got[0] != "a    b" {
		t.Fatalf("unexpected first row %q", got[0])
	}
}

func TestFormatMeasuresStyledCells(t *testing.T) {
	styled := "\x1b[1mbold\x1b[0m"
	got := Format([]Column{{}, {}}, [][]string{{styled, "x"}, {"plain", "y"}})
	if got[0] != styled+"   x" {
		t.Fatalf("expected escape codes to take no width, got %q", got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, [][]string{{"a"}}); got != nil {
		t.Fatalf("expected nil for no columns, got %q", got)
	}
}

func TestWidth(t *testing.T) {
	if got := Width(3, 4, 5); got != 16 {
		t.Fatalf("expected 16, got %d", got)
	}
}
