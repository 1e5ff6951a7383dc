package tui

import "testing"

func TestPadCellDoubleWidthGlyphs(t *testing.T) {
	// か is double-width, so padding must go by display width, not rune count.
	got := padCell("か", 4)
	if got != "か  " {
		t.Fatalf("expected two trailing spaces, got %q", got)
	}
	if padCell("ka", 4) != "ka  " {
		t.Fatalf("unexpected padding for ascii cell")
	}
}

func TestPadCellNoTruncation(t *testing.T) {
	if got := padCell("long", 2); got != "long" {
		t.Fatalf("padCell must not truncate, got %q", got)
	}
}

func TestNumberChoices(t *testing.T) {
	got := numberChoices([]string{"ka", "ki"})
	if len(got) != 2 || got[0] != "1) ka" || got[1] != "2) ki" {
		t.Fatalf("unexpected numbering: %v", got)
	}
}

func TestChoiceRowsPairsEntries(t *testing.T) {
	rows := choiceRows([]string{"1) か", "2) き", "3) く"})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for 3 entries, got %d", len(rows))
	}
	if rows[1] != "3) く" {
		t.Fatalf("odd entry must stand alone, got %q", rows[1])
	}
}
