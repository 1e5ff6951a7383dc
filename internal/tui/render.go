// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// padCell right-pads s with spaces to the given display width. Kana glyphs
// are double-width, so byte or rune counts would misalign the columns.
func padCell(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// numberChoices renders choices as "1) x" entries.
func numberChoices(choices []string) []string {
	out := make([]string, 0, len(choices))
	for i, c := range choices {
		out = append(out, fmt.Sprintf("%d) %s", i+1, c))
	}
	return out
}

// choiceRows lays numbered entries out in aligned columns, two per row.
func choiceRows(entries []string) []string {
	cellWidth := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e); w > cellWidth {
			cellWidth = w
		}
	}
	cellWidth += 3

	var rows []string
	for i := 0; i < len(entries); i += 2 {
		if i+1 < len(entries) {
			rows = append(rows, padCell(entries[i], cellWidth)+entries[i+1])
		} else {
			rows = append(rows, entries[i])
		}
	}
	return rows
}
