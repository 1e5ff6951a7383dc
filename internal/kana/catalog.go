// Package kana holds the compiled-in kana catalog.
package kana

import (
	"errors"
	"fmt"
	"unicode"
)

// Syllabary identifies one of the two Japanese syllabaries.
type Syllabary int

const (
	Hiragana Syllabary = iota
	Katakana
)

// String implements fmt.Stringer.
func (s Syllabary) String() string {
	switch s {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	}
	return fmt.Sprintf("Syllabary(%d)", int(s))
}

// ErrUnknownSyllabary is returned for syllabary names outside hiragana/katakana.
var ErrUnknownSyllabary = errors.New("unknown syllabary")

// ParseSyllabary parses a syllabary name as used in flags and config.
func ParseSyllabary(name string) (Syllabary, error) {
	switch name {
	case "hiragana", "hira":
		return Hiragana, nil
	case "katakana", "kata":
		return Katakana, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSyllabary, name)
}

// Item is a single kana glyph with its romanization.
type Item struct {
	Glyph  string
	Romaji string
}

// Group is one practice row of a syllabary. Items keep catalog order.
type Group struct {
	Syllabary Syllabary
	Row       string
	Items     []Item
}

// ErrUnknownRow is returned when a row name does not exist for a syllabary.
var ErrUnknownRow = errors.New("unknown kana row")

// BasicRows returns the unvoiced rows of a syllabary in catalog order.
func BasicRows(s Syllabary) []string {
	if s == Katakana {
		return katakanaBasicRows
	}
	return hiraganaBasicRows
}

// DakuonRows returns the voiced rows of a syllabary in catalog order.
func DakuonRows(s Syllabary) []string {
	if s == Katakana {
		return katakanaDakuonRows
	}
	return hiraganaDakuonRows
}

// HandakuonRows returns the semi-voiced rows of a syllabary in catalog order.
func HandakuonRows(s Syllabary) []string {
	if s == Katakana {
		return katakanaHandakuonRows
	}
	return hiraganaHandakuonRows
}

// Rows returns all row names of a syllabary: basic, then dakuon, then handakuon.
func Rows(s Syllabary) []string {
	basic := BasicRows(s)
	dakuon := DakuonRows(s)
	handakuon := HandakuonRows(s)
	out := make([]string, 0, len(basic)+len(dakuon)+len(handakuon))
	out = append(out, basic...)
	out = append(out, dakuon...)
	out = append(out, handakuon...)
	return out
}

// GetGroup looks up one row of a syllabary. The returned items are shared,
// read-only catalog data and must not be modified.
func GetGroup(s Syllabary, row string) (Group, error) {
	rows := hiraganaRows
	if s == Katakana {
		rows = katakanaRows
	}
	items, ok := rows[row]
	if !ok {
		return Group{}, fmt.Errorf("%w: %s %q", ErrUnknownRow, s, row)
	}
	return Group{Syllabary: s, Row: row, Items: items}, nil
}

// SyllabaryOf reports which syllabary a glyph belongs to, based on its
// Unicode block. Glyphs outside both blocks report Hiragana.
func SyllabaryOf(glyph string) Syllabary {
	for _, r := range glyph {
		if unicode.Is(unicode.Katakana, r) {
			return Katakana
		}
		return Hiragana
	}
	return Hiragana
}
