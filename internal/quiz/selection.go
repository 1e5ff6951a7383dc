package quiz

import (
	"github.com/yomikata/kanaq/internal/kana"
)

// Selection tracks the learner's chosen practice groups in insertion order.
type Selection struct {
	groups []kana.Group
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Toggle adds the group if absent and removes it if present, so toggling
// twice restores the prior state. Unknown rows fail with kana.ErrUnknownRow.
func (s *Selection) Toggle(syl kana.Syllabary, row string) error {
	g, err := kana.GetGroup(syl, row)
	if err != nil {
		return err
	}
	for i, cur := range s.groups {
		if cur.Syllabary == syl && cur.Row == row {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			return nil
		}
	}
	s.groups = append(s.groups, g)
	return nil
}

// Contains reports whether the group is currently selected.
func (s *Selection) Contains(syl kana.Syllabary, row string) bool {
	for _, cur := range s.groups {
		if cur.Syllabary == syl && cur.Row == row {
			return true
		}
	}
	return false
}

// Len returns the number of selected groups.
func (s *Selection) Len() int {
	return len(s.groups)
}

// Ready reports whether a session may start from this selection.
func (s *Selection) Ready() bool {
	return len(s.groups) > 0
}

// Clear removes all selected groups.
func (s *Selection) Clear() {
	s.groups = nil
}

// Pool flattens the selected groups into one item list, groups in selection
// order and items in catalog order.
func (s *Selection) Pool() []kana.Item {
	var pool []kana.Item
	for _, g := range s.groups {
		pool = append(pool, g.Items...)
	}
	return pool
}

// DistinctRomaji returns the unique romanizations in the pool, first seen
// first.
func (s *Selection) DistinctRomaji() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, it := range s.Pool() {
		if _, ok := seen[it.Romaji]; ok {
			continue
		}
		seen[it.Romaji] = struct{}{}
		out = append(out, it.Romaji)
	}
	return out
}
