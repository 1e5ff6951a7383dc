package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yomikata/kanaq/internal/kana"
)

// Generator produces one question at a time for the current stage. It keeps a
// single-slot recency guard per question kind so the same answer is never
// asked twice in a row while the pool offers an alternative.
type Generator struct {
	rnd *rand.Rand

	lastRomaji string
	lastItem   *kana.Item
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for deterministic runs.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Reset clears the recency guards.
func (g *Generator) Reset() {
	g.lastRomaji = ""
	g.lastItem = nil
}

// Next builds a question for the given stage from the current selection.
func (g *Generator) Next(stage int, sel *Selection) (Question, error) {
	switch stage {
	case 0:
		return g.chooseRomaji(sel)
	case 1:
		return g.chooseKana(sel)
	case 2:
		return g.typeRomaji(sel)
	case 3:
		return g.typeSequence(sel)
	}
	return nil, fmt.Errorf("no such stage: %d", stage)
}

func (g *Generator) chooseRomaji(sel *Selection) (Question, error) {
	romaji := sel.DistinctRomaji()
	if len(romaji) == 0 {
		return nil, fmt.Errorf("%w: no romanizations in pool", ErrPoolTooSmall)
	}
	target := romaji[g.rnd.Intn(len(romaji))]
	for len(romaji) > 1 && target == g.lastRomaji {
		target = romaji[g.rnd.Intn(len(romaji))]
	}
	g.lastRomaji = target

	q := ChooseRomaji{Answer: target}
	for _, it := range sel.Pool() {
		if it.Romaji != target {
			continue
		}
		if kana.SyllabaryOf(it.Glyph) == kana.Hiragana {
			if q.Hira == "" {
				q.Hira = it.Glyph
			}
		} else if q.Kata == "" {
			q.Kata = it.Glyph
		}
	}

	distractors := make([]string, 0, len(romaji)-1)
	for _, r := range romaji {
		if r != target {
			distractors = append(distractors, r)
		}
	}
	choices := append(g.sampleStrings(distractors, 3), target)
	g.rnd.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	q.Choices = choices
	return q, nil
}

func (g *Generator) chooseKana(sel *Selection) (Question, error) {
	target, err := g.pickItem(sel)
	if err != nil {
		return nil, err
	}
	prev := g.lastItem
	g.lastItem = &target

	targetSyl := kana.SyllabaryOf(target.Glyph)
	var candidates []kana.Item
	for _, it := range sel.Pool() {
		if kana.SyllabaryOf(it.Glyph) != targetSyl || it == target {
			continue
		}
		if prev != nil && it == *prev {
			continue
		}
		candidates = append(candidates, it)
	}

	choices := append(g.sampleItems(candidates, 3), target)
	g.rnd.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	return ChooseKana{Romaji: target.Romaji, Answer: target, Choices: choices}, nil
}

func (g *Generator) typeRomaji(sel *Selection) (Question, error) {
	target, err := g.pickItem(sel)
	if err != nil {
		return nil, err
	}
	g.lastItem = &target
	return TypeRomaji{Item: target}, nil
}

func (g *Generator) typeSequence(sel *Selection) (Question, error) {
	pool := sel.Pool()
	if len(pool) < 3 {
		return nil, fmt.Errorf("%w: stage needs 3 kana, pool has %d", ErrPoolTooSmall, len(pool))
	}
	items := g.sampleItems(pool, 3)
	return TypeSequence{Items: items}, nil
}

// pickItem draws one pool item, re-drawing while it matches the previous
// target. A single-item pool bypasses the guard so the draw terminates.
func (g *Generator) pickItem(sel *Selection) (kana.Item, error) {
	pool := sel.Pool()
	if len(pool) == 0 {
		return kana.Item{}, fmt.Errorf("%w: pool is empty", ErrPoolTooSmall)
	}
	target := pool[g.rnd.Intn(len(pool))]
	for len(pool) > 1 && g.lastItem != nil && target == *g.lastItem {
		target = pool[g.rnd.Intn(len(pool))]
	}
	return target, nil
}

// sampleStrings returns up to n values drawn uniformly without replacement.
func (g *Generator) sampleStrings(vals []string, n int) []string {
	out := append([]string(nil), vals...)
	g.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// sampleItems returns up to n items drawn uniformly without replacement.
func (g *Generator) sampleItems(vals []kana.Item, n int) []kana.Item {
	out := append([]kana.Item(nil), vals...)
	g.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
