package quiz

import (
	"strings"

	"github.com/yomikata/kanaq/internal/kana"
)

// Question is the closed set of per-stage question shapes. The evaluator
// type-switches over it, so each stage's fields stay fully typed.
type Question interface {
	// Stage reports which stage the question belongs to.
	Stage() int
}

// ChooseRomaji asks for the romanization of a shown kana. Hira and Kata hold
// the prompt glyphs for the target reading; either may be empty when the
// selection covers only one syllabary.
type ChooseRomaji struct {
	Hira    string
	Kata    string
	Answer  string
	Choices []string
}

// Stage implements Question.
func (ChooseRomaji) Stage() int { return 0 }

// ChooseKana asks for the kana matching a shown romanization. All choices
// share the answer's syllabary.
type ChooseKana struct {
	Romaji  string
	Answer  kana.Item
	Choices []kana.Item
}

// Stage implements Question.
func (ChooseKana) Stage() int { return 1 }

// TypeRomaji asks the learner to type the romanization of a single kana.
type TypeRomaji struct {
	Item kana.Item
}

// Stage implements Question.
func (TypeRomaji) Stage() int { return 2 }

// TypeSequence asks the learner to type the romanizations of three kana,
// concatenated in prompt order without separators.
type TypeSequence struct {
	Items []kana.Item
}

// Stage implements Question.
func (TypeSequence) Stage() int { return 3 }

// Answer returns the expected concatenated romanization.
func (q TypeSequence) Answer() string {
	var b strings.Builder
	for _, it := range q.Items {
		b.WriteString(it.Romaji)
	}
	return b.String()
}
