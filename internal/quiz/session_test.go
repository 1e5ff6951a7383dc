package quiz

import (
	"errors"
	"testing"

	"github.com/yomikata/kanaq/internal/kana"
)

func startedSession(t *testing.T, rows ...string) *Session {
	t.Helper()
	sel := hiraganaSelection(t, rows...)
	s := NewSession(sel, NewSeeded(1))
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

// answerCurrent submits the correct answer for whatever question is active.
func answerCurrent(t *testing.T, s *Session) Outcome {
	t.Helper()
	var (
		out Outcome
		err error
	)
	switch q := s.Current().(type) {
	case ChooseRomaji:
		out, err = s.SubmitChoice(q.Answer)
	case ChooseKana:
		out, err = s.SubmitChoice(q.Answer.Glyph)
	case TypeRomaji:
		out, err = s.SubmitText(q.Item.Romaji)
	case TypeSequence:
		out, err = s.SubmitText(q.Answer())
	default:
		t.Fatalf("no active question")
	}
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct {
		t.Fatalf("expected correct outcome")
	}
	return out
}

func TestStartRequiresSelection(t *testing.T) {
	s := NewSession(NewSelection(), NewSeeded(1))
	if err := s.Start(); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if s.State().Started {
		t.Fatalf("failed start must not mark the session started")
	}
}

func TestSubmitBeforeStart(t *testing.T) {
	s := NewSession(hiraganaSelection(t, "あ行"), NewSeeded(1))
	if _, err := s.SubmitChoice("a"); !errors.Is(err, ErrNoQuestion) {
		t.Fatalf("expected ErrNoQuestion, got %v", err)
	}
}

func TestCorrectAnswersAdvanceStage(t *testing.T) {
	s := startedSession(t, "あ行", "か行")

	for i := 0; i < Stages[0].Required-1; i++ {
		out := answerCurrent(t, s)
		if out.Advanced || out.Completed {
			t.Fatalf("advanced after %d correct answers", i+1)
		}
	}
	if got := s.State().Score; got != Stages[0].Required-1 {
		t.Fatalf("expected score %d, got %d", Stages[0].Required-1, got)
	}

	out := answerCurrent(t, s)
	if !out.Advanced || out.Completed {
		t.Fatalf("expected stage advance, got %+v", out)
	}
	st := s.State()
	if st.Stage != 1 || st.Score != 0 {
		t.Fatalf("expected stage 1 with score reset, got stage %d score %d", st.Stage, st.Score)
	}
	if _, ok := s.Current().(ChooseKana); !ok {
		t.Fatalf("expected a stage-1 question on entry, got %T", s.Current())
	}
}

func TestWrongAnswerForcedRetry(t *testing.T) {
	s := startedSession(t, "あ行")
	s.score = 3

	q := s.Current().(ChooseRomaji)
	out, err := s.SubmitChoice("not-a-romaji")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct || out.Answer != q.Answer {
		t.Fatalf("expected reveal of %q, got %+v", q.Answer, out)
	}
	st := s.State()
	if st.Score != 2 || st.WrongCount != 1 || !st.Awaiting {
		t.Fatalf("unexpected state after wrong answer: %+v", st)
	}

	// Repeated submissions during the reveal are refused.
	if _, err := s.SubmitChoice(q.Answer); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}

	// A stale token must not fire; the pending one fires exactly once.
	token := s.RevealToken()
	if s.ResolveReveal(token - 1) {
		t.Fatalf("stale reveal token must be a no-op")
	}
	if !s.ResolveReveal(token) {
		t.Fatalf("pending reveal must fire")
	}
	if s.ResolveReveal(token) {
		t.Fatalf("reveal must fire at most once")
	}
	st = s.State()
	if st.Stage != 0 || st.Awaiting || s.Current() == nil {
		t.Fatalf("expected a fresh question on the same stage, state %+v", st)
	}
}

func TestWrongAnswerNeverAdvances(t *testing.T) {
	s := startedSession(t, "あ行")
	s.score = Stages[0].Required // already at threshold from an earlier point

	if _, err := s.SubmitChoice("wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !s.ResolveReveal(s.RevealToken()) {
		t.Fatalf("reveal must fire")
	}
	st := s.State()
	if st.Stage != 0 {
		t.Fatalf("wrong answer must not advance, got stage %d", st.Stage)
	}
	if st.Score != Stages[0].Required-1 {
		t.Fatalf("expected decremented score, got %d", st.Score)
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	s := startedSession(t, "あ行")
	if _, err := s.SubmitChoice("wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := s.State().Score; got != 0 {
		t.Fatalf("score must never go negative, got %d", got)
	}
}

func TestTypedRomajiEvaluation(t *testing.T) {
	cases := []struct {
		input   string
		correct bool
	}{
		{"ke", true},
		{"KE", true},   // case-insensitive
		{"ke ", true},  // surrounding whitespace trimmed
		{" ke", true},
		{"k e", false}, // internal whitespace is significant here
		{"ka", false},
	}
	for _, tc := range cases {
		s := startedSession(t, "か行")
		s.question = TypeRomaji{Item: kana.Item{Glyph: "け", Romaji: "ke"}}
		out, err := s.SubmitText(tc.input)
		if err != nil {
			t.Fatalf("submit %q: %v", tc.input, err)
		}
		if out.Correct != tc.correct {
			t.Fatalf("input %q: expected correct=%v", tc.input, tc.correct)
		}
	}
}

func TestTypedSequenceEvaluation(t *testing.T) {
	prompt := TypeSequence{Items: []kana.Item{
		{Glyph: "う", Romaji: "u"},
		{Glyph: "あ", Romaji: "a"},
		{Glyph: "お", Romaji: "o"},
	}}
	cases := []struct {
		input   string
		correct bool
	}{
		{"uao", true},
		{"u a o", true}, // whitespace stripped
		{"UAO", true},
		{"uoa", false}, // prompt order matters
		{"ua", false},
	}
	for _, tc := range cases {
		s := startedSession(t, "あ行")
		s.stage = 3
		s.question = prompt
		out, err := s.SubmitText(tc.input)
		if err != nil {
			t.Fatalf("submit %q: %v", tc.input, err)
		}
		if out.Correct != tc.correct {
			t.Fatalf("input %q: expected correct=%v", tc.input, tc.correct)
		}
	}
}

func TestWrongAnswerKind(t *testing.T) {
	s := startedSession(t, "あ行")
	if _, err := s.SubmitText("a"); !errors.Is(err, ErrWrongAnswerKind) {
		t.Fatalf("expected ErrWrongAnswerKind for typed input on a choice stage, got %v", err)
	}
	s.stage = 2
	s.question = TypeRomaji{Item: kana.Item{Glyph: "あ", Romaji: "a"}}
	if _, err := s.SubmitChoice("a"); !errors.Is(err, ErrWrongAnswerKind) {
		t.Fatalf("expected ErrWrongAnswerKind for choice input on a typing stage, got %v", err)
	}
}

func TestCompletionAndRestart(t *testing.T) {
	s := startedSession(t, "あ行")
	s.stage = 3
	s.score = Stages[3].Required - 1
	s.question = TypeSequence{Items: []kana.Item{
		{Glyph: "う", Romaji: "u"},
		{Glyph: "あ", Romaji: "a"},
		{Glyph: "お", Romaji: "o"},
	}}

	out, err := s.SubmitText("uao")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Completed {
		t.Fatalf("expected completion, got %+v", out)
	}
	if s.Current() != nil {
		t.Fatalf("no question may be generated after completion")
	}
	if !s.State().Completed {
		t.Fatalf("expected completed state")
	}
	if _, err := s.SubmitText("uao"); !errors.Is(err, ErrNoQuestion) {
		t.Fatalf("expected ErrNoQuestion after completion, got %v", err)
	}

	token := s.RevealToken()
	s.Restart()
	st := s.State()
	if st.Started || st.Completed || st.Score != 0 || st.WrongCount != 0 || st.Stage != 0 {
		t.Fatalf("restart must zero the session, got %+v", st)
	}
	if s.Selection().Ready() {
		t.Fatalf("restart must clear the selection")
	}
	if s.ResolveReveal(token) {
		t.Fatalf("restart must cancel any scheduled reveal")
	}
}

func TestStartAfterRestart(t *testing.T) {
	s := startedSession(t, "あ行")
	s.Restart()
	if err := s.Start(); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection after restart cleared groups, got %v", err)
	}
	if err := s.Selection().Toggle(kana.Hiragana, "か行"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start after reselect: %v", err)
	}
	if s.Current() == nil {
		t.Fatalf("expected a first question")
	}
}

func TestListenerEvents(t *testing.T) {
	sel := hiraganaSelection(t, "あ行")
	s := NewSession(sel, NewSeeded(1))
	var kinds []EventKind
	s.SetListener(func(ev Event) { kinds = append(kinds, ev.Kind) })

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	answerCurrent(t, s)
	if len(kinds) < 3 {
		t.Fatalf("expected question/answered/question events, got %v", kinds)
	}
	if kinds[0] != EventQuestion || kinds[1] != EventAnswered || kinds[2] != EventQuestion {
		t.Fatalf("unexpected event order: %v", kinds)
	}

	s.stage = 3
	s.score = Stages[3].Required - 1
	s.question = TypeSequence{Items: []kana.Item{
		{Glyph: "あ", Romaji: "a"},
		{Glyph: "い", Romaji: "i"},
		{Glyph: "う", Romaji: "u"},
	}}
	kinds = nil
	if _, err := s.SubmitText("aiu"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if kinds[len(kinds)-1] != EventCompleted {
		t.Fatalf("expected completion event, got %v", kinds)
	}
}
