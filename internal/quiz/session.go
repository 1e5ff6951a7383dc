package quiz

import (
	"fmt"
	"strings"
	"unicode"
)

// EventKind labels a session state change.
type EventKind int

const (
	// EventQuestion fires when a new question becomes current.
	EventQuestion EventKind = iota
	// EventAnswered fires after a submission is evaluated.
	EventAnswered
	// EventAdvanced fires when a stage threshold is cleared.
	EventAdvanced
	// EventCompleted fires when the last stage is cleared.
	EventCompleted
)

// Event notifies a listener of a session state change.
type Event struct {
	Kind  EventKind
	Stage int
}

// Outcome reports the result of evaluating one submission.
type Outcome struct {
	Correct bool
	// Answer carries the revealed correct answer after a wrong submission.
	Answer    string
	Advanced  bool
	Completed bool
}

// State is a read-only snapshot of the session for the presentation layer.
type State struct {
	Stage      int
	StageName  string
	Required   int
	Score      int
	WrongCount int
	Started    bool
	Awaiting   bool
	Completed  bool
}

// Session drives the drill from group selection through the four stages to
// completion. It owns all mutable session state; the generator and selection
// are only read through it once the quiz is running.
type Session struct {
	sel      *Selection
	gen      *Generator
	listener func(Event)

	started    bool
	completed  bool
	stage      int
	score      int
	wrongCount int

	question Question
	awaiting bool

	// revealSeq identifies the pending reveal. It is bumped by every wrong
	// answer and by Restart/Start, so a scheduled reveal that fires against a
	// newer state is a no-op.
	revealSeq int
}

// NewSession wires a selection and a generator into a session.
func NewSession(sel *Selection, gen *Generator) *Session {
	return &Session{sel: sel, gen: gen}
}

// SetListener registers a callback invoked on every state change. A nil
// listener disables notifications.
func (s *Session) SetListener(fn func(Event)) {
	s.listener = fn
}

// Selection exposes the group selection for the picking phase.
func (s *Session) Selection() *Selection {
	return s.sel
}

// Start begins the quiz at the first stage with zeroed counters and generates
// the first question. Starting over a finished or running session resets it.
func (s *Session) Start() error {
	if !s.sel.Ready() {
		return fmt.Errorf("cannot start: %w", ErrEmptySelection)
	}
	s.started = true
	s.completed = false
	s.stage = 0
	s.score = 0
	s.wrongCount = 0
	s.awaiting = false
	s.revealSeq++
	s.gen.Reset()
	return s.nextQuestion()
}

// Restart discards all session state including the selection and returns to
// group picking. Any scheduled reveal becomes stale.
func (s *Session) Restart() {
	s.sel.Clear()
	s.started = false
	s.completed = false
	s.stage = 0
	s.score = 0
	s.wrongCount = 0
	s.question = nil
	s.awaiting = false
	s.revealSeq++
	s.gen.Reset()
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	st := Stages[s.stage]
	return State{
		Stage:      s.stage,
		StageName:  st.Name,
		Required:   st.Required,
		Score:      s.score,
		WrongCount: s.wrongCount,
		Started:    s.started,
		Awaiting:   s.awaiting,
		Completed:  s.completed,
	}
}

// Current returns the active question, or nil outside a running stage.
func (s *Session) Current() Question {
	return s.question
}

// SubmitChoice evaluates a choice submission for the two choice stages. The
// value is the chosen romanization for stage 0 and the chosen glyph for
// stage 1.
func (s *Session) SubmitChoice(value string) (Outcome, error) {
	if err := s.checkSubmittable(); err != nil {
		return Outcome{}, err
	}
	switch q := s.question.(type) {
	case ChooseRomaji:
		return s.resolve(value == q.Answer, q.Answer)
	case ChooseKana:
		return s.resolve(value == q.Answer.Glyph, q.Answer.Glyph)
	}
	return Outcome{}, fmt.Errorf("%w: question expects typed input", ErrWrongAnswerKind)
}

// SubmitText evaluates a typed submission for the two typing stages.
// Surrounding whitespace is trimmed and the input lower-cased; the sequence
// stage additionally ignores internal whitespace.
func (s *Session) SubmitText(text string) (Outcome, error) {
	if err := s.checkSubmittable(); err != nil {
		return Outcome{}, err
	}
	switch q := s.question.(type) {
	case TypeRomaji:
		got := strings.ToLower(strings.TrimSpace(text))
		return s.resolve(got == q.Item.Romaji, q.Item.Romaji)
	case TypeSequence:
		got := strings.ToLower(stripSpace(text))
		want := q.Answer()
		return s.resolve(got == want, want)
	}
	return Outcome{}, fmt.Errorf("%w: question expects a choice", ErrWrongAnswerKind)
}

// RevealToken returns the identity of the pending reveal, captured by the
// caller when scheduling the deferred advance.
func (s *Session) RevealToken() int {
	return s.revealSeq
}

// ResolveReveal ends the reveal interval and forces the next question within
// the same stage, never advancing. It reports whether it fired; a stale token
// or a session no longer awaiting is a no-op.
func (s *Session) ResolveReveal(token int) bool {
	if !s.started || s.completed || !s.awaiting || token != s.revealSeq {
		return false
	}
	s.awaiting = false
	if err := s.nextQuestion(); err != nil {
		return false
	}
	return true
}

func (s *Session) checkSubmittable() error {
	if !s.started || s.completed || s.question == nil {
		return ErrNoQuestion
	}
	if s.awaiting {
		return ErrAlreadyAnswered
	}
	return nil
}

func (s *Session) resolve(correct bool, reveal string) (Outcome, error) {
	if !correct {
		if s.score > 0 {
			s.score--
		}
		s.wrongCount++
		s.awaiting = true
		s.revealSeq++
		s.emit(EventAnswered)
		return Outcome{Answer: reveal}, nil
	}

	s.score++
	s.emit(EventAnswered)
	if s.score < Stages[s.stage].Required {
		if err := s.nextQuestion(); err != nil {
			return Outcome{}, err
		}
		return Outcome{Correct: true}, nil
	}
	if s.stage < len(Stages)-1 {
		s.stage++
		s.score = 0
		s.emit(EventAdvanced)
		if err := s.nextQuestion(); err != nil {
			return Outcome{}, err
		}
		return Outcome{Correct: true, Advanced: true}, nil
	}
	s.completed = true
	s.question = nil
	s.emit(EventCompleted)
	return Outcome{Correct: true, Completed: true}, nil
}

func (s *Session) nextQuestion() error {
	q, err := s.gen.Next(s.stage, s.sel)
	if err != nil {
		s.question = nil
		return err
	}
	s.question = q
	s.emit(EventQuestion)
	return nil
}

func (s *Session) emit(kind EventKind) {
	if s.listener != nil {
		s.listener(Event{Kind: kind, Stage: s.stage})
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
