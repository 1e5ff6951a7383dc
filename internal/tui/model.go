package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yomikata/kanaq/internal/kana"
	"github.com/yomikata/kanaq/internal/quiz"
)

type screen int

const (
	screenPicker screen = iota
	screenQuiz
	screenDone
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	glyphStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	revealStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// revealMsg carries the reveal token captured when the delay was scheduled.
// A token that no longer matches the session is ignored.
type revealMsg struct{ token int }

func revealAfter(d time.Duration, token int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return revealMsg{token: token}
	})
}

type pickerEntry struct {
	syllabary kana.Syllabary
	row       string
	tier      string
	preview   string
}

// Model implements the Bubble Tea drill UI on top of a quiz session.
type Model struct {
	session     *quiz.Session
	revealDelay time.Duration

	screen  screen
	entries []pickerEntry
	cursor  int
	notice  string

	input      textinput.Model
	revealText string

	width  int
	height int
}

// NewModel constructs the drill TUI model.
func NewModel(session *quiz.Session, revealDelay time.Duration) *Model {
	input := textinput.New()
	input.Placeholder = "romaji"
	input.CharLimit = 32
	input.Width = 20

	m := &Model{
		session:     session,
		revealDelay: revealDelay,
		entries:     buildPickerEntries(),
		input:       input,
	}
	if session.State().Started {
		m.screen = screenQuiz
		m.focusInputIfTyping()
	}
	return m
}

func buildPickerEntries() []pickerEntry {
	var entries []pickerEntry
	for _, s := range []kana.Syllabary{kana.Hiragana, kana.Katakana} {
		tiers := []struct {
			name string
			rows []string
		}{
			{"Basic", kana.BasicRows(s)},
			{"Dakuon", kana.DakuonRows(s)},
			{"Handakuon", kana.HandakuonRows(s)},
		}
		for _, tier := range tiers {
			for _, row := range tier.rows {
				g, err := kana.GetGroup(s, row)
				if err != nil {
					continue
				}
				glyphs := make([]string, 0, len(g.Items))
				for _, it := range g.Items {
					glyphs = append(glyphs, it.Glyph)
				}
				entries = append(entries, pickerEntry{
					syllabary: s,
					row:       row,
					tier:      tier.name,
					preview:   strings.Join(glyphs, " "),
				})
			}
		}
	}
	return entries
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case revealMsg:
		if m.session.ResolveReveal(msg.token) {
			m.revealText = ""
			m.input.Reset()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenPicker:
			return m.updatePicker(msg)
		case screenQuiz:
			return m.updateQuiz(msg)
		case screenDone:
			return m.updateDone(msg)
		}
	}
	return m, nil
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case " ":
		entry := m.entries[m.cursor]
		if err := m.session.Selection().Toggle(entry.syllabary, entry.row); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.notice = ""
	case "enter":
		if err := m.session.Start(); err != nil {
			switch {
			case errors.Is(err, quiz.ErrEmptySelection):
				m.notice = "select at least one group first"
			case errors.Is(err, quiz.ErrPoolTooSmall):
				m.notice = "selection is too small for the drill"
			default:
				m.notice = err.Error()
			}
			return m, nil
		}
		m.notice = ""
		m.revealText = ""
		m.input.Reset()
		m.screen = screenQuiz
		m.focusInputIfTyping()
	}
	return m, nil
}

func (m *Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.backToPicker()
		return m, nil
	}

	// While the answer is revealed, input stays disabled; the scheduled
	// revealMsg advances the quiz.
	if m.session.State().Awaiting {
		return m, nil
	}

	switch q := m.session.Current().(type) {
	case quiz.ChooseRomaji:
		if idx, ok := choiceIndex(msg.String(), len(q.Choices)); ok {
			out, err := m.session.SubmitChoice(q.Choices[idx])
			return m, m.applyOutcome(out, err)
		}
	case quiz.ChooseKana:
		if idx, ok := choiceIndex(msg.String(), len(q.Choices)); ok {
			out, err := m.session.SubmitChoice(q.Choices[idx].Glyph)
			return m, m.applyOutcome(out, err)
		}
	case quiz.TypeRomaji, quiz.TypeSequence:
		if msg.Type == tea.KeyEnter {
			out, err := m.session.SubmitText(m.input.Value())
			return m, m.applyOutcome(out, err)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r", "enter":
		m.backToPicker()
	}
	return m, nil
}

func (m *Model) backToPicker() {
	m.session.Restart()
	m.screen = screenPicker
	m.cursor = 0
	m.notice = ""
	m.revealText = ""
	m.input.Reset()
	m.input.Blur()
}

// applyOutcome reacts to an evaluated submission: schedule the reveal on a
// miss, move to the completion screen when the drill is done.
func (m *Model) applyOutcome(out quiz.Outcome, err error) tea.Cmd {
	if err != nil {
		// ErrAlreadyAnswered and friends: refuse quietly, state is unchanged.
		return nil
	}
	if out.Completed {
		m.screen = screenDone
		m.input.Blur()
		return nil
	}
	if !out.Correct {
		m.revealText = out.Answer
		return revealAfter(m.revealDelay, m.session.RevealToken())
	}
	m.input.Reset()
	m.focusInputIfTyping()
	return nil
}

func (m *Model) focusInputIfTyping() {
	switch m.session.Current().(type) {
	case quiz.TypeRomaji, quiz.TypeSequence:
		m.input.Focus()
	default:
		m.input.Blur()
	}
}

func choiceIndex(key string, n int) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	idx := int(key[0] - '1')
	if idx >= n {
		return 0, false
	}
	return idx, true
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.screen {
	case screenQuiz:
		return m.viewQuiz()
	case screenDone:
		return m.viewDone()
	}
	return m.viewPicker()
}

func (m *Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("kanaq · kana drill"))
	b.WriteString("\n\n")

	lastSection := ""
	for i, entry := range m.entries {
		section := entry.syllabary.String() + " · " + entry.tier
		if section != lastSection {
			if lastSection != "" {
				b.WriteString("\n")
			}
			b.WriteString(sectionStyle.Render(section))
			b.WriteString("\n")
			lastSection = section
		}

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("▸ ")
		}
		check := "[ ]"
		style := pendingStyle
		if m.session.Selection().Contains(entry.syllabary, entry.row) {
			check = "[x]"
			style = checkedStyle
		}
		line := fmt.Sprintf("%s %s  %s", check, padCell(entry.row, 6), entry.preview)
		b.WriteString(cursor + style.Render(line))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("space: toggle · enter: start · q: quit"))
	return b.String()
}

func (m *Model) viewQuiz() string {
	st := m.session.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render(st.StageName))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("Score %d / %d · Wrong %d", st.Score, st.Required, st.WrongCount)))
	b.WriteString("\n\n")

	switch q := m.session.Current().(type) {
	case quiz.ChooseRomaji:
		glyphs := q.Hira
		if q.Kata != "" {
			if glyphs != "" {
				glyphs += "  "
			}
			glyphs += q.Kata
		}
		b.WriteString(glyphStyle.Render(glyphs))
		b.WriteString("\n\n")
		for _, row := range choiceRows(numberChoices(q.Choices)) {
			b.WriteString(row)
			b.WriteString("\n")
		}
	case quiz.ChooseKana:
		b.WriteString(glyphStyle.Render(q.Romaji))
		b.WriteString("\n\n")
		labels := make([]string, 0, len(q.Choices))
		for _, c := range q.Choices {
			labels = append(labels, c.Glyph)
		}
		for _, row := range choiceRows(numberChoices(labels)) {
			b.WriteString(row)
			b.WriteString("\n")
		}
	case quiz.TypeRomaji:
		b.WriteString(glyphStyle.Render(q.Item.Glyph))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case quiz.TypeSequence:
		glyphs := make([]string, 0, len(q.Items))
		for _, it := range q.Items {
			glyphs = append(glyphs, it.Glyph)
		}
		b.WriteString(glyphStyle.Render(strings.Join(glyphs, " ")))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.revealText != "" {
		b.WriteString("\n")
		b.WriteString(revealStyle.Render("✗ correct answer: " + m.revealText))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("esc: back to groups · ctrl+c: quit"))
	return b.String()
}

func (m *Model) viewDone() string {
	st := m.session.State()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Drill complete!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("All four stages cleared. Total wrong answers: %d\n", st.WrongCount))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("r: start over · q: quit"))
	return b.String()
}
