package question

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dkoval/padelwiz/internal/flow"
	"github.com/dkoval/padelwiz/internal/screen"
	"github.com/dkoval/padelwiz/internal/ui/components"
	"github.com/dkoval/padelwiz/internal/ui/layout"
	"github.com/dkoval/padelwiz/internal/ui/theme"
)

// maxSteps is the longest question path; shorter paths finish early.
const maxSteps = 7

// AnsweredMsg is emitted when the player confirms an option. The option
// text is sent back through the flow engine like any other reply.
type AnsweredMsg struct {
	QuestionID string
	OptionText string
}

// QuestionScreen presents one flow question as a selectable list, with a
// free-text mode for typing the answer instead.
type QuestionScreen struct {
	q        *flow.Question
	answered int
	choice   components.Choice
	entry    components.TextEntry
	typing   bool
	locked   bool
	notice   string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen for q; answered is how many questions the
// player has already confirmed in this session.
func New(q *flow.Question, answered int) *QuestionScreen {
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Text
	}
	return &QuestionScreen{
		q:        q,
		answered: answered,
		choice:   components.NewChoice(q.Text, labels),
	}
}

// SetNotice shows a one-line note above the question, used when a typed
// reply matched no option.
func (s *QuestionScreen) SetNotice(text string) {
	s.notice = text
}

func (s *QuestionScreen) Title() string {
	return "Assessment"
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Once an answer is in flight, ignore input until the next screen.
	if s.locked {
		return s, nil
	}

	if s.typing {
		return s.updateTyping(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "t" {
		s.typing = true
		s.entry = components.NewTextEntry("your answer")
		return s, s.entry.Init()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if s.choice.Confirmed() {
		return s, s.submit(s.choice.ChosenOption())
	}
	return s, cmd
}

func (s *QuestionScreen) updateTyping(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		s.typing = false
		return s, nil
	}

	var cmd tea.Cmd
	s.entry, cmd = s.entry.Update(msg)

	if s.entry.Submitted() {
		return s, s.submit(s.entry.Value())
	}
	return s, cmd
}

func (s *QuestionScreen) submit(text string) tea.Cmd {
	s.locked = true
	questionID := s.q.ID
	return func() tea.Msg {
		return AnsweredMsg{QuestionID: questionID, OptionText: text}
	}
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back to list"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-9", Description: "Pick"},
		{Key: "t", Description: "Type answer"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuestionScreen) View(width, height int) string {
	progress := components.StepProgress{
		Done:  s.answered,
		Total: maxSteps,
		Width: min(width-8, 48),
	}

	var body string
	if s.typing {
		body = s.q.Text + "\n\n" + s.entry.View()
	} else {
		body = s.choice.View()
	}
	card := theme.Card.Width(min(width-4, 76)).Render(body)

	parts := []string{progress.View(), ""}
	if s.notice != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(s.notice), "")
	}
	parts = append(parts, card)
	content := strings.Join(parts, "\n")

	if s.locked {
		content += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("saving...")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
