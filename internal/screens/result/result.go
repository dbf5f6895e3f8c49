package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dkoval/padelwiz/internal/advice"
	"github.com/dkoval/padelwiz/internal/rating"
	"github.com/dkoval/padelwiz/internal/screen"
	"github.com/dkoval/padelwiz/internal/ui/layout"
	"github.com/dkoval/padelwiz/internal/ui/theme"
	"github.com/dkoval/padelwiz/internal/wizard"
)

// RestartMsg asks the app to start a fresh assessment.
type RestartMsg struct{}

// AdviceRequestedMsg asks the app to generate training advice.
type AdviceRequestedMsg struct{}

// AdviceReadyMsg delivers the generated advice (or the failure) back to
// the screen.
type AdviceReadyMsg struct {
	Advice *advice.TrainingAdvice
	Err    error
}

type adviceState int

const (
	adviceIdle adviceState = iota
	adviceLoading
	adviceReady
	adviceFailed
)

// ResultScreen shows the final rating and, on request, a training plan.
type ResultScreen struct {
	outcome       *wizard.Outcome
	sessionNumber int64
	adviceOn      bool

	state   adviceState
	advice  *advice.TrainingAdvice
	spinner spinner.Model
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. adviceOn enables the training-plan key.
func New(outcome *wizard.Outcome, sessionNumber int64, adviceOn bool) *ResultScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &ResultScreen{
		outcome:       outcome,
		sessionNumber: sessionNumber,
		adviceOn:      adviceOn,
		spinner:       sp,
	}
}

func (s *ResultScreen) Title() string {
	return "Your Level"
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if s.state != adviceLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case AdviceReadyMsg:
		if msg.Err != nil {
			s.state = adviceFailed
		} else {
			s.state = adviceReady
			s.advice = msg.Advice
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			return s, func() tea.Msg { return RestartMsg{} }
		case "a":
			if s.adviceOn && s.outcome.Rated && s.state == adviceIdle {
				s.state = adviceLoading
				return s, tea.Batch(
					s.spinner.Tick,
					func() tea.Msg { return AdviceRequestedMsg{} },
				)
			}
		}
	}
	return s, nil
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "N", Description: "New assessment"},
	}
	if s.adviceOn && s.outcome.Rated && s.state == adviceIdle {
		hints = append(hints, layout.KeyHint{Key: "A", Description: "Training plan"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (s *ResultScreen) View(width, height int) string {
	var sections []string

	if !s.outcome.Rated {
		sections = append(sections,
			theme.Title.Render("Assessment saved"),
			"",
			theme.Body.Render("Not enough answers to rate this session."),
		)
	} else {
		sections = append(sections, s.renderRating(width)...)
	}

	if block := s.renderAdvice(width); block != "" {
		sections = append(sections, "", block)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ResultScreen) renderRating(width int) []string {
	o := s.outcome

	badge := theme.LevelBadge.Render(fmt.Sprintf(" %s ", o.Level))
	headline := lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Body.Render("Your level:  "), badge)

	target := theme.Subtitle.Render(fmt.Sprintf("next stop: %s", o.Target))

	var rows []string
	rows = append(rows, skillRow("Experience", &o.Experience))
	rows = append(rows, skillRow("Rally consistency", o.Skills.Reliability))
	rows = append(rows, skillRow("Net play", o.Skills.NetPlay))
	rows = append(rows, skillRow("Back-wall play", o.Skills.BackWall))
	rows = append(rows, skillRow("Strokes", o.Skills.Strokes))

	card := theme.Card.Width(min(width-4, 56)).Render(strings.Join(rows, "\n"))

	return []string{
		headline,
		target,
		"",
		card,
		"",
		theme.Hint.Render(fmt.Sprintf("assessment № %d", s.sessionNumber)),
	}
}

func skillRow(name string, lvl *rating.Level) string {
	value := "—"
	if lvl != nil {
		value = string(*lvl)
	}
	return fmt.Sprintf("%-20s %s",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(name),
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value))
}

func (s *ResultScreen) renderAdvice(width int) string {
	switch s.state {
	case adviceLoading:
		return s.spinner.View() + theme.Hint.Render(" putting a training plan together...")
	case adviceFailed:
		return lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("could not generate a training plan, try again later")
	case adviceReady:
		return s.renderPlan(width)
	}
	return ""
}

func (s *ResultScreen) renderPlan(width int) string {
	a := s.advice
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Training plan"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(a.Summary))

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title))
		for _, item := range items {
			b.WriteString("\n  • " + theme.Body.Render(item))
		}
	}
	writeList("Strengths", a.Strengths)
	writeList("Focus on", a.FocusAreas)
	writeList("Drills", a.Drills)

	return theme.Card.Width(min(width-4, 72)).Render(b.String())
}
