package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dkoval/padelwiz/internal/screen"
	"github.com/dkoval/padelwiz/internal/ui/components"
	"github.com/dkoval/padelwiz/internal/ui/layout"
	"github.com/dkoval/padelwiz/internal/ui/theme"
)

// Option is a welcome menu entry.
type Option int

const (
	OptionStart Option = iota
	OptionResume
	OptionQuit
)

// ChosenMsg is emitted when the player picks a menu entry.
type ChosenMsg struct {
	Option Option
}

// WelcomeScreen shows the banner and the start/resume menu.
type WelcomeScreen struct {
	resumeNumber int64
	choice       components.Choice
	options      []Option
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. A non-zero resumeNumber adds a "continue"
// entry for that session.
func New(resumeNumber int64) *WelcomeScreen {
	var labels []string
	var options []Option

	if resumeNumber != 0 {
		labels = append(labels, fmt.Sprintf("Continue assessment № %d", resumeNumber))
		options = append(options, OptionResume)
	}
	labels = append(labels, "Start a new assessment")
	options = append(options, OptionStart)
	labels = append(labels, "Quit")
	options = append(options, OptionQuit)

	return &WelcomeScreen{
		resumeNumber: resumeNumber,
		choice:       components.NewChoice("", labels),
		options:      options,
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.choice, cmd = w.choice.Update(msg)

	if w.choice.Confirmed() {
		opt := w.options[w.choice.Chosen]
		w.choice.Chosen = -1
		return w, func() tea.Msg { return ChosenMsg{Option: opt} }
	}
	return w, cmd
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Find your padel level in a few questions")
	sections = append(sections, tagline, "")

	sections = append(sections, w.choice.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
