package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dkoval/padelwiz/internal/ui/theme"
)

// Choice is a single-select list for answering a question. Unlike a quiz
// selector there is no right answer; Enter confirms whatever is
// highlighted.
type Choice struct {
	Prompt   string
	Options  []string
	Selected int
	Chosen   int
}

// NewChoice creates a Choice with nothing confirmed yet.
func NewChoice(prompt string, options []string) Choice {
	return Choice{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// Update handles keyboard navigation. Digit keys jump straight to an
// option and confirm it.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(c.Options) {
				c.Selected = idx
				c.Chosen = idx
			}
		}
	}

	return c, nil
}

// Confirmed reports whether an option has been chosen.
func (c Choice) Confirmed() bool {
	return c.Chosen >= 0
}

// ChosenOption returns the confirmed option text, or "" when none.
func (c Choice) ChosenOption() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the prompt and option list.
func (c Choice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
