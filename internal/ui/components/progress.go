package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dkoval/padelwiz/internal/ui/theme"
)

// StepProgress shows how far through the questionnaire the player is.
// Total is the longest possible path; shorter paths finish early.
type StepProgress struct {
	Done  int
	Total int
	Width int
}

// View renders a bar with a "step N of M" counter.
func (p StepProgress) View() string {
	total := p.Total
	if total < 1 {
		total = 1
	}
	done := p.Done
	if done > total {
		done = total
	}

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", done, total))

	barWidth := p.Width - lipgloss.Width(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * done / total
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", barWidth-filled))

	return bar + counter
}
