package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dkoval/padelwiz/internal/ui/theme"
)

// TextEntry wraps bubbles/textinput for typing an answer instead of
// picking it from the list. The typed text is matched against option
// texts by the flow engine, so the component itself does no validation.
type TextEntry struct {
	Model     textinput.Model
	submitted bool
}

// NewTextEntry creates a focused text entry with PadelWiz styling.
func NewTextEntry(placeholder string) TextEntry {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Focus()
	return TextEntry{Model: ti}
}

func (t TextEntry) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Enter marks the entry submitted when the
// value is non-blank; everything else is delegated to the inner model.
func (t TextEntry) Update(msg tea.Msg) (TextEntry, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if strings.TrimSpace(t.Model.Value()) != "" {
			t.submitted = true
		}
		return t, nil
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextEntry) View() string {
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("type the answer exactly as listed")
	return t.Model.View() + "\n" + hint
}

// Submitted reports whether Enter was pressed on a non-blank value.
func (t TextEntry) Submitted() bool {
	return t.submitted
}

// Value returns the current input value.
func (t TextEntry) Value() string {
	return t.Model.Value()
}
