package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestWelcome_Title(t *testing.T) {
	w := New(0)
	if w.Title() != "Welcome" {
		t.Errorf("Title = %q, want %q", w.Title(), "Welcome")
	}
}

func TestWelcome_MenuWithoutResume(t *testing.T) {
	w := New(0)
	view := w.View(80, 24)
	if strings.Contains(view, "Continue") {
		t.Error("no-resume menu should not offer a continue entry")
	}
	if !strings.Contains(view, "Start a new assessment") {
		t.Error("menu missing start entry")
	}
}

func TestWelcome_MenuWithResume(t *testing.T) {
	w := New(123456789012)
	view := w.View(80, 24)
	if !strings.Contains(view, "123456789012") {
		t.Error("resume entry should show the session number")
	}
}

func TestWelcome_SelectStart(t *testing.T) {
	w := New(0)
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(ChosenMsg)
	if !ok {
		t.Fatalf("expected ChosenMsg, got %T", cmd())
	}
	if msg.Option != OptionStart {
		t.Errorf("option = %v, want OptionStart", msg.Option)
	}
}

func TestWelcome_ResumeIsFirstEntry(t *testing.T) {
	w := New(42)
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg := cmd().(ChosenMsg)
	if msg.Option != OptionResume {
		t.Errorf("option = %v, want OptionResume", msg.Option)
	}
}

func TestWelcome_NavigateToQuit(t *testing.T) {
	w := New(0)

	next, _ := w.Update(keyPress('j'))
	next, cmd := next.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_ = next
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg := cmd().(ChosenMsg)
	if msg.Option != OptionQuit {
		t.Errorf("option = %v, want OptionQuit", msg.Option)
	}
}
