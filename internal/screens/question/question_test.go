package question

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dkoval/padelwiz/internal/flow"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion() *flow.Question {
	return &flow.Question{
		ID:   "q1",
		Text: "Have you played another racket sport before padel?",
		Options: []flow.AnswerOption{
			{ID: "yes", Text: "Yes", NextQuestionID: "q2"},
			{ID: "no", Text: "No", NextQuestionID: "q2"},
		},
	}
}

func TestQuestion_View(t *testing.T) {
	s := New(testQuestion(), 0)
	view := s.View(80, 24)
	if !strings.Contains(view, "racket sport") {
		t.Error("view missing the question text")
	}
	if !strings.Contains(view, "Yes") || !strings.Contains(view, "No") {
		t.Error("view missing option labels")
	}
}

func TestQuestion_EnterEmitsAnswer(t *testing.T) {
	s := New(testQuestion(), 2)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(AnsweredMsg)
	if !ok {
		t.Fatalf("expected AnsweredMsg, got %T", cmd())
	}
	if msg.QuestionID != "q1" || msg.OptionText != "Yes" {
		t.Errorf("answer = %+v, want q1/Yes", msg)
	}
}

func TestQuestion_DigitPicksAndConfirms(t *testing.T) {
	s := New(testQuestion(), 0)
	_, cmd := s.Update(keyPress('2'))
	if cmd == nil {
		t.Fatal("expected a command on digit pick")
	}
	msg := cmd().(AnsweredMsg)
	if msg.OptionText != "No" {
		t.Errorf("option = %q, want No", msg.OptionText)
	}
}

func TestQuestion_LockedAfterAnswer(t *testing.T) {
	s := New(testQuestion(), 0)
	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// A second Enter while the answer is in flight does nothing.
	_, cmd := next.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("locked screen should ignore further input")
	}
}

func TestQuestion_TypedAnswerEmitsText(t *testing.T) {
	s := New(testQuestion(), 0)
	scr, _ := s.Update(keyPress('t'))

	for _, r := range "No" {
		scr, _ = scr.Update(keyPress(r))
	}
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter in typing mode")
	}
	msg, ok := cmd().(AnsweredMsg)
	if !ok {
		t.Fatalf("expected AnsweredMsg, got %T", cmd())
	}
	if msg.OptionText != "No" {
		t.Errorf("typed answer = %q, want No", msg.OptionText)
	}
}

func TestQuestion_EscLeavesTypingMode(t *testing.T) {
	s := New(testQuestion(), 0)
	scr, _ := s.Update(keyPress('t'))
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	// Back on the list, Enter confirms the highlighted option.
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter after leaving typing mode")
	}
	if msg := cmd().(AnsweredMsg); msg.OptionText != "Yes" {
		t.Errorf("option = %q, want Yes", msg.OptionText)
	}
}

func TestQuestion_NoticeIsRendered(t *testing.T) {
	s := New(testQuestion(), 0)
	s.SetNotice("that didn't match any option, try again")
	if !strings.Contains(s.View(80, 24), "didn't match") {
		t.Error("view missing the mismatch notice")
	}
}

func TestQuestion_NavigationChangesSelection(t *testing.T) {
	s := New(testQuestion(), 0)
	next, _ := s.Update(keyPress('j'))
	_, cmd := next.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg := cmd().(AnsweredMsg)
	if msg.OptionText != "No" {
		t.Errorf("option = %q, want No after moving down", msg.OptionText)
	}
}
