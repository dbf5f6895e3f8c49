package flow

import (
	"errors"
	"strings"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{
			ID:   "a",
			Text: "first",
			Options: []AnswerOption{
				{ID: "a1", Text: "to b", NextQuestionID: "b"},
				{ID: "a2", Text: "skip to c", NextQuestionID: "c"},
			},
		},
		{
			ID:   "b",
			Text: "second",
			Options: []AnswerOption{
				{ID: "b1", Text: "to c", NextQuestionID: "c"},
			},
		},
		{
			ID:   "c",
			Text: "last",
			Options: []AnswerOption{
				{ID: "c1", Text: "done", NextQuestionID: ""},
			},
		},
	}
}

func TestNewGraph_Valid(t *testing.T) {
	g, err := NewGraph(testQuestions(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.FirstQuestionID() != "a" {
		t.Errorf("got first question %q, want %q", g.FirstQuestionID(), "a")
	}
	if n := len(g.Questions()); n != 3 {
		t.Errorf("got %d questions, want 3", n)
	}
}

func TestNewGraph_InvalidConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]Question) []Question
		first   string
		wantMsg string
	}{
		{
			name:    "unknown first question",
			mutate:  func(qs []Question) []Question { return qs },
			first:   "zzz",
			wantMsg: "first question",
		},
		{
			name: "dangling next reference",
			mutate: func(qs []Question) []Question {
				qs[1].Options[0].NextQuestionID = "ghost"
				return qs
			},
			first:   "a",
			wantMsg: "nonexistent question",
		},
		{
			name: "duplicate question id",
			mutate: func(qs []Question) []Question {
				return append(qs, Question{ID: "a", Text: "dup", Options: []AnswerOption{{ID: "x", Text: "x"}}})
			},
			first:   "a",
			wantMsg: "duplicate question ID",
		},
		{
			name: "duplicate option id",
			mutate: func(qs []Question) []Question {
				qs[0].Options = append(qs[0].Options, AnswerOption{ID: "a1", Text: "again", NextQuestionID: "b"})
				return qs
			},
			first:   "a",
			wantMsg: "duplicate option ID",
		},
		{
			name: "no terminal option",
			mutate: func(qs []Question) []Question {
				qs[2].Options[0].NextQuestionID = "a"
				return qs
			},
			first:   "a",
			wantMsg: "no terminal options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGraph(tt.mutate(testQuestions()), tt.first)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestResolveNext(t *testing.T) {
	g, err := NewGraph(testQuestions(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, err := g.ResolveNext("a", "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "b" {
		t.Errorf("got next %q, want %q", next, "b")
	}

	// Terminal option resolves to the empty id.
	next, err = g.ResolveNext("c", "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "" {
		t.Errorf("got next %q for terminal option, want empty", next)
	}

	// Same inputs, same output.
	again, err := g.ResolveNext("a", "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != "b" {
		t.Errorf("second call returned %q, want %q", again, "b")
	}
}

func TestResolveNext_NotFound(t *testing.T) {
	g, err := NewGraph(testQuestions(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = g.ResolveNext("ghost", "a1")
	var qnf *QuestionNotFoundError
	if !errors.As(err, &qnf) {
		t.Fatalf("expected QuestionNotFoundError, got %v", err)
	}

	_, err = g.ResolveNext("a", "b1")
	var onf *OptionNotFoundError
	if !errors.As(err, &onf) {
		t.Fatalf("expected OptionNotFoundError, got %v", err)
	}
	if onf.QuestionID != "a" || onf.OptionID != "b1" {
		t.Errorf("error carries %q/%q, want a/b1", onf.QuestionID, onf.OptionID)
	}
}

func TestDefaultFlow_Shape(t *testing.T) {
	g := Default()

	if g.FirstQuestionID() != "q1" {
		t.Errorf("got first question %q, want q1", g.FirstQuestionID())
	}

	// The no-experience branch skips the other-sport questions.
	next, err := g.ResolveNext("q1", "no_experience")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "q2" {
		t.Errorf("no_experience leads to %q, want q2", next)
	}

	// The experience branch goes through hours and sport selection.
	for _, step := range []struct{ q, opt, want string }{
		{"q1", "has_experience", "q1.1"},
		{"q1.1", "q1_1_hours_50_100", "q1.2"},
		{"q1.2", "q1_2_tennis", "q2"},
		{"q2", "q2_hours_20_50", "q3"},
		{"q3", "q3_opt5", "q4"},
		{"q4", "q4_opt3", "q5"},
		{"q5", "q5_opt2", "q6"},
	} {
		next, err := g.ResolveNext(step.q, step.opt)
		if err != nil {
			t.Fatalf("ResolveNext(%s, %s): %v", step.q, step.opt, err)
		}
		if next != step.want {
			t.Errorf("ResolveNext(%s, %s) = %q, want %q", step.q, step.opt, next, step.want)
		}
	}

	// Every q6 option ends the flow.
	q6, err := g.Question("q6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, opt := range q6.Options {
		if opt.NextQuestionID != "" {
			t.Errorf("q6 option %q is not terminal", opt.ID)
		}
	}
}
