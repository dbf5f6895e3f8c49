package flow

import (
	"errors"
	"testing"
)

// liveTraversal mimics how a live session advances its pointer: one
// ResolveNext per accepted answer starting from the first question.
func liveTraversal(t *testing.T, g *Graph, answers []Answer) string {
	t.Helper()
	current := g.FirstQuestionID()
	for _, ans := range answers {
		next, err := g.ResolveNext(ans.QuestionID, ans.OptionID)
		if err != nil {
			t.Fatalf("live traversal failed at %s/%s: %v", ans.QuestionID, ans.OptionID, err)
		}
		current = next
	}
	return current
}

// walkAll enumerates every complete path through the graph from the first
// question, following each option at each node.
func walkAll(g *Graph, current string, prefix []Answer, paths *[][]Answer) {
	if current == "" {
		path := make([]Answer, len(prefix))
		copy(path, prefix)
		*paths = append(*paths, path)
		return
	}
	q, err := g.Question(current)
	if err != nil {
		return
	}
	for _, opt := range q.Options {
		walkAll(g, opt.NextQuestionID, append(prefix, Answer{QuestionID: current, OptionID: opt.ID}), paths)
	}
}

func TestResumePointer_MatchesLiveTraversal(t *testing.T) {
	g := Default()

	var paths [][]Answer
	walkAll(g, g.FirstQuestionID(), nil, &paths)
	if len(paths) == 0 {
		t.Fatal("no complete paths found in default flow")
	}

	for _, path := range paths {
		// Every prefix of every valid path must replay to the same
		// pointer a live traversal holds.
		for n := 0; n <= len(path); n++ {
			prefix := path[:n]
			got, err := g.ResumePointer(prefix)
			if err != nil {
				t.Fatalf("ResumePointer(%v): %v", prefix, err)
			}
			want := liveTraversal(t, g, prefix)
			if got != want {
				t.Errorf("ResumePointer after %d answers = %q, live pointer = %q", n, got, want)
			}
		}
	}
}

func TestResumePointer_EmptyAnswers(t *testing.T) {
	g := Default()
	got, err := g.ResumePointer(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != g.FirstQuestionID() {
		t.Errorf("got %q, want first question %q", got, g.FirstQuestionID())
	}
}

func TestResumePointer_CompletedSession(t *testing.T) {
	g := Default()
	answers := []Answer{
		{QuestionID: "q1", OptionID: "no_experience"},
		{QuestionID: "q2", OptionID: "q2_hours_580_plus"},
		{QuestionID: "q3", OptionID: "q3_opt9"},
		{QuestionID: "q4", OptionID: "q4_opt6"},
		{QuestionID: "q5", OptionID: "q5_opt6"},
		{QuestionID: "q6", OptionID: "q6_opt9"},
	}
	got, err := g.ResumePointer(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got pointer %q for completed session, want empty", got)
	}
}

func TestResumePointer_Corrupt(t *testing.T) {
	g := Default()

	tests := []struct {
		name    string
		answers []Answer
	}{
		{
			name: "unknown option id",
			answers: []Answer{
				{QuestionID: "q1", OptionID: "vanished_option"},
			},
		},
		{
			name: "answer for the wrong question",
			answers: []Answer{
				{QuestionID: "q1", OptionID: "no_experience"},
				{QuestionID: "q5", OptionID: "q5_opt1"},
			},
		},
		{
			name: "answer after terminal option",
			answers: []Answer{
				{QuestionID: "q1", OptionID: "no_experience"},
				{QuestionID: "q2", OptionID: "q2_hours_10"},
				{QuestionID: "q3", OptionID: "q3_opt1"},
				{QuestionID: "q4", OptionID: "q4_opt1"},
				{QuestionID: "q5", OptionID: "q5_opt1"},
				{QuestionID: "q6", OptionID: "q6_opt1"},
				{QuestionID: "q6", OptionID: "q6_opt2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.ResumePointer(tt.answers)
			var corrupt *CorruptSessionError
			if !errors.As(err, &corrupt) {
				t.Fatalf("expected CorruptSessionError, got %v", err)
			}
		})
	}
}
