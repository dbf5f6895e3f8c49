package rating

import (
	"testing"

	"github.com/dkoval/padelwiz/internal/flow"
)

func TestDeriveSkillRatings_Partial(t *testing.T) {
	answers := []flow.Answer{
		{QuestionID: "q1", OptionID: "no_experience"},
		{QuestionID: "q2", OptionID: "q2_hours_50_100"},
		{QuestionID: "q3", OptionID: "q3_opt5"},
		{QuestionID: "q4", OptionID: "q4_opt2"},
	}
	s := DeriveSkillRatings(answers)

	if s.Reliability == nil || *s.Reliability != LevelD {
		t.Errorf("got reliability %v, want D", s.Reliability)
	}
	if s.NetPlay == nil || *s.NetPlay != LevelE {
		t.Errorf("got net play %v, want E", s.NetPlay)
	}
	if s.BackWall != nil {
		t.Errorf("back wall should be unrated, got %q", *s.BackWall)
	}
	if s.Strokes != nil {
		t.Errorf("strokes should be unrated, got %q", *s.Strokes)
	}
	if s.Complete() {
		t.Error("ratings with unanswered dimensions reported complete")
	}
}

func TestDeriveSkillRatings_Complete(t *testing.T) {
	answers := []flow.Answer{
		{QuestionID: "q3", OptionID: "q3_opt9"},
		{QuestionID: "q4", OptionID: "q4_opt6"},
		{QuestionID: "q5", OptionID: "q5_opt6"},
		{QuestionID: "q6", OptionID: "q6_opt7"},
	}
	s := DeriveSkillRatings(answers)
	if !s.Complete() {
		t.Fatal("expected complete ratings")
	}
	if *s.Reliability != LevelCPlus || *s.NetPlay != LevelCPlus || *s.BackWall != LevelC || *s.Strokes != LevelCMinus {
		t.Errorf("got %q/%q/%q/%q, want C+/C+/C/C-",
			*s.Reliability, *s.NetPlay, *s.BackWall, *s.Strokes)
	}
}

func TestDeriveSkillRatings_IgnoresNonSkillAnswers(t *testing.T) {
	answers := []flow.Answer{
		{QuestionID: "q1", OptionID: "has_experience"},
		{QuestionID: "q1.1", OptionID: "q1_1_hours_580_plus"},
		{QuestionID: "q2", OptionID: "q2_hours_580_plus"},
	}
	s := DeriveSkillRatings(answers)
	if s.Reliability != nil || s.NetPlay != nil || s.BackWall != nil || s.Strokes != nil {
		t.Errorf("non-skill answers produced ratings: %+v", s)
	}
}

func TestSkillTables_AllOptionsInDefaultFlow(t *testing.T) {
	// Every option of every skill question in the shipped flow must have a
	// band; otherwise a valid traversal could leave a dimension unrated.
	g := flow.Default()
	for questionID, table := range skillQuestionTables {
		q, err := g.Question(questionID)
		if err != nil {
			t.Fatalf("question %q missing from default flow: %v", questionID, err)
		}
		for _, opt := range q.Options {
			level, ok := table[opt.ID]
			if !ok {
				t.Errorf("option %s/%s has no band", questionID, opt.ID)
				continue
			}
			if !level.Valid() {
				t.Errorf("option %s/%s maps to invalid band %q", questionID, opt.ID, level)
			}
		}
	}
}
