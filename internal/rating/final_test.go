package rating

import (
	"testing"

	"github.com/dkoval/padelwiz/internal/flow"
)

func completedAnswers(q2, q3, q4, q5, q6 string) []flow.Answer {
	return []flow.Answer{
		{QuestionID: "q1", OptionID: "no_experience"},
		{QuestionID: "q2", OptionID: q2},
		{QuestionID: "q3", OptionID: q3},
		{QuestionID: "q4", OptionID: q4},
		{QuestionID: "q5", OptionID: q5},
		{QuestionID: "q6", OptionID: q6},
	}
}

func TestResolveFinalRating_Incomplete(t *testing.T) {
	// No padel hours yet.
	answers := []flow.Answer{
		{QuestionID: "q1", OptionID: "no_experience"},
		{QuestionID: "q3", OptionID: "q3_opt5"},
	}
	if fr := ResolveFinalRating(answers); fr != nil {
		t.Errorf("expected nil without experience, got %+v", fr)
	}

	// Experience known, one skill dimension missing.
	answers = []flow.Answer{
		{QuestionID: "q1", OptionID: "no_experience"},
		{QuestionID: "q2", OptionID: "q2_hours_100_140"},
		{QuestionID: "q3", OptionID: "q3_opt5"},
		{QuestionID: "q4", OptionID: "q4_opt4"},
		{QuestionID: "q5", OptionID: "q5_opt4"},
	}
	if fr := ResolveFinalRating(answers); fr != nil {
		t.Errorf("expected nil with an unrated dimension, got %+v", fr)
	}
}

func TestResolveFinalRating_TopPlayer(t *testing.T) {
	fr := ResolveFinalRating(completedAnswers(
		"q2_hours_580_plus", "q3_opt9", "q4_opt6", "q5_opt6", "q6_opt9"))
	if fr == nil {
		t.Fatal("expected rating, got nil")
	}
	// Experience C+ (weight 2): (3.33*2 + 3.33 + 3.33 + 3.0 + 3.33) / 6 = 3.275.
	if fr.ExperienceLevel != LevelCPlus {
		t.Errorf("got experience %q, want C+", fr.ExperienceLevel)
	}
	if fr.Level != LevelCPlus {
		t.Errorf("got level %q, want C+", fr.Level)
	}
	if fr.Score < 3.27 || fr.Score > 3.28 {
		t.Errorf("got score %v, want ~3.275", fr.Score)
	}
}

func TestResolveFinalRating_ClampsOverconfidence(t *testing.T) {
	// A brand-new player (E-, weight 3) claiming top marks everywhere:
	// (0.66*3 + 3.33 + 3.33 + 3.0 + 3.33) / 7 ≈ 2.139 → D, then clamped
	// to D- (three bands above E-).
	fr := ResolveFinalRating(completedAnswers(
		"q2_hours_10", "q3_opt9", "q4_opt6", "q5_opt6", "q6_opt9"))
	if fr == nil {
		t.Fatal("expected rating, got nil")
	}
	if fr.ExperienceLevel != LevelEMinus {
		t.Errorf("got experience %q, want E-", fr.ExperienceLevel)
	}
	if fr.Level != LevelDMinus {
		t.Errorf("got level %q, want D- after clamping", fr.Level)
	}
}

func TestResolveFinalRating_WithinClampForAllCombinations(t *testing.T) {
	g := flow.Default()
	options := func(id string) []flow.AnswerOption {
		q, err := g.Question(id)
		if err != nil {
			t.Fatalf("question %q: %v", id, err)
		}
		return q.Options
	}

	for _, q2 := range options("q2") {
		for _, q3 := range options("q3") {
			for _, q4 := range options("q4") {
				for _, q5 := range options("q5") {
					for _, q6 := range options("q6") {
						fr := ResolveFinalRating(completedAnswers(
							q2.ID, q3.ID, q4.ID, q5.ID, q6.ID))
						if fr == nil {
							t.Fatalf("nil rating for %s/%s/%s/%s/%s",
								q2.ID, q3.ID, q4.ID, q5.ID, q6.ID)
						}
						delta := position(fr.Level) - position(fr.ExperienceLevel)
						if delta > maxBandsFromExperience || delta < -maxBandsFromExperience {
							t.Errorf("%s/%s/%s/%s/%s: final %q is %d bands from experience %q",
								q2.ID, q3.ID, q4.ID, q5.ID, q6.ID, fr.Level, delta, fr.ExperienceLevel)
						}
					}
				}
			}
		}
	}
}

func TestExperienceWeight(t *testing.T) {
	tests := []struct {
		level Level
		want  float64
	}{
		{LevelEMinus, 3.0},
		{LevelDMinus, 3.0},
		{LevelD, 2.5},
		{LevelCMinus, 2.5},
		{LevelC, 2.0},
		{LevelCPlus, 2.0},
	}
	for _, tt := range tests {
		if got := experienceWeight(tt.level); got != tt.want {
			t.Errorf("experienceWeight(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
