package rating

import (
	"testing"

	"github.com/dkoval/padelwiz/internal/flow"
)

func TestCalculateExperience_NilUntilPadelHours(t *testing.T) {
	answers := []flow.Answer{
		{QuestionID: "q1", OptionID: "has_experience"},
		{QuestionID: "q1.1", OptionID: "q1_1_hours_580_plus"},
		{QuestionID: "q1.2", OptionID: "q1_2_tennis"},
	}
	if exp := CalculateExperience(answers); exp != nil {
		t.Errorf("expected nil before padel hours are answered, got %+v", exp)
	}
	if exp := CalculateExperience(nil); exp != nil {
		t.Errorf("expected nil for empty answers, got %+v", exp)
	}
}

func TestCalculateExperience_NoOtherSport(t *testing.T) {
	answers := []flow.Answer{
		{QuestionID: "q1", OptionID: "no_experience"},
		{QuestionID: "q2", OptionID: "q2_hours_580_plus"},
	}
	exp := CalculateExperience(answers)
	if exp == nil {
		t.Fatal("expected experience, got nil")
	}
	if exp.TotalMonths != 24 {
		t.Errorf("got total %v months, want 24", exp.TotalMonths)
	}
	if exp.Level != LevelCPlus {
		t.Errorf("got level %q, want C+", exp.Level)
	}
	if exp.OtherSportMonths != 0 {
		t.Errorf("got other-sport months %v, want 0", exp.OtherSportMonths)
	}
}

func TestCalculateExperience_SportCoefficient(t *testing.T) {
	tests := []struct {
		sport      string
		wantTotal  float64
		wantLevel  Level
	}{
		{"q1_2_tennis", 24*0.65 + 2, LevelC},       // 17.6
		{"q1_2_squash", 24*0.55 + 2, LevelC},       // 15.2
		{"q1_2_badminton", 24*0.45 + 2, LevelCMinus}, // 12.8
		{"q1_2_table_tennis", 24*0.35 + 2, LevelDPlus}, // 10.4
		{"q1_2_other", 24*0.25 + 2, LevelDPlus},    // 8.0
	}
	for _, tt := range tests {
		answers := []flow.Answer{
			{QuestionID: "q1", OptionID: "has_experience"},
			{QuestionID: "q1.1", OptionID: "q1_1_hours_580_plus"},
			{QuestionID: "q1.2", OptionID: tt.sport},
			{QuestionID: "q2", OptionID: "q2_hours_50_100"},
		}
		exp := CalculateExperience(answers)
		if exp == nil {
			t.Fatalf("%s: expected experience, got nil", tt.sport)
		}
		if exp.TotalMonths != tt.wantTotal {
			t.Errorf("%s: got total %v, want %v", tt.sport, exp.TotalMonths, tt.wantTotal)
		}
		if exp.Level != tt.wantLevel {
			t.Errorf("%s: got level %q, want %q", tt.sport, exp.Level, tt.wantLevel)
		}
	}
}

func TestCalculateExperience_DefaultCoefficient(t *testing.T) {
	// Hours reported without a sport selection count in full.
	answers := []flow.Answer{
		{QuestionID: "q1", OptionID: "has_experience"},
		{QuestionID: "q1.1", OptionID: "q1_1_hours_290_430"},
		{QuestionID: "q2", OptionID: "q2_hours_100_140"},
	}
	exp := CalculateExperience(answers)
	if exp == nil {
		t.Fatal("expected experience, got nil")
	}
	if exp.TotalMonths != 14 {
		t.Errorf("got total %v, want 14 (10*1.0 + 4)", exp.TotalMonths)
	}
	if exp.Level != LevelCMinus {
		t.Errorf("got level %q, want C-", exp.Level)
	}
}

func TestCalculateExperience_Monotonic(t *testing.T) {
	// Increasing padel hours, all else fixed, never decreases the band.
	padelOptions := []string{
		"q2_hours_10", "q2_hours_20_50", "q2_hours_50_100", "q2_hours_100_140",
		"q2_hours_120_190", "q2_hours_190_290", "q2_hours_290_430",
		"q2_hours_430_580", "q2_hours_580_plus",
	}
	prev := -1
	for _, opt := range padelOptions {
		answers := []flow.Answer{
			{QuestionID: "q1", OptionID: "has_experience"},
			{QuestionID: "q1.1", OptionID: "q1_1_hours_50_100"},
			{QuestionID: "q1.2", OptionID: "q1_2_squash"},
			{QuestionID: "q2", OptionID: opt},
		}
		exp := CalculateExperience(answers)
		if exp == nil {
			t.Fatalf("%s: expected experience, got nil", opt)
		}
		pos := position(exp.Level)
		if pos < prev {
			t.Errorf("%s: band %q is below the previous option's band", opt, exp.Level)
		}
		prev = pos
	}
}

func TestMonthsToLevel_Total(t *testing.T) {
	// Every non-negative total maps to exactly one band.
	for m := 0.0; m <= 30.0; m += 0.25 {
		l := monthsToLevel(m)
		if !l.Valid() {
			t.Fatalf("monthsToLevel(%v) returned invalid band %q", m, l)
		}
	}
	if monthsToLevel(0) != LevelEMinus {
		t.Errorf("0 months should map to E-")
	}
	if monthsToLevel(23.99) != LevelC {
		t.Errorf("just under 24 months should map to C")
	}
	if monthsToLevel(24) != LevelCPlus {
		t.Errorf("24 months should map to C+")
	}
}
