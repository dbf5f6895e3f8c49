package rating

import "github.com/dkoval/padelwiz/internal/flow"

// padelOptionMonths maps q2 options (hours of padel played) to equivalent
// months of experience.
var padelOptionMonths = map[string]float64{
	"q2_hours_10":       0.0,
	"q2_hours_20_50":    1.0,
	"q2_hours_50_100":   2.0,
	"q2_hours_100_140":  4.0,
	"q2_hours_120_190":  5.0,
	"q2_hours_190_290":  7.0,
	"q2_hours_290_430":  10.0,
	"q2_hours_430_580":  18.0,
	"q2_hours_580_plus": 24.0,
}

// otherSportOptionMonths maps q1.1 options (hours of another racket sport)
// to equivalent months of experience.
var otherSportOptionMonths = map[string]float64{
	"q1_1_hours_10":       0.0,
	"q1_1_hours_20_50":    1.0,
	"q1_1_hours_50_100":   2.0,
	"q1_1_hours_100_140":  4.0,
	"q1_1_hours_120_190":  5.0,
	"q1_1_hours_190_290":  7.0,
	"q1_1_hours_290_430":  10.0,
	"q1_1_hours_430_580":  18.0,
	"q1_1_hours_580_plus": 24.0,
}

// sportCoefficients dampen other-sport experience before it counts toward
// the padel total. Skill transfer from other racket sports is partial and
// sport-dependent: tennis carries over the most, table tennis and
// unspecified sports the least.
var sportCoefficients = map[string]float64{
	"q1_2_tennis":       0.65,
	"q1_2_squash":       0.55,
	"q1_2_badminton":    0.45,
	"q1_2_table_tennis": 0.35,
	"q1_2_other":        0.25,
}

// defaultSportCoefficient applies when hours were reported but no sport was
// selected. Treating the months as already padel-equivalent is a deliberate
// fallback: an unattributed answer is counted in full rather than guessed at.
const defaultSportCoefficient = 1.0

// experienceThresholds maps total months to a band by a first-threshold-
// exceeded scan: the band of the first entry whose threshold is strictly
// greater than the total. Totals at or above the last threshold are C+.
var experienceThresholds = []struct {
	below float64
	level Level
}{
	{1.0, LevelEMinus},
	{2.0, LevelE},
	{4.0, LevelEPlus},
	{6.0, LevelDMinus},
	{8.0, LevelD},
	{11.0, LevelDPlus},
	{15.0, LevelCMinus},
	{24.0, LevelC},
}

// PlayerExperience is the normalized view of a player's combined racket
// sport experience. Derived from answers on demand, never authoritative.
type PlayerExperience struct {
	OtherSportMonths float64
	PadelMonths      float64
	OtherSport       string
	TotalMonths      float64
	Level            Level
}

// CalculateExperience derives the player's experience from the answer list.
// Other-sport months are dampened by the sport coefficient and added to
// padel months; the total maps to a band via the threshold table.
//
// Returns nil until the padel hours question has been answered. That is the
// expected "data incomplete" state while the questionnaire is in progress,
// not a failure.
func CalculateExperience(answers []flow.Answer) *PlayerExperience {
	otherMonths := 0.0
	otherSport := ""
	var padelMonths *float64

	for _, ans := range answers {
		if m, ok := otherSportOptionMonths[ans.OptionID]; ok {
			otherMonths = m
		} else if m, ok := padelOptionMonths[ans.OptionID]; ok {
			v := m
			padelMonths = &v
		} else if _, ok := sportCoefficients[ans.OptionID]; ok {
			otherSport = ans.OptionID
		}
	}

	if padelMonths == nil {
		return nil
	}

	coeff := defaultSportCoefficient
	if c, ok := sportCoefficients[otherSport]; ok {
		coeff = c
	}

	total := otherMonths*coeff + *padelMonths
	return &PlayerExperience{
		OtherSportMonths: otherMonths,
		PadelMonths:      *padelMonths,
		OtherSport:       otherSport,
		TotalMonths:      total,
		Level:            monthsToLevel(total),
	}
}

func monthsToLevel(totalMonths float64) Level {
	for _, t := range experienceThresholds {
		if totalMonths < t.below {
			return t.level
		}
	}
	return LevelCPlus
}
