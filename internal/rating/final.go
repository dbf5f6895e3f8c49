package rating

import "github.com/dkoval/padelwiz/internal/flow"

// Experience weighting: the less experience a player reports, the more it
// dominates the final score, because low-experience self-assessment of
// skill is trusted less. Product-tuned constants.
const (
	weightLowExperience  = 3.0 // E-, E, E+, D-
	weightMidExperience  = 2.5 // D, D+, C-
	weightHighExperience = 2.0 // C, C+
)

// maxBandsFromExperience clamps the final band to within this many ladder
// positions of the experience band, bounding the effect of over- or
// under-confident skill answers.
const maxBandsFromExperience = 3

// skillDimensions is the number of skill scores entering the average.
const skillDimensions = 4

// FinalRating is the combined questionnaire result: the final band, the
// numeric score that produced it, and the inputs it was built from.
// Computed once, at session completion.
type FinalRating struct {
	Level           Level
	Score           float64
	ExperienceLevel Level
	Skills          SkillRatings
}

// ResolveFinalRating combines experience and skill levels into the final
// band. Returns nil until the experience level and all four skill
// dimensions are known; an in-progress session, not an error.
func ResolveFinalRating(answers []flow.Answer) *FinalRating {
	experience := CalculateExperience(answers)
	if experience == nil {
		return nil
	}

	skills := DeriveSkillRatings(answers)
	if !skills.Complete() {
		return nil
	}

	weight := experienceWeight(experience.Level)
	total := experience.Level.Score() * weight
	for _, l := range skills.levels() {
		total += l.Score()
	}
	average := total / (weight + skillDimensions)

	level := nearestLevel(average)
	level = clampToAnchor(level, experience.Level, maxBandsFromExperience)

	return &FinalRating{
		Level:           level,
		Score:           average,
		ExperienceLevel: experience.Level,
		Skills:          skills,
	}
}

func experienceWeight(l Level) float64 {
	switch l {
	case LevelEMinus, LevelE, LevelEPlus, LevelDMinus:
		return weightLowExperience
	case LevelD, LevelDPlus, LevelCMinus:
		return weightMidExperience
	default:
		return weightHighExperience
	}
}
