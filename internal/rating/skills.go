package rating

import "github.com/dkoval/padelwiz/internal/flow"

// SkillRatings holds one band per skill dimension. A nil dimension means
// its question has not been answered yet.
type SkillRatings struct {
	Reliability *Level
	NetPlay     *Level
	BackWall    *Level
	Strokes     *Level
}

// Complete reports whether all four dimensions have been rated.
func (s SkillRatings) Complete() bool {
	return s.Reliability != nil && s.NetPlay != nil && s.BackWall != nil && s.Strokes != nil
}

// levels returns the four dimensions in their fixed order.
func (s SkillRatings) levels() []*Level {
	return []*Level{s.Reliability, s.NetPlay, s.BackWall, s.Strokes}
}

var reliabilityLevels = map[string]Level{
	"q3_opt1": LevelEMinus,
	"q3_opt2": LevelE,
	"q3_opt3": LevelEPlus,
	"q3_opt4": LevelDMinus,
	"q3_opt5": LevelD,
	"q3_opt6": LevelDPlus,
	"q3_opt7": LevelCMinus,
	"q3_opt8": LevelC,
	"q3_opt9": LevelCPlus,
}

var netPlayLevels = map[string]Level{
	"q4_opt1": LevelEMinus,
	"q4_opt2": LevelE,
	"q4_opt3": LevelEPlus,
	"q4_opt4": LevelD,
	"q4_opt5": LevelCMinus,
	"q4_opt6": LevelCPlus,
}

var backWallLevels = map[string]Level{
	"q5_opt1": LevelEMinus,
	"q5_opt2": LevelE,
	"q5_opt3": LevelEPlus,
	"q5_opt4": LevelD,
	"q5_opt5": LevelCMinus,
	"q5_opt6": LevelC,
}

var strokesLevels = map[string]Level{
	"q6_opt1": LevelEMinus,
	"q6_opt2": LevelE,
	"q6_opt3": LevelEPlus,
	"q6_opt4": LevelDMinus,
	"q6_opt5": LevelD,
	"q6_opt6": LevelDPlus,
	"q6_opt7": LevelCMinus,
	"q6_opt8": LevelC,
	"q6_opt9": LevelCPlus,
}

// skillQuestionTables maps each skill question to its option-to-band table.
var skillQuestionTables = map[string]map[string]Level{
	"q3": reliabilityLevels,
	"q4": netPlayLevels,
	"q5": backWallLevels,
	"q6": strokesLevels,
}

// DeriveSkillRatings scans the answer list once and fills in whichever of
// the four skill dimensions have been answered so far. Pure function.
func DeriveSkillRatings(answers []flow.Answer) SkillRatings {
	var s SkillRatings
	for _, ans := range answers {
		table, ok := skillQuestionTables[ans.QuestionID]
		if !ok {
			continue
		}
		level, ok := table[ans.OptionID]
		if !ok {
			continue
		}
		l := level
		switch ans.QuestionID {
		case "q3":
			s.Reliability = &l
		case "q4":
			s.NetPlay = &l
		case "q5":
			s.BackWall = &l
		case "q6":
			s.Strokes = &l
		}
	}
	return s
}
