package rating

// Level is one of the nine ordinal bands players are rated on, from E-
// (lowest) to C+ (highest). The same ladder is used for experience, each
// skill dimension, and the final rating.
type Level string

const (
	LevelEMinus Level = "E-"
	LevelE      Level = "E"
	LevelEPlus  Level = "E+"
	LevelDMinus Level = "D-"
	LevelD      Level = "D"
	LevelDPlus  Level = "D+"
	LevelCMinus Level = "C-"
	LevelC      Level = "C"
	LevelCPlus  Level = "C+"
)

// ladder lists all bands in ascending order. Ordinal positions and the
// nearest-band tie break depend on this ordering.
var ladder = []Level{
	LevelEMinus, LevelE, LevelEPlus,
	LevelDMinus, LevelD, LevelDPlus,
	LevelCMinus, LevelC, LevelCPlus,
}

// levelScores maps each band to its numeric score, linearly spaced with a
// step of roughly 0.33. These are product-tuned constants, preserved as-is.
var levelScores = map[Level]float64{
	LevelEMinus: 0.66,
	LevelE:      1.0,
	LevelEPlus:  1.33,
	LevelDMinus: 1.66,
	LevelD:      2.0,
	LevelDPlus:  2.33,
	LevelCMinus: 2.66,
	LevelC:      3.0,
	LevelCPlus:  3.33,
}

// Ladder returns all bands in ascending order.
func Ladder() []Level {
	out := make([]Level, len(ladder))
	copy(out, ladder)
	return out
}

// Valid reports whether l is one of the nine bands.
func (l Level) Valid() bool {
	_, ok := levelScores[l]
	return ok
}

// Score returns the numeric score of the band, or 0 for an unknown band.
func (l Level) Score() float64 {
	return levelScores[l]
}

// position returns the ordinal index of l on the ladder, or -1.
func position(l Level) int {
	for i, band := range ladder {
		if band == l {
			return i
		}
	}
	return -1
}

// nearestLevel maps a numeric score back to the band with the minimum
// absolute distance. Ties resolve to the lower band: the ladder is scanned
// in ascending order and a later band must be strictly closer to win.
func nearestLevel(score float64) Level {
	best := ladder[0]
	bestDist := abs(score - best.Score())
	for _, band := range ladder[1:] {
		d := abs(score - band.Score())
		if d < bestDist {
			best = band
			bestDist = d
		}
	}
	return best
}

// clampToAnchor limits l to within maxDelta ordinal positions of anchor.
func clampToAnchor(l, anchor Level, maxDelta int) Level {
	pos := position(l)
	anchorPos := position(anchor)
	if pos < 0 || anchorPos < 0 {
		return l
	}
	if pos > anchorPos+maxDelta {
		return ladder[anchorPos+maxDelta]
	}
	if pos < anchorPos-maxDelta {
		return ladder[anchorPos-maxDelta]
	}
	return l
}

// TargetLevel returns the next band up the ladder, the level a player
// should train toward. Saturates at the top band.
func TargetLevel(l Level) Level {
	pos := position(l)
	if pos < 0 || pos == len(ladder)-1 {
		return LevelCPlus
	}
	return ladder[pos+1]
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
