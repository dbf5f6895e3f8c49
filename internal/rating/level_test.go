package rating

import "testing"

func TestLadder_Order(t *testing.T) {
	l := Ladder()
	if len(l) != 9 {
		t.Fatalf("got %d bands, want 9", len(l))
	}
	if l[0] != LevelEMinus || l[len(l)-1] != LevelCPlus {
		t.Errorf("ladder runs %q..%q, want E-..C+", l[0], l[len(l)-1])
	}
	for i := 1; i < len(l); i++ {
		if l[i].Score() <= l[i-1].Score() {
			t.Errorf("score of %q (%v) not above %q (%v)", l[i], l[i].Score(), l[i-1], l[i-1].Score())
		}
	}
}

func TestNearestLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{0.0, LevelEMinus},
		{0.66, LevelEMinus},
		{1.0, LevelE},
		{2.17, LevelDPlus},
		{3.2, LevelCPlus},
		{9.9, LevelCPlus},
	}
	for _, tt := range tests {
		if got := nearestLevel(tt.score); got != tt.want {
			t.Errorf("nearestLevel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNearestLevel_TieBreaksLow(t *testing.T) {
	// 1.165 is equidistant from E (1.0) and E+ (1.33); the lower band wins.
	if got := nearestLevel(1.165); got != LevelE {
		t.Errorf("got %q, want E", got)
	}
	// Same on the upper half of the ladder: halfway between C and C+.
	if got := nearestLevel(3.165); got != LevelC {
		t.Errorf("got %q, want C", got)
	}
}

func TestClampToAnchor(t *testing.T) {
	tests := []struct {
		level  Level
		anchor Level
		want   Level
	}{
		{LevelCPlus, LevelEMinus, LevelDMinus}, // 8 above, pulled down to +3
		{LevelEMinus, LevelCPlus, LevelD},      // 8 below, pulled up to -3
		{LevelD, LevelDPlus, LevelD},           // within range, unchanged
		{LevelCPlus, LevelCMinus, LevelCPlus},  // exactly +2, unchanged
		{LevelDMinus, LevelCMinus, LevelDMinus},
	}
	for _, tt := range tests {
		if got := clampToAnchor(tt.level, tt.anchor, maxBandsFromExperience); got != tt.want {
			t.Errorf("clampToAnchor(%q, %q) = %q, want %q", tt.level, tt.anchor, got, tt.want)
		}
	}
}

func TestTargetLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  Level
	}{
		{LevelEMinus, LevelE},
		{LevelDPlus, LevelCMinus},
		{LevelC, LevelCPlus},
		{LevelCPlus, LevelCPlus}, // saturates at the top
	}
	for _, tt := range tests {
		if got := TargetLevel(tt.level); got != tt.want {
			t.Errorf("TargetLevel(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
