package result

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dkoval/padelwiz/internal/advice"
	"github.com/dkoval/padelwiz/internal/rating"
	"github.com/dkoval/padelwiz/internal/wizard"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testOutcome() *wizard.Outcome {
	rel := rating.LevelD
	net := rating.LevelDMinus
	wall := rating.LevelE
	strokes := rating.LevelDPlus
	return &wizard.Outcome{
		Level:      rating.LevelD,
		Target:     rating.LevelDPlus,
		Score:      1.7,
		Experience: rating.LevelDMinus,
		Skills: rating.SkillRatings{
			Reliability: &rel,
			NetPlay:     &net,
			BackWall:    &wall,
			Strokes:     &strokes,
		},
		Rated: true,
	}
}

func TestResult_ShowsLevelAndTarget(t *testing.T) {
	s := New(testOutcome(), 123456789012, false)
	view := s.View(80, 30)
	if !strings.Contains(view, "D") {
		t.Error("view missing the level")
	}
	if !strings.Contains(view, "next stop: D+") {
		t.Error("view missing the target level")
	}
	if !strings.Contains(view, "123456789012") {
		t.Error("view missing the session number")
	}
}

func TestResult_UnratedOutcome(t *testing.T) {
	s := New(&wizard.Outcome{Rated: false}, 1, true)
	view := s.View(80, 30)
	if !strings.Contains(view, "Not enough answers") {
		t.Error("unrated view should explain the missing rating")
	}

	// Advice is unavailable without a rating.
	_, cmd := s.Update(keyPress('a'))
	if cmd != nil {
		t.Error("advice key should do nothing without a rating")
	}
}

func TestResult_RestartKey(t *testing.T) {
	s := New(testOutcome(), 1, false)
	_, cmd := s.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected a command on n")
	}
	if _, ok := cmd().(RestartMsg); !ok {
		t.Fatalf("expected RestartMsg, got %T", cmd())
	}
}

func TestResult_AdviceFlow(t *testing.T) {
	s := New(testOutcome(), 1, true)

	next, cmd := s.Update(keyPress('a'))
	if cmd == nil {
		t.Fatal("expected a command on a")
	}
	// The command batches the spinner tick with the advice request.
	found := false
	switch m := cmd().(type) {
	case AdviceRequestedMsg:
		found = true
	case tea.BatchMsg:
		for _, c := range m {
			if _, ok := c().(AdviceRequestedMsg); ok {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("advice request not emitted")
	}

	view := next.View(80, 30)
	if !strings.Contains(view, "training plan") {
		t.Error("loading state not shown")
	}

	// A second press while loading is ignored.
	_, cmd = next.Update(keyPress('a'))
	if cmd != nil {
		t.Error("advice key should be ignored while loading")
	}

	next, _ = next.Update(AdviceReadyMsg{Advice: &advice.TrainingAdvice{
		Summary: "Keep building rally consistency.",
		Drills:  []string{"wall rebound ladder"},
	}})
	view = next.View(80, 40)
	if !strings.Contains(view, "Keep building rally consistency.") {
		t.Error("advice summary not shown")
	}
	if !strings.Contains(view, "wall rebound ladder") {
		t.Error("drills not shown")
	}
}

func TestResult_AdviceFailure(t *testing.T) {
	s := New(testOutcome(), 1, true)
	next, _ := s.Update(keyPress('a'))
	next, _ = next.Update(AdviceReadyMsg{Err: errors.New("provider down")})
	view := next.View(80, 30)
	if !strings.Contains(view, "could not generate") {
		t.Error("failure state not shown")
	}
}

func TestResult_AdviceDisabledWithoutService(t *testing.T) {
	s := New(testOutcome(), 1, false)
	_, cmd := s.Update(keyPress('a'))
	if cmd != nil {
		t.Error("advice key should do nothing when advice is disabled")
	}
}
