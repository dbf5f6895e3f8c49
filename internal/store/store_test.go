package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dkoval/padelwiz/internal/flow"
)

func openTestRepo(t *testing.T) Repo {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st.Repo()
}

func TestGetOrCreateUser_Idempotent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first, err := repo.GetOrCreateUser(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.GetOrCreateUser(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("same external id produced users %d and %d", first.ID, second.ID)
	}
	if second.ExternalID != 42 {
		t.Errorf("got external id %d, want 42", second.ExternalID)
	}
}

func TestStartSession_DistinctNumbersLatestActive(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	s1, err := repo.StartSession(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := repo.StartSession(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s1.ID == s2.ID {
		t.Error("two sessions share an internal id")
	}
	if s1.Number == s2.Number {
		t.Errorf("two sessions share session number %d", s1.Number)
	}

	// Only the latest session counts as active; the superseded one stays
	// in the store but is never resumed.
	active, err := repo.ActiveSessionForUser(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active == nil {
		t.Fatal("expected an active session")
	}
	if active.ID != s2.ID {
		t.Errorf("active session is %d, want the latest (%d)", active.ID, s2.ID)
	}
}

func TestActiveSessionForUser_NoneActive(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	active, err := repo.ActiveSessionForUser(ctx, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active != nil {
		t.Errorf("expected nil for unknown user, got session %d", active.ID)
	}

	s, err := repo.StartSession(ctx, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	level := "D"
	if err := repo.MarkFinished(ctx, s.ID, &level); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	active, err = repo.ActiveSessionForUser(ctx, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active != nil {
		t.Errorf("finished session %d still reported active", active.ID)
	}
}

func TestUpdateAnswers_ReplacesWholeList(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	s, err := repo.StartSession(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Answers) != 0 {
		t.Fatalf("new session has %d answers", len(s.Answers))
	}

	answers := []flow.Answer{
		{QuestionID: "q1", OptionID: "no_experience"},
		{QuestionID: "q2", OptionID: "q2_hours_20_50"},
	}
	if err := repo.UpdateAnswers(ctx, s.ID, answers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Session(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(got.Answers))
	}
	if got.Answers[1] != answers[1] {
		t.Errorf("got answer %+v, want %+v", got.Answers[1], answers[1])
	}
}

func TestMarkFinished_MonotonicAndIdempotent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	s, err := repo.StartSession(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	level := "C-"
	if err := repo.MarkFinished(ctx, s.ID, &level); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, err := repo.Session(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Finished || first.FinalLevel == nil || *first.FinalLevel != "C-" {
		t.Fatalf("got finished=%v level=%v, want finished C-", first.Finished, first.FinalLevel)
	}
	if first.FinishedAt == nil {
		t.Fatal("finished session has no finished_at")
	}

	// Same level again: no observable change.
	if err := repo.MarkFinished(ctx, s.ID, &level); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Session(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *second.FinalLevel != "C-" || !second.FinishedAt.Equal(*first.FinishedAt) {
		t.Errorf("repeat call changed state: level=%v finished_at=%v", *second.FinalLevel, second.FinishedAt)
	}

	// Nil level keeps the stored one.
	if err := repo.MarkFinished(ctx, s.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := repo.Session(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.FinalLevel == nil || *third.FinalLevel != "C-" {
		t.Errorf("nil level overwrote stored level: %v", third.FinalLevel)
	}

	// A different level wins, but the session never un-finishes.
	newLevel := "C"
	if err := repo.MarkFinished(ctx, s.ID, &newLevel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fourth, err := repo.Session(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fourth.Finished || *fourth.FinalLevel != "C" {
		t.Errorf("got finished=%v level=%v, want finished C", fourth.Finished, *fourth.FinalLevel)
	}

	// Completion is reflected on the user.
	u, err := repo.GetOrCreateUser(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.QuestionnaireCompleted {
		t.Error("user not flagged as completed")
	}
}

func TestCacheSetters(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	s, err := repo.StartSession(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.SetExperience(ctx, s.ID, 14.5, "C-"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SetInterimRating(ctx, s.ID, 2.4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Session(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ExperienceMonths == nil || *got.ExperienceMonths != 14.5 {
		t.Errorf("got experience months %v, want 14.5", got.ExperienceMonths)
	}
	if got.ExperienceLevel == nil || *got.ExperienceLevel != "C-" {
		t.Errorf("got experience level %v, want C-", got.ExperienceLevel)
	}
	if got.InterimRating == nil || *got.InterimRating != 2.4 {
		t.Errorf("got interim rating %v, want 2.4", got.InterimRating)
	}
}
