package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/dkoval/padelwiz/internal/flow"
	"github.com/dkoval/padelwiz/internal/rating"
	"github.com/dkoval/padelwiz/internal/store"
)

// fakeRepo is an in-memory store.Repo for engine tests. It keeps the same
// active-session and monotonic-finish semantics as the ent implementation.
type fakeRepo struct {
	nextID   int
	users    map[int64]*store.UserRecord
	sessions map[int]*store.SessionRecord

	failUpdateAnswers error
	failSetExperience error
	updateCalls       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    make(map[int64]*store.UserRecord),
		sessions: make(map[int]*store.SessionRecord),
	}
}

func (f *fakeRepo) GetOrCreateUser(_ context.Context, externalID int64) (*store.UserRecord, error) {
	u, ok := f.users[externalID]
	if !ok {
		f.nextID++
		u = &store.UserRecord{ID: f.nextID, ExternalID: externalID}
		f.users[externalID] = u
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) StartSession(ctx context.Context, externalID int64) (*store.SessionRecord, error) {
	u, err := f.GetOrCreateUser(ctx, externalID)
	if err != nil {
		return nil, err
	}
	f.nextID++
	rec := &store.SessionRecord{
		ID:     f.nextID,
		Number: int64(100000000000 + f.nextID),
		UserID: u.ID,
	}
	f.sessions[rec.ID] = rec
	cp := *rec
	return &cp, nil
}

func (f *fakeRepo) UpdateAnswers(_ context.Context, sessionID int, answers []flow.Answer) error {
	if f.failUpdateAnswers != nil {
		return f.failUpdateAnswers
	}
	f.updateCalls++
	rec, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("no such session")
	}
	rec.Answers = append([]flow.Answer(nil), answers...)
	return nil
}

func (f *fakeRepo) MarkFinished(_ context.Context, sessionID int, finalLevel *string) error {
	rec, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("no such session")
	}
	rec.Finished = true
	if finalLevel != nil {
		lvl := *finalLevel
		rec.FinalLevel = &lvl
	}
	return nil
}

func (f *fakeRepo) ActiveSessionForUser(_ context.Context, externalID int64) (*store.SessionRecord, error) {
	u, ok := f.users[externalID]
	if !ok {
		return nil, nil
	}
	var latest *store.SessionRecord
	for _, rec := range f.sessions {
		if rec.UserID != u.ID || rec.Finished {
			continue
		}
		if latest == nil || rec.ID > latest.ID {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	cp.Answers = append([]flow.Answer(nil), latest.Answers...)
	return &cp, nil
}

func (f *fakeRepo) Session(_ context.Context, sessionID int) (*store.SessionRecord, error) {
	rec, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRepo) SessionByNumber(_ context.Context, number int64) (*store.SessionRecord, error) {
	for _, rec := range f.sessions {
		if rec.Number == number {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) SessionsForUser(_ context.Context, externalID int64) ([]*store.SessionRecord, error) {
	u, ok := f.users[externalID]
	if !ok {
		return nil, nil
	}
	var out []*store.SessionRecord
	for _, rec := range f.sessions {
		if rec.UserID == u.ID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) SetExperience(_ context.Context, sessionID int, totalMonths float64, level string) error {
	if f.failSetExperience != nil {
		return f.failSetExperience
	}
	rec, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("no such session")
	}
	rec.ExperienceMonths = &totalMonths
	rec.ExperienceLevel = &level
	return nil
}

func (f *fakeRepo) SetInterimRating(_ context.Context, sessionID int, value float64) error {
	rec, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("no such session")
	}
	rec.InterimRating = &value
	return nil
}

func (f *fakeRepo) SetAdviceReceived(_ context.Context, externalID int64) error {
	u, ok := f.users[externalID]
	if !ok {
		return errors.New("no such user")
	}
	u.AdviceReceived = true
	return nil
}

func newTestEngine(repo store.Repo) *Engine {
	return New(Options{Graph: flow.Default(), Repo: repo})
}

func submitAll(t *testing.T, e *Engine, userID int64, inputs []string) *StepResult {
	t.Helper()
	var res *StepResult
	var err error
	for _, in := range inputs {
		res, err = e.Submit(context.Background(), userID, in)
		if err != nil {
			t.Fatalf("Submit(%q): %v", in, err)
		}
	}
	return res
}

func TestEngineFullRun(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	ctx := context.Background()

	res, err := e.Start(ctx, 42)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if res.Status != StatusQuestion || res.Question.ID != "q1" {
		t.Fatalf("Start = %+v, want question q1", res)
	}
	if res.SessionNumber == 0 {
		t.Fatal("Start returned zero session number")
	}

	res = submitAll(t, e, 42, []string{
		"No, padel is my first racket sport",
		"More than 580 hours",
		"My consistency decides matches",
		"The net game is my weapon",
		"I use double walls and corners comfortably",
		"Full repertoire under pressure, both sides",
	})

	if res.Status != StatusCompleted {
		t.Fatalf("final status = %v, want StatusCompleted", res.Status)
	}
	if !res.Outcome.Rated {
		t.Fatal("outcome not rated")
	}
	// Experience C+ (weight 2.0) with skills C+, C+, C, C+ averages 3.275,
	// which rounds to C+ and stays within the clamp window.
	if res.Outcome.Level != rating.LevelCPlus {
		t.Errorf("level = %s, want %s", res.Outcome.Level, rating.LevelCPlus)
	}
	if res.Outcome.Target != rating.LevelCPlus {
		t.Errorf("target = %s, want %s", res.Outcome.Target, rating.LevelCPlus)
	}
	if res.Outcome.Experience != rating.LevelCPlus {
		t.Errorf("experience = %s, want %s", res.Outcome.Experience, rating.LevelCPlus)
	}

	rec, err := repo.SessionByNumber(ctx, res.SessionNumber)
	if err != nil || rec == nil {
		t.Fatalf("SessionByNumber: rec=%v err=%v", rec, err)
	}
	if !rec.Finished {
		t.Error("session not marked finished")
	}
	if rec.FinalLevel == nil || *rec.FinalLevel != string(rating.LevelCPlus) {
		t.Errorf("stored final level = %v, want C+", rec.FinalLevel)
	}
	if len(rec.Answers) != 6 {
		t.Errorf("stored %d answers, want 6", len(rec.Answers))
	}
	if rec.ExperienceMonths == nil || *rec.ExperienceMonths != 24 {
		t.Errorf("cached experience months = %v, want 24", rec.ExperienceMonths)
	}
}

func TestEngineMismatchDoesNotAdvance(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	ctx := context.Background()

	if _, err := e.Start(ctx, 7); err != nil {
		t.Fatalf("Start: %v", err)
	}

	res, err := e.Submit(ctx, 7, "something off the keyboard")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Status != StatusMismatch {
		t.Fatalf("status = %v, want StatusMismatch", res.Status)
	}
	if res.Question.ID != "q1" {
		t.Errorf("re-prompted question = %s, want q1", res.Question.ID)
	}
	if repo.updateCalls != 0 {
		t.Errorf("mismatch persisted %d writes, want 0", repo.updateCalls)
	}

	// A valid reply still works afterwards.
	res, err = e.Submit(ctx, 7, "No, padel is my first racket sport")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Status != StatusQuestion || res.Question.ID != "q2" {
		t.Fatalf("after mismatch got %+v, want question q2", res)
	}
}

func TestEngineMatchByOptionID(t *testing.T) {
	repo := newFakeRepo()
	e := New(Options{Graph: flow.Default(), Repo: repo, MatchKey: MatchByOptionID})
	ctx := context.Background()

	if _, err := e.Start(ctx, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	res, err := e.Submit(ctx, 1, "No, padel is my first racket sport")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Status != StatusMismatch {
		t.Fatalf("display text matched under id matching: %v", res.Status)
	}

	res, err = e.Submit(ctx, 1, "no_experience")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Status != StatusQuestion || res.Question.ID != "q2" {
		t.Fatalf("id reply got %+v, want question q2", res)
	}
}

func TestEngineResumeAfterRestart(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	e1 := newTestEngine(repo)
	if _, err := e1.Start(ctx, 9); err != nil {
		t.Fatalf("Start: %v", err)
	}
	submitAll(t, e1, 9, []string{
		"Yes, I have racket sport experience",
		"100–140 hours",
	})

	// A new engine over the same repo stands in for a process restart.
	e2 := newTestEngine(repo)
	res, err := e2.Resume(ctx, 9)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if res.Status != StatusQuestion || res.Question.ID != "q1.2" {
		t.Fatalf("Resume = %+v, want question q1.2", res)
	}

	// Submitting without an explicit Resume also picks up where it left off.
	e3 := newTestEngine(repo)
	res, err = e3.Submit(ctx, 9, "Tennis")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Status != StatusQuestion || res.Question.ID != "q2" {
		t.Fatalf("Submit after restart = %+v, want question q2", res)
	}
}

func TestEngineResumeNoSession(t *testing.T) {
	e := newTestEngine(newFakeRepo())

	res, err := e.Resume(context.Background(), 404)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if res.Status != StatusNoSession {
		t.Fatalf("status = %v, want StatusNoSession", res.Status)
	}

	res, err = e.Submit(context.Background(), 404, "anything")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Status != StatusNoSession {
		t.Fatalf("Submit status = %v, want StatusNoSession", res.Status)
	}
}

func TestEngineResumeCorruptSessionInvalidates(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	rec, err := repo.StartSession(ctx, 13)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	corrupt := []flow.Answer{{QuestionID: "q1", OptionID: "not_an_option"}}
	if err := repo.UpdateAnswers(ctx, rec.ID, corrupt); err != nil {
		t.Fatalf("UpdateAnswers: %v", err)
	}

	e := newTestEngine(repo)
	res, err := e.Resume(ctx, 13)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if res.Status != StatusRestart {
		t.Fatalf("status = %v, want StatusRestart", res.Status)
	}

	stored, err := repo.Session(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if !stored.Finished {
		t.Error("corrupt session left active")
	}
	if stored.FinalLevel != nil {
		t.Errorf("corrupt session got level %q", *stored.FinalLevel)
	}
}

func TestEngineResumeCompleteSessionFinishes(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	rec, err := repo.StartSession(ctx, 21)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	full := []flow.Answer{
		{QuestionID: "q1", OptionID: "no_experience"},
		{QuestionID: "q2", OptionID: "q2_hours_10"},
		{QuestionID: "q3", OptionID: "q3_opt1"},
		{QuestionID: "q4", OptionID: "q4_opt1"},
		{QuestionID: "q5", OptionID: "q5_opt1"},
		{QuestionID: "q6", OptionID: "q6_opt1"},
	}
	if err := repo.UpdateAnswers(ctx, rec.ID, full); err != nil {
		t.Fatalf("UpdateAnswers: %v", err)
	}

	e := newTestEngine(repo)
	res, err := e.Resume(ctx, 21)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if res.Status != StatusCompleted {
		t.Fatalf("status = %v, want StatusCompleted", res.Status)
	}
	if !res.Outcome.Rated {
		t.Fatal("outcome not rated")
	}

	stored, err := repo.Session(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if !stored.Finished || stored.FinalLevel == nil {
		t.Errorf("session not finished with level: %+v", stored)
	}
}

func TestEnginePersistenceFailureKeepsCursor(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	ctx := context.Background()

	if _, err := e.Start(ctx, 5); err != nil {
		t.Fatalf("Start: %v", err)
	}

	repo.failUpdateAnswers = &store.PersistenceError{Op: "update answers", Err: errors.New("disk full")}
	_, err := e.Submit(ctx, 5, "No, padel is my first racket sport")
	if err == nil {
		t.Fatal("expected error from failed persistence")
	}
	var perr *store.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error %v does not wrap PersistenceError", err)
	}

	// Storage recovers; retrying the same reply succeeds from the same
	// question rather than skipping ahead.
	repo.failUpdateAnswers = nil
	res, err := e.Submit(ctx, 5, "No, padel is my first racket sport")
	if err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if res.Status != StatusQuestion || res.Question.ID != "q2" {
		t.Fatalf("retry = %+v, want question q2", res)
	}
}

func TestEngineCacheFailureIsSwallowed(t *testing.T) {
	repo := newFakeRepo()
	repo.failSetExperience = errors.New("cache write refused")
	e := newTestEngine(repo)
	ctx := context.Background()

	if _, err := e.Start(ctx, 3); err != nil {
		t.Fatalf("Start: %v", err)
	}
	res := submitAll(t, e, 3, []string{
		"No, padel is my first racket sport",
		"Under 10 hours",
	})
	if res.Status != StatusQuestion || res.Question.ID != "q3" {
		t.Fatalf("progress blocked by cache failure: %+v", res)
	}
}

func TestEngineStartReplacesActiveSession(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	ctx := context.Background()

	first, err := e.Start(ctx, 8)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	submitAll(t, e, 8, []string{"No, padel is my first racket sport"})

	second, err := e.Start(ctx, 8)
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if second.SessionNumber == first.SessionNumber {
		t.Fatal("restart reused the session number")
	}
	if second.Question.ID != "q1" {
		t.Errorf("restart question = %s, want q1", second.Question.ID)
	}

	active, err := repo.ActiveSessionForUser(ctx, 8)
	if err != nil {
		t.Fatalf("ActiveSessionForUser: %v", err)
	}
	if active.Number != second.SessionNumber {
		t.Errorf("active session = %d, want the new one %d", active.Number, second.SessionNumber)
	}
	if len(active.Answers) != 0 {
		t.Errorf("new session carries %d answers from the old one", len(active.Answers))
	}
}
