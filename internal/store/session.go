package store

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/dkoval/padelwiz/ent"
	"github.com/dkoval/padelwiz/ent/session"
	"github.com/dkoval/padelwiz/ent/user"
	entschema "github.com/dkoval/padelwiz/ent/schema"
	"github.com/dkoval/padelwiz/internal/flow"
)

// sessionNumberLimit bounds the user-facing session code to 12 digits.
var sessionNumberLimit = big.NewInt(1_000_000_000_000)

// maxNumberAttempts caps the uniqueness-retry loop. Collisions in a 10^12
// space are rare enough that exhausting this means something else is wrong.
const maxNumberAttempts = 10

// nowFunc is swapped in tests.
var nowFunc = time.Now

func (r *entRepo) StartSession(ctx context.Context, externalID int64) (*SessionRecord, error) {
	owner, err := r.GetOrCreateUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number, err := randomSessionNumber()
		if err != nil {
			return nil, &PersistenceError{Op: "generate session number", Err: err}
		}

		s, err := r.client.Session.Create().
			SetSessionNumber(number).
			SetUserID(owner.ID).
			Save(ctx)
		if err == nil {
			return toSessionRecord(s), nil
		}
		// A constraint violation here is the uniqueness check on
		// session_number firing; pick a new candidate and retry.
		if !ent.IsConstraintError(err) {
			return nil, &PersistenceError{Op: "create session", Err: err}
		}
	}
	return nil, &PersistenceError{
		Op:  "create session",
		Err: fmt.Errorf("no unique session number after %d attempts", maxNumberAttempts),
	}
}

func (r *entRepo) UpdateAnswers(ctx context.Context, sessionID int, answers []flow.Answer) error {
	_, err := r.client.Session.UpdateOneID(sessionID).
		SetAnswers(toAnswerRecords(answers)).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "update answers", Err: err}
	}
	return nil
}

func (r *entRepo) MarkFinished(ctx context.Context, sessionID int, finalLevel *string) error {
	s, err := r.client.Session.Get(ctx, sessionID)
	if err != nil {
		return &PersistenceError{Op: "mark finished", Err: err}
	}

	// Already finished with the same (or no new) level: nothing to do.
	// Keeps the call idempotent and the flag monotonic.
	if s.Finished && (finalLevel == nil || (s.FinalLevel != nil && *s.FinalLevel == *finalLevel)) {
		return nil
	}

	upd := s.Update().
		SetFinished(true).
		SetNillableFinalLevel(finalLevel)
	if !s.Finished {
		upd.SetFinishedAt(nowFunc())
	}
	if _, err := upd.Save(ctx); err != nil {
		return &PersistenceError{Op: "mark finished", Err: err}
	}

	_, err = r.client.User.UpdateOneID(s.UserID).
		SetQuestionnaireCompleted(true).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "mark user completed", Err: err}
	}
	return nil
}

func (r *entRepo) ActiveSessionForUser(ctx context.Context, externalID int64) (*SessionRecord, error) {
	s, err := r.client.Session.Query().
		Where(
			session.Finished(false),
			session.HasOwnerWith(user.ExternalID(externalID)),
		).
		Order(ent.Desc(session.FieldStartedAt), ent.Desc(session.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "query active session", Err: err}
	}
	return toSessionRecord(s), nil
}

func (r *entRepo) Session(ctx context.Context, sessionID int) (*SessionRecord, error) {
	s, err := r.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "get session", Err: err}
	}
	return toSessionRecord(s), nil
}

func (r *entRepo) SessionByNumber(ctx context.Context, number int64) (*SessionRecord, error) {
	s, err := r.client.Session.Query().
		Where(session.SessionNumber(number)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "get session by number", Err: err}
	}
	return toSessionRecord(s), nil
}

func (r *entRepo) SessionsForUser(ctx context.Context, externalID int64) ([]*SessionRecord, error) {
	sessions, err := r.client.Session.Query().
		Where(session.HasOwnerWith(user.ExternalID(externalID))).
		Order(ent.Desc(session.FieldStartedAt), ent.Desc(session.FieldID)).
		All(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list sessions", Err: err}
	}
	out := make([]*SessionRecord, len(sessions))
	for i, s := range sessions {
		out[i] = toSessionRecord(s)
	}
	return out, nil
}

func (r *entRepo) SetExperience(ctx context.Context, sessionID int, totalMonths float64, level string) error {
	_, err := r.client.Session.UpdateOneID(sessionID).
		SetExperienceMonths(totalMonths).
		SetExperienceLevel(level).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "set experience", Err: err}
	}
	return nil
}

func (r *entRepo) SetInterimRating(ctx context.Context, sessionID int, value float64) error {
	_, err := r.client.Session.UpdateOneID(sessionID).
		SetInterimRating(value).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "set interim rating", Err: err}
	}
	return nil
}

func randomSessionNumber() (int64, error) {
	n, err := rand.Int(rand.Reader, sessionNumberLimit)
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

func toAnswerRecords(answers []flow.Answer) []entschema.AnswerRecord {
	out := make([]entschema.AnswerRecord, len(answers))
	for i, a := range answers {
		out[i] = entschema.AnswerRecord{QuestionID: a.QuestionID, OptionID: a.OptionID}
	}
	return out
}

func fromAnswerRecords(records []entschema.AnswerRecord) []flow.Answer {
	out := make([]flow.Answer, len(records))
	for i, r := range records {
		out[i] = flow.Answer{QuestionID: r.QuestionID, OptionID: r.OptionID}
	}
	return out
}

func toSessionRecord(s *ent.Session) *SessionRecord {
	return &SessionRecord{
		ID:               s.ID,
		Number:           s.SessionNumber,
		UserID:           s.UserID,
		Answers:          fromAnswerRecords(s.Answers),
		InterimRating:    s.InterimRating,
		ExperienceMonths: s.ExperienceMonths,
		ExperienceLevel:  s.ExperienceLevel,
		Finished:         s.Finished,
		FinalLevel:       s.FinalLevel,
		StartedAt:        s.StartedAt,
		FinishedAt:       s.FinishedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
