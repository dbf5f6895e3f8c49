package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dkoval/padelwiz/internal/flow"
)

// UserRecord is a persisted player.
type UserRecord struct {
	ID                     int
	ExternalID             int64
	QuestionnaireCompleted bool
	AdviceReceived         bool
	CreatedAt              time.Time
}

// SessionRecord is a persisted questionnaire session.
type SessionRecord struct {
	ID               int
	Number           int64
	UserID           int
	Answers          []flow.Answer
	InterimRating    *float64
	ExperienceMonths *float64
	ExperienceLevel  *string
	Finished         bool
	FinalLevel       *string
	StartedAt        time.Time
	FinishedAt       *time.Time
	UpdatedAt        time.Time
}

// Repo is the durable record of users and sessions. The flow engine is
// written against this interface; the ent implementation lives in this
// package, fakes live next to the engine tests.
type Repo interface {
	// GetOrCreateUser upserts the user for an external account id.
	GetOrCreateUser(ctx context.Context, externalID int64) (*UserRecord, error)

	// StartSession upserts the user and creates a fresh session with a
	// globally unique session number.
	StartSession(ctx context.Context, externalID int64) (*SessionRecord, error)

	// UpdateAnswers replaces the session's whole answer list. Callers must
	// always pass the full up-to-date list, not a delta.
	UpdateAnswers(ctx context.Context, sessionID int, answers []flow.Answer) error

	// MarkFinished sets the one-way finished flag. A nil finalLevel keeps
	// any previously stored level; the flag itself never un-finishes.
	MarkFinished(ctx context.Context, sessionID int, finalLevel *string) error

	// ActiveSessionForUser returns the most recently started unfinished
	// session for the external account id, or nil if none exists.
	ActiveSessionForUser(ctx context.Context, externalID int64) (*SessionRecord, error)

	// Session fetches a session by its internal id.
	Session(ctx context.Context, sessionID int) (*SessionRecord, error)

	// SessionByNumber fetches a session by its user-facing session number.
	SessionByNumber(ctx context.Context, number int64) (*SessionRecord, error)

	// SessionsForUser returns all sessions for the external account id,
	// most recently started first.
	SessionsForUser(ctx context.Context, externalID int64) ([]*SessionRecord, error)

	// SetExperience caches the derived experience summary. Best-effort:
	// the value is rederivable from answers.
	SetExperience(ctx context.Context, sessionID int, totalMonths float64, level string) error

	// SetInterimRating caches the in-progress score. Best-effort.
	SetInterimRating(ctx context.Context, sessionID int, value float64) error

	// SetAdviceReceived flags that the user has seen training advice.
	SetAdviceReceived(ctx context.Context, externalID int64) error
}

// PersistenceError wraps a storage failure with the operation that hit it.
// Required writes propagate it to the caller; cache writes log and drop it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
