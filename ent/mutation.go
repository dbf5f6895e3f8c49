// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dkoval/padelwiz/ent/predicate"
	"github.com/dkoval/padelwiz/ent/schema"
	"github.com/dkoval/padelwiz/ent/session"
	"github.com/dkoval/padelwiz/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSession = "Session"
	TypeUser    = "User"
)

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	session_number       *int64
	addsession_number    *int64
	answers              *[]schema.AnswerRecord
	appendanswers        []schema.AnswerRecord
	interim_rating       *float64
	addinterim_rating    *float64
	experience_months    *float64
	addexperience_months *float64
	experience_level     *string
	finished             *bool
	final_level          *string
	started_at           *time.Time
	finished_at          *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	owner                *int
	clearedowner         bool
	done                 bool
	oldValue             func(context.Context) (*Session, error)
	predicates           []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionNumber sets the "session_number" field.
func (m *SessionMutation) SetSessionNumber(i int64) {
	m.session_number = &i
	m.addsession_number = nil
}

// SessionNumber returns the value of the "session_number" field in the mutation.
func (m *SessionMutation) SessionNumber() (r int64, exists bool) {
	v := m.session_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionNumber returns the old "session_number" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionNumber: %w", err)
	}
	return oldValue.SessionNumber, nil
}

// AddSessionNumber adds i to the "session_number" field.
func (m *SessionMutation) AddSessionNumber(i int64) {
	if m.addsession_number != nil {
		*m.addsession_number += i
	} else {
		m.addsession_number = &i
	}
}

// AddedSessionNumber returns the value that was added to the "session_number" field in this mutation.
func (m *SessionMutation) AddedSessionNumber() (r int64, exists bool) {
	v := m.addsession_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionNumber resets all changes to the "session_number" field.
func (m *SessionMutation) ResetSessionNumber() {
	m.session_number = nil
	m.addsession_number = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(i int) {
	m.owner = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.owner = nil
}

// SetAnswers sets the "answers" field.
func (m *SessionMutation) SetAnswers(sr []schema.AnswerRecord) {
	m.answers = &sr
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *SessionMutation) Answers() (r []schema.AnswerRecord, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAnswers(ctx context.Context) (v []schema.AnswerRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds sr to the "answers" field.
func (m *SessionMutation) AppendAnswers(sr []schema.AnswerRecord) {
	m.appendanswers = append(m.appendanswers, sr...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *SessionMutation) AppendedAnswers() ([]schema.AnswerRecord, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ClearAnswers clears the value of the "answers" field.
func (m *SessionMutation) ClearAnswers() {
	m.answers = nil
	m.appendanswers = nil
	m.clearedFields[session.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *SessionMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[session.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *SessionMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
	delete(m.clearedFields, session.FieldAnswers)
}

// SetInterimRating sets the "interim_rating" field.
func (m *SessionMutation) SetInterimRating(f float64) {
	m.interim_rating = &f
	m.addinterim_rating = nil
}

// InterimRating returns the value of the "interim_rating" field in the mutation.
func (m *SessionMutation) InterimRating() (r float64, exists bool) {
	v := m.interim_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldInterimRating returns the old "interim_rating" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldInterimRating(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterimRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterimRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterimRating: %w", err)
	}
	return oldValue.InterimRating, nil
}

// AddInterimRating adds f to the "interim_rating" field.
func (m *SessionMutation) AddInterimRating(f float64) {
	if m.addinterim_rating != nil {
		*m.addinterim_rating += f
	} else {
		m.addinterim_rating = &f
	}
}

// AddedInterimRating returns the value that was added to the "interim_rating" field in this mutation.
func (m *SessionMutation) AddedInterimRating() (r float64, exists bool) {
	v := m.addinterim_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearInterimRating clears the value of the "interim_rating" field.
func (m *SessionMutation) ClearInterimRating() {
	m.interim_rating = nil
	m.addinterim_rating = nil
	m.clearedFields[session.FieldInterimRating] = struct{}{}
}

// InterimRatingCleared returns if the "interim_rating" field was cleared in this mutation.
func (m *SessionMutation) InterimRatingCleared() bool {
	_, ok := m.clearedFields[session.FieldInterimRating]
	return ok
}

// ResetInterimRating resets all changes to the "interim_rating" field.
func (m *SessionMutation) ResetInterimRating() {
	m.interim_rating = nil
	m.addinterim_rating = nil
	delete(m.clearedFields, session.FieldInterimRating)
}

// SetExperienceMonths sets the "experience_months" field.
func (m *SessionMutation) SetExperienceMonths(f float64) {
	m.experience_months = &f
	m.addexperience_months = nil
}

// ExperienceMonths returns the value of the "experience_months" field in the mutation.
func (m *SessionMutation) ExperienceMonths() (r float64, exists bool) {
	v := m.experience_months
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceMonths returns the old "experience_months" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExperienceMonths(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceMonths: %w", err)
	}
	return oldValue.ExperienceMonths, nil
}

// AddExperienceMonths adds f to the "experience_months" field.
func (m *SessionMutation) AddExperienceMonths(f float64) {
	if m.addexperience_months != nil {
		*m.addexperience_months += f
	} else {
		m.addexperience_months = &f
	}
}

// AddedExperienceMonths returns the value that was added to the "experience_months" field in this mutation.
func (m *SessionMutation) AddedExperienceMonths() (r float64, exists bool) {
	v := m.addexperience_months
	if v == nil {
		return
	}
	return *v, true
}

// ClearExperienceMonths clears the value of the "experience_months" field.
func (m *SessionMutation) ClearExperienceMonths() {
	m.experience_months = nil
	m.addexperience_months = nil
	m.clearedFields[session.FieldExperienceMonths] = struct{}{}
}

// ExperienceMonthsCleared returns if the "experience_months" field was cleared in this mutation.
func (m *SessionMutation) ExperienceMonthsCleared() bool {
	_, ok := m.clearedFields[session.FieldExperienceMonths]
	return ok
}

// ResetExperienceMonths resets all changes to the "experience_months" field.
func (m *SessionMutation) ResetExperienceMonths() {
	m.experience_months = nil
	m.addexperience_months = nil
	delete(m.clearedFields, session.FieldExperienceMonths)
}

// SetExperienceLevel sets the "experience_level" field.
func (m *SessionMutation) SetExperienceLevel(s string) {
	m.experience_level = &s
}

// ExperienceLevel returns the value of the "experience_level" field in the mutation.
func (m *SessionMutation) ExperienceLevel() (r string, exists bool) {
	v := m.experience_level
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceLevel returns the old "experience_level" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExperienceLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceLevel: %w", err)
	}
	return oldValue.ExperienceLevel, nil
}

// ClearExperienceLevel clears the value of the "experience_level" field.
func (m *SessionMutation) ClearExperienceLevel() {
	m.experience_level = nil
	m.clearedFields[session.FieldExperienceLevel] = struct{}{}
}

// ExperienceLevelCleared returns if the "experience_level" field was cleared in this mutation.
func (m *SessionMutation) ExperienceLevelCleared() bool {
	_, ok := m.clearedFields[session.FieldExperienceLevel]
	return ok
}

// ResetExperienceLevel resets all changes to the "experience_level" field.
func (m *SessionMutation) ResetExperienceLevel() {
	m.experience_level = nil
	delete(m.clearedFields, session.FieldExperienceLevel)
}

// SetFinished sets the "finished" field.
func (m *SessionMutation) SetFinished(b bool) {
	m.finished = &b
}

// Finished returns the value of the "finished" field in the mutation.
func (m *SessionMutation) Finished() (r bool, exists bool) {
	v := m.finished
	if v == nil {
		return
	}
	return *v, true
}

// OldFinished returns the old "finished" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFinished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinished: %w", err)
	}
	return oldValue.Finished, nil
}

// ResetFinished resets all changes to the "finished" field.
func (m *SessionMutation) ResetFinished() {
	m.finished = nil
}

// SetFinalLevel sets the "final_level" field.
func (m *SessionMutation) SetFinalLevel(s string) {
	m.final_level = &s
}

// FinalLevel returns the value of the "final_level" field in the mutation.
func (m *SessionMutation) FinalLevel() (r string, exists bool) {
	v := m.final_level
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalLevel returns the old "final_level" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFinalLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalLevel: %w", err)
	}
	return oldValue.FinalLevel, nil
}

// ClearFinalLevel clears the value of the "final_level" field.
func (m *SessionMutation) ClearFinalLevel() {
	m.final_level = nil
	m.clearedFields[session.FieldFinalLevel] = struct{}{}
}

// FinalLevelCleared returns if the "final_level" field was cleared in this mutation.
func (m *SessionMutation) FinalLevelCleared() bool {
	_, ok := m.clearedFields[session.FieldFinalLevel]
	return ok
}

// ResetFinalLevel resets all changes to the "final_level" field.
func (m *SessionMutation) ResetFinalLevel() {
	m.final_level = nil
	delete(m.clearedFields, session.FieldFinalLevel)
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *SessionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *SessionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *SessionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[session.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *SessionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *SessionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, session.FieldFinishedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *SessionMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *SessionMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[session.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *SessionMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *SessionMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *SessionMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session_number != nil {
		fields = append(fields, session.FieldSessionNumber)
	}
	if m.owner != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.answers != nil {
		fields = append(fields, session.FieldAnswers)
	}
	if m.interim_rating != nil {
		fields = append(fields, session.FieldInterimRating)
	}
	if m.experience_months != nil {
		fields = append(fields, session.FieldExperienceMonths)
	}
	if m.experience_level != nil {
		fields = append(fields, session.FieldExperienceLevel)
	}
	if m.finished != nil {
		fields = append(fields, session.FieldFinished)
	}
	if m.final_level != nil {
		fields = append(fields, session.FieldFinalLevel)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, session.FieldFinishedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessionNumber:
		return m.SessionNumber()
	case session.FieldUserID:
		return m.UserID()
	case session.FieldAnswers:
		return m.Answers()
	case session.FieldInterimRating:
		return m.InterimRating()
	case session.FieldExperienceMonths:
		return m.ExperienceMonths()
	case session.FieldExperienceLevel:
		return m.ExperienceLevel()
	case session.FieldFinished:
		return m.Finished()
	case session.FieldFinalLevel:
		return m.FinalLevel()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldFinishedAt:
		return m.FinishedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldSessionNumber:
		return m.OldSessionNumber(ctx)
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldAnswers:
		return m.OldAnswers(ctx)
	case session.FieldInterimRating:
		return m.OldInterimRating(ctx)
	case session.FieldExperienceMonths:
		return m.OldExperienceMonths(ctx)
	case session.FieldExperienceLevel:
		return m.OldExperienceLevel(ctx)
	case session.FieldFinished:
		return m.OldFinished(ctx)
	case session.FieldFinalLevel:
		return m.OldFinalLevel(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessionNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionNumber(v)
		return nil
	case session.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldAnswers:
		v, ok := value.([]schema.AnswerRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case session.FieldInterimRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterimRating(v)
		return nil
	case session.FieldExperienceMonths:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceMonths(v)
		return nil
	case session.FieldExperienceLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceLevel(v)
		return nil
	case session.FieldFinished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinished(v)
		return nil
	case session.FieldFinalLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalLevel(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addsession_number != nil {
		fields = append(fields, session.FieldSessionNumber)
	}
	if m.addinterim_rating != nil {
		fields = append(fields, session.FieldInterimRating)
	}
	if m.addexperience_months != nil {
		fields = append(fields, session.FieldExperienceMonths)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessionNumber:
		return m.AddedSessionNumber()
	case session.FieldInterimRating:
		return m.AddedInterimRating()
	case session.FieldExperienceMonths:
		return m.AddedExperienceMonths()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessionNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionNumber(v)
		return nil
	case session.FieldInterimRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInterimRating(v)
		return nil
	case session.FieldExperienceMonths:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperienceMonths(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldAnswers) {
		fields = append(fields, session.FieldAnswers)
	}
	if m.FieldCleared(session.FieldInterimRating) {
		fields = append(fields, session.FieldInterimRating)
	}
	if m.FieldCleared(session.FieldExperienceMonths) {
		fields = append(fields, session.FieldExperienceMonths)
	}
	if m.FieldCleared(session.FieldExperienceLevel) {
		fields = append(fields, session.FieldExperienceLevel)
	}
	if m.FieldCleared(session.FieldFinalLevel) {
		fields = append(fields, session.FieldFinalLevel)
	}
	if m.FieldCleared(session.FieldFinishedAt) {
		fields = append(fields, session.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldAnswers:
		m.ClearAnswers()
		return nil
	case session.FieldInterimRating:
		m.ClearInterimRating()
		return nil
	case session.FieldExperienceMonths:
		m.ClearExperienceMonths()
		return nil
	case session.FieldExperienceLevel:
		m.ClearExperienceLevel()
		return nil
	case session.FieldFinalLevel:
		m.ClearFinalLevel()
		return nil
	case session.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldSessionNumber:
		m.ResetSessionNumber()
		return nil
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldAnswers:
		m.ResetAnswers()
		return nil
	case session.FieldInterimRating:
		m.ResetInterimRating()
		return nil
	case session.FieldExperienceMonths:
		m.ResetExperienceMonths()
		return nil
	case session.FieldExperienceLevel:
		m.ResetExperienceLevel()
		return nil
	case session.FieldFinished:
		m.ResetFinished()
		return nil
	case session.FieldFinalLevel:
		m.ResetFinalLevel()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, session.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, session.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	external_id             *int64
	addexternal_id          *int64
	questionnaire_completed *bool
	advice_received         *bool
	created_at              *time.Time
	clearedFields           map[string]struct{}
	sessions                map[int]struct{}
	removedsessions         map[int]struct{}
	clearedsessions         bool
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *UserMutation) SetExternalID(i int64) {
	m.external_id = &i
	m.addexternal_id = nil
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *UserMutation) ExternalID() (r int64, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldExternalID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// AddExternalID adds i to the "external_id" field.
func (m *UserMutation) AddExternalID(i int64) {
	if m.addexternal_id != nil {
		*m.addexternal_id += i
	} else {
		m.addexternal_id = &i
	}
}

// AddedExternalID returns the value that was added to the "external_id" field in this mutation.
func (m *UserMutation) AddedExternalID() (r int64, exists bool) {
	v := m.addexternal_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *UserMutation) ResetExternalID() {
	m.external_id = nil
	m.addexternal_id = nil
}

// SetQuestionnaireCompleted sets the "questionnaire_completed" field.
func (m *UserMutation) SetQuestionnaireCompleted(b bool) {
	m.questionnaire_completed = &b
}

// QuestionnaireCompleted returns the value of the "questionnaire_completed" field in the mutation.
func (m *UserMutation) QuestionnaireCompleted() (r bool, exists bool) {
	v := m.questionnaire_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionnaireCompleted returns the old "questionnaire_completed" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldQuestionnaireCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionnaireCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionnaireCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionnaireCompleted: %w", err)
	}
	return oldValue.QuestionnaireCompleted, nil
}

// ResetQuestionnaireCompleted resets all changes to the "questionnaire_completed" field.
func (m *UserMutation) ResetQuestionnaireCompleted() {
	m.questionnaire_completed = nil
}

// SetAdviceReceived sets the "advice_received" field.
func (m *UserMutation) SetAdviceReceived(b bool) {
	m.advice_received = &b
}

// AdviceReceived returns the value of the "advice_received" field in the mutation.
func (m *UserMutation) AdviceReceived() (r bool, exists bool) {
	v := m.advice_received
	if v == nil {
		return
	}
	return *v, true
}

// OldAdviceReceived returns the old "advice_received" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAdviceReceived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdviceReceived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdviceReceived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdviceReceived: %w", err)
	}
	return oldValue.AdviceReceived, nil
}

// ResetAdviceReceived resets all changes to the "advice_received" field.
func (m *UserMutation) ResetAdviceReceived() {
	m.advice_received = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *UserMutation) AddSessionIDs(ids ...int) {
	if m.sessions == nil {
		m.sessions = make(map[int]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *UserMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *UserMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *UserMutation) RemoveSessionIDs(ids ...int) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *UserMutation) RemovedSessionsIDs() (ids []int) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *UserMutation) SessionsIDs() (ids []int) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *UserMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.external_id != nil {
		fields = append(fields, user.FieldExternalID)
	}
	if m.questionnaire_completed != nil {
		fields = append(fields, user.FieldQuestionnaireCompleted)
	}
	if m.advice_received != nil {
		fields = append(fields, user.FieldAdviceReceived)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldExternalID:
		return m.ExternalID()
	case user.FieldQuestionnaireCompleted:
		return m.QuestionnaireCompleted()
	case user.FieldAdviceReceived:
		return m.AdviceReceived()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldExternalID:
		return m.OldExternalID(ctx)
	case user.FieldQuestionnaireCompleted:
		return m.OldQuestionnaireCompleted(ctx)
	case user.FieldAdviceReceived:
		return m.OldAdviceReceived(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldExternalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case user.FieldQuestionnaireCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionnaireCompleted(v)
		return nil
	case user.FieldAdviceReceived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdviceReceived(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addexternal_id != nil {
		fields = append(fields, user.FieldExternalID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldExternalID:
		return m.AddedExternalID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldExternalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExternalID(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldExternalID:
		m.ResetExternalID()
		return nil
	case user.FieldQuestionnaireCompleted:
		m.ResetQuestionnaireCompleted()
		return nil
	case user.FieldAdviceReceived:
		m.ResetAdviceReceived()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsessions {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
