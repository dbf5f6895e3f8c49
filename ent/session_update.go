// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dkoval/padelwiz/ent/predicate"
	"github.com/dkoval/padelwiz/ent/schema"
	"github.com/dkoval/padelwiz/ent/session"
	"github.com/dkoval/padelwiz/ent/user"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v int) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *int) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SessionUpdate) SetAnswers(v []schema.AnswerRecord) *SessionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *SessionUpdate) AppendAnswers(v []schema.AnswerRecord) *SessionUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *SessionUpdate) ClearAnswers() *SessionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetInterimRating sets the "interim_rating" field.
func (_u *SessionUpdate) SetInterimRating(v float64) *SessionUpdate {
	_u.mutation.ResetInterimRating()
	_u.mutation.SetInterimRating(v)
	return _u
}

// SetNillableInterimRating sets the "interim_rating" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableInterimRating(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetInterimRating(*v)
	}
	return _u
}

// AddInterimRating adds value to the "interim_rating" field.
func (_u *SessionUpdate) AddInterimRating(v float64) *SessionUpdate {
	_u.mutation.AddInterimRating(v)
	return _u
}

// ClearInterimRating clears the value of the "interim_rating" field.
func (_u *SessionUpdate) ClearInterimRating() *SessionUpdate {
	_u.mutation.ClearInterimRating()
	return _u
}

// SetExperienceMonths sets the "experience_months" field.
func (_u *SessionUpdate) SetExperienceMonths(v float64) *SessionUpdate {
	_u.mutation.ResetExperienceMonths()
	_u.mutation.SetExperienceMonths(v)
	return _u
}

// SetNillableExperienceMonths sets the "experience_months" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExperienceMonths(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetExperienceMonths(*v)
	}
	return _u
}

// AddExperienceMonths adds value to the "experience_months" field.
func (_u *SessionUpdate) AddExperienceMonths(v float64) *SessionUpdate {
	_u.mutation.AddExperienceMonths(v)
	return _u
}

// ClearExperienceMonths clears the value of the "experience_months" field.
func (_u *SessionUpdate) ClearExperienceMonths() *SessionUpdate {
	_u.mutation.ClearExperienceMonths()
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *SessionUpdate) SetExperienceLevel(v string) *SessionUpdate {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExperienceLevel(v *string) *SessionUpdate {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// ClearExperienceLevel clears the value of the "experience_level" field.
func (_u *SessionUpdate) ClearExperienceLevel() *SessionUpdate {
	_u.mutation.ClearExperienceLevel()
	return _u
}

// SetFinished sets the "finished" field.
func (_u *SessionUpdate) SetFinished(v bool) *SessionUpdate {
	_u.mutation.SetFinished(v)
	return _u
}

// SetNillableFinished sets the "finished" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFinished(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetFinished(*v)
	}
	return _u
}

// SetFinalLevel sets the "final_level" field.
func (_u *SessionUpdate) SetFinalLevel(v string) *SessionUpdate {
	_u.mutation.SetFinalLevel(v)
	return _u
}

// SetNillableFinalLevel sets the "final_level" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFinalLevel(v *string) *SessionUpdate {
	if v != nil {
		_u.SetFinalLevel(*v)
	}
	return _u
}

// ClearFinalLevel clears the value of the "final_level" field.
func (_u *SessionUpdate) ClearFinalLevel() *SessionUpdate {
	_u.mutation.ClearFinalLevel()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *SessionUpdate) SetFinishedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFinishedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *SessionUpdate) ClearFinishedAt() *SessionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SessionUpdate) SetOwnerID(id int) *SessionUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SessionUpdate) SetOwner(v *User) *SessionUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SessionUpdate) ClearOwner() *SessionUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.owner"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(session.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(session.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.InterimRating(); ok {
		_spec.SetField(session.FieldInterimRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInterimRating(); ok {
		_spec.AddField(session.FieldInterimRating, field.TypeFloat64, value)
	}
	if _u.mutation.InterimRatingCleared() {
		_spec.ClearField(session.FieldInterimRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExperienceMonths(); ok {
		_spec.SetField(session.FieldExperienceMonths, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExperienceMonths(); ok {
		_spec.AddField(session.FieldExperienceMonths, field.TypeFloat64, value)
	}
	if _u.mutation.ExperienceMonthsCleared() {
		_spec.ClearField(session.FieldExperienceMonths, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(session.FieldExperienceLevel, field.TypeString, value)
	}
	if _u.mutation.ExperienceLevelCleared() {
		_spec.ClearField(session.FieldExperienceLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Finished(); ok {
		_spec.SetField(session.FieldFinished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalLevel(); ok {
		_spec.SetField(session.FieldFinalLevel, field.TypeString, value)
	}
	if _u.mutation.FinalLevelCleared() {
		_spec.ClearField(session.FieldFinalLevel, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(session.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(session.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.OwnerTable,
			Columns: []string{session.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.OwnerTable,
			Columns: []string{session.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v int) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SessionUpdateOne) SetAnswers(v []schema.AnswerRecord) *SessionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *SessionUpdateOne) AppendAnswers(v []schema.AnswerRecord) *SessionUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *SessionUpdateOne) ClearAnswers() *SessionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetInterimRating sets the "interim_rating" field.
func (_u *SessionUpdateOne) SetInterimRating(v float64) *SessionUpdateOne {
	_u.mutation.ResetInterimRating()
	_u.mutation.SetInterimRating(v)
	return _u
}

// SetNillableInterimRating sets the "interim_rating" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableInterimRating(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetInterimRating(*v)
	}
	return _u
}

// AddInterimRating adds value to the "interim_rating" field.
func (_u *SessionUpdateOne) AddInterimRating(v float64) *SessionUpdateOne {
	_u.mutation.AddInterimRating(v)
	return _u
}

// ClearInterimRating clears the value of the "interim_rating" field.
func (_u *SessionUpdateOne) ClearInterimRating() *SessionUpdateOne {
	_u.mutation.ClearInterimRating()
	return _u
}

// SetExperienceMonths sets the "experience_months" field.
func (_u *SessionUpdateOne) SetExperienceMonths(v float64) *SessionUpdateOne {
	_u.mutation.ResetExperienceMonths()
	_u.mutation.SetExperienceMonths(v)
	return _u
}

// SetNillableExperienceMonths sets the "experience_months" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExperienceMonths(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetExperienceMonths(*v)
	}
	return _u
}

// AddExperienceMonths adds value to the "experience_months" field.
func (_u *SessionUpdateOne) AddExperienceMonths(v float64) *SessionUpdateOne {
	_u.mutation.AddExperienceMonths(v)
	return _u
}

// ClearExperienceMonths clears the value of the "experience_months" field.
func (_u *SessionUpdateOne) ClearExperienceMonths() *SessionUpdateOne {
	_u.mutation.ClearExperienceMonths()
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *SessionUpdateOne) SetExperienceLevel(v string) *SessionUpdateOne {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExperienceLevel(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// ClearExperienceLevel clears the value of the "experience_level" field.
func (_u *SessionUpdateOne) ClearExperienceLevel() *SessionUpdateOne {
	_u.mutation.ClearExperienceLevel()
	return _u
}

// SetFinished sets the "finished" field.
func (_u *SessionUpdateOne) SetFinished(v bool) *SessionUpdateOne {
	_u.mutation.SetFinished(v)
	return _u
}

// SetNillableFinished sets the "finished" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFinished(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetFinished(*v)
	}
	return _u
}

// SetFinalLevel sets the "final_level" field.
func (_u *SessionUpdateOne) SetFinalLevel(v string) *SessionUpdateOne {
	_u.mutation.SetFinalLevel(v)
	return _u
}

// SetNillableFinalLevel sets the "final_level" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFinalLevel(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetFinalLevel(*v)
	}
	return _u
}

// ClearFinalLevel clears the value of the "final_level" field.
func (_u *SessionUpdateOne) ClearFinalLevel() *SessionUpdateOne {
	_u.mutation.ClearFinalLevel()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *SessionUpdateOne) SetFinishedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFinishedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *SessionUpdateOne) ClearFinishedAt() *SessionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SessionUpdateOne) SetOwnerID(id int) *SessionUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SessionUpdateOne) SetOwner(v *User) *SessionUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SessionUpdateOne) ClearOwner() *SessionUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.owner"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(session.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(session.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.InterimRating(); ok {
		_spec.SetField(session.FieldInterimRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInterimRating(); ok {
		_spec.AddField(session.FieldInterimRating, field.TypeFloat64, value)
	}
	if _u.mutation.InterimRatingCleared() {
		_spec.ClearField(session.FieldInterimRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExperienceMonths(); ok {
		_spec.SetField(session.FieldExperienceMonths, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExperienceMonths(); ok {
		_spec.AddField(session.FieldExperienceMonths, field.TypeFloat64, value)
	}
	if _u.mutation.ExperienceMonthsCleared() {
		_spec.ClearField(session.FieldExperienceMonths, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(session.FieldExperienceLevel, field.TypeString, value)
	}
	if _u.mutation.ExperienceLevelCleared() {
		_spec.ClearField(session.FieldExperienceLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Finished(); ok {
		_spec.SetField(session.FieldFinished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalLevel(); ok {
		_spec.SetField(session.FieldFinalLevel, field.TypeString, value)
	}
	if _u.mutation.FinalLevelCleared() {
		_spec.ClearField(session.FieldFinalLevel, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(session.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(session.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.OwnerTable,
			Columns: []string{session.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.OwnerTable,
			Columns: []string{session.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
