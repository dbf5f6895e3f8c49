// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dkoval/padelwiz/ent/schema"
	"github.com/dkoval/padelwiz/ent/session"
	"github.com/dkoval/padelwiz/ent/user"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetSessionNumber sets the "session_number" field.
func (_c *SessionCreate) SetSessionNumber(v int64) *SessionCreate {
	_c.mutation.SetSessionNumber(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionCreate) SetUserID(v int) *SessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *SessionCreate) SetAnswers(v []schema.AnswerRecord) *SessionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetInterimRating sets the "interim_rating" field.
func (_c *SessionCreate) SetInterimRating(v float64) *SessionCreate {
	_c.mutation.SetInterimRating(v)
	return _c
}

// SetNillableInterimRating sets the "interim_rating" field if the given value is not nil.
func (_c *SessionCreate) SetNillableInterimRating(v *float64) *SessionCreate {
	if v != nil {
		_c.SetInterimRating(*v)
	}
	return _c
}

// SetExperienceMonths sets the "experience_months" field.
func (_c *SessionCreate) SetExperienceMonths(v float64) *SessionCreate {
	_c.mutation.SetExperienceMonths(v)
	return _c
}

// SetNillableExperienceMonths sets the "experience_months" field if the given value is not nil.
func (_c *SessionCreate) SetNillableExperienceMonths(v *float64) *SessionCreate {
	if v != nil {
		_c.SetExperienceMonths(*v)
	}
	return _c
}

// SetExperienceLevel sets the "experience_level" field.
func (_c *SessionCreate) SetExperienceLevel(v string) *SessionCreate {
	_c.mutation.SetExperienceLevel(v)
	return _c
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_c *SessionCreate) SetNillableExperienceLevel(v *string) *SessionCreate {
	if v != nil {
		_c.SetExperienceLevel(*v)
	}
	return _c
}

// SetFinished sets the "finished" field.
func (_c *SessionCreate) SetFinished(v bool) *SessionCreate {
	_c.mutation.SetFinished(v)
	return _c
}

// SetNillableFinished sets the "finished" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFinished(v *bool) *SessionCreate {
	if v != nil {
		_c.SetFinished(*v)
	}
	return _c
}

// SetFinalLevel sets the "final_level" field.
func (_c *SessionCreate) SetFinalLevel(v string) *SessionCreate {
	_c.mutation.SetFinalLevel(v)
	return _c
}

// SetNillableFinalLevel sets the "final_level" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFinalLevel(v *string) *SessionCreate {
	if v != nil {
		_c.SetFinalLevel(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionCreate) SetStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *SessionCreate) SetFinishedAt(v time.Time) *SessionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFinishedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *SessionCreate) SetOwnerID(id int) *SessionCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *SessionCreate) SetOwner(v *User) *SessionCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Finished(); !ok {
		v := session.DefaultFinished
		_c.mutation.SetFinished(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := session.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.SessionNumber(); !ok {
		return &ValidationError{Name: "session_number", err: errors.New(`ent: missing required field "Session.session_number"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Session.user_id"`)}
	}
	if _, ok := _c.mutation.Finished(); !ok {
		return &ValidationError{Name: "finished", err: errors.New(`ent: missing required field "Session.finished"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Session.started_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Session.owner"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionNumber(); ok {
		_spec.SetField(session.FieldSessionNumber, field.TypeInt64, value)
		_node.SessionNumber = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(session.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.InterimRating(); ok {
		_spec.SetField(session.FieldInterimRating, field.TypeFloat64, value)
		_node.InterimRating = &value
	}
	if value, ok := _c.mutation.ExperienceMonths(); ok {
		_spec.SetField(session.FieldExperienceMonths, field.TypeFloat64, value)
		_node.ExperienceMonths = &value
	}
	if value, ok := _c.mutation.ExperienceLevel(); ok {
		_spec.SetField(session.FieldExperienceLevel, field.TypeString, value)
		_node.ExperienceLevel = &value
	}
	if value, ok := _c.mutation.Finished(); ok {
		_spec.SetField(session.FieldFinished, field.TypeBool, value)
		_node.Finished = value
	}
	if value, ok := _c.mutation.FinalLevel(); ok {
		_spec.SetField(session.FieldFinalLevel, field.TypeString, value)
		_node.FinalLevel = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(session.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
