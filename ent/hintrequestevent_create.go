// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/hintrequestevent"
)

// HintRequestEventCreate is the builder for creating a HintRequestEvent entity.
type HintRequestEventCreate struct {
	config
	mutation *HintRequestEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *HintRequestEventCreate) SetSequence(v int64) *HintRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *HintRequestEventCreate) SetTimestamp(v time.Time) *HintRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *HintRequestEventCreate) SetNillableTimestamp(v *time.Time) *HintRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *HintRequestEventCreate) SetAttemptID(v string) *HintRequestEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *HintRequestEventCreate) SetExerciseID(v string) *HintRequestEventCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *HintRequestEventCreate) SetLevel(v int) *HintRequestEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetHintText sets the "hint_text" field.
func (_c *HintRequestEventCreate) SetHintText(v string) *HintRequestEventCreate {
	_c.mutation.SetHintText(v)
	return _c
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_c *HintRequestEventCreate) SetNillableHintText(v *string) *HintRequestEventCreate {
	if v != nil {
		_c.SetHintText(*v)
	}
	return _c
}

// Mutation returns the HintRequestEventMutation object of the builder.
func (_c *HintRequestEventCreate) Mutation() *HintRequestEventMutation {
	return _c.mutation
}

// Save creates the HintRequestEvent in the database.
func (_c *HintRequestEventCreate) Save(ctx context.Context) (*HintRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HintRequestEventCreate) SaveX(ctx context.Context) *HintRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HintRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := hintrequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.HintText(); !ok {
		v := hintrequestevent.DefaultHintText
		_c.mutation.SetHintText(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HintRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "HintRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "HintRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "HintRequestEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := hintrequestevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "HintRequestEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "HintRequestEvent.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := hintrequestevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "HintRequestEvent.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "HintRequestEvent.level"`)}
	}
	if _, ok := _c.mutation.HintText(); !ok {
		return &ValidationError{Name: "hint_text", err: errors.New(`ent: missing required field "HintRequestEvent.hint_text"`)}
	}
	return nil
}

func (_c *HintRequestEventCreate) sqlSave(ctx context.Context) (*HintRequestEvent, error) {
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

func (_c *HintRequestEventCreate) createSpec() (*HintRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &HintRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hintrequestevent.Table, sqlgraph.NewFieldSpec(hintrequestevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(hintrequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(hintrequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(hintrequestevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(hintrequestevent.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(hintrequestevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.HintText(); ok {
		_spec.SetField(hintrequestevent.FieldHintText, field.TypeString, value)
		_node.HintText = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HintRequestEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HintRequestEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *HintRequestEventCreate) OnConflict(opts ...sql.ConflictOption) *HintRequestEventUpsertOne {
	_c.conflict = opts
	return &HintRequestEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HintRequestEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HintRequestEventCreate) OnConflictColumns(columns ...string) *HintRequestEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HintRequestEventUpsertOne{
		create: _c,
	}
}

type (
	// HintRequestEventUpsertOne is the builder for "upsert"-ing
	//  one HintRequestEvent node.
	HintRequestEventUpsertOne struct {
		create *HintRequestEventCreate
	}

	// HintRequestEventUpsert is the "OnConflict" setter.
	HintRequestEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetAttemptID sets the "attempt_id" field.
func (u *HintRequestEventUpsert) SetAttemptID(v string) *HintRequestEventUpsert {
	u.Set(hintrequestevent.FieldAttemptID, v)
	return u
}

// UpdateAttemptID sets the "attempt_id" field to the value that was provided on create.
func (u *HintRequestEventUpsert) UpdateAttemptID() *HintRequestEventUpsert {
	u.SetExcluded(hintrequestevent.FieldAttemptID)
	return u
}

// SetExerciseID sets the "exercise_id" field.
func (u *HintRequestEventUpsert) SetExerciseID(v string) *HintRequestEventUpsert {
	u.Set(hintrequestevent.FieldExerciseID, v)
	return u
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *HintRequestEventUpsert) UpdateExerciseID() *HintRequestEventUpsert {
	u.SetExcluded(hintrequestevent.FieldExerciseID)
	return u
}

// SetLevel sets the "level" field.
func (u *HintRequestEventUpsert) SetLevel(v int) *HintRequestEventUpsert {
	u.Set(hintrequestevent.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *HintRequestEventUpsert) UpdateLevel() *HintRequestEventUpsert {
	u.SetExcluded(hintrequestevent.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *HintRequestEventUpsert) AddLevel(v int) *HintRequestEventUpsert {
	u.Add(hintrequestevent.FieldLevel, v)
	return u
}

// SetHintText sets the "hint_text" field.
func (u *HintRequestEventUpsert) SetHintText(v string) *HintRequestEventUpsert {
	u.Set(hintrequestevent.FieldHintText, v)
	return u
}

// UpdateHintText sets the "hint_text" field to the value that was provided on create.
func (u *HintRequestEventUpsert) UpdateHintText() *HintRequestEventUpsert {
	u.SetExcluded(hintrequestevent.FieldHintText)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.HintRequestEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HintRequestEventUpsertOne) UpdateNewValues() *HintRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(hintrequestevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(hintrequestevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HintRequestEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HintRequestEventUpsertOne) Ignore() *HintRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HintRequestEventUpsertOne) DoNothing() *HintRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HintRequestEventCreate.OnConflict
// documentation for more info.
func (u *HintRequestEventUpsertOne) Update(set func(*HintRequestEventUpsert)) *HintRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HintRequestEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAttemptID sets the "attempt_id" field.
func (u *HintRequestEventUpsertOne) SetAttemptID(v string) *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.SetAttemptID(v)
	})
}

// UpdateAttemptID sets the "attempt_id" field to the value that was provided on create.
func (u *HintRequestEventUpsertOne) UpdateAttemptID() *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.UpdateAttemptID()
	})
}

// SetExerciseID sets the "exercise_id" field.
func (u *HintRequestEventUpsertOne) SetExerciseID(v string) *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.SetExerciseID(v)
	})
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *HintRequestEventUpsertOne) UpdateExerciseID() *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.UpdateExerciseID()
	})
}

// SetLevel sets the "level" field.
func (u *HintRequestEventUpsertOne) SetLevel(v int) *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *HintRequestEventUpsertOne) AddLevel(v int) *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *HintRequestEventUpsertOne) UpdateLevel() *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.UpdateLevel()
	})
}

// SetHintText sets the "hint_text" field.
func (u *HintRequestEventUpsertOne) SetHintText(v string) *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.SetHintText(v)
	})
}

// UpdateHintText sets the "hint_text" field to the value that was provided on create.
func (u *HintRequestEventUpsertOne) UpdateHintText() *HintRequestEventUpsertOne {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.UpdateHintText()
	})
}

// Exec executes the query.
func (u *HintRequestEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HintRequestEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HintRequestEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HintRequestEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HintRequestEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HintRequestEventCreateBulk is the builder for creating many HintRequestEvent entities in bulk.
type HintRequestEventCreateBulk struct {
	config
	err      error
	builders []*HintRequestEventCreate
	conflict []sql.ConflictOption
}

// Save creates the HintRequestEvent entities in the database.
func (_c *HintRequestEventCreateBulk) Save(ctx context.Context) ([]*HintRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HintRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HintRequestEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *HintRequestEventCreateBulk) SaveX(ctx context.Context) []*HintRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HintRequestEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HintRequestEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *HintRequestEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *HintRequestEventUpsertBulk {
	_c.conflict = opts
	return &HintRequestEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HintRequestEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HintRequestEventCreateBulk) OnConflictColumns(columns ...string) *HintRequestEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HintRequestEventUpsertBulk{
		create: _c,
	}
}

// HintRequestEventUpsertBulk is the builder for "upsert"-ing
// a bulk of HintRequestEvent nodes.
type HintRequestEventUpsertBulk struct {
	create *HintRequestEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HintRequestEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HintRequestEventUpsertBulk) UpdateNewValues() *HintRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(hintrequestevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(hintrequestevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HintRequestEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HintRequestEventUpsertBulk) Ignore() *HintRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HintRequestEventUpsertBulk) DoNothing() *HintRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HintRequestEventCreateBulk.OnConflict
// documentation for more info.
func (u *HintRequestEventUpsertBulk) Update(set func(*HintRequestEventUpsert)) *HintRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HintRequestEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAttemptID sets the "attempt_id" field.
func (u *HintRequestEventUpsertBulk) SetAttemptID(v string) *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.SetAttemptID(v)
	})
}

// UpdateAttemptID sets the "attempt_id" field to the value that was provided on create.
func (u *HintRequestEventUpsertBulk) UpdateAttemptID() *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.UpdateAttemptID()
	})
}

// SetExerciseID sets the "exercise_id" field.
func (u *HintRequestEventUpsertBulk) SetExerciseID(v string) *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.SetExerciseID(v)
	})
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *HintRequestEventUpsertBulk) UpdateExerciseID() *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.UpdateExerciseID()
	})
}

// SetLevel sets the "level" field.
func (u *HintRequestEventUpsertBulk) SetLevel(v int) *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *HintRequestEventUpsertBulk) AddLevel(v int) *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *HintRequestEventUpsertBulk) UpdateLevel() *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.UpdateLevel()
	})
}

// SetHintText sets the "hint_text" field.
func (u *HintRequestEventUpsertBulk) SetHintText(v string) *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.SetHintText(v)
	})
}

// UpdateHintText sets the "hint_text" field to the value that was provided on create.
func (u *HintRequestEventUpsertBulk) UpdateHintText() *HintRequestEventUpsertBulk {
	return u.Update(func(s *HintRequestEventUpsert) {
		s.UpdateHintText()
	})
}

// Exec executes the query.
func (u *HintRequestEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HintRequestEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HintRequestEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HintRequestEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
