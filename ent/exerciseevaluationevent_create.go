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
	"github.com/abhisek/skillforge/ent/exerciseevaluationevent"
)

// ExerciseEvaluationEventCreate is the builder for creating a ExerciseEvaluationEvent entity.
type ExerciseEvaluationEventCreate struct {
	config
	mutation *ExerciseEvaluationEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ExerciseEvaluationEventCreate) SetSequence(v int64) *ExerciseEvaluationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExerciseEvaluationEventCreate) SetTimestamp(v time.Time) *ExerciseEvaluationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExerciseEvaluationEventCreate) SetNillableTimestamp(v *time.Time) *ExerciseEvaluationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ExerciseEvaluationEventCreate) SetAttemptID(v string) *ExerciseEvaluationEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *ExerciseEvaluationEventCreate) SetExerciseID(v string) *ExerciseEvaluationEventCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetPathID sets the "path_id" field.
func (_c *ExerciseEvaluationEventCreate) SetPathID(v string) *ExerciseEvaluationEventCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_c *ExerciseEvaluationEventCreate) SetNillablePathID(v *string) *ExerciseEvaluationEventCreate {
	if v != nil {
		_c.SetPathID(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ExerciseEvaluationEventCreate) SetScore(v int) *ExerciseEvaluationEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ExerciseEvaluationEventCreate) SetNillableScore(v *int) *ExerciseEvaluationEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ExerciseEvaluationEventCreate) SetPassed(v bool) *ExerciseEvaluationEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *ExerciseEvaluationEventCreate) SetHintsUsed(v int) *ExerciseEvaluationEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *ExerciseEvaluationEventCreate) SetNillableHintsUsed(v *int) *ExerciseEvaluationEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetSolutionChars sets the "solution_chars" field.
func (_c *ExerciseEvaluationEventCreate) SetSolutionChars(v int) *ExerciseEvaluationEventCreate {
	_c.mutation.SetSolutionChars(v)
	return _c
}

// SetNillableSolutionChars sets the "solution_chars" field if the given value is not nil.
func (_c *ExerciseEvaluationEventCreate) SetNillableSolutionChars(v *int) *ExerciseEvaluationEventCreate {
	if v != nil {
		_c.SetSolutionChars(*v)
	}
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *ExerciseEvaluationEventCreate) SetTimeSpentSeconds(v int) *ExerciseEvaluationEventCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *ExerciseEvaluationEventCreate) SetNillableTimeSpentSeconds(v *int) *ExerciseEvaluationEventCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// Mutation returns the ExerciseEvaluationEventMutation object of the builder.
func (_c *ExerciseEvaluationEventCreate) Mutation() *ExerciseEvaluationEventMutation {
	return _c.mutation
}

// Save creates the ExerciseEvaluationEvent in the database.
func (_c *ExerciseEvaluationEventCreate) Save(ctx context.Context) (*ExerciseEvaluationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseEvaluationEventCreate) SaveX(ctx context.Context) *ExerciseEvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseEvaluationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseEvaluationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseEvaluationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := exerciseevaluationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PathID(); !ok {
		v := exerciseevaluationevent.DefaultPathID
		_c.mutation.SetPathID(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := exerciseevaluationevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := exerciseevaluationevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.SolutionChars(); !ok {
		v := exerciseevaluationevent.DefaultSolutionChars
		_c.mutation.SetSolutionChars(v)
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := exerciseevaluationevent.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseEvaluationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := exerciseevaluationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvaluationEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := exerciseevaluationevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvaluationEvent.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.path_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.passed"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.hints_used"`)}
	}
	if _, ok := _c.mutation.SolutionChars(); !ok {
		return &ValidationError{Name: "solution_chars", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.solution_chars"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "ExerciseEvaluationEvent.time_spent_seconds"`)}
	}
	return nil
}

func (_c *ExerciseEvaluationEventCreate) sqlSave(ctx context.Context) (*ExerciseEvaluationEvent, error) {
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

func (_c *ExerciseEvaluationEventCreate) createSpec() (*ExerciseEvaluationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExerciseEvaluationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exerciseevaluationevent.Table, sqlgraph.NewFieldSpec(exerciseevaluationevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(exerciseevaluationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(exerciseevaluationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(exerciseevaluationevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(exerciseevaluationevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(exerciseevaluationevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.SolutionChars(); ok {
		_spec.SetField(exerciseevaluationevent.FieldSolutionChars, field.TypeInt, value)
		_node.SolutionChars = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(exerciseevaluationevent.FieldTimeSpentSeconds, field.TypeInt, value)
		_node.TimeSpentSeconds = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExerciseEvaluationEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseEvaluationEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseEvaluationEventCreate) OnConflict(opts ...sql.ConflictOption) *ExerciseEvaluationEventUpsertOne {
	_c.conflict = opts
	return &ExerciseEvaluationEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExerciseEvaluationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseEvaluationEventCreate) OnConflictColumns(columns ...string) *ExerciseEvaluationEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseEvaluationEventUpsertOne{
		create: _c,
	}
}

type (
	// ExerciseEvaluationEventUpsertOne is the builder for "upsert"-ing
	//  one ExerciseEvaluationEvent node.
	ExerciseEvaluationEventUpsertOne struct {
		create *ExerciseEvaluationEventCreate
	}

	// ExerciseEvaluationEventUpsert is the "OnConflict" setter.
	ExerciseEvaluationEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetAttemptID sets the "attempt_id" field.
func (u *ExerciseEvaluationEventUpsert) SetAttemptID(v string) *ExerciseEvaluationEventUpsert {
	u.Set(exerciseevaluationevent.FieldAttemptID, v)
	return u
}

// UpdateAttemptID sets the "attempt_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsert) UpdateAttemptID() *ExerciseEvaluationEventUpsert {
	u.SetExcluded(exerciseevaluationevent.FieldAttemptID)
	return u
}

// SetExerciseID sets the "exercise_id" field.
func (u *ExerciseEvaluationEventUpsert) SetExerciseID(v string) *ExerciseEvaluationEventUpsert {
	u.Set(exerciseevaluationevent.FieldExerciseID, v)
	return u
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsert) UpdateExerciseID() *ExerciseEvaluationEventUpsert {
	u.SetExcluded(exerciseevaluationevent.FieldExerciseID)
	return u
}

// SetPathID sets the "path_id" field.
func (u *ExerciseEvaluationEventUpsert) SetPathID(v string) *ExerciseEvaluationEventUpsert {
	u.Set(exerciseevaluationevent.FieldPathID, v)
	return u
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsert) UpdatePathID() *ExerciseEvaluationEventUpsert {
	u.SetExcluded(exerciseevaluationevent.FieldPathID)
	return u
}

// SetScore sets the "score" field.
func (u *ExerciseEvaluationEventUpsert) SetScore(v int) *ExerciseEvaluationEventUpsert {
	u.Set(exerciseevaluationevent.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsert) UpdateScore() *ExerciseEvaluationEventUpsert {
	u.SetExcluded(exerciseevaluationevent.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *ExerciseEvaluationEventUpsert) AddScore(v int) *ExerciseEvaluationEventUpsert {
	u.Add(exerciseevaluationevent.FieldScore, v)
	return u
}

// SetPassed sets the "passed" field.
func (u *ExerciseEvaluationEventUpsert) SetPassed(v bool) *ExerciseEvaluationEventUpsert {
	u.Set(exerciseevaluationevent.FieldPassed, v)
	return u
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsert) UpdatePassed() *ExerciseEvaluationEventUpsert {
	u.SetExcluded(exerciseevaluationevent.FieldPassed)
	return u
}

// SetHintsUsed sets the "hints_used" field.
func (u *ExerciseEvaluationEventUpsert) SetHintsUsed(v int) *ExerciseEvaluationEventUpsert {
	u.Set(exerciseevaluationevent.FieldHintsUsed, v)
	return u
}

// UpdateHintsUsed sets the "hints_used" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsert) UpdateHintsUsed() *ExerciseEvaluationEventUpsert {
	u.SetExcluded(exerciseevaluationevent.FieldHintsUsed)
	return u
}

// AddHintsUsed adds v to the "hints_used" field.
func (u *ExerciseEvaluationEventUpsert) AddHintsUsed(v int) *ExerciseEvaluationEventUpsert {
	u.Add(exerciseevaluationevent.FieldHintsUsed, v)
	return u
}

// SetSolutionChars sets the "solution_chars" field.
func (u *ExerciseEvaluationEventUpsert) SetSolutionChars(v int) *ExerciseEvaluationEventUpsert {
	u.Set(exerciseevaluationevent.FieldSolutionChars, v)
	return u
}

// UpdateSolutionChars sets the "solution_chars" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsert) UpdateSolutionChars() *ExerciseEvaluationEventUpsert {
	u.SetExcluded(exerciseevaluationevent.FieldSolutionChars)
	return u
}

// AddSolutionChars adds v to the "solution_chars" field.
func (u *ExerciseEvaluationEventUpsert) AddSolutionChars(v int) *ExerciseEvaluationEventUpsert {
	u.Add(exerciseevaluationevent.FieldSolutionChars, v)
	return u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *ExerciseEvaluationEventUpsert) SetTimeSpentSeconds(v int) *ExerciseEvaluationEventUpsert {
	u.Set(exerciseevaluationevent.FieldTimeSpentSeconds, v)
	return u
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsert) UpdateTimeSpentSeconds() *ExerciseEvaluationEventUpsert {
	u.SetExcluded(exerciseevaluationevent.FieldTimeSpentSeconds)
	return u
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *ExerciseEvaluationEventUpsert) AddTimeSpentSeconds(v int) *ExerciseEvaluationEventUpsert {
	u.Add(exerciseevaluationevent.FieldTimeSpentSeconds, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExerciseEvaluationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExerciseEvaluationEventUpsertOne) UpdateNewValues() *ExerciseEvaluationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(exerciseevaluationevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(exerciseevaluationevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExerciseEvaluationEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExerciseEvaluationEventUpsertOne) Ignore() *ExerciseEvaluationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseEvaluationEventUpsertOne) DoNothing() *ExerciseEvaluationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseEvaluationEventCreate.OnConflict
// documentation for more info.
func (u *ExerciseEvaluationEventUpsertOne) Update(set func(*ExerciseEvaluationEventUpsert)) *ExerciseEvaluationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseEvaluationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAttemptID sets the "attempt_id" field.
func (u *ExerciseEvaluationEventUpsertOne) SetAttemptID(v string) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetAttemptID(v)
	})
}

// UpdateAttemptID sets the "attempt_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertOne) UpdateAttemptID() *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateAttemptID()
	})
}

// SetExerciseID sets the "exercise_id" field.
func (u *ExerciseEvaluationEventUpsertOne) SetExerciseID(v string) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetExerciseID(v)
	})
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertOne) UpdateExerciseID() *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateExerciseID()
	})
}

// SetPathID sets the "path_id" field.
func (u *ExerciseEvaluationEventUpsertOne) SetPathID(v string) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetPathID(v)
	})
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertOne) UpdatePathID() *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdatePathID()
	})
}

// SetScore sets the "score" field.
func (u *ExerciseEvaluationEventUpsertOne) SetScore(v int) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ExerciseEvaluationEventUpsertOne) AddScore(v int) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertOne) UpdateScore() *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateScore()
	})
}

// SetPassed sets the "passed" field.
func (u *ExerciseEvaluationEventUpsertOne) SetPassed(v bool) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertOne) UpdatePassed() *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdatePassed()
	})
}

// SetHintsUsed sets the "hints_used" field.
func (u *ExerciseEvaluationEventUpsertOne) SetHintsUsed(v int) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetHintsUsed(v)
	})
}

// AddHintsUsed adds v to the "hints_used" field.
func (u *ExerciseEvaluationEventUpsertOne) AddHintsUsed(v int) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.AddHintsUsed(v)
	})
}

// UpdateHintsUsed sets the "hints_used" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertOne) UpdateHintsUsed() *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateHintsUsed()
	})
}

// SetSolutionChars sets the "solution_chars" field.
func (u *ExerciseEvaluationEventUpsertOne) SetSolutionChars(v int) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetSolutionChars(v)
	})
}

// AddSolutionChars adds v to the "solution_chars" field.
func (u *ExerciseEvaluationEventUpsertOne) AddSolutionChars(v int) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.AddSolutionChars(v)
	})
}

// UpdateSolutionChars sets the "solution_chars" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertOne) UpdateSolutionChars() *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateSolutionChars()
	})
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *ExerciseEvaluationEventUpsertOne) SetTimeSpentSeconds(v int) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetTimeSpentSeconds(v)
	})
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *ExerciseEvaluationEventUpsertOne) AddTimeSpentSeconds(v int) *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.AddTimeSpentSeconds(v)
	})
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertOne) UpdateTimeSpentSeconds() *ExerciseEvaluationEventUpsertOne {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateTimeSpentSeconds()
	})
}

// Exec executes the query.
func (u *ExerciseEvaluationEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseEvaluationEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseEvaluationEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExerciseEvaluationEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExerciseEvaluationEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExerciseEvaluationEventCreateBulk is the builder for creating many ExerciseEvaluationEvent entities in bulk.
type ExerciseEvaluationEventCreateBulk struct {
	config
	err      error
	builders []*ExerciseEvaluationEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ExerciseEvaluationEvent entities in the database.
func (_c *ExerciseEvaluationEventCreateBulk) Save(ctx context.Context) ([]*ExerciseEvaluationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExerciseEvaluationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseEvaluationEventMutation)
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
func (_c *ExerciseEvaluationEventCreateBulk) SaveX(ctx context.Context) []*ExerciseEvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseEvaluationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseEvaluationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExerciseEvaluationEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseEvaluationEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseEvaluationEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExerciseEvaluationEventUpsertBulk {
	_c.conflict = opts
	return &ExerciseEvaluationEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExerciseEvaluationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseEvaluationEventCreateBulk) OnConflictColumns(columns ...string) *ExerciseEvaluationEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseEvaluationEventUpsertBulk{
		create: _c,
	}
}

// ExerciseEvaluationEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ExerciseEvaluationEvent nodes.
type ExerciseEvaluationEventUpsertBulk struct {
	create *ExerciseEvaluationEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExerciseEvaluationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExerciseEvaluationEventUpsertBulk) UpdateNewValues() *ExerciseEvaluationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(exerciseevaluationevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(exerciseevaluationevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExerciseEvaluationEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExerciseEvaluationEventUpsertBulk) Ignore() *ExerciseEvaluationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseEvaluationEventUpsertBulk) DoNothing() *ExerciseEvaluationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseEvaluationEventCreateBulk.OnConflict
// documentation for more info.
func (u *ExerciseEvaluationEventUpsertBulk) Update(set func(*ExerciseEvaluationEventUpsert)) *ExerciseEvaluationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseEvaluationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAttemptID sets the "attempt_id" field.
func (u *ExerciseEvaluationEventUpsertBulk) SetAttemptID(v string) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetAttemptID(v)
	})
}

// UpdateAttemptID sets the "attempt_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertBulk) UpdateAttemptID() *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateAttemptID()
	})
}

// SetExerciseID sets the "exercise_id" field.
func (u *ExerciseEvaluationEventUpsertBulk) SetExerciseID(v string) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetExerciseID(v)
	})
}

// UpdateExerciseID sets the "exercise_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertBulk) UpdateExerciseID() *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateExerciseID()
	})
}

// SetPathID sets the "path_id" field.
func (u *ExerciseEvaluationEventUpsertBulk) SetPathID(v string) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetPathID(v)
	})
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertBulk) UpdatePathID() *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdatePathID()
	})
}

// SetScore sets the "score" field.
func (u *ExerciseEvaluationEventUpsertBulk) SetScore(v int) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ExerciseEvaluationEventUpsertBulk) AddScore(v int) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertBulk) UpdateScore() *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateScore()
	})
}

// SetPassed sets the "passed" field.
func (u *ExerciseEvaluationEventUpsertBulk) SetPassed(v bool) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertBulk) UpdatePassed() *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdatePassed()
	})
}

// SetHintsUsed sets the "hints_used" field.
func (u *ExerciseEvaluationEventUpsertBulk) SetHintsUsed(v int) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetHintsUsed(v)
	})
}

// AddHintsUsed adds v to the "hints_used" field.
func (u *ExerciseEvaluationEventUpsertBulk) AddHintsUsed(v int) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.AddHintsUsed(v)
	})
}

// UpdateHintsUsed sets the "hints_used" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertBulk) UpdateHintsUsed() *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateHintsUsed()
	})
}

// SetSolutionChars sets the "solution_chars" field.
func (u *ExerciseEvaluationEventUpsertBulk) SetSolutionChars(v int) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetSolutionChars(v)
	})
}

// AddSolutionChars adds v to the "solution_chars" field.
func (u *ExerciseEvaluationEventUpsertBulk) AddSolutionChars(v int) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.AddSolutionChars(v)
	})
}

// UpdateSolutionChars sets the "solution_chars" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertBulk) UpdateSolutionChars() *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateSolutionChars()
	})
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *ExerciseEvaluationEventUpsertBulk) SetTimeSpentSeconds(v int) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.SetTimeSpentSeconds(v)
	})
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *ExerciseEvaluationEventUpsertBulk) AddTimeSpentSeconds(v int) *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.AddTimeSpentSeconds(v)
	})
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *ExerciseEvaluationEventUpsertBulk) UpdateTimeSpentSeconds() *ExerciseEvaluationEventUpsertBulk {
	return u.Update(func(s *ExerciseEvaluationEventUpsert) {
		s.UpdateTimeSpentSeconds()
	})
}

// Exec executes the query.
func (u *ExerciseEvaluationEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExerciseEvaluationEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseEvaluationEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseEvaluationEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
