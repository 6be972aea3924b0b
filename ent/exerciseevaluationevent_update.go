// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/exerciseevaluationevent"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ExerciseEvaluationEventUpdate is the builder for updating ExerciseEvaluationEvent entities.
type ExerciseEvaluationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExerciseEvaluationEventMutation
}

// Where appends a list predicates to the ExerciseEvaluationEventUpdate builder.
func (_u *ExerciseEvaluationEventUpdate) Where(ps ...predicate.ExerciseEvaluationEvent) *ExerciseEvaluationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ExerciseEvaluationEventUpdate) SetAttemptID(v string) *ExerciseEvaluationEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdate) SetNillableAttemptID(v *string) *ExerciseEvaluationEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *ExerciseEvaluationEventUpdate) SetExerciseID(v string) *ExerciseEvaluationEventUpdate {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdate) SetNillableExerciseID(v *string) *ExerciseEvaluationEventUpdate {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *ExerciseEvaluationEventUpdate) SetPathID(v string) *ExerciseEvaluationEventUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdate) SetNillablePathID(v *string) *ExerciseEvaluationEventUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExerciseEvaluationEventUpdate) SetScore(v int) *ExerciseEvaluationEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdate) SetNillableScore(v *int) *ExerciseEvaluationEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExerciseEvaluationEventUpdate) AddScore(v int) *ExerciseEvaluationEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExerciseEvaluationEventUpdate) SetPassed(v bool) *ExerciseEvaluationEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdate) SetNillablePassed(v *bool) *ExerciseEvaluationEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ExerciseEvaluationEventUpdate) SetHintsUsed(v int) *ExerciseEvaluationEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdate) SetNillableHintsUsed(v *int) *ExerciseEvaluationEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ExerciseEvaluationEventUpdate) AddHintsUsed(v int) *ExerciseEvaluationEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetSolutionChars sets the "solution_chars" field.
func (_u *ExerciseEvaluationEventUpdate) SetSolutionChars(v int) *ExerciseEvaluationEventUpdate {
	_u.mutation.ResetSolutionChars()
	_u.mutation.SetSolutionChars(v)
	return _u
}

// SetNillableSolutionChars sets the "solution_chars" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdate) SetNillableSolutionChars(v *int) *ExerciseEvaluationEventUpdate {
	if v != nil {
		_u.SetSolutionChars(*v)
	}
	return _u
}

// AddSolutionChars adds value to the "solution_chars" field.
func (_u *ExerciseEvaluationEventUpdate) AddSolutionChars(v int) *ExerciseEvaluationEventUpdate {
	_u.mutation.AddSolutionChars(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *ExerciseEvaluationEventUpdate) SetTimeSpentSeconds(v int) *ExerciseEvaluationEventUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdate) SetNillableTimeSpentSeconds(v *int) *ExerciseEvaluationEventUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *ExerciseEvaluationEventUpdate) AddTimeSpentSeconds(v int) *ExerciseEvaluationEventUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// Mutation returns the ExerciseEvaluationEventMutation object of the builder.
func (_u *ExerciseEvaluationEventUpdate) Mutation() *ExerciseEvaluationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExerciseEvaluationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseEvaluationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExerciseEvaluationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseEvaluationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseEvaluationEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := exerciseevaluationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvaluationEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := exerciseevaluationevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvaluationEvent.exercise_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExerciseEvaluationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exerciseevaluationevent.Table, exerciseevaluationevent.Columns, sqlgraph.NewFieldSpec(exerciseevaluationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(exerciseevaluationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(exerciseevaluationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(exerciseevaluationevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(exerciseevaluationevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(exerciseevaluationevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SolutionChars(); ok {
		_spec.SetField(exerciseevaluationevent.FieldSolutionChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSolutionChars(); ok {
		_spec.AddField(exerciseevaluationevent.FieldSolutionChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(exerciseevaluationevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(exerciseevaluationevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciseevaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExerciseEvaluationEventUpdateOne is the builder for updating a single ExerciseEvaluationEvent entity.
type ExerciseEvaluationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExerciseEvaluationEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ExerciseEvaluationEventUpdateOne) SetAttemptID(v string) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdateOne) SetNillableAttemptID(v *string) *ExerciseEvaluationEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *ExerciseEvaluationEventUpdateOne) SetExerciseID(v string) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdateOne) SetNillableExerciseID(v *string) *ExerciseEvaluationEventUpdateOne {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *ExerciseEvaluationEventUpdateOne) SetPathID(v string) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdateOne) SetNillablePathID(v *string) *ExerciseEvaluationEventUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExerciseEvaluationEventUpdateOne) SetScore(v int) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdateOne) SetNillableScore(v *int) *ExerciseEvaluationEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExerciseEvaluationEventUpdateOne) AddScore(v int) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExerciseEvaluationEventUpdateOne) SetPassed(v bool) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdateOne) SetNillablePassed(v *bool) *ExerciseEvaluationEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ExerciseEvaluationEventUpdateOne) SetHintsUsed(v int) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdateOne) SetNillableHintsUsed(v *int) *ExerciseEvaluationEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ExerciseEvaluationEventUpdateOne) AddHintsUsed(v int) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetSolutionChars sets the "solution_chars" field.
func (_u *ExerciseEvaluationEventUpdateOne) SetSolutionChars(v int) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.ResetSolutionChars()
	_u.mutation.SetSolutionChars(v)
	return _u
}

// SetNillableSolutionChars sets the "solution_chars" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdateOne) SetNillableSolutionChars(v *int) *ExerciseEvaluationEventUpdateOne {
	if v != nil {
		_u.SetSolutionChars(*v)
	}
	return _u
}

// AddSolutionChars adds value to the "solution_chars" field.
func (_u *ExerciseEvaluationEventUpdateOne) AddSolutionChars(v int) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.AddSolutionChars(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *ExerciseEvaluationEventUpdateOne) SetTimeSpentSeconds(v int) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *ExerciseEvaluationEventUpdateOne) SetNillableTimeSpentSeconds(v *int) *ExerciseEvaluationEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *ExerciseEvaluationEventUpdateOne) AddTimeSpentSeconds(v int) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// Mutation returns the ExerciseEvaluationEventMutation object of the builder.
func (_u *ExerciseEvaluationEventUpdateOne) Mutation() *ExerciseEvaluationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExerciseEvaluationEventUpdate builder.
func (_u *ExerciseEvaluationEventUpdateOne) Where(ps ...predicate.ExerciseEvaluationEvent) *ExerciseEvaluationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExerciseEvaluationEventUpdateOne) Select(field string, fields ...string) *ExerciseEvaluationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExerciseEvaluationEvent entity.
func (_u *ExerciseEvaluationEventUpdateOne) Save(ctx context.Context) (*ExerciseEvaluationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseEvaluationEventUpdateOne) SaveX(ctx context.Context) *ExerciseEvaluationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExerciseEvaluationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseEvaluationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseEvaluationEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := exerciseevaluationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvaluationEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := exerciseevaluationevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvaluationEvent.exercise_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExerciseEvaluationEventUpdateOne) sqlSave(ctx context.Context) (_node *ExerciseEvaluationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exerciseevaluationevent.Table, exerciseevaluationevent.Columns, sqlgraph.NewFieldSpec(exerciseevaluationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExerciseEvaluationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exerciseevaluationevent.FieldID)
		for _, f := range fields {
			if !exerciseevaluationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exerciseevaluationevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(exerciseevaluationevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(exerciseevaluationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(exerciseevaluationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(exerciseevaluationevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(exerciseevaluationevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(exerciseevaluationevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SolutionChars(); ok {
		_spec.SetField(exerciseevaluationevent.FieldSolutionChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSolutionChars(); ok {
		_spec.AddField(exerciseevaluationevent.FieldSolutionChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(exerciseevaluationevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(exerciseevaluationevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	_node = &ExerciseEvaluationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciseevaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
