// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/hintrequestevent"
	"github.com/abhisek/skillforge/ent/predicate"
)

// HintRequestEventUpdate is the builder for updating HintRequestEvent entities.
type HintRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *HintRequestEventMutation
}

// Where appends a list predicates to the HintRequestEventUpdate builder.
func (_u *HintRequestEventUpdate) Where(ps ...predicate.HintRequestEvent) *HintRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *HintRequestEventUpdate) SetAttemptID(v string) *HintRequestEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *HintRequestEventUpdate) SetNillableAttemptID(v *string) *HintRequestEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *HintRequestEventUpdate) SetExerciseID(v string) *HintRequestEventUpdate {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *HintRequestEventUpdate) SetNillableExerciseID(v *string) *HintRequestEventUpdate {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *HintRequestEventUpdate) SetLevel(v int) *HintRequestEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *HintRequestEventUpdate) SetNillableLevel(v *int) *HintRequestEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *HintRequestEventUpdate) AddLevel(v int) *HintRequestEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintRequestEventUpdate) SetHintText(v string) *HintRequestEventUpdate {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintRequestEventUpdate) SetNillableHintText(v *string) *HintRequestEventUpdate {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// Mutation returns the HintRequestEventMutation object of the builder.
func (_u *HintRequestEventUpdate) Mutation() *HintRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HintRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HintRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintRequestEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := hintrequestevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "HintRequestEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := hintrequestevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "HintRequestEvent.exercise_id": %w`, err)}
		}
	}
	return nil
}

func (_u *HintRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintrequestevent.Table, hintrequestevent.Columns, sqlgraph.NewFieldSpec(hintrequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(hintrequestevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(hintrequestevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(hintrequestevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(hintrequestevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintrequestevent.FieldHintText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HintRequestEventUpdateOne is the builder for updating a single HintRequestEvent entity.
type HintRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HintRequestEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *HintRequestEventUpdateOne) SetAttemptID(v string) *HintRequestEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *HintRequestEventUpdateOne) SetNillableAttemptID(v *string) *HintRequestEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *HintRequestEventUpdateOne) SetExerciseID(v string) *HintRequestEventUpdateOne {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *HintRequestEventUpdateOne) SetNillableExerciseID(v *string) *HintRequestEventUpdateOne {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *HintRequestEventUpdateOne) SetLevel(v int) *HintRequestEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *HintRequestEventUpdateOne) SetNillableLevel(v *int) *HintRequestEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *HintRequestEventUpdateOne) AddLevel(v int) *HintRequestEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintRequestEventUpdateOne) SetHintText(v string) *HintRequestEventUpdateOne {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintRequestEventUpdateOne) SetNillableHintText(v *string) *HintRequestEventUpdateOne {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// Mutation returns the HintRequestEventMutation object of the builder.
func (_u *HintRequestEventUpdateOne) Mutation() *HintRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HintRequestEventUpdate builder.
func (_u *HintRequestEventUpdateOne) Where(ps ...predicate.HintRequestEvent) *HintRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HintRequestEventUpdateOne) Select(field string, fields ...string) *HintRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HintRequestEvent entity.
func (_u *HintRequestEventUpdateOne) Save(ctx context.Context) (*HintRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintRequestEventUpdateOne) SaveX(ctx context.Context) *HintRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HintRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintRequestEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := hintrequestevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "HintRequestEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := hintrequestevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "HintRequestEvent.exercise_id": %w`, err)}
		}
	}
	return nil
}

func (_u *HintRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *HintRequestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintrequestevent.Table, hintrequestevent.Columns, sqlgraph.NewFieldSpec(hintrequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HintRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hintrequestevent.FieldID)
		for _, f := range fields {
			if !hintrequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hintrequestevent.FieldID {
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
		_spec.SetField(hintrequestevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(hintrequestevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(hintrequestevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(hintrequestevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintrequestevent.FieldHintText, field.TypeString, value)
	}
	_node = &HintRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
