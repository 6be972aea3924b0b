// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/exerciseevaluationevent"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ExerciseEvaluationEventDelete is the builder for deleting a ExerciseEvaluationEvent entity.
type ExerciseEvaluationEventDelete struct {
	config
	hooks    []Hook
	mutation *ExerciseEvaluationEventMutation
}

// Where appends a list predicates to the ExerciseEvaluationEventDelete builder.
func (_d *ExerciseEvaluationEventDelete) Where(ps ...predicate.ExerciseEvaluationEvent) *ExerciseEvaluationEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExerciseEvaluationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExerciseEvaluationEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExerciseEvaluationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(exerciseevaluationevent.Table, sqlgraph.NewFieldSpec(exerciseevaluationevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExerciseEvaluationEventDeleteOne is the builder for deleting a single ExerciseEvaluationEvent entity.
type ExerciseEvaluationEventDeleteOne struct {
	_d *ExerciseEvaluationEventDelete
}

// Where appends a list predicates to the ExerciseEvaluationEventDelete builder.
func (_d *ExerciseEvaluationEventDeleteOne) Where(ps ...predicate.ExerciseEvaluationEvent) *ExerciseEvaluationEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExerciseEvaluationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{exerciseevaluationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExerciseEvaluationEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
