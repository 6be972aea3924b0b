// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/evaluatorrequestevent"
	"github.com/abhisek/skillforge/ent/predicate"
)

// EvaluatorRequestEventDelete is the builder for deleting a EvaluatorRequestEvent entity.
type EvaluatorRequestEventDelete struct {
	config
	hooks    []Hook
	mutation *EvaluatorRequestEventMutation
}

// Where appends a list predicates to the EvaluatorRequestEventDelete builder.
func (_d *EvaluatorRequestEventDelete) Where(ps ...predicate.EvaluatorRequestEvent) *EvaluatorRequestEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EvaluatorRequestEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvaluatorRequestEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EvaluatorRequestEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(evaluatorrequestevent.Table, sqlgraph.NewFieldSpec(evaluatorrequestevent.FieldID, field.TypeInt))
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

// EvaluatorRequestEventDeleteOne is the builder for deleting a single EvaluatorRequestEvent entity.
type EvaluatorRequestEventDeleteOne struct {
	_d *EvaluatorRequestEventDelete
}

// Where appends a list predicates to the EvaluatorRequestEventDelete builder.
func (_d *EvaluatorRequestEventDeleteOne) Where(ps ...predicate.EvaluatorRequestEvent) *EvaluatorRequestEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EvaluatorRequestEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{evaluatorrequestevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvaluatorRequestEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
