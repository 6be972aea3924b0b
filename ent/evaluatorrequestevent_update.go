// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/evaluatorrequestevent"
	"github.com/abhisek/skillforge/ent/predicate"
)

// EvaluatorRequestEventUpdate is the builder for updating EvaluatorRequestEvent entities.
type EvaluatorRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluatorRequestEventMutation
}

// Where appends a list predicates to the EvaluatorRequestEventUpdate builder.
func (_u *EvaluatorRequestEventUpdate) Where(ps ...predicate.EvaluatorRequestEvent) *EvaluatorRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *EvaluatorRequestEventUpdate) SetMode(v string) *EvaluatorRequestEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdate) SetNillableMode(v *string) *EvaluatorRequestEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *EvaluatorRequestEventUpdate) SetOperation(v string) *EvaluatorRequestEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdate) SetNillableOperation(v *string) *EvaluatorRequestEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *EvaluatorRequestEventUpdate) SetTarget(v string) *EvaluatorRequestEventUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdate) SetNillableTarget(v *string) *EvaluatorRequestEventUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *EvaluatorRequestEventUpdate) SetLatencyMs(v int64) *EvaluatorRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdate) SetNillableLatencyMs(v *int64) *EvaluatorRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *EvaluatorRequestEventUpdate) AddLatencyMs(v int64) *EvaluatorRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *EvaluatorRequestEventUpdate) SetSuccess(v bool) *EvaluatorRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdate) SetNillableSuccess(v *bool) *EvaluatorRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EvaluatorRequestEventUpdate) SetErrorMessage(v string) *EvaluatorRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdate) SetNillableErrorMessage(v *string) *EvaluatorRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the EvaluatorRequestEventMutation object of the builder.
func (_u *EvaluatorRequestEventUpdate) Mutation() *EvaluatorRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluatorRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluatorRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluatorRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluatorRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvaluatorRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(evaluatorrequestevent.Table, evaluatorrequestevent.Columns, sqlgraph.NewFieldSpec(evaluatorrequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(evaluatorrequestevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(evaluatorrequestevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(evaluatorrequestevent.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(evaluatorrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(evaluatorrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(evaluatorrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluatorrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluatorrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluatorRequestEventUpdateOne is the builder for updating a single EvaluatorRequestEvent entity.
type EvaluatorRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluatorRequestEventMutation
}

// SetMode sets the "mode" field.
func (_u *EvaluatorRequestEventUpdateOne) SetMode(v string) *EvaluatorRequestEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdateOne) SetNillableMode(v *string) *EvaluatorRequestEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *EvaluatorRequestEventUpdateOne) SetOperation(v string) *EvaluatorRequestEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdateOne) SetNillableOperation(v *string) *EvaluatorRequestEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *EvaluatorRequestEventUpdateOne) SetTarget(v string) *EvaluatorRequestEventUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdateOne) SetNillableTarget(v *string) *EvaluatorRequestEventUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *EvaluatorRequestEventUpdateOne) SetLatencyMs(v int64) *EvaluatorRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *EvaluatorRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *EvaluatorRequestEventUpdateOne) AddLatencyMs(v int64) *EvaluatorRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *EvaluatorRequestEventUpdateOne) SetSuccess(v bool) *EvaluatorRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdateOne) SetNillableSuccess(v *bool) *EvaluatorRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EvaluatorRequestEventUpdateOne) SetErrorMessage(v string) *EvaluatorRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EvaluatorRequestEventUpdateOne) SetNillableErrorMessage(v *string) *EvaluatorRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the EvaluatorRequestEventMutation object of the builder.
func (_u *EvaluatorRequestEventUpdateOne) Mutation() *EvaluatorRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluatorRequestEventUpdate builder.
func (_u *EvaluatorRequestEventUpdateOne) Where(ps ...predicate.EvaluatorRequestEvent) *EvaluatorRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluatorRequestEventUpdateOne) Select(field string, fields ...string) *EvaluatorRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluatorRequestEvent entity.
func (_u *EvaluatorRequestEventUpdateOne) Save(ctx context.Context) (*EvaluatorRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluatorRequestEventUpdateOne) SaveX(ctx context.Context) *EvaluatorRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluatorRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluatorRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvaluatorRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *EvaluatorRequestEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(evaluatorrequestevent.Table, evaluatorrequestevent.Columns, sqlgraph.NewFieldSpec(evaluatorrequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluatorRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluatorrequestevent.FieldID)
		for _, f := range fields {
			if !evaluatorrequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluatorrequestevent.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(evaluatorrequestevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(evaluatorrequestevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(evaluatorrequestevent.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(evaluatorrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(evaluatorrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(evaluatorrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluatorrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &EvaluatorRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluatorrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
