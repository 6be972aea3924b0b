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
	"github.com/abhisek/skillforge/ent/evaluatorrequestevent"
)

// EvaluatorRequestEventCreate is the builder for creating a EvaluatorRequestEvent entity.
type EvaluatorRequestEventCreate struct {
	config
	mutation *EvaluatorRequestEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *EvaluatorRequestEventCreate) SetSequence(v int64) *EvaluatorRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvaluatorRequestEventCreate) SetTimestamp(v time.Time) *EvaluatorRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvaluatorRequestEventCreate) SetNillableTimestamp(v *time.Time) *EvaluatorRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *EvaluatorRequestEventCreate) SetMode(v string) *EvaluatorRequestEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *EvaluatorRequestEventCreate) SetOperation(v string) *EvaluatorRequestEventCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *EvaluatorRequestEventCreate) SetTarget(v string) *EvaluatorRequestEventCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_c *EvaluatorRequestEventCreate) SetNillableTarget(v *string) *EvaluatorRequestEventCreate {
	if v != nil {
		_c.SetTarget(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *EvaluatorRequestEventCreate) SetLatencyMs(v int64) *EvaluatorRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *EvaluatorRequestEventCreate) SetNillableLatencyMs(v *int64) *EvaluatorRequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *EvaluatorRequestEventCreate) SetSuccess(v bool) *EvaluatorRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EvaluatorRequestEventCreate) SetErrorMessage(v string) *EvaluatorRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EvaluatorRequestEventCreate) SetNillableErrorMessage(v *string) *EvaluatorRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the EvaluatorRequestEventMutation object of the builder.
func (_c *EvaluatorRequestEventCreate) Mutation() *EvaluatorRequestEventMutation {
	return _c.mutation
}

// Save creates the EvaluatorRequestEvent in the database.
func (_c *EvaluatorRequestEventCreate) Save(ctx context.Context) (*EvaluatorRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluatorRequestEventCreate) SaveX(ctx context.Context) *EvaluatorRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluatorRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluatorRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluatorRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evaluatorrequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Target(); !ok {
		v := evaluatorrequestevent.DefaultTarget
		_c.mutation.SetTarget(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := evaluatorrequestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := evaluatorrequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluatorRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluatorRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvaluatorRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "EvaluatorRequestEvent.mode"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "EvaluatorRequestEvent.operation"`)}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "EvaluatorRequestEvent.target"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "EvaluatorRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "EvaluatorRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "EvaluatorRequestEvent.error_message"`)}
	}
	return nil
}

func (_c *EvaluatorRequestEventCreate) sqlSave(ctx context.Context) (*EvaluatorRequestEvent, error) {
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

func (_c *EvaluatorRequestEventCreate) createSpec() (*EvaluatorRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluatorRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluatorrequestevent.Table, sqlgraph.NewFieldSpec(evaluatorrequestevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluatorrequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evaluatorrequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(evaluatorrequestevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(evaluatorrequestevent.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(evaluatorrequestevent.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(evaluatorrequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(evaluatorrequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluatorrequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluatorRequestEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluatorRequestEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluatorRequestEventCreate) OnConflict(opts ...sql.ConflictOption) *EvaluatorRequestEventUpsertOne {
	_c.conflict = opts
	return &EvaluatorRequestEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluatorRequestEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluatorRequestEventCreate) OnConflictColumns(columns ...string) *EvaluatorRequestEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluatorRequestEventUpsertOne{
		create: _c,
	}
}

type (
	// EvaluatorRequestEventUpsertOne is the builder for "upsert"-ing
	//  one EvaluatorRequestEvent node.
	EvaluatorRequestEventUpsertOne struct {
		create *EvaluatorRequestEventCreate
	}

	// EvaluatorRequestEventUpsert is the "OnConflict" setter.
	EvaluatorRequestEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetMode sets the "mode" field.
func (u *EvaluatorRequestEventUpsert) SetMode(v string) *EvaluatorRequestEventUpsert {
	u.Set(evaluatorrequestevent.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsert) UpdateMode() *EvaluatorRequestEventUpsert {
	u.SetExcluded(evaluatorrequestevent.FieldMode)
	return u
}

// SetOperation sets the "operation" field.
func (u *EvaluatorRequestEventUpsert) SetOperation(v string) *EvaluatorRequestEventUpsert {
	u.Set(evaluatorrequestevent.FieldOperation, v)
	return u
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsert) UpdateOperation() *EvaluatorRequestEventUpsert {
	u.SetExcluded(evaluatorrequestevent.FieldOperation)
	return u
}

// SetTarget sets the "target" field.
func (u *EvaluatorRequestEventUpsert) SetTarget(v string) *EvaluatorRequestEventUpsert {
	u.Set(evaluatorrequestevent.FieldTarget, v)
	return u
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsert) UpdateTarget() *EvaluatorRequestEventUpsert {
	u.SetExcluded(evaluatorrequestevent.FieldTarget)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *EvaluatorRequestEventUpsert) SetLatencyMs(v int64) *EvaluatorRequestEventUpsert {
	u.Set(evaluatorrequestevent.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsert) UpdateLatencyMs() *EvaluatorRequestEventUpsert {
	u.SetExcluded(evaluatorrequestevent.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *EvaluatorRequestEventUpsert) AddLatencyMs(v int64) *EvaluatorRequestEventUpsert {
	u.Add(evaluatorrequestevent.FieldLatencyMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *EvaluatorRequestEventUpsert) SetSuccess(v bool) *EvaluatorRequestEventUpsert {
	u.Set(evaluatorrequestevent.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsert) UpdateSuccess() *EvaluatorRequestEventUpsert {
	u.SetExcluded(evaluatorrequestevent.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *EvaluatorRequestEventUpsert) SetErrorMessage(v string) *EvaluatorRequestEventUpsert {
	u.Set(evaluatorrequestevent.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsert) UpdateErrorMessage() *EvaluatorRequestEventUpsert {
	u.SetExcluded(evaluatorrequestevent.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EvaluatorRequestEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EvaluatorRequestEventUpsertOne) UpdateNewValues() *EvaluatorRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(evaluatorrequestevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(evaluatorrequestevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluatorRequestEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluatorRequestEventUpsertOne) Ignore() *EvaluatorRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluatorRequestEventUpsertOne) DoNothing() *EvaluatorRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluatorRequestEventCreate.OnConflict
// documentation for more info.
func (u *EvaluatorRequestEventUpsertOne) Update(set func(*EvaluatorRequestEventUpsert)) *EvaluatorRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluatorRequestEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetMode sets the "mode" field.
func (u *EvaluatorRequestEventUpsertOne) SetMode(v string) *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertOne) UpdateMode() *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateMode()
	})
}

// SetOperation sets the "operation" field.
func (u *EvaluatorRequestEventUpsertOne) SetOperation(v string) *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertOne) UpdateOperation() *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateOperation()
	})
}

// SetTarget sets the "target" field.
func (u *EvaluatorRequestEventUpsertOne) SetTarget(v string) *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetTarget(v)
	})
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertOne) UpdateTarget() *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateTarget()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *EvaluatorRequestEventUpsertOne) SetLatencyMs(v int64) *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *EvaluatorRequestEventUpsertOne) AddLatencyMs(v int64) *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertOne) UpdateLatencyMs() *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *EvaluatorRequestEventUpsertOne) SetSuccess(v bool) *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertOne) UpdateSuccess() *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *EvaluatorRequestEventUpsertOne) SetErrorMessage(v string) *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertOne) UpdateErrorMessage() *EvaluatorRequestEventUpsertOne {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// Exec executes the query.
func (u *EvaluatorRequestEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluatorRequestEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluatorRequestEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluatorRequestEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluatorRequestEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluatorRequestEventCreateBulk is the builder for creating many EvaluatorRequestEvent entities in bulk.
type EvaluatorRequestEventCreateBulk struct {
	config
	err      error
	builders []*EvaluatorRequestEventCreate
	conflict []sql.ConflictOption
}

// Save creates the EvaluatorRequestEvent entities in the database.
func (_c *EvaluatorRequestEventCreateBulk) Save(ctx context.Context) ([]*EvaluatorRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluatorRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluatorRequestEventMutation)
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
func (_c *EvaluatorRequestEventCreateBulk) SaveX(ctx context.Context) []*EvaluatorRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluatorRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluatorRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluatorRequestEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluatorRequestEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluatorRequestEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluatorRequestEventUpsertBulk {
	_c.conflict = opts
	return &EvaluatorRequestEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluatorRequestEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluatorRequestEventCreateBulk) OnConflictColumns(columns ...string) *EvaluatorRequestEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluatorRequestEventUpsertBulk{
		create: _c,
	}
}

// EvaluatorRequestEventUpsertBulk is the builder for "upsert"-ing
// a bulk of EvaluatorRequestEvent nodes.
type EvaluatorRequestEventUpsertBulk struct {
	create *EvaluatorRequestEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvaluatorRequestEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EvaluatorRequestEventUpsertBulk) UpdateNewValues() *EvaluatorRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(evaluatorrequestevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(evaluatorrequestevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluatorRequestEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluatorRequestEventUpsertBulk) Ignore() *EvaluatorRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluatorRequestEventUpsertBulk) DoNothing() *EvaluatorRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluatorRequestEventCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluatorRequestEventUpsertBulk) Update(set func(*EvaluatorRequestEventUpsert)) *EvaluatorRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluatorRequestEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetMode sets the "mode" field.
func (u *EvaluatorRequestEventUpsertBulk) SetMode(v string) *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertBulk) UpdateMode() *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateMode()
	})
}

// SetOperation sets the "operation" field.
func (u *EvaluatorRequestEventUpsertBulk) SetOperation(v string) *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertBulk) UpdateOperation() *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateOperation()
	})
}

// SetTarget sets the "target" field.
func (u *EvaluatorRequestEventUpsertBulk) SetTarget(v string) *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetTarget(v)
	})
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertBulk) UpdateTarget() *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateTarget()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *EvaluatorRequestEventUpsertBulk) SetLatencyMs(v int64) *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *EvaluatorRequestEventUpsertBulk) AddLatencyMs(v int64) *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertBulk) UpdateLatencyMs() *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *EvaluatorRequestEventUpsertBulk) SetSuccess(v bool) *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertBulk) UpdateSuccess() *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *EvaluatorRequestEventUpsertBulk) SetErrorMessage(v string) *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EvaluatorRequestEventUpsertBulk) UpdateErrorMessage() *EvaluatorRequestEventUpsertBulk {
	return u.Update(func(s *EvaluatorRequestEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// Exec executes the query.
func (u *EvaluatorRequestEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluatorRequestEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluatorRequestEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluatorRequestEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
