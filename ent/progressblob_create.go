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
	"github.com/abhisek/skillforge/ent/progressblob"
)

// ProgressBlobCreate is the builder for creating a ProgressBlob entity.
type ProgressBlobCreate struct {
	config
	mutation *ProgressBlobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *ProgressBlobCreate) SetKey(v string) *ProgressBlobCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ProgressBlobCreate) SetValue(v []byte) *ProgressBlobCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressBlobCreate) SetUpdatedAt(v time.Time) *ProgressBlobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressBlobCreate) SetNillableUpdatedAt(v *time.Time) *ProgressBlobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressBlobMutation object of the builder.
func (_c *ProgressBlobCreate) Mutation() *ProgressBlobMutation {
	return _c.mutation
}

// Save creates the ProgressBlob in the database.
func (_c *ProgressBlobCreate) Save(ctx context.Context) (*ProgressBlob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressBlobCreate) SaveX(ctx context.Context) *ProgressBlob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressBlobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressBlobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressBlobCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progressblob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressBlobCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ProgressBlob.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := progressblob.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ProgressBlob.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ProgressBlob.value"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressBlob.updated_at"`)}
	}
	return nil
}

func (_c *ProgressBlobCreate) sqlSave(ctx context.Context) (*ProgressBlob, error) {
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

func (_c *ProgressBlobCreate) createSpec() (*ProgressBlob, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressBlob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressblob.Table, sqlgraph.NewFieldSpec(progressblob.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(progressblob.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(progressblob.FieldValue, field.TypeBytes, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progressblob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProgressBlob.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProgressBlobUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *ProgressBlobCreate) OnConflict(opts ...sql.ConflictOption) *ProgressBlobUpsertOne {
	_c.conflict = opts
	return &ProgressBlobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProgressBlob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProgressBlobCreate) OnConflictColumns(columns ...string) *ProgressBlobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProgressBlobUpsertOne{
		create: _c,
	}
}

type (
	// ProgressBlobUpsertOne is the builder for "upsert"-ing
	//  one ProgressBlob node.
	ProgressBlobUpsertOne struct {
		create *ProgressBlobCreate
	}

	// ProgressBlobUpsert is the "OnConflict" setter.
	ProgressBlobUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *ProgressBlobUpsert) SetKey(v string) *ProgressBlobUpsert {
	u.Set(progressblob.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ProgressBlobUpsert) UpdateKey() *ProgressBlobUpsert {
	u.SetExcluded(progressblob.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *ProgressBlobUpsert) SetValue(v []byte) *ProgressBlobUpsert {
	u.Set(progressblob.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ProgressBlobUpsert) UpdateValue() *ProgressBlobUpsert {
	u.SetExcluded(progressblob.FieldValue)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProgressBlobUpsert) SetUpdatedAt(v time.Time) *ProgressBlobUpsert {
	u.Set(progressblob.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProgressBlobUpsert) UpdateUpdatedAt() *ProgressBlobUpsert {
	u.SetExcluded(progressblob.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ProgressBlob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProgressBlobUpsertOne) UpdateNewValues() *ProgressBlobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProgressBlob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProgressBlobUpsertOne) Ignore() *ProgressBlobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProgressBlobUpsertOne) DoNothing() *ProgressBlobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProgressBlobCreate.OnConflict
// documentation for more info.
func (u *ProgressBlobUpsertOne) Update(set func(*ProgressBlobUpsert)) *ProgressBlobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProgressBlobUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *ProgressBlobUpsertOne) SetKey(v string) *ProgressBlobUpsertOne {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ProgressBlobUpsertOne) UpdateKey() *ProgressBlobUpsertOne {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *ProgressBlobUpsertOne) SetValue(v []byte) *ProgressBlobUpsertOne {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ProgressBlobUpsertOne) UpdateValue() *ProgressBlobUpsertOne {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProgressBlobUpsertOne) SetUpdatedAt(v time.Time) *ProgressBlobUpsertOne {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProgressBlobUpsertOne) UpdateUpdatedAt() *ProgressBlobUpsertOne {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProgressBlobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProgressBlobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProgressBlobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProgressBlobUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProgressBlobUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProgressBlobCreateBulk is the builder for creating many ProgressBlob entities in bulk.
type ProgressBlobCreateBulk struct {
	config
	err      error
	builders []*ProgressBlobCreate
	conflict []sql.ConflictOption
}

// Save creates the ProgressBlob entities in the database.
func (_c *ProgressBlobCreateBulk) Save(ctx context.Context) ([]*ProgressBlob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressBlob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressBlobMutation)
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
func (_c *ProgressBlobCreateBulk) SaveX(ctx context.Context) []*ProgressBlob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressBlobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressBlobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProgressBlob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProgressBlobUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *ProgressBlobCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProgressBlobUpsertBulk {
	_c.conflict = opts
	return &ProgressBlobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProgressBlob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProgressBlobCreateBulk) OnConflictColumns(columns ...string) *ProgressBlobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProgressBlobUpsertBulk{
		create: _c,
	}
}

// ProgressBlobUpsertBulk is the builder for "upsert"-ing
// a bulk of ProgressBlob nodes.
type ProgressBlobUpsertBulk struct {
	create *ProgressBlobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProgressBlob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProgressBlobUpsertBulk) UpdateNewValues() *ProgressBlobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProgressBlob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProgressBlobUpsertBulk) Ignore() *ProgressBlobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProgressBlobUpsertBulk) DoNothing() *ProgressBlobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProgressBlobCreateBulk.OnConflict
// documentation for more info.
func (u *ProgressBlobUpsertBulk) Update(set func(*ProgressBlobUpsert)) *ProgressBlobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProgressBlobUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *ProgressBlobUpsertBulk) SetKey(v string) *ProgressBlobUpsertBulk {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ProgressBlobUpsertBulk) UpdateKey() *ProgressBlobUpsertBulk {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *ProgressBlobUpsertBulk) SetValue(v []byte) *ProgressBlobUpsertBulk {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ProgressBlobUpsertBulk) UpdateValue() *ProgressBlobUpsertBulk {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProgressBlobUpsertBulk) SetUpdatedAt(v time.Time) *ProgressBlobUpsertBulk {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProgressBlobUpsertBulk) UpdateUpdatedAt() *ProgressBlobUpsertBulk {
	return u.Update(func(s *ProgressBlobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProgressBlobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProgressBlobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProgressBlobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProgressBlobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
