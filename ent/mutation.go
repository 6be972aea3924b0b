// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/evaluatorrequestevent"
	"github.com/abhisek/skillforge/ent/exerciseevaluationevent"
	"github.com/abhisek/skillforge/ent/hintrequestevent"
	"github.com/abhisek/skillforge/ent/predicate"
	"github.com/abhisek/skillforge/ent/progressblob"
	"github.com/abhisek/skillforge/ent/quizsubmissionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvaluatorRequestEvent   = "EvaluatorRequestEvent"
	TypeExerciseEvaluationEvent = "ExerciseEvaluationEvent"
	TypeHintRequestEvent        = "HintRequestEvent"
	TypeProgressBlob            = "ProgressBlob"
	TypeQuizSubmissionEvent     = "QuizSubmissionEvent"
)

// EvaluatorRequestEventMutation represents an operation that mutates the EvaluatorRequestEvent nodes in the graph.
type EvaluatorRequestEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	mode          *string
	operation     *string
	target        *string
	latency_ms    *int64
	addlatency_ms *int64
	success       *bool
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EvaluatorRequestEvent, error)
	predicates    []predicate.EvaluatorRequestEvent
}

var _ ent.Mutation = (*EvaluatorRequestEventMutation)(nil)

// evaluatorrequesteventOption allows management of the mutation configuration using functional options.
type evaluatorrequesteventOption func(*EvaluatorRequestEventMutation)

// newEvaluatorRequestEventMutation creates new mutation for the EvaluatorRequestEvent entity.
func newEvaluatorRequestEventMutation(c config, op Op, opts ...evaluatorrequesteventOption) *EvaluatorRequestEventMutation {
	m := &EvaluatorRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluatorRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluatorRequestEventID sets the ID field of the mutation.
func withEvaluatorRequestEventID(id int) evaluatorrequesteventOption {
	return func(m *EvaluatorRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluatorRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*EvaluatorRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluatorRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluatorRequestEvent sets the old EvaluatorRequestEvent of the mutation.
func withEvaluatorRequestEvent(node *EvaluatorRequestEvent) evaluatorrequesteventOption {
	return func(m *EvaluatorRequestEventMutation) {
		m.oldValue = func(context.Context) (*EvaluatorRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluatorRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluatorRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluatorRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluatorRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluatorRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *EvaluatorRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EvaluatorRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the EvaluatorRequestEvent entity.
// If the EvaluatorRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluatorRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EvaluatorRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EvaluatorRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EvaluatorRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EvaluatorRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EvaluatorRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the EvaluatorRequestEvent entity.
// If the EvaluatorRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluatorRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EvaluatorRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetMode sets the "mode" field.
func (m *EvaluatorRequestEventMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *EvaluatorRequestEventMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the EvaluatorRequestEvent entity.
// If the EvaluatorRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluatorRequestEventMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *EvaluatorRequestEventMutation) ResetMode() {
	m.mode = nil
}

// SetOperation sets the "operation" field.
func (m *EvaluatorRequestEventMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *EvaluatorRequestEventMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the EvaluatorRequestEvent entity.
// If the EvaluatorRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluatorRequestEventMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *EvaluatorRequestEventMutation) ResetOperation() {
	m.operation = nil
}

// SetTarget sets the "target" field.
func (m *EvaluatorRequestEventMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *EvaluatorRequestEventMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the EvaluatorRequestEvent entity.
// If the EvaluatorRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluatorRequestEventMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ResetTarget resets all changes to the "target" field.
func (m *EvaluatorRequestEventMutation) ResetTarget() {
	m.target = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *EvaluatorRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *EvaluatorRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the EvaluatorRequestEvent entity.
// If the EvaluatorRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluatorRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *EvaluatorRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *EvaluatorRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *EvaluatorRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *EvaluatorRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *EvaluatorRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the EvaluatorRequestEvent entity.
// If the EvaluatorRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluatorRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *EvaluatorRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *EvaluatorRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *EvaluatorRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the EvaluatorRequestEvent entity.
// If the EvaluatorRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluatorRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *EvaluatorRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the EvaluatorRequestEventMutation builder.
func (m *EvaluatorRequestEventMutation) Where(ps ...predicate.EvaluatorRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluatorRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluatorRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluatorRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluatorRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluatorRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluatorRequestEvent).
func (m *EvaluatorRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluatorRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, evaluatorrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, evaluatorrequestevent.FieldTimestamp)
	}
	if m.mode != nil {
		fields = append(fields, evaluatorrequestevent.FieldMode)
	}
	if m.operation != nil {
		fields = append(fields, evaluatorrequestevent.FieldOperation)
	}
	if m.target != nil {
		fields = append(fields, evaluatorrequestevent.FieldTarget)
	}
	if m.latency_ms != nil {
		fields = append(fields, evaluatorrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, evaluatorrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, evaluatorrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluatorRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluatorrequestevent.FieldSequence:
		return m.Sequence()
	case evaluatorrequestevent.FieldTimestamp:
		return m.Timestamp()
	case evaluatorrequestevent.FieldMode:
		return m.Mode()
	case evaluatorrequestevent.FieldOperation:
		return m.Operation()
	case evaluatorrequestevent.FieldTarget:
		return m.Target()
	case evaluatorrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case evaluatorrequestevent.FieldSuccess:
		return m.Success()
	case evaluatorrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluatorRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluatorrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case evaluatorrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case evaluatorrequestevent.FieldMode:
		return m.OldMode(ctx)
	case evaluatorrequestevent.FieldOperation:
		return m.OldOperation(ctx)
	case evaluatorrequestevent.FieldTarget:
		return m.OldTarget(ctx)
	case evaluatorrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case evaluatorrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case evaluatorrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluatorRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluatorRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluatorrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case evaluatorrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case evaluatorrequestevent.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case evaluatorrequestevent.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case evaluatorrequestevent.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case evaluatorrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case evaluatorrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case evaluatorrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluatorRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluatorRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, evaluatorrequestevent.FieldSequence)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, evaluatorrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluatorRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluatorrequestevent.FieldSequence:
		return m.AddedSequence()
	case evaluatorrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluatorRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluatorrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case evaluatorrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluatorRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluatorRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluatorRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluatorRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvaluatorRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluatorRequestEventMutation) ResetField(name string) error {
	switch name {
	case evaluatorrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case evaluatorrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case evaluatorrequestevent.FieldMode:
		m.ResetMode()
		return nil
	case evaluatorrequestevent.FieldOperation:
		m.ResetOperation()
		return nil
	case evaluatorrequestevent.FieldTarget:
		m.ResetTarget()
		return nil
	case evaluatorrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case evaluatorrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case evaluatorrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown EvaluatorRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluatorRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluatorRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluatorRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluatorRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluatorRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluatorRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluatorRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvaluatorRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluatorRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvaluatorRequestEvent edge %s", name)
}

// ExerciseEvaluationEventMutation represents an operation that mutates the ExerciseEvaluationEvent nodes in the graph.
type ExerciseEvaluationEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	attempt_id            *string
	exercise_id           *string
	path_id               *string
	score                 *int
	addscore              *int
	passed                *bool
	hints_used            *int
	addhints_used         *int
	solution_chars        *int
	addsolution_chars     *int
	time_spent_seconds    *int
	addtime_spent_seconds *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ExerciseEvaluationEvent, error)
	predicates            []predicate.ExerciseEvaluationEvent
}

var _ ent.Mutation = (*ExerciseEvaluationEventMutation)(nil)

// exerciseevaluationeventOption allows management of the mutation configuration using functional options.
type exerciseevaluationeventOption func(*ExerciseEvaluationEventMutation)

// newExerciseEvaluationEventMutation creates new mutation for the ExerciseEvaluationEvent entity.
func newExerciseEvaluationEventMutation(c config, op Op, opts ...exerciseevaluationeventOption) *ExerciseEvaluationEventMutation {
	m := &ExerciseEvaluationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeExerciseEvaluationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExerciseEvaluationEventID sets the ID field of the mutation.
func withExerciseEvaluationEventID(id int) exerciseevaluationeventOption {
	return func(m *ExerciseEvaluationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ExerciseEvaluationEvent
		)
		m.oldValue = func(ctx context.Context) (*ExerciseEvaluationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExerciseEvaluationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExerciseEvaluationEvent sets the old ExerciseEvaluationEvent of the mutation.
func withExerciseEvaluationEvent(node *ExerciseEvaluationEvent) exerciseevaluationeventOption {
	return func(m *ExerciseEvaluationEventMutation) {
		m.oldValue = func(context.Context) (*ExerciseEvaluationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExerciseEvaluationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExerciseEvaluationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExerciseEvaluationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExerciseEvaluationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExerciseEvaluationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ExerciseEvaluationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ExerciseEvaluationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ExerciseEvaluationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ExerciseEvaluationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ExerciseEvaluationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ExerciseEvaluationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ExerciseEvaluationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ExerciseEvaluationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *ExerciseEvaluationEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *ExerciseEvaluationEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *ExerciseEvaluationEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetExerciseID sets the "exercise_id" field.
func (m *ExerciseEvaluationEventMutation) SetExerciseID(s string) {
	m.exercise_id = &s
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *ExerciseEvaluationEventMutation) ExerciseID() (r string, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldExerciseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *ExerciseEvaluationEventMutation) ResetExerciseID() {
	m.exercise_id = nil
}

// SetPathID sets the "path_id" field.
func (m *ExerciseEvaluationEventMutation) SetPathID(s string) {
	m.path_id = &s
}

// PathID returns the value of the "path_id" field in the mutation.
func (m *ExerciseEvaluationEventMutation) PathID() (r string, exists bool) {
	v := m.path_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPathID returns the old "path_id" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldPathID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPathID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPathID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPathID: %w", err)
	}
	return oldValue.PathID, nil
}

// ResetPathID resets all changes to the "path_id" field.
func (m *ExerciseEvaluationEventMutation) ResetPathID() {
	m.path_id = nil
}

// SetScore sets the "score" field.
func (m *ExerciseEvaluationEventMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ExerciseEvaluationEventMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ExerciseEvaluationEventMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ExerciseEvaluationEventMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ExerciseEvaluationEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetPassed sets the "passed" field.
func (m *ExerciseEvaluationEventMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *ExerciseEvaluationEventMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *ExerciseEvaluationEventMutation) ResetPassed() {
	m.passed = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *ExerciseEvaluationEventMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *ExerciseEvaluationEventMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *ExerciseEvaluationEventMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *ExerciseEvaluationEventMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *ExerciseEvaluationEventMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetSolutionChars sets the "solution_chars" field.
func (m *ExerciseEvaluationEventMutation) SetSolutionChars(i int) {
	m.solution_chars = &i
	m.addsolution_chars = nil
}

// SolutionChars returns the value of the "solution_chars" field in the mutation.
func (m *ExerciseEvaluationEventMutation) SolutionChars() (r int, exists bool) {
	v := m.solution_chars
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionChars returns the old "solution_chars" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldSolutionChars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionChars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionChars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionChars: %w", err)
	}
	return oldValue.SolutionChars, nil
}

// AddSolutionChars adds i to the "solution_chars" field.
func (m *ExerciseEvaluationEventMutation) AddSolutionChars(i int) {
	if m.addsolution_chars != nil {
		*m.addsolution_chars += i
	} else {
		m.addsolution_chars = &i
	}
}

// AddedSolutionChars returns the value that was added to the "solution_chars" field in this mutation.
func (m *ExerciseEvaluationEventMutation) AddedSolutionChars() (r int, exists bool) {
	v := m.addsolution_chars
	if v == nil {
		return
	}
	return *v, true
}

// ResetSolutionChars resets all changes to the "solution_chars" field.
func (m *ExerciseEvaluationEventMutation) ResetSolutionChars() {
	m.solution_chars = nil
	m.addsolution_chars = nil
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (m *ExerciseEvaluationEventMutation) SetTimeSpentSeconds(i int) {
	m.time_spent_seconds = &i
	m.addtime_spent_seconds = nil
}

// TimeSpentSeconds returns the value of the "time_spent_seconds" field in the mutation.
func (m *ExerciseEvaluationEventMutation) TimeSpentSeconds() (r int, exists bool) {
	v := m.time_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSeconds returns the old "time_spent_seconds" field's value of the ExerciseEvaluationEvent entity.
// If the ExerciseEvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEvaluationEventMutation) OldTimeSpentSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSeconds: %w", err)
	}
	return oldValue.TimeSpentSeconds, nil
}

// AddTimeSpentSeconds adds i to the "time_spent_seconds" field.
func (m *ExerciseEvaluationEventMutation) AddTimeSpentSeconds(i int) {
	if m.addtime_spent_seconds != nil {
		*m.addtime_spent_seconds += i
	} else {
		m.addtime_spent_seconds = &i
	}
}

// AddedTimeSpentSeconds returns the value that was added to the "time_spent_seconds" field in this mutation.
func (m *ExerciseEvaluationEventMutation) AddedTimeSpentSeconds() (r int, exists bool) {
	v := m.addtime_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSeconds resets all changes to the "time_spent_seconds" field.
func (m *ExerciseEvaluationEventMutation) ResetTimeSpentSeconds() {
	m.time_spent_seconds = nil
	m.addtime_spent_seconds = nil
}

// Where appends a list predicates to the ExerciseEvaluationEventMutation builder.
func (m *ExerciseEvaluationEventMutation) Where(ps ...predicate.ExerciseEvaluationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExerciseEvaluationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExerciseEvaluationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExerciseEvaluationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExerciseEvaluationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExerciseEvaluationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExerciseEvaluationEvent).
func (m *ExerciseEvaluationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExerciseEvaluationEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, exerciseevaluationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, exerciseevaluationevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, exerciseevaluationevent.FieldAttemptID)
	}
	if m.exercise_id != nil {
		fields = append(fields, exerciseevaluationevent.FieldExerciseID)
	}
	if m.path_id != nil {
		fields = append(fields, exerciseevaluationevent.FieldPathID)
	}
	if m.score != nil {
		fields = append(fields, exerciseevaluationevent.FieldScore)
	}
	if m.passed != nil {
		fields = append(fields, exerciseevaluationevent.FieldPassed)
	}
	if m.hints_used != nil {
		fields = append(fields, exerciseevaluationevent.FieldHintsUsed)
	}
	if m.solution_chars != nil {
		fields = append(fields, exerciseevaluationevent.FieldSolutionChars)
	}
	if m.time_spent_seconds != nil {
		fields = append(fields, exerciseevaluationevent.FieldTimeSpentSeconds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExerciseEvaluationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exerciseevaluationevent.FieldSequence:
		return m.Sequence()
	case exerciseevaluationevent.FieldTimestamp:
		return m.Timestamp()
	case exerciseevaluationevent.FieldAttemptID:
		return m.AttemptID()
	case exerciseevaluationevent.FieldExerciseID:
		return m.ExerciseID()
	case exerciseevaluationevent.FieldPathID:
		return m.PathID()
	case exerciseevaluationevent.FieldScore:
		return m.Score()
	case exerciseevaluationevent.FieldPassed:
		return m.Passed()
	case exerciseevaluationevent.FieldHintsUsed:
		return m.HintsUsed()
	case exerciseevaluationevent.FieldSolutionChars:
		return m.SolutionChars()
	case exerciseevaluationevent.FieldTimeSpentSeconds:
		return m.TimeSpentSeconds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExerciseEvaluationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exerciseevaluationevent.FieldSequence:
		return m.OldSequence(ctx)
	case exerciseevaluationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case exerciseevaluationevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case exerciseevaluationevent.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case exerciseevaluationevent.FieldPathID:
		return m.OldPathID(ctx)
	case exerciseevaluationevent.FieldScore:
		return m.OldScore(ctx)
	case exerciseevaluationevent.FieldPassed:
		return m.OldPassed(ctx)
	case exerciseevaluationevent.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case exerciseevaluationevent.FieldSolutionChars:
		return m.OldSolutionChars(ctx)
	case exerciseevaluationevent.FieldTimeSpentSeconds:
		return m.OldTimeSpentSeconds(ctx)
	}
	return nil, fmt.Errorf("unknown ExerciseEvaluationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseEvaluationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exerciseevaluationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case exerciseevaluationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case exerciseevaluationevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case exerciseevaluationevent.FieldExerciseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case exerciseevaluationevent.FieldPathID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPathID(v)
		return nil
	case exerciseevaluationevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case exerciseevaluationevent.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case exerciseevaluationevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case exerciseevaluationevent.FieldSolutionChars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionChars(v)
		return nil
	case exerciseevaluationevent.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseEvaluationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExerciseEvaluationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, exerciseevaluationevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, exerciseevaluationevent.FieldScore)
	}
	if m.addhints_used != nil {
		fields = append(fields, exerciseevaluationevent.FieldHintsUsed)
	}
	if m.addsolution_chars != nil {
		fields = append(fields, exerciseevaluationevent.FieldSolutionChars)
	}
	if m.addtime_spent_seconds != nil {
		fields = append(fields, exerciseevaluationevent.FieldTimeSpentSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExerciseEvaluationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exerciseevaluationevent.FieldSequence:
		return m.AddedSequence()
	case exerciseevaluationevent.FieldScore:
		return m.AddedScore()
	case exerciseevaluationevent.FieldHintsUsed:
		return m.AddedHintsUsed()
	case exerciseevaluationevent.FieldSolutionChars:
		return m.AddedSolutionChars()
	case exerciseevaluationevent.FieldTimeSpentSeconds:
		return m.AddedTimeSpentSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseEvaluationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exerciseevaluationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case exerciseevaluationevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case exerciseevaluationevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	case exerciseevaluationevent.FieldSolutionChars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSolutionChars(v)
		return nil
	case exerciseevaluationevent.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseEvaluationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExerciseEvaluationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExerciseEvaluationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExerciseEvaluationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExerciseEvaluationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExerciseEvaluationEventMutation) ResetField(name string) error {
	switch name {
	case exerciseevaluationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case exerciseevaluationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case exerciseevaluationevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case exerciseevaluationevent.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case exerciseevaluationevent.FieldPathID:
		m.ResetPathID()
		return nil
	case exerciseevaluationevent.FieldScore:
		m.ResetScore()
		return nil
	case exerciseevaluationevent.FieldPassed:
		m.ResetPassed()
		return nil
	case exerciseevaluationevent.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case exerciseevaluationevent.FieldSolutionChars:
		m.ResetSolutionChars()
		return nil
	case exerciseevaluationevent.FieldTimeSpentSeconds:
		m.ResetTimeSpentSeconds()
		return nil
	}
	return fmt.Errorf("unknown ExerciseEvaluationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExerciseEvaluationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExerciseEvaluationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExerciseEvaluationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExerciseEvaluationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExerciseEvaluationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExerciseEvaluationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExerciseEvaluationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExerciseEvaluationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExerciseEvaluationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExerciseEvaluationEvent edge %s", name)
}

// HintRequestEventMutation represents an operation that mutates the HintRequestEvent nodes in the graph.
type HintRequestEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	attempt_id    *string
	exercise_id   *string
	level         *int
	addlevel      *int
	hint_text     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*HintRequestEvent, error)
	predicates    []predicate.HintRequestEvent
}

var _ ent.Mutation = (*HintRequestEventMutation)(nil)

// hintrequesteventOption allows management of the mutation configuration using functional options.
type hintrequesteventOption func(*HintRequestEventMutation)

// newHintRequestEventMutation creates new mutation for the HintRequestEvent entity.
func newHintRequestEventMutation(c config, op Op, opts ...hintrequesteventOption) *HintRequestEventMutation {
	m := &HintRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeHintRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHintRequestEventID sets the ID field of the mutation.
func withHintRequestEventID(id int) hintrequesteventOption {
	return func(m *HintRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *HintRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*HintRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HintRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHintRequestEvent sets the old HintRequestEvent of the mutation.
func withHintRequestEvent(node *HintRequestEvent) hintrequesteventOption {
	return func(m *HintRequestEventMutation) {
		m.oldValue = func(context.Context) (*HintRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HintRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HintRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HintRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HintRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HintRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *HintRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *HintRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the HintRequestEvent entity.
// If the HintRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *HintRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *HintRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *HintRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *HintRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *HintRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the HintRequestEvent entity.
// If the HintRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *HintRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *HintRequestEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *HintRequestEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the HintRequestEvent entity.
// If the HintRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRequestEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *HintRequestEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetExerciseID sets the "exercise_id" field.
func (m *HintRequestEventMutation) SetExerciseID(s string) {
	m.exercise_id = &s
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *HintRequestEventMutation) ExerciseID() (r string, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the HintRequestEvent entity.
// If the HintRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRequestEventMutation) OldExerciseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *HintRequestEventMutation) ResetExerciseID() {
	m.exercise_id = nil
}

// SetLevel sets the "level" field.
func (m *HintRequestEventMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *HintRequestEventMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the HintRequestEvent entity.
// If the HintRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRequestEventMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *HintRequestEventMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *HintRequestEventMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *HintRequestEventMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetHintText sets the "hint_text" field.
func (m *HintRequestEventMutation) SetHintText(s string) {
	m.hint_text = &s
}

// HintText returns the value of the "hint_text" field in the mutation.
func (m *HintRequestEventMutation) HintText() (r string, exists bool) {
	v := m.hint_text
	if v == nil {
		return
	}
	return *v, true
}

// OldHintText returns the old "hint_text" field's value of the HintRequestEvent entity.
// If the HintRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRequestEventMutation) OldHintText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintText: %w", err)
	}
	return oldValue.HintText, nil
}

// ResetHintText resets all changes to the "hint_text" field.
func (m *HintRequestEventMutation) ResetHintText() {
	m.hint_text = nil
}

// Where appends a list predicates to the HintRequestEventMutation builder.
func (m *HintRequestEventMutation) Where(ps ...predicate.HintRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HintRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HintRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HintRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HintRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HintRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HintRequestEvent).
func (m *HintRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HintRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, hintrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, hintrequestevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, hintrequestevent.FieldAttemptID)
	}
	if m.exercise_id != nil {
		fields = append(fields, hintrequestevent.FieldExerciseID)
	}
	if m.level != nil {
		fields = append(fields, hintrequestevent.FieldLevel)
	}
	if m.hint_text != nil {
		fields = append(fields, hintrequestevent.FieldHintText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HintRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hintrequestevent.FieldSequence:
		return m.Sequence()
	case hintrequestevent.FieldTimestamp:
		return m.Timestamp()
	case hintrequestevent.FieldAttemptID:
		return m.AttemptID()
	case hintrequestevent.FieldExerciseID:
		return m.ExerciseID()
	case hintrequestevent.FieldLevel:
		return m.Level()
	case hintrequestevent.FieldHintText:
		return m.HintText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HintRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hintrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case hintrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case hintrequestevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case hintrequestevent.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case hintrequestevent.FieldLevel:
		return m.OldLevel(ctx)
	case hintrequestevent.FieldHintText:
		return m.OldHintText(ctx)
	}
	return nil, fmt.Errorf("unknown HintRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HintRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hintrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case hintrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case hintrequestevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case hintrequestevent.FieldExerciseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case hintrequestevent.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case hintrequestevent.FieldHintText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintText(v)
		return nil
	}
	return fmt.Errorf("unknown HintRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HintRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, hintrequestevent.FieldSequence)
	}
	if m.addlevel != nil {
		fields = append(fields, hintrequestevent.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HintRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hintrequestevent.FieldSequence:
		return m.AddedSequence()
	case hintrequestevent.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HintRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hintrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case hintrequestevent.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown HintRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HintRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HintRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HintRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HintRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HintRequestEventMutation) ResetField(name string) error {
	switch name {
	case hintrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case hintrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case hintrequestevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case hintrequestevent.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case hintrequestevent.FieldLevel:
		m.ResetLevel()
		return nil
	case hintrequestevent.FieldHintText:
		m.ResetHintText()
		return nil
	}
	return fmt.Errorf("unknown HintRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HintRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HintRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HintRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HintRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HintRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HintRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HintRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HintRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HintRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HintRequestEvent edge %s", name)
}

// ProgressBlobMutation represents an operation that mutates the ProgressBlob nodes in the graph.
type ProgressBlobMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *[]byte
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProgressBlob, error)
	predicates    []predicate.ProgressBlob
}

var _ ent.Mutation = (*ProgressBlobMutation)(nil)

// progressblobOption allows management of the mutation configuration using functional options.
type progressblobOption func(*ProgressBlobMutation)

// newProgressBlobMutation creates new mutation for the ProgressBlob entity.
func newProgressBlobMutation(c config, op Op, opts ...progressblobOption) *ProgressBlobMutation {
	m := &ProgressBlobMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressBlob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressBlobID sets the ID field of the mutation.
func withProgressBlobID(id int) progressblobOption {
	return func(m *ProgressBlobMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressBlob
		)
		m.oldValue = func(ctx context.Context) (*ProgressBlob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressBlob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressBlob sets the old ProgressBlob of the mutation.
func withProgressBlob(node *ProgressBlob) progressblobOption {
	return func(m *ProgressBlobMutation) {
		m.oldValue = func(context.Context) (*ProgressBlob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressBlobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressBlobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressBlobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressBlobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressBlob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *ProgressBlobMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ProgressBlobMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the ProgressBlob entity.
// If the ProgressBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressBlobMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ProgressBlobMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *ProgressBlobMutation) SetValue(b []byte) {
	m.value = &b
}

// Value returns the value of the "value" field in the mutation.
func (m *ProgressBlobMutation) Value() (r []byte, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ProgressBlob entity.
// If the ProgressBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressBlobMutation) OldValue(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *ProgressBlobMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProgressBlobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProgressBlobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProgressBlob entity.
// If the ProgressBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressBlobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProgressBlobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProgressBlobMutation builder.
func (m *ProgressBlobMutation) Where(ps ...predicate.ProgressBlob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressBlobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressBlobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressBlob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressBlobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressBlobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressBlob).
func (m *ProgressBlobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressBlobMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, progressblob.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, progressblob.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, progressblob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressBlobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressblob.FieldKey:
		return m.Key()
	case progressblob.FieldValue:
		return m.Value()
	case progressblob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressBlobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressblob.FieldKey:
		return m.OldKey(ctx)
	case progressblob.FieldValue:
		return m.OldValue(ctx)
	case progressblob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressBlob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressBlobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressblob.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case progressblob.FieldValue:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case progressblob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressBlob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressBlobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressBlobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressBlobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProgressBlob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressBlobMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressBlobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressBlobMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProgressBlob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressBlobMutation) ResetField(name string) error {
	switch name {
	case progressblob.FieldKey:
		m.ResetKey()
		return nil
	case progressblob.FieldValue:
		m.ResetValue()
		return nil
	case progressblob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressBlob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressBlobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressBlobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressBlobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressBlobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressBlobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressBlobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressBlobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressBlob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressBlobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressBlob edge %s", name)
}

// QuizSubmissionEventMutation represents an operation that mutates the QuizSubmissionEvent nodes in the graph.
type QuizSubmissionEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	session_id            *string
	quiz_id               *string
	path_id               *string
	score                 *int
	addscore              *int
	passed                *bool
	correct_count         *int
	addcorrect_count      *int
	total_questions       *int
	addtotal_questions    *int
	points_earned         *int
	addpoints_earned      *int
	time_spent_seconds    *int
	addtime_spent_seconds *int
	auto_submitted        *bool
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*QuizSubmissionEvent, error)
	predicates            []predicate.QuizSubmissionEvent
}

var _ ent.Mutation = (*QuizSubmissionEventMutation)(nil)

// quizsubmissioneventOption allows management of the mutation configuration using functional options.
type quizsubmissioneventOption func(*QuizSubmissionEventMutation)

// newQuizSubmissionEventMutation creates new mutation for the QuizSubmissionEvent entity.
func newQuizSubmissionEventMutation(c config, op Op, opts ...quizsubmissioneventOption) *QuizSubmissionEventMutation {
	m := &QuizSubmissionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizSubmissionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizSubmissionEventID sets the ID field of the mutation.
func withQuizSubmissionEventID(id int) quizsubmissioneventOption {
	return func(m *QuizSubmissionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizSubmissionEvent
		)
		m.oldValue = func(ctx context.Context) (*QuizSubmissionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizSubmissionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizSubmissionEvent sets the old QuizSubmissionEvent of the mutation.
func withQuizSubmissionEvent(node *QuizSubmissionEvent) quizsubmissioneventOption {
	return func(m *QuizSubmissionEventMutation) {
		m.oldValue = func(context.Context) (*QuizSubmissionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizSubmissionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizSubmissionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizSubmissionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizSubmissionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizSubmissionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizSubmissionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizSubmissionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuizSubmissionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizSubmissionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizSubmissionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizSubmissionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizSubmissionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuizSubmissionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuizSubmissionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuizSubmissionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuizSubmissionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuizID sets the "quiz_id" field.
func (m *QuizSubmissionEventMutation) SetQuizID(s string) {
	m.quiz_id = &s
}

// QuizID returns the value of the "quiz_id" field in the mutation.
func (m *QuizSubmissionEventMutation) QuizID() (r string, exists bool) {
	v := m.quiz_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizID returns the old "quiz_id" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldQuizID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizID: %w", err)
	}
	return oldValue.QuizID, nil
}

// ResetQuizID resets all changes to the "quiz_id" field.
func (m *QuizSubmissionEventMutation) ResetQuizID() {
	m.quiz_id = nil
}

// SetPathID sets the "path_id" field.
func (m *QuizSubmissionEventMutation) SetPathID(s string) {
	m.path_id = &s
}

// PathID returns the value of the "path_id" field in the mutation.
func (m *QuizSubmissionEventMutation) PathID() (r string, exists bool) {
	v := m.path_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPathID returns the old "path_id" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldPathID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPathID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPathID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPathID: %w", err)
	}
	return oldValue.PathID, nil
}

// ResetPathID resets all changes to the "path_id" field.
func (m *QuizSubmissionEventMutation) ResetPathID() {
	m.path_id = nil
}

// SetScore sets the "score" field.
func (m *QuizSubmissionEventMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizSubmissionEventMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *QuizSubmissionEventMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizSubmissionEventMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizSubmissionEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetPassed sets the "passed" field.
func (m *QuizSubmissionEventMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *QuizSubmissionEventMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *QuizSubmissionEventMutation) ResetPassed() {
	m.passed = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *QuizSubmissionEventMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *QuizSubmissionEventMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *QuizSubmissionEventMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *QuizSubmissionEventMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *QuizSubmissionEventMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *QuizSubmissionEventMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *QuizSubmissionEventMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *QuizSubmissionEventMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *QuizSubmissionEventMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *QuizSubmissionEventMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetPointsEarned sets the "points_earned" field.
func (m *QuizSubmissionEventMutation) SetPointsEarned(i int) {
	m.points_earned = &i
	m.addpoints_earned = nil
}

// PointsEarned returns the value of the "points_earned" field in the mutation.
func (m *QuizSubmissionEventMutation) PointsEarned() (r int, exists bool) {
	v := m.points_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldPointsEarned returns the old "points_earned" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldPointsEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointsEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointsEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointsEarned: %w", err)
	}
	return oldValue.PointsEarned, nil
}

// AddPointsEarned adds i to the "points_earned" field.
func (m *QuizSubmissionEventMutation) AddPointsEarned(i int) {
	if m.addpoints_earned != nil {
		*m.addpoints_earned += i
	} else {
		m.addpoints_earned = &i
	}
}

// AddedPointsEarned returns the value that was added to the "points_earned" field in this mutation.
func (m *QuizSubmissionEventMutation) AddedPointsEarned() (r int, exists bool) {
	v := m.addpoints_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetPointsEarned resets all changes to the "points_earned" field.
func (m *QuizSubmissionEventMutation) ResetPointsEarned() {
	m.points_earned = nil
	m.addpoints_earned = nil
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (m *QuizSubmissionEventMutation) SetTimeSpentSeconds(i int) {
	m.time_spent_seconds = &i
	m.addtime_spent_seconds = nil
}

// TimeSpentSeconds returns the value of the "time_spent_seconds" field in the mutation.
func (m *QuizSubmissionEventMutation) TimeSpentSeconds() (r int, exists bool) {
	v := m.time_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSeconds returns the old "time_spent_seconds" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldTimeSpentSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSeconds: %w", err)
	}
	return oldValue.TimeSpentSeconds, nil
}

// AddTimeSpentSeconds adds i to the "time_spent_seconds" field.
func (m *QuizSubmissionEventMutation) AddTimeSpentSeconds(i int) {
	if m.addtime_spent_seconds != nil {
		*m.addtime_spent_seconds += i
	} else {
		m.addtime_spent_seconds = &i
	}
}

// AddedTimeSpentSeconds returns the value that was added to the "time_spent_seconds" field in this mutation.
func (m *QuizSubmissionEventMutation) AddedTimeSpentSeconds() (r int, exists bool) {
	v := m.addtime_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSeconds resets all changes to the "time_spent_seconds" field.
func (m *QuizSubmissionEventMutation) ResetTimeSpentSeconds() {
	m.time_spent_seconds = nil
	m.addtime_spent_seconds = nil
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (m *QuizSubmissionEventMutation) SetAutoSubmitted(b bool) {
	m.auto_submitted = &b
}

// AutoSubmitted returns the value of the "auto_submitted" field in the mutation.
func (m *QuizSubmissionEventMutation) AutoSubmitted() (r bool, exists bool) {
	v := m.auto_submitted
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoSubmitted returns the old "auto_submitted" field's value of the QuizSubmissionEvent entity.
// If the QuizSubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionEventMutation) OldAutoSubmitted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoSubmitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoSubmitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoSubmitted: %w", err)
	}
	return oldValue.AutoSubmitted, nil
}

// ResetAutoSubmitted resets all changes to the "auto_submitted" field.
func (m *QuizSubmissionEventMutation) ResetAutoSubmitted() {
	m.auto_submitted = nil
}

// Where appends a list predicates to the QuizSubmissionEventMutation builder.
func (m *QuizSubmissionEventMutation) Where(ps ...predicate.QuizSubmissionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizSubmissionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizSubmissionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizSubmissionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizSubmissionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizSubmissionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizSubmissionEvent).
func (m *QuizSubmissionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizSubmissionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, quizsubmissionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizsubmissionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, quizsubmissionevent.FieldSessionID)
	}
	if m.quiz_id != nil {
		fields = append(fields, quizsubmissionevent.FieldQuizID)
	}
	if m.path_id != nil {
		fields = append(fields, quizsubmissionevent.FieldPathID)
	}
	if m.score != nil {
		fields = append(fields, quizsubmissionevent.FieldScore)
	}
	if m.passed != nil {
		fields = append(fields, quizsubmissionevent.FieldPassed)
	}
	if m.correct_count != nil {
		fields = append(fields, quizsubmissionevent.FieldCorrectCount)
	}
	if m.total_questions != nil {
		fields = append(fields, quizsubmissionevent.FieldTotalQuestions)
	}
	if m.points_earned != nil {
		fields = append(fields, quizsubmissionevent.FieldPointsEarned)
	}
	if m.time_spent_seconds != nil {
		fields = append(fields, quizsubmissionevent.FieldTimeSpentSeconds)
	}
	if m.auto_submitted != nil {
		fields = append(fields, quizsubmissionevent.FieldAutoSubmitted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizSubmissionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizsubmissionevent.FieldSequence:
		return m.Sequence()
	case quizsubmissionevent.FieldTimestamp:
		return m.Timestamp()
	case quizsubmissionevent.FieldSessionID:
		return m.SessionID()
	case quizsubmissionevent.FieldQuizID:
		return m.QuizID()
	case quizsubmissionevent.FieldPathID:
		return m.PathID()
	case quizsubmissionevent.FieldScore:
		return m.Score()
	case quizsubmissionevent.FieldPassed:
		return m.Passed()
	case quizsubmissionevent.FieldCorrectCount:
		return m.CorrectCount()
	case quizsubmissionevent.FieldTotalQuestions:
		return m.TotalQuestions()
	case quizsubmissionevent.FieldPointsEarned:
		return m.PointsEarned()
	case quizsubmissionevent.FieldTimeSpentSeconds:
		return m.TimeSpentSeconds()
	case quizsubmissionevent.FieldAutoSubmitted:
		return m.AutoSubmitted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizSubmissionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizsubmissionevent.FieldSequence:
		return m.OldSequence(ctx)
	case quizsubmissionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizsubmissionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case quizsubmissionevent.FieldQuizID:
		return m.OldQuizID(ctx)
	case quizsubmissionevent.FieldPathID:
		return m.OldPathID(ctx)
	case quizsubmissionevent.FieldScore:
		return m.OldScore(ctx)
	case quizsubmissionevent.FieldPassed:
		return m.OldPassed(ctx)
	case quizsubmissionevent.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case quizsubmissionevent.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case quizsubmissionevent.FieldPointsEarned:
		return m.OldPointsEarned(ctx)
	case quizsubmissionevent.FieldTimeSpentSeconds:
		return m.OldTimeSpentSeconds(ctx)
	case quizsubmissionevent.FieldAutoSubmitted:
		return m.OldAutoSubmitted(ctx)
	}
	return nil, fmt.Errorf("unknown QuizSubmissionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizSubmissionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizsubmissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizsubmissionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizsubmissionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case quizsubmissionevent.FieldQuizID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizID(v)
		return nil
	case quizsubmissionevent.FieldPathID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPathID(v)
		return nil
	case quizsubmissionevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizsubmissionevent.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case quizsubmissionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case quizsubmissionevent.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case quizsubmissionevent.FieldPointsEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointsEarned(v)
		return nil
	case quizsubmissionevent.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSeconds(v)
		return nil
	case quizsubmissionevent.FieldAutoSubmitted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoSubmitted(v)
		return nil
	}
	return fmt.Errorf("unknown QuizSubmissionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizSubmissionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizsubmissionevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, quizsubmissionevent.FieldScore)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, quizsubmissionevent.FieldCorrectCount)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, quizsubmissionevent.FieldTotalQuestions)
	}
	if m.addpoints_earned != nil {
		fields = append(fields, quizsubmissionevent.FieldPointsEarned)
	}
	if m.addtime_spent_seconds != nil {
		fields = append(fields, quizsubmissionevent.FieldTimeSpentSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizSubmissionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizsubmissionevent.FieldSequence:
		return m.AddedSequence()
	case quizsubmissionevent.FieldScore:
		return m.AddedScore()
	case quizsubmissionevent.FieldCorrectCount:
		return m.AddedCorrectCount()
	case quizsubmissionevent.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case quizsubmissionevent.FieldPointsEarned:
		return m.AddedPointsEarned()
	case quizsubmissionevent.FieldTimeSpentSeconds:
		return m.AddedTimeSpentSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizSubmissionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizsubmissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case quizsubmissionevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case quizsubmissionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case quizsubmissionevent.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case quizsubmissionevent.FieldPointsEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPointsEarned(v)
		return nil
	case quizsubmissionevent.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown QuizSubmissionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizSubmissionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizSubmissionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizSubmissionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizSubmissionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizSubmissionEventMutation) ResetField(name string) error {
	switch name {
	case quizsubmissionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case quizsubmissionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizsubmissionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case quizsubmissionevent.FieldQuizID:
		m.ResetQuizID()
		return nil
	case quizsubmissionevent.FieldPathID:
		m.ResetPathID()
		return nil
	case quizsubmissionevent.FieldScore:
		m.ResetScore()
		return nil
	case quizsubmissionevent.FieldPassed:
		m.ResetPassed()
		return nil
	case quizsubmissionevent.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case quizsubmissionevent.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case quizsubmissionevent.FieldPointsEarned:
		m.ResetPointsEarned()
		return nil
	case quizsubmissionevent.FieldTimeSpentSeconds:
		m.ResetTimeSpentSeconds()
		return nil
	case quizsubmissionevent.FieldAutoSubmitted:
		m.ResetAutoSubmitted()
		return nil
	}
	return fmt.Errorf("unknown QuizSubmissionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizSubmissionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizSubmissionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizSubmissionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizSubmissionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizSubmissionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizSubmissionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizSubmissionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizSubmissionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizSubmissionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizSubmissionEvent edge %s", name)
}
