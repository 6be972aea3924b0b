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
	"github.com/abhisek/skillforge/ent/quizsubmissionevent"
)

// QuizSubmissionEventCreate is the builder for creating a QuizSubmissionEvent entity.
type QuizSubmissionEventCreate struct {
	config
	mutation *QuizSubmissionEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *QuizSubmissionEventCreate) SetSequence(v int64) *QuizSubmissionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizSubmissionEventCreate) SetTimestamp(v time.Time) *QuizSubmissionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizSubmissionEventCreate) SetNillableTimestamp(v *time.Time) *QuizSubmissionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuizSubmissionEventCreate) SetSessionID(v string) *QuizSubmissionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizSubmissionEventCreate) SetQuizID(v string) *QuizSubmissionEventCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetPathID sets the "path_id" field.
func (_c *QuizSubmissionEventCreate) SetPathID(v string) *QuizSubmissionEventCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_c *QuizSubmissionEventCreate) SetNillablePathID(v *string) *QuizSubmissionEventCreate {
	if v != nil {
		_c.SetPathID(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizSubmissionEventCreate) SetScore(v int) *QuizSubmissionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *QuizSubmissionEventCreate) SetPassed(v bool) *QuizSubmissionEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *QuizSubmissionEventCreate) SetCorrectCount(v int) *QuizSubmissionEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *QuizSubmissionEventCreate) SetNillableCorrectCount(v *int) *QuizSubmissionEventCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *QuizSubmissionEventCreate) SetTotalQuestions(v int) *QuizSubmissionEventCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *QuizSubmissionEventCreate) SetNillableTotalQuestions(v *int) *QuizSubmissionEventCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetPointsEarned sets the "points_earned" field.
func (_c *QuizSubmissionEventCreate) SetPointsEarned(v int) *QuizSubmissionEventCreate {
	_c.mutation.SetPointsEarned(v)
	return _c
}

// SetNillablePointsEarned sets the "points_earned" field if the given value is not nil.
func (_c *QuizSubmissionEventCreate) SetNillablePointsEarned(v *int) *QuizSubmissionEventCreate {
	if v != nil {
		_c.SetPointsEarned(*v)
	}
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *QuizSubmissionEventCreate) SetTimeSpentSeconds(v int) *QuizSubmissionEventCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *QuizSubmissionEventCreate) SetNillableTimeSpentSeconds(v *int) *QuizSubmissionEventCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_c *QuizSubmissionEventCreate) SetAutoSubmitted(v bool) *QuizSubmissionEventCreate {
	_c.mutation.SetAutoSubmitted(v)
	return _c
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_c *QuizSubmissionEventCreate) SetNillableAutoSubmitted(v *bool) *QuizSubmissionEventCreate {
	if v != nil {
		_c.SetAutoSubmitted(*v)
	}
	return _c
}

// Mutation returns the QuizSubmissionEventMutation object of the builder.
func (_c *QuizSubmissionEventCreate) Mutation() *QuizSubmissionEventMutation {
	return _c.mutation
}

// Save creates the QuizSubmissionEvent in the database.
func (_c *QuizSubmissionEventCreate) Save(ctx context.Context) (*QuizSubmissionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSubmissionEventCreate) SaveX(ctx context.Context) *QuizSubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSubmissionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSubmissionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSubmissionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizsubmissionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PathID(); !ok {
		v := quizsubmissionevent.DefaultPathID
		_c.mutation.SetPathID(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := quizsubmissionevent.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := quizsubmissionevent.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.PointsEarned(); !ok {
		v := quizsubmissionevent.DefaultPointsEarned
		_c.mutation.SetPointsEarned(v)
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := quizsubmissionevent.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
	if _, ok := _c.mutation.AutoSubmitted(); !ok {
		v := quizsubmissionevent.DefaultAutoSubmitted
		_c.mutation.SetAutoSubmitted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSubmissionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizSubmissionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizSubmissionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizSubmissionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizsubmissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSubmissionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "QuizSubmissionEvent.quiz_id"`)}
	}
	if v, ok := _c.mutation.QuizID(); ok {
		if err := quizsubmissionevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizSubmissionEvent.quiz_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "QuizSubmissionEvent.path_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizSubmissionEvent.score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizSubmissionEvent.passed"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "QuizSubmissionEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizSubmissionEvent.total_questions"`)}
	}
	if _, ok := _c.mutation.PointsEarned(); !ok {
		return &ValidationError{Name: "points_earned", err: errors.New(`ent: missing required field "QuizSubmissionEvent.points_earned"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "QuizSubmissionEvent.time_spent_seconds"`)}
	}
	if _, ok := _c.mutation.AutoSubmitted(); !ok {
		return &ValidationError{Name: "auto_submitted", err: errors.New(`ent: missing required field "QuizSubmissionEvent.auto_submitted"`)}
	}
	return nil
}

func (_c *QuizSubmissionEventCreate) sqlSave(ctx context.Context) (*QuizSubmissionEvent, error) {
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

func (_c *QuizSubmissionEventCreate) createSpec() (*QuizSubmissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSubmissionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsubmissionevent.Table, sqlgraph.NewFieldSpec(quizsubmissionevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizsubmissionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizsubmissionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizsubmissionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(quizsubmissionevent.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(quizsubmissionevent.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizsubmissionevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(quizsubmissionevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(quizsubmissionevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(quizsubmissionevent.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.PointsEarned(); ok {
		_spec.SetField(quizsubmissionevent.FieldPointsEarned, field.TypeInt, value)
		_node.PointsEarned = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(quizsubmissionevent.FieldTimeSpentSeconds, field.TypeInt, value)
		_node.TimeSpentSeconds = value
	}
	if value, ok := _c.mutation.AutoSubmitted(); ok {
		_spec.SetField(quizsubmissionevent.FieldAutoSubmitted, field.TypeBool, value)
		_node.AutoSubmitted = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizSubmissionEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizSubmissionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizSubmissionEventCreate) OnConflict(opts ...sql.ConflictOption) *QuizSubmissionEventUpsertOne {
	_c.conflict = opts
	return &QuizSubmissionEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizSubmissionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizSubmissionEventCreate) OnConflictColumns(columns ...string) *QuizSubmissionEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizSubmissionEventUpsertOne{
		create: _c,
	}
}

type (
	// QuizSubmissionEventUpsertOne is the builder for "upsert"-ing
	//  one QuizSubmissionEvent node.
	QuizSubmissionEventUpsertOne struct {
		create *QuizSubmissionEventCreate
	}

	// QuizSubmissionEventUpsert is the "OnConflict" setter.
	QuizSubmissionEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *QuizSubmissionEventUpsert) SetSessionID(v string) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdateSessionID() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldSessionID)
	return u
}

// SetQuizID sets the "quiz_id" field.
func (u *QuizSubmissionEventUpsert) SetQuizID(v string) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldQuizID, v)
	return u
}

// UpdateQuizID sets the "quiz_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdateQuizID() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldQuizID)
	return u
}

// SetPathID sets the "path_id" field.
func (u *QuizSubmissionEventUpsert) SetPathID(v string) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldPathID, v)
	return u
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdatePathID() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldPathID)
	return u
}

// SetScore sets the "score" field.
func (u *QuizSubmissionEventUpsert) SetScore(v int) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdateScore() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *QuizSubmissionEventUpsert) AddScore(v int) *QuizSubmissionEventUpsert {
	u.Add(quizsubmissionevent.FieldScore, v)
	return u
}

// SetPassed sets the "passed" field.
func (u *QuizSubmissionEventUpsert) SetPassed(v bool) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldPassed, v)
	return u
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdatePassed() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldPassed)
	return u
}

// SetCorrectCount sets the "correct_count" field.
func (u *QuizSubmissionEventUpsert) SetCorrectCount(v int) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldCorrectCount, v)
	return u
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdateCorrectCount() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldCorrectCount)
	return u
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *QuizSubmissionEventUpsert) AddCorrectCount(v int) *QuizSubmissionEventUpsert {
	u.Add(quizsubmissionevent.FieldCorrectCount, v)
	return u
}

// SetTotalQuestions sets the "total_questions" field.
func (u *QuizSubmissionEventUpsert) SetTotalQuestions(v int) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldTotalQuestions, v)
	return u
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdateTotalQuestions() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldTotalQuestions)
	return u
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *QuizSubmissionEventUpsert) AddTotalQuestions(v int) *QuizSubmissionEventUpsert {
	u.Add(quizsubmissionevent.FieldTotalQuestions, v)
	return u
}

// SetPointsEarned sets the "points_earned" field.
func (u *QuizSubmissionEventUpsert) SetPointsEarned(v int) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldPointsEarned, v)
	return u
}

// UpdatePointsEarned sets the "points_earned" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdatePointsEarned() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldPointsEarned)
	return u
}

// AddPointsEarned adds v to the "points_earned" field.
func (u *QuizSubmissionEventUpsert) AddPointsEarned(v int) *QuizSubmissionEventUpsert {
	u.Add(quizsubmissionevent.FieldPointsEarned, v)
	return u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *QuizSubmissionEventUpsert) SetTimeSpentSeconds(v int) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldTimeSpentSeconds, v)
	return u
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdateTimeSpentSeconds() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldTimeSpentSeconds)
	return u
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *QuizSubmissionEventUpsert) AddTimeSpentSeconds(v int) *QuizSubmissionEventUpsert {
	u.Add(quizsubmissionevent.FieldTimeSpentSeconds, v)
	return u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (u *QuizSubmissionEventUpsert) SetAutoSubmitted(v bool) *QuizSubmissionEventUpsert {
	u.Set(quizsubmissionevent.FieldAutoSubmitted, v)
	return u
}

// UpdateAutoSubmitted sets the "auto_submitted" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsert) UpdateAutoSubmitted() *QuizSubmissionEventUpsert {
	u.SetExcluded(quizsubmissionevent.FieldAutoSubmitted)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuizSubmissionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizSubmissionEventUpsertOne) UpdateNewValues() *QuizSubmissionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(quizsubmissionevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(quizsubmissionevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizSubmissionEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuizSubmissionEventUpsertOne) Ignore() *QuizSubmissionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizSubmissionEventUpsertOne) DoNothing() *QuizSubmissionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizSubmissionEventCreate.OnConflict
// documentation for more info.
func (u *QuizSubmissionEventUpsertOne) Update(set func(*QuizSubmissionEventUpsert)) *QuizSubmissionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizSubmissionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QuizSubmissionEventUpsertOne) SetSessionID(v string) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdateSessionID() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuizID sets the "quiz_id" field.
func (u *QuizSubmissionEventUpsertOne) SetQuizID(v string) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetQuizID(v)
	})
}

// UpdateQuizID sets the "quiz_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdateQuizID() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateQuizID()
	})
}

// SetPathID sets the "path_id" field.
func (u *QuizSubmissionEventUpsertOne) SetPathID(v string) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetPathID(v)
	})
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdatePathID() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdatePathID()
	})
}

// SetScore sets the "score" field.
func (u *QuizSubmissionEventUpsertOne) SetScore(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *QuizSubmissionEventUpsertOne) AddScore(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdateScore() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateScore()
	})
}

// SetPassed sets the "passed" field.
func (u *QuizSubmissionEventUpsertOne) SetPassed(v bool) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdatePassed() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdatePassed()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *QuizSubmissionEventUpsertOne) SetCorrectCount(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *QuizSubmissionEventUpsertOne) AddCorrectCount(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdateCorrectCount() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *QuizSubmissionEventUpsertOne) SetTotalQuestions(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *QuizSubmissionEventUpsertOne) AddTotalQuestions(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdateTotalQuestions() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetPointsEarned sets the "points_earned" field.
func (u *QuizSubmissionEventUpsertOne) SetPointsEarned(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetPointsEarned(v)
	})
}

// AddPointsEarned adds v to the "points_earned" field.
func (u *QuizSubmissionEventUpsertOne) AddPointsEarned(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddPointsEarned(v)
	})
}

// UpdatePointsEarned sets the "points_earned" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdatePointsEarned() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdatePointsEarned()
	})
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *QuizSubmissionEventUpsertOne) SetTimeSpentSeconds(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetTimeSpentSeconds(v)
	})
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *QuizSubmissionEventUpsertOne) AddTimeSpentSeconds(v int) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddTimeSpentSeconds(v)
	})
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdateTimeSpentSeconds() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateTimeSpentSeconds()
	})
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (u *QuizSubmissionEventUpsertOne) SetAutoSubmitted(v bool) *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetAutoSubmitted(v)
	})
}

// UpdateAutoSubmitted sets the "auto_submitted" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertOne) UpdateAutoSubmitted() *QuizSubmissionEventUpsertOne {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateAutoSubmitted()
	})
}

// Exec executes the query.
func (u *QuizSubmissionEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizSubmissionEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizSubmissionEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuizSubmissionEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuizSubmissionEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuizSubmissionEventCreateBulk is the builder for creating many QuizSubmissionEvent entities in bulk.
type QuizSubmissionEventCreateBulk struct {
	config
	err      error
	builders []*QuizSubmissionEventCreate
	conflict []sql.ConflictOption
}

// Save creates the QuizSubmissionEvent entities in the database.
func (_c *QuizSubmissionEventCreateBulk) Save(ctx context.Context) ([]*QuizSubmissionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSubmissionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSubmissionEventMutation)
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
func (_c *QuizSubmissionEventCreateBulk) SaveX(ctx context.Context) []*QuizSubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSubmissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSubmissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizSubmissionEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizSubmissionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizSubmissionEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuizSubmissionEventUpsertBulk {
	_c.conflict = opts
	return &QuizSubmissionEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizSubmissionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizSubmissionEventCreateBulk) OnConflictColumns(columns ...string) *QuizSubmissionEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizSubmissionEventUpsertBulk{
		create: _c,
	}
}

// QuizSubmissionEventUpsertBulk is the builder for "upsert"-ing
// a bulk of QuizSubmissionEvent nodes.
type QuizSubmissionEventUpsertBulk struct {
	create *QuizSubmissionEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuizSubmissionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizSubmissionEventUpsertBulk) UpdateNewValues() *QuizSubmissionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(quizsubmissionevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(quizsubmissionevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizSubmissionEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuizSubmissionEventUpsertBulk) Ignore() *QuizSubmissionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizSubmissionEventUpsertBulk) DoNothing() *QuizSubmissionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizSubmissionEventCreateBulk.OnConflict
// documentation for more info.
func (u *QuizSubmissionEventUpsertBulk) Update(set func(*QuizSubmissionEventUpsert)) *QuizSubmissionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizSubmissionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QuizSubmissionEventUpsertBulk) SetSessionID(v string) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdateSessionID() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuizID sets the "quiz_id" field.
func (u *QuizSubmissionEventUpsertBulk) SetQuizID(v string) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetQuizID(v)
	})
}

// UpdateQuizID sets the "quiz_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdateQuizID() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateQuizID()
	})
}

// SetPathID sets the "path_id" field.
func (u *QuizSubmissionEventUpsertBulk) SetPathID(v string) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetPathID(v)
	})
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdatePathID() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdatePathID()
	})
}

// SetScore sets the "score" field.
func (u *QuizSubmissionEventUpsertBulk) SetScore(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *QuizSubmissionEventUpsertBulk) AddScore(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdateScore() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateScore()
	})
}

// SetPassed sets the "passed" field.
func (u *QuizSubmissionEventUpsertBulk) SetPassed(v bool) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdatePassed() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdatePassed()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *QuizSubmissionEventUpsertBulk) SetCorrectCount(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *QuizSubmissionEventUpsertBulk) AddCorrectCount(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdateCorrectCount() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *QuizSubmissionEventUpsertBulk) SetTotalQuestions(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *QuizSubmissionEventUpsertBulk) AddTotalQuestions(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdateTotalQuestions() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetPointsEarned sets the "points_earned" field.
func (u *QuizSubmissionEventUpsertBulk) SetPointsEarned(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetPointsEarned(v)
	})
}

// AddPointsEarned adds v to the "points_earned" field.
func (u *QuizSubmissionEventUpsertBulk) AddPointsEarned(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddPointsEarned(v)
	})
}

// UpdatePointsEarned sets the "points_earned" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdatePointsEarned() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdatePointsEarned()
	})
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *QuizSubmissionEventUpsertBulk) SetTimeSpentSeconds(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetTimeSpentSeconds(v)
	})
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *QuizSubmissionEventUpsertBulk) AddTimeSpentSeconds(v int) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.AddTimeSpentSeconds(v)
	})
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdateTimeSpentSeconds() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateTimeSpentSeconds()
	})
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (u *QuizSubmissionEventUpsertBulk) SetAutoSubmitted(v bool) *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.SetAutoSubmitted(v)
	})
}

// UpdateAutoSubmitted sets the "auto_submitted" field to the value that was provided on create.
func (u *QuizSubmissionEventUpsertBulk) UpdateAutoSubmitted() *QuizSubmissionEventUpsertBulk {
	return u.Update(func(s *QuizSubmissionEventUpsert) {
		s.UpdateAutoSubmitted()
	})
}

// Exec executes the query.
func (u *QuizSubmissionEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuizSubmissionEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizSubmissionEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizSubmissionEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
