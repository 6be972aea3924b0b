// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/predicate"
	"github.com/abhisek/skillforge/ent/quizsubmissionevent"
)

// QuizSubmissionEventUpdate is the builder for updating QuizSubmissionEvent entities.
type QuizSubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizSubmissionEventMutation
}

// Where appends a list predicates to the QuizSubmissionEventUpdate builder.
func (_u *QuizSubmissionEventUpdate) Where(ps ...predicate.QuizSubmissionEvent) *QuizSubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizSubmissionEventUpdate) SetSessionID(v string) *QuizSubmissionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillableSessionID(v *string) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizSubmissionEventUpdate) SetQuizID(v string) *QuizSubmissionEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillableQuizID(v *string) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *QuizSubmissionEventUpdate) SetPathID(v string) *QuizSubmissionEventUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillablePathID(v *string) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizSubmissionEventUpdate) SetScore(v int) *QuizSubmissionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillableScore(v *int) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizSubmissionEventUpdate) AddScore(v int) *QuizSubmissionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizSubmissionEventUpdate) SetPassed(v bool) *QuizSubmissionEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillablePassed(v *bool) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizSubmissionEventUpdate) SetCorrectCount(v int) *QuizSubmissionEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillableCorrectCount(v *int) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizSubmissionEventUpdate) AddCorrectCount(v int) *QuizSubmissionEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizSubmissionEventUpdate) SetTotalQuestions(v int) *QuizSubmissionEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillableTotalQuestions(v *int) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizSubmissionEventUpdate) AddTotalQuestions(v int) *QuizSubmissionEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetPointsEarned sets the "points_earned" field.
func (_u *QuizSubmissionEventUpdate) SetPointsEarned(v int) *QuizSubmissionEventUpdate {
	_u.mutation.ResetPointsEarned()
	_u.mutation.SetPointsEarned(v)
	return _u
}

// SetNillablePointsEarned sets the "points_earned" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillablePointsEarned(v *int) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetPointsEarned(*v)
	}
	return _u
}

// AddPointsEarned adds value to the "points_earned" field.
func (_u *QuizSubmissionEventUpdate) AddPointsEarned(v int) *QuizSubmissionEventUpdate {
	_u.mutation.AddPointsEarned(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *QuizSubmissionEventUpdate) SetTimeSpentSeconds(v int) *QuizSubmissionEventUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillableTimeSpentSeconds(v *int) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *QuizSubmissionEventUpdate) AddTimeSpentSeconds(v int) *QuizSubmissionEventUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *QuizSubmissionEventUpdate) SetAutoSubmitted(v bool) *QuizSubmissionEventUpdate {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdate) SetNillableAutoSubmitted(v *bool) *QuizSubmissionEventUpdate {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// Mutation returns the QuizSubmissionEventMutation object of the builder.
func (_u *QuizSubmissionEventUpdate) Mutation() *QuizSubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizSubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizSubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizsubmissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSubmissionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizsubmissionevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizSubmissionEvent.quiz_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsubmissionevent.Table, quizsubmissionevent.Columns, sqlgraph.NewFieldSpec(quizsubmissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizsubmissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizsubmissionevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(quizsubmissionevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizsubmissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizsubmissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizsubmissionevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizsubmissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizsubmissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizsubmissionevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizsubmissionevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsEarned(); ok {
		_spec.SetField(quizsubmissionevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsEarned(); ok {
		_spec.AddField(quizsubmissionevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(quizsubmissionevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(quizsubmissionevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(quizsubmissionevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsubmissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizSubmissionEventUpdateOne is the builder for updating a single QuizSubmissionEvent entity.
type QuizSubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizSubmissionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizSubmissionEventUpdateOne) SetSessionID(v string) *QuizSubmissionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillableSessionID(v *string) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizSubmissionEventUpdateOne) SetQuizID(v string) *QuizSubmissionEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillableQuizID(v *string) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *QuizSubmissionEventUpdateOne) SetPathID(v string) *QuizSubmissionEventUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillablePathID(v *string) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizSubmissionEventUpdateOne) SetScore(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillableScore(v *int) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizSubmissionEventUpdateOne) AddScore(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizSubmissionEventUpdateOne) SetPassed(v bool) *QuizSubmissionEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillablePassed(v *bool) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizSubmissionEventUpdateOne) SetCorrectCount(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillableCorrectCount(v *int) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizSubmissionEventUpdateOne) AddCorrectCount(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizSubmissionEventUpdateOne) SetTotalQuestions(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillableTotalQuestions(v *int) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizSubmissionEventUpdateOne) AddTotalQuestions(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetPointsEarned sets the "points_earned" field.
func (_u *QuizSubmissionEventUpdateOne) SetPointsEarned(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.ResetPointsEarned()
	_u.mutation.SetPointsEarned(v)
	return _u
}

// SetNillablePointsEarned sets the "points_earned" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillablePointsEarned(v *int) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetPointsEarned(*v)
	}
	return _u
}

// AddPointsEarned adds value to the "points_earned" field.
func (_u *QuizSubmissionEventUpdateOne) AddPointsEarned(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.AddPointsEarned(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *QuizSubmissionEventUpdateOne) SetTimeSpentSeconds(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillableTimeSpentSeconds(v *int) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *QuizSubmissionEventUpdateOne) AddTimeSpentSeconds(v int) *QuizSubmissionEventUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *QuizSubmissionEventUpdateOne) SetAutoSubmitted(v bool) *QuizSubmissionEventUpdateOne {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *QuizSubmissionEventUpdateOne) SetNillableAutoSubmitted(v *bool) *QuizSubmissionEventUpdateOne {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// Mutation returns the QuizSubmissionEventMutation object of the builder.
func (_u *QuizSubmissionEventUpdateOne) Mutation() *QuizSubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizSubmissionEventUpdate builder.
func (_u *QuizSubmissionEventUpdateOne) Where(ps ...predicate.QuizSubmissionEvent) *QuizSubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizSubmissionEventUpdateOne) Select(field string, fields ...string) *QuizSubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizSubmissionEvent entity.
func (_u *QuizSubmissionEventUpdateOne) Save(ctx context.Context) (*QuizSubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSubmissionEventUpdateOne) SaveX(ctx context.Context) *QuizSubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizSubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizsubmissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSubmissionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizsubmissionevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizSubmissionEvent.quiz_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizSubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsubmissionevent.Table, quizsubmissionevent.Columns, sqlgraph.NewFieldSpec(quizsubmissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizSubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizsubmissionevent.FieldID)
		for _, f := range fields {
			if !quizsubmissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizsubmissionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizsubmissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizsubmissionevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(quizsubmissionevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizsubmissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizsubmissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizsubmissionevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizsubmissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizsubmissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizsubmissionevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizsubmissionevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsEarned(); ok {
		_spec.SetField(quizsubmissionevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsEarned(); ok {
		_spec.AddField(quizsubmissionevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(quizsubmissionevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(quizsubmissionevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(quizsubmissionevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	_node = &QuizSubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsubmissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
