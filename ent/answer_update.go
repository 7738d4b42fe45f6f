// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inkling-app/inkling/ent/answer"
	"github.com/inkling-app/inkling/ent/predicate"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdate) SetQuestionID(v int) *AnswerUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableQuestionID(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *AnswerUpdate) AddQuestionID(v int) *AnswerUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AnswerUpdate) SetUserAnswer(v string) *AnswerUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableUserAnswer(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AnswerUpdate) SetIsCorrect(v bool) *AnswerUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableIsCorrect(v *bool) *AnswerUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetUnderstandingScore sets the "understanding_score" field.
func (_u *AnswerUpdate) SetUnderstandingScore(v int) *AnswerUpdate {
	_u.mutation.ResetUnderstandingScore()
	_u.mutation.SetUnderstandingScore(v)
	return _u
}

// SetNillableUnderstandingScore sets the "understanding_score" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableUnderstandingScore(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetUnderstandingScore(*v)
	}
	return _u
}

// AddUnderstandingScore adds value to the "understanding_score" field.
func (_u *AnswerUpdate) AddUnderstandingScore(v int) *AnswerUpdate {
	_u.mutation.AddUnderstandingScore(v)
	return _u
}

// ClearUnderstandingScore clears the value of the "understanding_score" field.
func (_u *AnswerUpdate) ClearUnderstandingScore() *AnswerUpdate {
	_u.mutation.ClearUnderstandingScore()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AnswerUpdate) SetFeedback(v string) *AnswerUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableFeedback(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := answer.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "Answer.user_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnderstandingScore(); ok {
		if err := answer.UnderstandingScoreValidator(v); err != nil {
			return &ValidationError{Name: "understanding_score", err: fmt.Errorf(`ent: validator failed for field "Answer.understanding_score": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(answer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(answer.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(answer.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnderstandingScore(); ok {
		_spec.SetField(answer.FieldUnderstandingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnderstandingScore(); ok {
		_spec.AddField(answer.FieldUnderstandingScore, field.TypeInt, value)
	}
	if _u.mutation.UnderstandingScoreCleared() {
		_spec.ClearField(answer.FieldUnderstandingScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(answer.FieldFeedback, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdateOne) SetQuestionID(v int) *AnswerUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableQuestionID(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *AnswerUpdateOne) AddQuestionID(v int) *AnswerUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AnswerUpdateOne) SetUserAnswer(v string) *AnswerUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableUserAnswer(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AnswerUpdateOne) SetIsCorrect(v bool) *AnswerUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableIsCorrect(v *bool) *AnswerUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetUnderstandingScore sets the "understanding_score" field.
func (_u *AnswerUpdateOne) SetUnderstandingScore(v int) *AnswerUpdateOne {
	_u.mutation.ResetUnderstandingScore()
	_u.mutation.SetUnderstandingScore(v)
	return _u
}

// SetNillableUnderstandingScore sets the "understanding_score" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableUnderstandingScore(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetUnderstandingScore(*v)
	}
	return _u
}

// AddUnderstandingScore adds value to the "understanding_score" field.
func (_u *AnswerUpdateOne) AddUnderstandingScore(v int) *AnswerUpdateOne {
	_u.mutation.AddUnderstandingScore(v)
	return _u
}

// ClearUnderstandingScore clears the value of the "understanding_score" field.
func (_u *AnswerUpdateOne) ClearUnderstandingScore() *AnswerUpdateOne {
	_u.mutation.ClearUnderstandingScore()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AnswerUpdateOne) SetFeedback(v string) *AnswerUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableFeedback(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := answer.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "Answer.user_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnderstandingScore(); ok {
		if err := answer.UnderstandingScoreValidator(v); err != nil {
			return &ValidationError{Name: "understanding_score", err: fmt.Errorf(`ent: validator failed for field "Answer.understanding_score": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(answer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(answer.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(answer.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnderstandingScore(); ok {
		_spec.SetField(answer.FieldUnderstandingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnderstandingScore(); ok {
		_spec.AddField(answer.FieldUnderstandingScore, field.TypeInt, value)
	}
	if _u.mutation.UnderstandingScoreCleared() {
		_spec.ClearField(answer.FieldUnderstandingScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(answer.FieldFeedback, field.TypeString, value)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
