// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inkling-app/inkling/ent/predicate"
	"github.com/inkling-app/inkling/ent/subtopicrelation"
)

// SubtopicRelationUpdate is the builder for updating SubtopicRelation entities.
type SubtopicRelationUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicRelationMutation
}

// Where appends a list predicates to the SubtopicRelationUpdate builder.
func (_u *SubtopicRelationUpdate) Where(ps ...predicate.SubtopicRelation) *SubtopicRelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *SubtopicRelationUpdate) SetSubtopicID(v int) *SubtopicRelationUpdate {
	_u.mutation.ResetSubtopicID()
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *SubtopicRelationUpdate) SetNillableSubtopicID(v *int) *SubtopicRelationUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// AddSubtopicID adds value to the "subtopic_id" field.
func (_u *SubtopicRelationUpdate) AddSubtopicID(v int) *SubtopicRelationUpdate {
	_u.mutation.AddSubtopicID(v)
	return _u
}

// SetRelatedSubtopicID sets the "related_subtopic_id" field.
func (_u *SubtopicRelationUpdate) SetRelatedSubtopicID(v int) *SubtopicRelationUpdate {
	_u.mutation.ResetRelatedSubtopicID()
	_u.mutation.SetRelatedSubtopicID(v)
	return _u
}

// SetNillableRelatedSubtopicID sets the "related_subtopic_id" field if the given value is not nil.
func (_u *SubtopicRelationUpdate) SetNillableRelatedSubtopicID(v *int) *SubtopicRelationUpdate {
	if v != nil {
		_u.SetRelatedSubtopicID(*v)
	}
	return _u
}

// AddRelatedSubtopicID adds value to the "related_subtopic_id" field.
func (_u *SubtopicRelationUpdate) AddRelatedSubtopicID(v int) *SubtopicRelationUpdate {
	_u.mutation.AddRelatedSubtopicID(v)
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *SubtopicRelationUpdate) SetRelationType(v subtopicrelation.RelationType) *SubtopicRelationUpdate {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *SubtopicRelationUpdate) SetNillableRelationType(v *subtopicrelation.RelationType) *SubtopicRelationUpdate {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// Mutation returns the SubtopicRelationMutation object of the builder.
func (_u *SubtopicRelationUpdate) Mutation() *SubtopicRelationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtopicRelationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicRelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtopicRelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicRelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicRelationUpdate) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := subtopicrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "SubtopicRelation.relation_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SubtopicRelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopicrelation.Table, subtopicrelation.Columns, sqlgraph.NewFieldSpec(subtopicrelation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(subtopicrelation.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtopicID(); ok {
		_spec.AddField(subtopicrelation.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelatedSubtopicID(); ok {
		_spec.SetField(subtopicrelation.FieldRelatedSubtopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelatedSubtopicID(); ok {
		_spec.AddField(subtopicrelation.FieldRelatedSubtopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(subtopicrelation.FieldRelationType, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopicrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtopicRelationUpdateOne is the builder for updating a single SubtopicRelation entity.
type SubtopicRelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicRelationMutation
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *SubtopicRelationUpdateOne) SetSubtopicID(v int) *SubtopicRelationUpdateOne {
	_u.mutation.ResetSubtopicID()
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *SubtopicRelationUpdateOne) SetNillableSubtopicID(v *int) *SubtopicRelationUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// AddSubtopicID adds value to the "subtopic_id" field.
func (_u *SubtopicRelationUpdateOne) AddSubtopicID(v int) *SubtopicRelationUpdateOne {
	_u.mutation.AddSubtopicID(v)
	return _u
}

// SetRelatedSubtopicID sets the "related_subtopic_id" field.
func (_u *SubtopicRelationUpdateOne) SetRelatedSubtopicID(v int) *SubtopicRelationUpdateOne {
	_u.mutation.ResetRelatedSubtopicID()
	_u.mutation.SetRelatedSubtopicID(v)
	return _u
}

// SetNillableRelatedSubtopicID sets the "related_subtopic_id" field if the given value is not nil.
func (_u *SubtopicRelationUpdateOne) SetNillableRelatedSubtopicID(v *int) *SubtopicRelationUpdateOne {
	if v != nil {
		_u.SetRelatedSubtopicID(*v)
	}
	return _u
}

// AddRelatedSubtopicID adds value to the "related_subtopic_id" field.
func (_u *SubtopicRelationUpdateOne) AddRelatedSubtopicID(v int) *SubtopicRelationUpdateOne {
	_u.mutation.AddRelatedSubtopicID(v)
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *SubtopicRelationUpdateOne) SetRelationType(v subtopicrelation.RelationType) *SubtopicRelationUpdateOne {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *SubtopicRelationUpdateOne) SetNillableRelationType(v *subtopicrelation.RelationType) *SubtopicRelationUpdateOne {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// Mutation returns the SubtopicRelationMutation object of the builder.
func (_u *SubtopicRelationUpdateOne) Mutation() *SubtopicRelationMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubtopicRelationUpdate builder.
func (_u *SubtopicRelationUpdateOne) Where(ps ...predicate.SubtopicRelation) *SubtopicRelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtopicRelationUpdateOne) Select(field string, fields ...string) *SubtopicRelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubtopicRelation entity.
func (_u *SubtopicRelationUpdateOne) Save(ctx context.Context) (*SubtopicRelation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicRelationUpdateOne) SaveX(ctx context.Context) *SubtopicRelation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtopicRelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicRelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicRelationUpdateOne) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := subtopicrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "SubtopicRelation.relation_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SubtopicRelationUpdateOne) sqlSave(ctx context.Context) (_node *SubtopicRelation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopicrelation.Table, subtopicrelation.Columns, sqlgraph.NewFieldSpec(subtopicrelation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubtopicRelation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopicrelation.FieldID)
		for _, f := range fields {
			if !subtopicrelation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopicrelation.FieldID {
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
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(subtopicrelation.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtopicID(); ok {
		_spec.AddField(subtopicrelation.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelatedSubtopicID(); ok {
		_spec.SetField(subtopicrelation.FieldRelatedSubtopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelatedSubtopicID(); ok {
		_spec.AddField(subtopicrelation.FieldRelatedSubtopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(subtopicrelation.FieldRelationType, field.TypeEnum, value)
	}
	_node = &SubtopicRelation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopicrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
