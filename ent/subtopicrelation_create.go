// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inkling-app/inkling/ent/subtopicrelation"
)

// SubtopicRelationCreate is the builder for creating a SubtopicRelation entity.
type SubtopicRelationCreate struct {
	config
	mutation *SubtopicRelationMutation
	hooks    []Hook
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *SubtopicRelationCreate) SetSubtopicID(v int) *SubtopicRelationCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetRelatedSubtopicID sets the "related_subtopic_id" field.
func (_c *SubtopicRelationCreate) SetRelatedSubtopicID(v int) *SubtopicRelationCreate {
	_c.mutation.SetRelatedSubtopicID(v)
	return _c
}

// SetRelationType sets the "relation_type" field.
func (_c *SubtopicRelationCreate) SetRelationType(v subtopicrelation.RelationType) *SubtopicRelationCreate {
	_c.mutation.SetRelationType(v)
	return _c
}

// Mutation returns the SubtopicRelationMutation object of the builder.
func (_c *SubtopicRelationCreate) Mutation() *SubtopicRelationMutation {
	return _c.mutation
}

// Save creates the SubtopicRelation in the database.
func (_c *SubtopicRelationCreate) Save(ctx context.Context) (*SubtopicRelation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubtopicRelationCreate) SaveX(ctx context.Context) *SubtopicRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtopicRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtopicRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubtopicRelationCreate) check() error {
	if _, ok := _c.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "SubtopicRelation.subtopic_id"`)}
	}
	if _, ok := _c.mutation.RelatedSubtopicID(); !ok {
		return &ValidationError{Name: "related_subtopic_id", err: errors.New(`ent: missing required field "SubtopicRelation.related_subtopic_id"`)}
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "SubtopicRelation.relation_type"`)}
	}
	if v, ok := _c.mutation.RelationType(); ok {
		if err := subtopicrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "SubtopicRelation.relation_type": %w`, err)}
		}
	}
	return nil
}

func (_c *SubtopicRelationCreate) sqlSave(ctx context.Context) (*SubtopicRelation, error) {
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

func (_c *SubtopicRelationCreate) createSpec() (*SubtopicRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &SubtopicRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtopicrelation.Table, sqlgraph.NewFieldSpec(subtopicrelation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SubtopicID(); ok {
		_spec.SetField(subtopicrelation.FieldSubtopicID, field.TypeInt, value)
		_node.SubtopicID = value
	}
	if value, ok := _c.mutation.RelatedSubtopicID(); ok {
		_spec.SetField(subtopicrelation.FieldRelatedSubtopicID, field.TypeInt, value)
		_node.RelatedSubtopicID = value
	}
	if value, ok := _c.mutation.RelationType(); ok {
		_spec.SetField(subtopicrelation.FieldRelationType, field.TypeEnum, value)
		_node.RelationType = value
	}
	return _node, _spec
}

// SubtopicRelationCreateBulk is the builder for creating many SubtopicRelation entities in bulk.
type SubtopicRelationCreateBulk struct {
	config
	err      error
	builders []*SubtopicRelationCreate
}

// Save creates the SubtopicRelation entities in the database.
func (_c *SubtopicRelationCreateBulk) Save(ctx context.Context) ([]*SubtopicRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubtopicRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtopicRelationMutation)
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
func (_c *SubtopicRelationCreateBulk) SaveX(ctx context.Context) []*SubtopicRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtopicRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtopicRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
