// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/inkwell/ent/writing"
	"github.com/google/uuid"
)

// WritingCreate is the builder for creating a Writing entity.
type WritingCreate struct {
	config
	mutation *WritingMutation
	hooks    []Hook
}

// SetPrompt sets the "prompt" field.
func (_c *WritingCreate) SetPrompt(v string) *WritingCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *WritingCreate) SetNillablePrompt(v *string) *WritingCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *WritingCreate) SetBody(v string) *WritingCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetOverallRank sets the "overall_rank" field.
func (_c *WritingCreate) SetOverallRank(v string) *WritingCreate {
	_c.mutation.SetOverallRank(v)
	return _c
}

// SetGrammarRank sets the "grammar_rank" field.
func (_c *WritingCreate) SetGrammarRank(v string) *WritingCreate {
	_c.mutation.SetGrammarRank(v)
	return _c
}

// SetVocabularyRank sets the "vocabulary_rank" field.
func (_c *WritingCreate) SetVocabularyRank(v string) *WritingCreate {
	_c.mutation.SetVocabularyRank(v)
	return _c
}

// SetStructureRank sets the "structure_rank" field.
func (_c *WritingCreate) SetStructureRank(v string) *WritingCreate {
	_c.mutation.SetStructureRank(v)
	return _c
}

// SetContentRank sets the "content_rank" field.
func (_c *WritingCreate) SetContentRank(v string) *WritingCreate {
	_c.mutation.SetContentRank(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WritingCreate) SetCreatedAt(v time.Time) *WritingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WritingCreate) SetNillableCreatedAt(v *time.Time) *WritingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WritingCreate) SetID(v uuid.UUID) *WritingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WritingCreate) SetNillableID(v *uuid.UUID) *WritingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WritingMutation object of the builder.
func (_c *WritingCreate) Mutation() *WritingMutation {
	return _c.mutation
}

// Save creates the Writing in the database.
func (_c *WritingCreate) Save(ctx context.Context) (*Writing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WritingCreate) SaveX(ctx context.Context) *Writing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WritingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WritingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WritingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := writing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := writing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WritingCreate) check() error {
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Writing.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := writing.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Writing.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallRank(); !ok {
		return &ValidationError{Name: "overall_rank", err: errors.New(`ent: missing required field "Writing.overall_rank"`)}
	}
	if v, ok := _c.mutation.OverallRank(); ok {
		if err := writing.OverallRankValidator(v); err != nil {
			return &ValidationError{Name: "overall_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.overall_rank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GrammarRank(); !ok {
		return &ValidationError{Name: "grammar_rank", err: errors.New(`ent: missing required field "Writing.grammar_rank"`)}
	}
	if v, ok := _c.mutation.GrammarRank(); ok {
		if err := writing.GrammarRankValidator(v); err != nil {
			return &ValidationError{Name: "grammar_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.grammar_rank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VocabularyRank(); !ok {
		return &ValidationError{Name: "vocabulary_rank", err: errors.New(`ent: missing required field "Writing.vocabulary_rank"`)}
	}
	if v, ok := _c.mutation.VocabularyRank(); ok {
		if err := writing.VocabularyRankValidator(v); err != nil {
			return &ValidationError{Name: "vocabulary_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.vocabulary_rank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StructureRank(); !ok {
		return &ValidationError{Name: "structure_rank", err: errors.New(`ent: missing required field "Writing.structure_rank"`)}
	}
	if v, ok := _c.mutation.StructureRank(); ok {
		if err := writing.StructureRankValidator(v); err != nil {
			return &ValidationError{Name: "structure_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.structure_rank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentRank(); !ok {
		return &ValidationError{Name: "content_rank", err: errors.New(`ent: missing required field "Writing.content_rank"`)}
	}
	if v, ok := _c.mutation.ContentRank(); ok {
		if err := writing.ContentRankValidator(v); err != nil {
			return &ValidationError{Name: "content_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.content_rank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Writing.created_at"`)}
	}
	return nil
}

func (_c *WritingCreate) sqlSave(ctx context.Context) (*Writing, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WritingCreate) createSpec() (*Writing, *sqlgraph.CreateSpec) {
	var (
		_node = &Writing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(writing.Table, sqlgraph.NewFieldSpec(writing.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(writing.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(writing.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.OverallRank(); ok {
		_spec.SetField(writing.FieldOverallRank, field.TypeString, value)
		_node.OverallRank = value
	}
	if value, ok := _c.mutation.GrammarRank(); ok {
		_spec.SetField(writing.FieldGrammarRank, field.TypeString, value)
		_node.GrammarRank = value
	}
	if value, ok := _c.mutation.VocabularyRank(); ok {
		_spec.SetField(writing.FieldVocabularyRank, field.TypeString, value)
		_node.VocabularyRank = value
	}
	if value, ok := _c.mutation.StructureRank(); ok {
		_spec.SetField(writing.FieldStructureRank, field.TypeString, value)
		_node.StructureRank = value
	}
	if value, ok := _c.mutation.ContentRank(); ok {
		_spec.SetField(writing.FieldContentRank, field.TypeString, value)
		_node.ContentRank = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(writing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WritingCreateBulk is the builder for creating many Writing entities in bulk.
type WritingCreateBulk struct {
	config
	err      error
	builders []*WritingCreate
}

// Save creates the Writing entities in the database.
func (_c *WritingCreateBulk) Save(ctx context.Context) ([]*Writing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Writing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WritingMutation)
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
func (_c *WritingCreateBulk) SaveX(ctx context.Context) []*Writing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WritingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WritingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
