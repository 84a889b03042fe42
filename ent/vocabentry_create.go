// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/inkwell/ent/vocabentry"
	"github.com/google/uuid"
)

// VocabEntryCreate is the builder for creating a VocabEntry entity.
type VocabEntryCreate struct {
	config
	mutation *VocabEntryMutation
	hooks    []Hook
}

// SetWord sets the "word" field.
func (_c *VocabEntryCreate) SetWord(v string) *VocabEntryCreate {
	_c.mutation.SetWord(v)
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *VocabEntryCreate) SetDefinition(v string) *VocabEntryCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetExample sets the "example" field.
func (_c *VocabEntryCreate) SetExample(v string) *VocabEntryCreate {
	_c.mutation.SetExample(v)
	return _c
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableExample(v *string) *VocabEntryCreate {
	if v != nil {
		_c.SetExample(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *VocabEntryCreate) SetEaseFactor(v float64) *VocabEntryCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableEaseFactor(v *float64) *VocabEntryCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetInterval sets the "interval" field.
func (_c *VocabEntryCreate) SetInterval(v int) *VocabEntryCreate {
	_c.mutation.SetInterval(v)
	return _c
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableInterval(v *int) *VocabEntryCreate {
	if v != nil {
		_c.SetInterval(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *VocabEntryCreate) SetReviewCount(v int) *VocabEntryCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableReviewCount(v *int) *VocabEntryCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *VocabEntryCreate) SetLastReviewedAt(v time.Time) *VocabEntryCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableLastReviewedAt(v *time.Time) *VocabEntryCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *VocabEntryCreate) SetNextReviewAt(v time.Time) *VocabEntryCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableNextReviewAt(v *time.Time) *VocabEntryCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VocabEntryCreate) SetCreatedAt(v time.Time) *VocabEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableCreatedAt(v *time.Time) *VocabEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VocabEntryCreate) SetID(v uuid.UUID) *VocabEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableID(v *uuid.UUID) *VocabEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_c *VocabEntryCreate) Mutation() *VocabEntryMutation {
	return _c.mutation
}

// Save creates the VocabEntry in the database.
func (_c *VocabEntryCreate) Save(ctx context.Context) (*VocabEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VocabEntryCreate) SaveX(ctx context.Context) *VocabEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VocabEntryCreate) defaults() {
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := vocabentry.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.Interval(); !ok {
		v := vocabentry.DefaultInterval
		_c.mutation.SetInterval(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := vocabentry.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vocabentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vocabentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VocabEntryCreate) check() error {
	if _, ok := _c.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "VocabEntry.word"`)}
	}
	if v, ok := _c.mutation.Word(); ok {
		if err := vocabentry.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.word": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "VocabEntry.definition"`)}
	}
	if v, ok := _c.mutation.Definition(); ok {
		if err := vocabentry.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.definition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "VocabEntry.ease_factor"`)}
	}
	if _, ok := _c.mutation.Interval(); !ok {
		return &ValidationError{Name: "interval", err: errors.New(`ent: missing required field "VocabEntry.interval"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "VocabEntry.review_count"`)}
	}
	if v, ok := _c.mutation.ReviewCount(); ok {
		if err := vocabentry.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.review_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VocabEntry.created_at"`)}
	}
	return nil
}

func (_c *VocabEntryCreate) sqlSave(ctx context.Context) (*VocabEntry, error) {
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

func (_c *VocabEntryCreate) createSpec() (*VocabEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &VocabEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vocabentry.Table, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(vocabentry.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(vocabentry.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.Example(); ok {
		_spec.SetField(vocabentry.FieldExample, field.TypeString, value)
		_node.Example = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(vocabentry.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.Interval(); ok {
		_spec.SetField(vocabentry.FieldInterval, field.TypeInt, value)
		_node.Interval = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(vocabentry.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(vocabentry.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(vocabentry.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vocabentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VocabEntryCreateBulk is the builder for creating many VocabEntry entities in bulk.
type VocabEntryCreateBulk struct {
	config
	err      error
	builders []*VocabEntryCreate
}

// Save creates the VocabEntry entities in the database.
func (_c *VocabEntryCreateBulk) Save(ctx context.Context) ([]*VocabEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VocabEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabEntryMutation)
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
func (_c *VocabEntryCreateBulk) SaveX(ctx context.Context) []*VocabEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
