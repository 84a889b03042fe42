// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/inkwell/ent/predicate"
	"github.com/abhisek/inkwell/ent/writing"
)

// WritingUpdate is the builder for updating Writing entities.
type WritingUpdate struct {
	config
	hooks    []Hook
	mutation *WritingMutation
}

// Where appends a list predicates to the WritingUpdate builder.
func (_u *WritingUpdate) Where(ps ...predicate.Writing) *WritingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *WritingUpdate) SetPrompt(v string) *WritingUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *WritingUpdate) SetNillablePrompt(v *string) *WritingUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *WritingUpdate) ClearPrompt() *WritingUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetBody sets the "body" field.
func (_u *WritingUpdate) SetBody(v string) *WritingUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *WritingUpdate) SetNillableBody(v *string) *WritingUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetOverallRank sets the "overall_rank" field.
func (_u *WritingUpdate) SetOverallRank(v string) *WritingUpdate {
	_u.mutation.SetOverallRank(v)
	return _u
}

// SetNillableOverallRank sets the "overall_rank" field if the given value is not nil.
func (_u *WritingUpdate) SetNillableOverallRank(v *string) *WritingUpdate {
	if v != nil {
		_u.SetOverallRank(*v)
	}
	return _u
}

// SetGrammarRank sets the "grammar_rank" field.
func (_u *WritingUpdate) SetGrammarRank(v string) *WritingUpdate {
	_u.mutation.SetGrammarRank(v)
	return _u
}

// SetNillableGrammarRank sets the "grammar_rank" field if the given value is not nil.
func (_u *WritingUpdate) SetNillableGrammarRank(v *string) *WritingUpdate {
	if v != nil {
		_u.SetGrammarRank(*v)
	}
	return _u
}

// SetVocabularyRank sets the "vocabulary_rank" field.
func (_u *WritingUpdate) SetVocabularyRank(v string) *WritingUpdate {
	_u.mutation.SetVocabularyRank(v)
	return _u
}

// SetNillableVocabularyRank sets the "vocabulary_rank" field if the given value is not nil.
func (_u *WritingUpdate) SetNillableVocabularyRank(v *string) *WritingUpdate {
	if v != nil {
		_u.SetVocabularyRank(*v)
	}
	return _u
}

// SetStructureRank sets the "structure_rank" field.
func (_u *WritingUpdate) SetStructureRank(v string) *WritingUpdate {
	_u.mutation.SetStructureRank(v)
	return _u
}

// SetNillableStructureRank sets the "structure_rank" field if the given value is not nil.
func (_u *WritingUpdate) SetNillableStructureRank(v *string) *WritingUpdate {
	if v != nil {
		_u.SetStructureRank(*v)
	}
	return _u
}

// SetContentRank sets the "content_rank" field.
func (_u *WritingUpdate) SetContentRank(v string) *WritingUpdate {
	_u.mutation.SetContentRank(v)
	return _u
}

// SetNillableContentRank sets the "content_rank" field if the given value is not nil.
func (_u *WritingUpdate) SetNillableContentRank(v *string) *WritingUpdate {
	if v != nil {
		_u.SetContentRank(*v)
	}
	return _u
}

// Mutation returns the WritingMutation object of the builder.
func (_u *WritingUpdate) Mutation() *WritingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WritingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WritingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WritingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WritingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WritingUpdate) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := writing.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Writing.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallRank(); ok {
		if err := writing.OverallRankValidator(v); err != nil {
			return &ValidationError{Name: "overall_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.overall_rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GrammarRank(); ok {
		if err := writing.GrammarRankValidator(v); err != nil {
			return &ValidationError{Name: "grammar_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.grammar_rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VocabularyRank(); ok {
		if err := writing.VocabularyRankValidator(v); err != nil {
			return &ValidationError{Name: "vocabulary_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.vocabulary_rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StructureRank(); ok {
		if err := writing.StructureRankValidator(v); err != nil {
			return &ValidationError{Name: "structure_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.structure_rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentRank(); ok {
		if err := writing.ContentRankValidator(v); err != nil {
			return &ValidationError{Name: "content_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.content_rank": %w`, err)}
		}
	}
	return nil
}

func (_u *WritingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(writing.Table, writing.Columns, sqlgraph.NewFieldSpec(writing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(writing.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(writing.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(writing.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallRank(); ok {
		_spec.SetField(writing.FieldOverallRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrammarRank(); ok {
		_spec.SetField(writing.FieldGrammarRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.VocabularyRank(); ok {
		_spec.SetField(writing.FieldVocabularyRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.StructureRank(); ok {
		_spec.SetField(writing.FieldStructureRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentRank(); ok {
		_spec.SetField(writing.FieldContentRank, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{writing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WritingUpdateOne is the builder for updating a single Writing entity.
type WritingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WritingMutation
}

// SetPrompt sets the "prompt" field.
func (_u *WritingUpdateOne) SetPrompt(v string) *WritingUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *WritingUpdateOne) SetNillablePrompt(v *string) *WritingUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *WritingUpdateOne) ClearPrompt() *WritingUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetBody sets the "body" field.
func (_u *WritingUpdateOne) SetBody(v string) *WritingUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *WritingUpdateOne) SetNillableBody(v *string) *WritingUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetOverallRank sets the "overall_rank" field.
func (_u *WritingUpdateOne) SetOverallRank(v string) *WritingUpdateOne {
	_u.mutation.SetOverallRank(v)
	return _u
}

// SetNillableOverallRank sets the "overall_rank" field if the given value is not nil.
func (_u *WritingUpdateOne) SetNillableOverallRank(v *string) *WritingUpdateOne {
	if v != nil {
		_u.SetOverallRank(*v)
	}
	return _u
}

// SetGrammarRank sets the "grammar_rank" field.
func (_u *WritingUpdateOne) SetGrammarRank(v string) *WritingUpdateOne {
	_u.mutation.SetGrammarRank(v)
	return _u
}

// SetNillableGrammarRank sets the "grammar_rank" field if the given value is not nil.
func (_u *WritingUpdateOne) SetNillableGrammarRank(v *string) *WritingUpdateOne {
	if v != nil {
		_u.SetGrammarRank(*v)
	}
	return _u
}

// SetVocabularyRank sets the "vocabulary_rank" field.
func (_u *WritingUpdateOne) SetVocabularyRank(v string) *WritingUpdateOne {
	_u.mutation.SetVocabularyRank(v)
	return _u
}

// SetNillableVocabularyRank sets the "vocabulary_rank" field if the given value is not nil.
func (_u *WritingUpdateOne) SetNillableVocabularyRank(v *string) *WritingUpdateOne {
	if v != nil {
		_u.SetVocabularyRank(*v)
	}
	return _u
}

// SetStructureRank sets the "structure_rank" field.
func (_u *WritingUpdateOne) SetStructureRank(v string) *WritingUpdateOne {
	_u.mutation.SetStructureRank(v)
	return _u
}

// SetNillableStructureRank sets the "structure_rank" field if the given value is not nil.
func (_u *WritingUpdateOne) SetNillableStructureRank(v *string) *WritingUpdateOne {
	if v != nil {
		_u.SetStructureRank(*v)
	}
	return _u
}

// SetContentRank sets the "content_rank" field.
func (_u *WritingUpdateOne) SetContentRank(v string) *WritingUpdateOne {
	_u.mutation.SetContentRank(v)
	return _u
}

// SetNillableContentRank sets the "content_rank" field if the given value is not nil.
func (_u *WritingUpdateOne) SetNillableContentRank(v *string) *WritingUpdateOne {
	if v != nil {
		_u.SetContentRank(*v)
	}
	return _u
}

// Mutation returns the WritingMutation object of the builder.
func (_u *WritingUpdateOne) Mutation() *WritingMutation {
	return _u.mutation
}

// Where appends a list predicates to the WritingUpdate builder.
func (_u *WritingUpdateOne) Where(ps ...predicate.Writing) *WritingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WritingUpdateOne) Select(field string, fields ...string) *WritingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Writing entity.
func (_u *WritingUpdateOne) Save(ctx context.Context) (*Writing, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WritingUpdateOne) SaveX(ctx context.Context) *Writing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WritingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WritingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WritingUpdateOne) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := writing.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Writing.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallRank(); ok {
		if err := writing.OverallRankValidator(v); err != nil {
			return &ValidationError{Name: "overall_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.overall_rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GrammarRank(); ok {
		if err := writing.GrammarRankValidator(v); err != nil {
			return &ValidationError{Name: "grammar_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.grammar_rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VocabularyRank(); ok {
		if err := writing.VocabularyRankValidator(v); err != nil {
			return &ValidationError{Name: "vocabulary_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.vocabulary_rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StructureRank(); ok {
		if err := writing.StructureRankValidator(v); err != nil {
			return &ValidationError{Name: "structure_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.structure_rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentRank(); ok {
		if err := writing.ContentRankValidator(v); err != nil {
			return &ValidationError{Name: "content_rank", err: fmt.Errorf(`ent: validator failed for field "Writing.content_rank": %w`, err)}
		}
	}
	return nil
}

func (_u *WritingUpdateOne) sqlSave(ctx context.Context) (_node *Writing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(writing.Table, writing.Columns, sqlgraph.NewFieldSpec(writing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Writing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, writing.FieldID)
		for _, f := range fields {
			if !writing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != writing.FieldID {
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
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(writing.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(writing.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(writing.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallRank(); ok {
		_spec.SetField(writing.FieldOverallRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrammarRank(); ok {
		_spec.SetField(writing.FieldGrammarRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.VocabularyRank(); ok {
		_spec.SetField(writing.FieldVocabularyRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.StructureRank(); ok {
		_spec.SetField(writing.FieldStructureRank, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentRank(); ok {
		_spec.SetField(writing.FieldContentRank, field.TypeString, value)
	}
	_node = &Writing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{writing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
