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
	"github.com/abhisek/inkwell/ent/predicate"
	"github.com/abhisek/inkwell/ent/vocabentry"
)

// VocabEntryUpdate is the builder for updating VocabEntry entities.
type VocabEntryUpdate struct {
	config
	hooks    []Hook
	mutation *VocabEntryMutation
}

// Where appends a list predicates to the VocabEntryUpdate builder.
func (_u *VocabEntryUpdate) Where(ps ...predicate.VocabEntry) *VocabEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWord sets the "word" field.
func (_u *VocabEntryUpdate) SetWord(v string) *VocabEntryUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableWord(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *VocabEntryUpdate) SetDefinition(v string) *VocabEntryUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableDefinition(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetExample sets the "example" field.
func (_u *VocabEntryUpdate) SetExample(v string) *VocabEntryUpdate {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableExample(v *string) *VocabEntryUpdate {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// ClearExample clears the value of the "example" field.
func (_u *VocabEntryUpdate) ClearExample() *VocabEntryUpdate {
	_u.mutation.ClearExample()
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *VocabEntryUpdate) SetEaseFactor(v float64) *VocabEntryUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableEaseFactor(v *float64) *VocabEntryUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *VocabEntryUpdate) AddEaseFactor(v float64) *VocabEntryUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetInterval sets the "interval" field.
func (_u *VocabEntryUpdate) SetInterval(v int) *VocabEntryUpdate {
	_u.mutation.ResetInterval()
	_u.mutation.SetInterval(v)
	return _u
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableInterval(v *int) *VocabEntryUpdate {
	if v != nil {
		_u.SetInterval(*v)
	}
	return _u
}

// AddInterval adds value to the "interval" field.
func (_u *VocabEntryUpdate) AddInterval(v int) *VocabEntryUpdate {
	_u.mutation.AddInterval(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *VocabEntryUpdate) SetReviewCount(v int) *VocabEntryUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableReviewCount(v *int) *VocabEntryUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *VocabEntryUpdate) AddReviewCount(v int) *VocabEntryUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *VocabEntryUpdate) SetLastReviewedAt(v time.Time) *VocabEntryUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableLastReviewedAt(v *time.Time) *VocabEntryUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *VocabEntryUpdate) ClearLastReviewedAt() *VocabEntryUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *VocabEntryUpdate) SetNextReviewAt(v time.Time) *VocabEntryUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableNextReviewAt(v *time.Time) *VocabEntryUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *VocabEntryUpdate) ClearNextReviewAt() *VocabEntryUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_u *VocabEntryUpdate) Mutation() *VocabEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VocabEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VocabEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabEntryUpdate) check() error {
	if v, ok := _u.mutation.Word(); ok {
		if err := vocabentry.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.word": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := vocabentry.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.definition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := vocabentry.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.review_count": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabentry.Table, vocabentry.Columns, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(vocabentry.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(vocabentry.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(vocabentry.FieldExample, field.TypeString, value)
	}
	if _u.mutation.ExampleCleared() {
		_spec.ClearField(vocabentry.FieldExample, field.TypeString)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(vocabentry.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(vocabentry.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interval(); ok {
		_spec.SetField(vocabentry.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterval(); ok {
		_spec.AddField(vocabentry.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(vocabentry.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(vocabentry.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(vocabentry.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(vocabentry.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(vocabentry.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(vocabentry.FieldNextReviewAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VocabEntryUpdateOne is the builder for updating a single VocabEntry entity.
type VocabEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabEntryMutation
}

// SetWord sets the "word" field.
func (_u *VocabEntryUpdateOne) SetWord(v string) *VocabEntryUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableWord(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *VocabEntryUpdateOne) SetDefinition(v string) *VocabEntryUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableDefinition(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetExample sets the "example" field.
func (_u *VocabEntryUpdateOne) SetExample(v string) *VocabEntryUpdateOne {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableExample(v *string) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// ClearExample clears the value of the "example" field.
func (_u *VocabEntryUpdateOne) ClearExample() *VocabEntryUpdateOne {
	_u.mutation.ClearExample()
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *VocabEntryUpdateOne) SetEaseFactor(v float64) *VocabEntryUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableEaseFactor(v *float64) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *VocabEntryUpdateOne) AddEaseFactor(v float64) *VocabEntryUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetInterval sets the "interval" field.
func (_u *VocabEntryUpdateOne) SetInterval(v int) *VocabEntryUpdateOne {
	_u.mutation.ResetInterval()
	_u.mutation.SetInterval(v)
	return _u
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableInterval(v *int) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetInterval(*v)
	}
	return _u
}

// AddInterval adds value to the "interval" field.
func (_u *VocabEntryUpdateOne) AddInterval(v int) *VocabEntryUpdateOne {
	_u.mutation.AddInterval(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *VocabEntryUpdateOne) SetReviewCount(v int) *VocabEntryUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableReviewCount(v *int) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *VocabEntryUpdateOne) AddReviewCount(v int) *VocabEntryUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *VocabEntryUpdateOne) SetLastReviewedAt(v time.Time) *VocabEntryUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableLastReviewedAt(v *time.Time) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *VocabEntryUpdateOne) ClearLastReviewedAt() *VocabEntryUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *VocabEntryUpdateOne) SetNextReviewAt(v time.Time) *VocabEntryUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableNextReviewAt(v *time.Time) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *VocabEntryUpdateOne) ClearNextReviewAt() *VocabEntryUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_u *VocabEntryUpdateOne) Mutation() *VocabEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the VocabEntryUpdate builder.
func (_u *VocabEntryUpdateOne) Where(ps ...predicate.VocabEntry) *VocabEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VocabEntryUpdateOne) Select(field string, fields ...string) *VocabEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VocabEntry entity.
func (_u *VocabEntryUpdateOne) Save(ctx context.Context) (*VocabEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabEntryUpdateOne) SaveX(ctx context.Context) *VocabEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VocabEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Word(); ok {
		if err := vocabentry.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.word": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := vocabentry.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.definition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := vocabentry.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.review_count": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabEntryUpdateOne) sqlSave(ctx context.Context) (_node *VocabEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabentry.Table, vocabentry.Columns, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocabEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabentry.FieldID)
		for _, f := range fields {
			if !vocabentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabentry.FieldID {
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
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(vocabentry.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(vocabentry.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(vocabentry.FieldExample, field.TypeString, value)
	}
	if _u.mutation.ExampleCleared() {
		_spec.ClearField(vocabentry.FieldExample, field.TypeString)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(vocabentry.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(vocabentry.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interval(); ok {
		_spec.SetField(vocabentry.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterval(); ok {
		_spec.AddField(vocabentry.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(vocabentry.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(vocabentry.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(vocabentry.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(vocabentry.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(vocabentry.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(vocabentry.FieldNextReviewAt, field.TypeTime)
	}
	_node = &VocabEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
