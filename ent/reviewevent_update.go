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
	"github.com/abhisek/inkwell/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *ReviewEventUpdate) SetEntryID(v string) *ReviewEventUpdate {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableEntryID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetWord sets the "word" field.
func (_u *ReviewEventUpdate) SetWord(v string) *ReviewEventUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableWord(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdate) SetRating(v string) *ReviewEventUpdate {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableRating(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetEaseBefore sets the "ease_before" field.
func (_u *ReviewEventUpdate) SetEaseBefore(v float64) *ReviewEventUpdate {
	_u.mutation.ResetEaseBefore()
	_u.mutation.SetEaseBefore(v)
	return _u
}

// SetNillableEaseBefore sets the "ease_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableEaseBefore(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetEaseBefore(*v)
	}
	return _u
}

// AddEaseBefore adds value to the "ease_before" field.
func (_u *ReviewEventUpdate) AddEaseBefore(v float64) *ReviewEventUpdate {
	_u.mutation.AddEaseBefore(v)
	return _u
}

// SetEaseAfter sets the "ease_after" field.
func (_u *ReviewEventUpdate) SetEaseAfter(v float64) *ReviewEventUpdate {
	_u.mutation.ResetEaseAfter()
	_u.mutation.SetEaseAfter(v)
	return _u
}

// SetNillableEaseAfter sets the "ease_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableEaseAfter(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetEaseAfter(*v)
	}
	return _u
}

// AddEaseAfter adds value to the "ease_after" field.
func (_u *ReviewEventUpdate) AddEaseAfter(v float64) *ReviewEventUpdate {
	_u.mutation.AddEaseAfter(v)
	return _u
}

// SetIntervalBefore sets the "interval_before" field.
func (_u *ReviewEventUpdate) SetIntervalBefore(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalBefore()
	_u.mutation.SetIntervalBefore(v)
	return _u
}

// SetNillableIntervalBefore sets the "interval_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalBefore(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalBefore(*v)
	}
	return _u
}

// AddIntervalBefore adds value to the "interval_before" field.
func (_u *ReviewEventUpdate) AddIntervalBefore(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalBefore(v)
	return _u
}

// SetIntervalAfter sets the "interval_after" field.
func (_u *ReviewEventUpdate) SetIntervalAfter(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalAfter()
	_u.mutation.SetIntervalAfter(v)
	return _u
}

// SetNillableIntervalAfter sets the "interval_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalAfter(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalAfter(*v)
	}
	return _u
}

// AddIntervalAfter adds value to the "interval_after" field.
func (_u *ReviewEventUpdate) AddIntervalAfter(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalAfter(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.EntryID(); ok {
		if err := reviewevent.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Word(); ok {
		if err := reviewevent.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.word": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(reviewevent.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(reviewevent.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseBefore(); ok {
		_spec.SetField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseBefore(); ok {
		_spec.AddField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseAfter(); ok {
		_spec.SetField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseAfter(); ok {
		_spec.AddField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalBefore(); ok {
		_spec.SetField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalBefore(); ok {
		_spec.AddField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalAfter(); ok {
		_spec.SetField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalAfter(); ok {
		_spec.AddField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetEntryID sets the "entry_id" field.
func (_u *ReviewEventUpdateOne) SetEntryID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableEntryID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetWord sets the "word" field.
func (_u *ReviewEventUpdateOne) SetWord(v string) *ReviewEventUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableWord(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdateOne) SetRating(v string) *ReviewEventUpdateOne {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableRating(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetEaseBefore sets the "ease_before" field.
func (_u *ReviewEventUpdateOne) SetEaseBefore(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetEaseBefore()
	_u.mutation.SetEaseBefore(v)
	return _u
}

// SetNillableEaseBefore sets the "ease_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableEaseBefore(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetEaseBefore(*v)
	}
	return _u
}

// AddEaseBefore adds value to the "ease_before" field.
func (_u *ReviewEventUpdateOne) AddEaseBefore(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddEaseBefore(v)
	return _u
}

// SetEaseAfter sets the "ease_after" field.
func (_u *ReviewEventUpdateOne) SetEaseAfter(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetEaseAfter()
	_u.mutation.SetEaseAfter(v)
	return _u
}

// SetNillableEaseAfter sets the "ease_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableEaseAfter(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetEaseAfter(*v)
	}
	return _u
}

// AddEaseAfter adds value to the "ease_after" field.
func (_u *ReviewEventUpdateOne) AddEaseAfter(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddEaseAfter(v)
	return _u
}

// SetIntervalBefore sets the "interval_before" field.
func (_u *ReviewEventUpdateOne) SetIntervalBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalBefore()
	_u.mutation.SetIntervalBefore(v)
	return _u
}

// SetNillableIntervalBefore sets the "interval_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalBefore(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalBefore(*v)
	}
	return _u
}

// AddIntervalBefore adds value to the "interval_before" field.
func (_u *ReviewEventUpdateOne) AddIntervalBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalBefore(v)
	return _u
}

// SetIntervalAfter sets the "interval_after" field.
func (_u *ReviewEventUpdateOne) SetIntervalAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalAfter()
	_u.mutation.SetIntervalAfter(v)
	return _u
}

// SetNillableIntervalAfter sets the "interval_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalAfter(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalAfter(*v)
	}
	return _u
}

// AddIntervalAfter adds value to the "interval_after" field.
func (_u *ReviewEventUpdateOne) AddIntervalAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalAfter(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.EntryID(); ok {
		if err := reviewevent.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Word(); ok {
		if err := reviewevent.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.word": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(reviewevent.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(reviewevent.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseBefore(); ok {
		_spec.SetField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseBefore(); ok {
		_spec.AddField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseAfter(); ok {
		_spec.SetField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseAfter(); ok {
		_spec.AddField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalBefore(); ok {
		_spec.SetField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalBefore(); ok {
		_spec.AddField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalAfter(); ok {
		_spec.SetField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalAfter(); ok {
		_spec.AddField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
