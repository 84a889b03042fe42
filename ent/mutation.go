// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/inkwell/ent/predicate"
	"github.com/abhisek/inkwell/ent/reviewevent"
	"github.com/abhisek/inkwell/ent/vocabentry"
	"github.com/abhisek/inkwell/ent/writing"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeReviewEvent = "ReviewEvent"
	TypeVocabEntry  = "VocabEntry"
	TypeWriting     = "Writing"
)

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	entry_id           *string
	word               *string
	rating             *string
	ease_before        *float64
	addease_before     *float64
	ease_after         *float64
	addease_after      *float64
	interval_before    *int
	addinterval_before *int
	interval_after     *int
	addinterval_after  *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ReviewEvent, error)
	predicates         []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReviewEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReviewEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReviewEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReviewEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReviewEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReviewEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEntryID sets the "entry_id" field.
func (m *ReviewEventMutation) SetEntryID(s string) {
	m.entry_id = &s
}

// EntryID returns the value of the "entry_id" field in the mutation.
func (m *ReviewEventMutation) EntryID() (r string, exists bool) {
	v := m.entry_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryID returns the old "entry_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldEntryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryID: %w", err)
	}
	return oldValue.EntryID, nil
}

// ResetEntryID resets all changes to the "entry_id" field.
func (m *ReviewEventMutation) ResetEntryID() {
	m.entry_id = nil
}

// SetWord sets the "word" field.
func (m *ReviewEventMutation) SetWord(s string) {
	m.word = &s
}

// Word returns the value of the "word" field in the mutation.
func (m *ReviewEventMutation) Word() (r string, exists bool) {
	v := m.word
	if v == nil {
		return
	}
	return *v, true
}

// OldWord returns the old "word" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldWord(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWord: %w", err)
	}
	return oldValue.Word, nil
}

// ResetWord resets all changes to the "word" field.
func (m *ReviewEventMutation) ResetWord() {
	m.word = nil
}

// SetRating sets the "rating" field.
func (m *ReviewEventMutation) SetRating(s string) {
	m.rating = &s
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewEventMutation) Rating() (r string, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldRating(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewEventMutation) ResetRating() {
	m.rating = nil
}

// SetEaseBefore sets the "ease_before" field.
func (m *ReviewEventMutation) SetEaseBefore(f float64) {
	m.ease_before = &f
	m.addease_before = nil
}

// EaseBefore returns the value of the "ease_before" field in the mutation.
func (m *ReviewEventMutation) EaseBefore() (r float64, exists bool) {
	v := m.ease_before
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseBefore returns the old "ease_before" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldEaseBefore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseBefore: %w", err)
	}
	return oldValue.EaseBefore, nil
}

// AddEaseBefore adds f to the "ease_before" field.
func (m *ReviewEventMutation) AddEaseBefore(f float64) {
	if m.addease_before != nil {
		*m.addease_before += f
	} else {
		m.addease_before = &f
	}
}

// AddedEaseBefore returns the value that was added to the "ease_before" field in this mutation.
func (m *ReviewEventMutation) AddedEaseBefore() (r float64, exists bool) {
	v := m.addease_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseBefore resets all changes to the "ease_before" field.
func (m *ReviewEventMutation) ResetEaseBefore() {
	m.ease_before = nil
	m.addease_before = nil
}

// SetEaseAfter sets the "ease_after" field.
func (m *ReviewEventMutation) SetEaseAfter(f float64) {
	m.ease_after = &f
	m.addease_after = nil
}

// EaseAfter returns the value of the "ease_after" field in the mutation.
func (m *ReviewEventMutation) EaseAfter() (r float64, exists bool) {
	v := m.ease_after
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseAfter returns the old "ease_after" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldEaseAfter(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseAfter: %w", err)
	}
	return oldValue.EaseAfter, nil
}

// AddEaseAfter adds f to the "ease_after" field.
func (m *ReviewEventMutation) AddEaseAfter(f float64) {
	if m.addease_after != nil {
		*m.addease_after += f
	} else {
		m.addease_after = &f
	}
}

// AddedEaseAfter returns the value that was added to the "ease_after" field in this mutation.
func (m *ReviewEventMutation) AddedEaseAfter() (r float64, exists bool) {
	v := m.addease_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseAfter resets all changes to the "ease_after" field.
func (m *ReviewEventMutation) ResetEaseAfter() {
	m.ease_after = nil
	m.addease_after = nil
}

// SetIntervalBefore sets the "interval_before" field.
func (m *ReviewEventMutation) SetIntervalBefore(i int) {
	m.interval_before = &i
	m.addinterval_before = nil
}

// IntervalBefore returns the value of the "interval_before" field in the mutation.
func (m *ReviewEventMutation) IntervalBefore() (r int, exists bool) {
	v := m.interval_before
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalBefore returns the old "interval_before" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldIntervalBefore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalBefore: %w", err)
	}
	return oldValue.IntervalBefore, nil
}

// AddIntervalBefore adds i to the "interval_before" field.
func (m *ReviewEventMutation) AddIntervalBefore(i int) {
	if m.addinterval_before != nil {
		*m.addinterval_before += i
	} else {
		m.addinterval_before = &i
	}
}

// AddedIntervalBefore returns the value that was added to the "interval_before" field in this mutation.
func (m *ReviewEventMutation) AddedIntervalBefore() (r int, exists bool) {
	v := m.addinterval_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalBefore resets all changes to the "interval_before" field.
func (m *ReviewEventMutation) ResetIntervalBefore() {
	m.interval_before = nil
	m.addinterval_before = nil
}

// SetIntervalAfter sets the "interval_after" field.
func (m *ReviewEventMutation) SetIntervalAfter(i int) {
	m.interval_after = &i
	m.addinterval_after = nil
}

// IntervalAfter returns the value of the "interval_after" field in the mutation.
func (m *ReviewEventMutation) IntervalAfter() (r int, exists bool) {
	v := m.interval_after
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalAfter returns the old "interval_after" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldIntervalAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalAfter: %w", err)
	}
	return oldValue.IntervalAfter, nil
}

// AddIntervalAfter adds i to the "interval_after" field.
func (m *ReviewEventMutation) AddIntervalAfter(i int) {
	if m.addinterval_after != nil {
		*m.addinterval_after += i
	} else {
		m.addinterval_after = &i
	}
}

// AddedIntervalAfter returns the value that was added to the "interval_after" field in this mutation.
func (m *ReviewEventMutation) AddedIntervalAfter() (r int, exists bool) {
	v := m.addinterval_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalAfter resets all changes to the "interval_after" field.
func (m *ReviewEventMutation) ResetIntervalAfter() {
	m.interval_after = nil
	m.addinterval_after = nil
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewevent.FieldTimestamp)
	}
	if m.entry_id != nil {
		fields = append(fields, reviewevent.FieldEntryID)
	}
	if m.word != nil {
		fields = append(fields, reviewevent.FieldWord)
	}
	if m.rating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.ease_before != nil {
		fields = append(fields, reviewevent.FieldEaseBefore)
	}
	if m.ease_after != nil {
		fields = append(fields, reviewevent.FieldEaseAfter)
	}
	if m.interval_before != nil {
		fields = append(fields, reviewevent.FieldIntervalBefore)
	}
	if m.interval_after != nil {
		fields = append(fields, reviewevent.FieldIntervalAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.Sequence()
	case reviewevent.FieldTimestamp:
		return m.Timestamp()
	case reviewevent.FieldEntryID:
		return m.EntryID()
	case reviewevent.FieldWord:
		return m.Word()
	case reviewevent.FieldRating:
		return m.Rating()
	case reviewevent.FieldEaseBefore:
		return m.EaseBefore()
	case reviewevent.FieldEaseAfter:
		return m.EaseAfter()
	case reviewevent.FieldIntervalBefore:
		return m.IntervalBefore()
	case reviewevent.FieldIntervalAfter:
		return m.IntervalAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldSequence:
		return m.OldSequence(ctx)
	case reviewevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case reviewevent.FieldEntryID:
		return m.OldEntryID(ctx)
	case reviewevent.FieldWord:
		return m.OldWord(ctx)
	case reviewevent.FieldRating:
		return m.OldRating(ctx)
	case reviewevent.FieldEaseBefore:
		return m.OldEaseBefore(ctx)
	case reviewevent.FieldEaseAfter:
		return m.OldEaseAfter(ctx)
	case reviewevent.FieldIntervalBefore:
		return m.OldIntervalBefore(ctx)
	case reviewevent.FieldIntervalAfter:
		return m.OldIntervalAfter(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case reviewevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case reviewevent.FieldEntryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryID(v)
		return nil
	case reviewevent.FieldWord:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWord(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case reviewevent.FieldEaseBefore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseBefore(v)
		return nil
	case reviewevent.FieldEaseAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseAfter(v)
		return nil
	case reviewevent.FieldIntervalBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalBefore(v)
		return nil
	case reviewevent.FieldIntervalAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalAfter(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.addease_before != nil {
		fields = append(fields, reviewevent.FieldEaseBefore)
	}
	if m.addease_after != nil {
		fields = append(fields, reviewevent.FieldEaseAfter)
	}
	if m.addinterval_before != nil {
		fields = append(fields, reviewevent.FieldIntervalBefore)
	}
	if m.addinterval_after != nil {
		fields = append(fields, reviewevent.FieldIntervalAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.AddedSequence()
	case reviewevent.FieldEaseBefore:
		return m.AddedEaseBefore()
	case reviewevent.FieldEaseAfter:
		return m.AddedEaseAfter()
	case reviewevent.FieldIntervalBefore:
		return m.AddedIntervalBefore()
	case reviewevent.FieldIntervalAfter:
		return m.AddedIntervalAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case reviewevent.FieldEaseBefore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseBefore(v)
		return nil
	case reviewevent.FieldEaseAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseAfter(v)
		return nil
	case reviewevent.FieldIntervalBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalBefore(v)
		return nil
	case reviewevent.FieldIntervalAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalAfter(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldSequence:
		m.ResetSequence()
		return nil
	case reviewevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case reviewevent.FieldEntryID:
		m.ResetEntryID()
		return nil
	case reviewevent.FieldWord:
		m.ResetWord()
		return nil
	case reviewevent.FieldRating:
		m.ResetRating()
		return nil
	case reviewevent.FieldEaseBefore:
		m.ResetEaseBefore()
		return nil
	case reviewevent.FieldEaseAfter:
		m.ResetEaseAfter()
		return nil
	case reviewevent.FieldIntervalBefore:
		m.ResetIntervalBefore()
		return nil
	case reviewevent.FieldIntervalAfter:
		m.ResetIntervalAfter()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}

// VocabEntryMutation represents an operation that mutates the VocabEntry nodes in the graph.
type VocabEntryMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	word             *string
	definition       *string
	example          *string
	ease_factor      *float64
	addease_factor   *float64
	interval         *int
	addinterval      *int
	review_count     *int
	addreview_count  *int
	last_reviewed_at *time.Time
	next_review_at   *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*VocabEntry, error)
	predicates       []predicate.VocabEntry
}

var _ ent.Mutation = (*VocabEntryMutation)(nil)

// vocabentryOption allows management of the mutation configuration using functional options.
type vocabentryOption func(*VocabEntryMutation)

// newVocabEntryMutation creates new mutation for the VocabEntry entity.
func newVocabEntryMutation(c config, op Op, opts ...vocabentryOption) *VocabEntryMutation {
	m := &VocabEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeVocabEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVocabEntryID sets the ID field of the mutation.
func withVocabEntryID(id uuid.UUID) vocabentryOption {
	return func(m *VocabEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *VocabEntry
		)
		m.oldValue = func(ctx context.Context) (*VocabEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VocabEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVocabEntry sets the old VocabEntry of the mutation.
func withVocabEntry(node *VocabEntry) vocabentryOption {
	return func(m *VocabEntryMutation) {
		m.oldValue = func(context.Context) (*VocabEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VocabEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VocabEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VocabEntry entities.
func (m *VocabEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VocabEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VocabEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VocabEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWord sets the "word" field.
func (m *VocabEntryMutation) SetWord(s string) {
	m.word = &s
}

// Word returns the value of the "word" field in the mutation.
func (m *VocabEntryMutation) Word() (r string, exists bool) {
	v := m.word
	if v == nil {
		return
	}
	return *v, true
}

// OldWord returns the old "word" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldWord(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWord: %w", err)
	}
	return oldValue.Word, nil
}

// ResetWord resets all changes to the "word" field.
func (m *VocabEntryMutation) ResetWord() {
	m.word = nil
}

// SetDefinition sets the "definition" field.
func (m *VocabEntryMutation) SetDefinition(s string) {
	m.definition = &s
}

// Definition returns the value of the "definition" field in the mutation.
func (m *VocabEntryMutation) Definition() (r string, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldDefinition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// ResetDefinition resets all changes to the "definition" field.
func (m *VocabEntryMutation) ResetDefinition() {
	m.definition = nil
}

// SetExample sets the "example" field.
func (m *VocabEntryMutation) SetExample(s string) {
	m.example = &s
}

// Example returns the value of the "example" field in the mutation.
func (m *VocabEntryMutation) Example() (r string, exists bool) {
	v := m.example
	if v == nil {
		return
	}
	return *v, true
}

// OldExample returns the old "example" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldExample(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExample: %w", err)
	}
	return oldValue.Example, nil
}

// ClearExample clears the value of the "example" field.
func (m *VocabEntryMutation) ClearExample() {
	m.example = nil
	m.clearedFields[vocabentry.FieldExample] = struct{}{}
}

// ExampleCleared returns if the "example" field was cleared in this mutation.
func (m *VocabEntryMutation) ExampleCleared() bool {
	_, ok := m.clearedFields[vocabentry.FieldExample]
	return ok
}

// ResetExample resets all changes to the "example" field.
func (m *VocabEntryMutation) ResetExample() {
	m.example = nil
	delete(m.clearedFields, vocabentry.FieldExample)
}

// SetEaseFactor sets the "ease_factor" field.
func (m *VocabEntryMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *VocabEntryMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *VocabEntryMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *VocabEntryMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *VocabEntryMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetInterval sets the "interval" field.
func (m *VocabEntryMutation) SetInterval(i int) {
	m.interval = &i
	m.addinterval = nil
}

// Interval returns the value of the "interval" field in the mutation.
func (m *VocabEntryMutation) Interval() (r int, exists bool) {
	v := m.interval
	if v == nil {
		return
	}
	return *v, true
}

// OldInterval returns the old "interval" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldInterval(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterval: %w", err)
	}
	return oldValue.Interval, nil
}

// AddInterval adds i to the "interval" field.
func (m *VocabEntryMutation) AddInterval(i int) {
	if m.addinterval != nil {
		*m.addinterval += i
	} else {
		m.addinterval = &i
	}
}

// AddedInterval returns the value that was added to the "interval" field in this mutation.
func (m *VocabEntryMutation) AddedInterval() (r int, exists bool) {
	v := m.addinterval
	if v == nil {
		return
	}
	return *v, true
}

// ResetInterval resets all changes to the "interval" field.
func (m *VocabEntryMutation) ResetInterval() {
	m.interval = nil
	m.addinterval = nil
}

// SetReviewCount sets the "review_count" field.
func (m *VocabEntryMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *VocabEntryMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *VocabEntryMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *VocabEntryMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *VocabEntryMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *VocabEntryMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *VocabEntryMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldLastReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *VocabEntryMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[vocabentry.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *VocabEntryMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[vocabentry.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *VocabEntryMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, vocabentry.FieldLastReviewedAt)
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *VocabEntryMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *VocabEntryMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldNextReviewAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (m *VocabEntryMutation) ClearNextReviewAt() {
	m.next_review_at = nil
	m.clearedFields[vocabentry.FieldNextReviewAt] = struct{}{}
}

// NextReviewAtCleared returns if the "next_review_at" field was cleared in this mutation.
func (m *VocabEntryMutation) NextReviewAtCleared() bool {
	_, ok := m.clearedFields[vocabentry.FieldNextReviewAt]
	return ok
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *VocabEntryMutation) ResetNextReviewAt() {
	m.next_review_at = nil
	delete(m.clearedFields, vocabentry.FieldNextReviewAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *VocabEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VocabEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VocabEntry entity.
// If the VocabEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VocabEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VocabEntryMutation builder.
func (m *VocabEntryMutation) Where(ps ...predicate.VocabEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VocabEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VocabEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VocabEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VocabEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VocabEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VocabEntry).
func (m *VocabEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VocabEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.word != nil {
		fields = append(fields, vocabentry.FieldWord)
	}
	if m.definition != nil {
		fields = append(fields, vocabentry.FieldDefinition)
	}
	if m.example != nil {
		fields = append(fields, vocabentry.FieldExample)
	}
	if m.ease_factor != nil {
		fields = append(fields, vocabentry.FieldEaseFactor)
	}
	if m.interval != nil {
		fields = append(fields, vocabentry.FieldInterval)
	}
	if m.review_count != nil {
		fields = append(fields, vocabentry.FieldReviewCount)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, vocabentry.FieldLastReviewedAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, vocabentry.FieldNextReviewAt)
	}
	if m.created_at != nil {
		fields = append(fields, vocabentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VocabEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vocabentry.FieldWord:
		return m.Word()
	case vocabentry.FieldDefinition:
		return m.Definition()
	case vocabentry.FieldExample:
		return m.Example()
	case vocabentry.FieldEaseFactor:
		return m.EaseFactor()
	case vocabentry.FieldInterval:
		return m.Interval()
	case vocabentry.FieldReviewCount:
		return m.ReviewCount()
	case vocabentry.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case vocabentry.FieldNextReviewAt:
		return m.NextReviewAt()
	case vocabentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VocabEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vocabentry.FieldWord:
		return m.OldWord(ctx)
	case vocabentry.FieldDefinition:
		return m.OldDefinition(ctx)
	case vocabentry.FieldExample:
		return m.OldExample(ctx)
	case vocabentry.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case vocabentry.FieldInterval:
		return m.OldInterval(ctx)
	case vocabentry.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case vocabentry.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case vocabentry.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	case vocabentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VocabEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vocabentry.FieldWord:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWord(v)
		return nil
	case vocabentry.FieldDefinition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case vocabentry.FieldExample:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExample(v)
		return nil
	case vocabentry.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case vocabentry.FieldInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterval(v)
		return nil
	case vocabentry.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case vocabentry.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case vocabentry.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	case vocabentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VocabEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VocabEntryMutation) AddedFields() []string {
	var fields []string
	if m.addease_factor != nil {
		fields = append(fields, vocabentry.FieldEaseFactor)
	}
	if m.addinterval != nil {
		fields = append(fields, vocabentry.FieldInterval)
	}
	if m.addreview_count != nil {
		fields = append(fields, vocabentry.FieldReviewCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VocabEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vocabentry.FieldEaseFactor:
		return m.AddedEaseFactor()
	case vocabentry.FieldInterval:
		return m.AddedInterval()
	case vocabentry.FieldReviewCount:
		return m.AddedReviewCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vocabentry.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case vocabentry.FieldInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInterval(v)
		return nil
	case vocabentry.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	}
	return fmt.Errorf("unknown VocabEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VocabEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vocabentry.FieldExample) {
		fields = append(fields, vocabentry.FieldExample)
	}
	if m.FieldCleared(vocabentry.FieldLastReviewedAt) {
		fields = append(fields, vocabentry.FieldLastReviewedAt)
	}
	if m.FieldCleared(vocabentry.FieldNextReviewAt) {
		fields = append(fields, vocabentry.FieldNextReviewAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VocabEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VocabEntryMutation) ClearField(name string) error {
	switch name {
	case vocabentry.FieldExample:
		m.ClearExample()
		return nil
	case vocabentry.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	case vocabentry.FieldNextReviewAt:
		m.ClearNextReviewAt()
		return nil
	}
	return fmt.Errorf("unknown VocabEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VocabEntryMutation) ResetField(name string) error {
	switch name {
	case vocabentry.FieldWord:
		m.ResetWord()
		return nil
	case vocabentry.FieldDefinition:
		m.ResetDefinition()
		return nil
	case vocabentry.FieldExample:
		m.ResetExample()
		return nil
	case vocabentry.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case vocabentry.FieldInterval:
		m.ResetInterval()
		return nil
	case vocabentry.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case vocabentry.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case vocabentry.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	case vocabentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VocabEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VocabEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VocabEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VocabEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VocabEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VocabEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VocabEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VocabEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VocabEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VocabEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VocabEntry edge %s", name)
}

// WritingMutation represents an operation that mutates the Writing nodes in the graph.
type WritingMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	prompt          *string
	body            *string
	overall_rank    *string
	grammar_rank    *string
	vocabulary_rank *string
	structure_rank  *string
	content_rank    *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Writing, error)
	predicates      []predicate.Writing
}

var _ ent.Mutation = (*WritingMutation)(nil)

// writingOption allows management of the mutation configuration using functional options.
type writingOption func(*WritingMutation)

// newWritingMutation creates new mutation for the Writing entity.
func newWritingMutation(c config, op Op, opts ...writingOption) *WritingMutation {
	m := &WritingMutation{
		config:        c,
		op:            op,
		typ:           TypeWriting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWritingID sets the ID field of the mutation.
func withWritingID(id uuid.UUID) writingOption {
	return func(m *WritingMutation) {
		var (
			err   error
			once  sync.Once
			value *Writing
		)
		m.oldValue = func(ctx context.Context) (*Writing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Writing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWriting sets the old Writing of the mutation.
func withWriting(node *Writing) writingOption {
	return func(m *WritingMutation) {
		m.oldValue = func(context.Context) (*Writing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WritingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WritingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Writing entities.
func (m *WritingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WritingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WritingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Writing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrompt sets the "prompt" field.
func (m *WritingMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *WritingMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Writing entity.
// If the Writing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *WritingMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[writing.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *WritingMutation) PromptCleared() bool {
	_, ok := m.clearedFields[writing.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *WritingMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, writing.FieldPrompt)
}

// SetBody sets the "body" field.
func (m *WritingMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *WritingMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Writing entity.
// If the Writing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *WritingMutation) ResetBody() {
	m.body = nil
}

// SetOverallRank sets the "overall_rank" field.
func (m *WritingMutation) SetOverallRank(s string) {
	m.overall_rank = &s
}

// OverallRank returns the value of the "overall_rank" field in the mutation.
func (m *WritingMutation) OverallRank() (r string, exists bool) {
	v := m.overall_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallRank returns the old "overall_rank" field's value of the Writing entity.
// If the Writing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingMutation) OldOverallRank(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallRank: %w", err)
	}
	return oldValue.OverallRank, nil
}

// ResetOverallRank resets all changes to the "overall_rank" field.
func (m *WritingMutation) ResetOverallRank() {
	m.overall_rank = nil
}

// SetGrammarRank sets the "grammar_rank" field.
func (m *WritingMutation) SetGrammarRank(s string) {
	m.grammar_rank = &s
}

// GrammarRank returns the value of the "grammar_rank" field in the mutation.
func (m *WritingMutation) GrammarRank() (r string, exists bool) {
	v := m.grammar_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldGrammarRank returns the old "grammar_rank" field's value of the Writing entity.
// If the Writing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingMutation) OldGrammarRank(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrammarRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrammarRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrammarRank: %w", err)
	}
	return oldValue.GrammarRank, nil
}

// ResetGrammarRank resets all changes to the "grammar_rank" field.
func (m *WritingMutation) ResetGrammarRank() {
	m.grammar_rank = nil
}

// SetVocabularyRank sets the "vocabulary_rank" field.
func (m *WritingMutation) SetVocabularyRank(s string) {
	m.vocabulary_rank = &s
}

// VocabularyRank returns the value of the "vocabulary_rank" field in the mutation.
func (m *WritingMutation) VocabularyRank() (r string, exists bool) {
	v := m.vocabulary_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldVocabularyRank returns the old "vocabulary_rank" field's value of the Writing entity.
// If the Writing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingMutation) OldVocabularyRank(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVocabularyRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVocabularyRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVocabularyRank: %w", err)
	}
	return oldValue.VocabularyRank, nil
}

// ResetVocabularyRank resets all changes to the "vocabulary_rank" field.
func (m *WritingMutation) ResetVocabularyRank() {
	m.vocabulary_rank = nil
}

// SetStructureRank sets the "structure_rank" field.
func (m *WritingMutation) SetStructureRank(s string) {
	m.structure_rank = &s
}

// StructureRank returns the value of the "structure_rank" field in the mutation.
func (m *WritingMutation) StructureRank() (r string, exists bool) {
	v := m.structure_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldStructureRank returns the old "structure_rank" field's value of the Writing entity.
// If the Writing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingMutation) OldStructureRank(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructureRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructureRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructureRank: %w", err)
	}
	return oldValue.StructureRank, nil
}

// ResetStructureRank resets all changes to the "structure_rank" field.
func (m *WritingMutation) ResetStructureRank() {
	m.structure_rank = nil
}

// SetContentRank sets the "content_rank" field.
func (m *WritingMutation) SetContentRank(s string) {
	m.content_rank = &s
}

// ContentRank returns the value of the "content_rank" field in the mutation.
func (m *WritingMutation) ContentRank() (r string, exists bool) {
	v := m.content_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldContentRank returns the old "content_rank" field's value of the Writing entity.
// If the Writing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingMutation) OldContentRank(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentRank: %w", err)
	}
	return oldValue.ContentRank, nil
}

// ResetContentRank resets all changes to the "content_rank" field.
func (m *WritingMutation) ResetContentRank() {
	m.content_rank = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WritingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WritingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Writing entity.
// If the Writing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WritingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WritingMutation builder.
func (m *WritingMutation) Where(ps ...predicate.Writing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WritingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WritingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Writing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WritingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WritingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Writing).
func (m *WritingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WritingMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.prompt != nil {
		fields = append(fields, writing.FieldPrompt)
	}
	if m.body != nil {
		fields = append(fields, writing.FieldBody)
	}
	if m.overall_rank != nil {
		fields = append(fields, writing.FieldOverallRank)
	}
	if m.grammar_rank != nil {
		fields = append(fields, writing.FieldGrammarRank)
	}
	if m.vocabulary_rank != nil {
		fields = append(fields, writing.FieldVocabularyRank)
	}
	if m.structure_rank != nil {
		fields = append(fields, writing.FieldStructureRank)
	}
	if m.content_rank != nil {
		fields = append(fields, writing.FieldContentRank)
	}
	if m.created_at != nil {
		fields = append(fields, writing.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WritingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case writing.FieldPrompt:
		return m.Prompt()
	case writing.FieldBody:
		return m.Body()
	case writing.FieldOverallRank:
		return m.OverallRank()
	case writing.FieldGrammarRank:
		return m.GrammarRank()
	case writing.FieldVocabularyRank:
		return m.VocabularyRank()
	case writing.FieldStructureRank:
		return m.StructureRank()
	case writing.FieldContentRank:
		return m.ContentRank()
	case writing.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WritingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case writing.FieldPrompt:
		return m.OldPrompt(ctx)
	case writing.FieldBody:
		return m.OldBody(ctx)
	case writing.FieldOverallRank:
		return m.OldOverallRank(ctx)
	case writing.FieldGrammarRank:
		return m.OldGrammarRank(ctx)
	case writing.FieldVocabularyRank:
		return m.OldVocabularyRank(ctx)
	case writing.FieldStructureRank:
		return m.OldStructureRank(ctx)
	case writing.FieldContentRank:
		return m.OldContentRank(ctx)
	case writing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Writing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WritingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case writing.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case writing.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case writing.FieldOverallRank:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallRank(v)
		return nil
	case writing.FieldGrammarRank:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrammarRank(v)
		return nil
	case writing.FieldVocabularyRank:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVocabularyRank(v)
		return nil
	case writing.FieldStructureRank:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructureRank(v)
		return nil
	case writing.FieldContentRank:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentRank(v)
		return nil
	case writing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Writing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WritingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WritingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WritingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Writing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WritingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(writing.FieldPrompt) {
		fields = append(fields, writing.FieldPrompt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WritingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WritingMutation) ClearField(name string) error {
	switch name {
	case writing.FieldPrompt:
		m.ClearPrompt()
		return nil
	}
	return fmt.Errorf("unknown Writing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WritingMutation) ResetField(name string) error {
	switch name {
	case writing.FieldPrompt:
		m.ResetPrompt()
		return nil
	case writing.FieldBody:
		m.ResetBody()
		return nil
	case writing.FieldOverallRank:
		m.ResetOverallRank()
		return nil
	case writing.FieldGrammarRank:
		m.ResetGrammarRank()
		return nil
	case writing.FieldVocabularyRank:
		m.ResetVocabularyRank()
		return nil
	case writing.FieldStructureRank:
		m.ResetStructureRank()
		return nil
	case writing.FieldContentRank:
		m.ResetContentRank()
		return nil
	case writing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Writing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WritingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WritingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WritingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WritingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WritingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WritingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WritingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Writing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WritingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Writing edge %s", name)
}
