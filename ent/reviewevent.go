// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/inkwell/ent/reviewevent"
)

// ReviewEvent is the model entity for the ReviewEvent schema.
type ReviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// EntryID holds the value of the "entry_id" field.
	EntryID string `json:"entry_id,omitempty"`
	// Word holds the value of the "word" field.
	Word string `json:"word,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating string `json:"rating,omitempty"`
	// EaseBefore holds the value of the "ease_before" field.
	EaseBefore float64 `json:"ease_before,omitempty"`
	// EaseAfter holds the value of the "ease_after" field.
	EaseAfter float64 `json:"ease_after,omitempty"`
	// IntervalBefore holds the value of the "interval_before" field.
	IntervalBefore int `json:"interval_before,omitempty"`
	// IntervalAfter holds the value of the "interval_after" field.
	IntervalAfter int `json:"interval_after,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldEaseBefore, reviewevent.FieldEaseAfter:
			values[i] = new(sql.NullFloat64)
		case reviewevent.FieldID, reviewevent.FieldSequence, reviewevent.FieldIntervalBefore, reviewevent.FieldIntervalAfter:
			values[i] = new(sql.NullInt64)
		case reviewevent.FieldEntryID, reviewevent.FieldWord, reviewevent.FieldRating:
			values[i] = new(sql.NullString)
		case reviewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewEvent fields.
func (_m *ReviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reviewevent.FieldEntryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_id", values[i])
			} else if value.Valid {
				_m.EntryID = value.String
			}
		case reviewevent.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case reviewevent.FieldRating:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.String
			}
		case reviewevent.FieldEaseBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_before", values[i])
			} else if value.Valid {
				_m.EaseBefore = value.Float64
			}
		case reviewevent.FieldEaseAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_after", values[i])
			} else if value.Valid {
				_m.EaseAfter = value.Float64
			}
		case reviewevent.FieldIntervalBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_before", values[i])
			} else if value.Valid {
				_m.IntervalBefore = int(value.Int64)
			}
		case reviewevent.FieldIntervalAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_after", values[i])
			} else if value.Valid {
				_m.IntervalAfter = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewEvent.
// Note that you need to call ReviewEvent.Unwrap() before calling this method if this ReviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewEvent) Update() *ReviewEventUpdateOne {
	return NewReviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewEvent) Unwrap() *ReviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("entry_id=")
	builder.WriteString(_m.EntryID)
	builder.WriteString(", ")
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(_m.Rating)
	builder.WriteString(", ")
	builder.WriteString("ease_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseBefore))
	builder.WriteString(", ")
	builder.WriteString("ease_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseAfter))
	builder.WriteString(", ")
	builder.WriteString("interval_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalBefore))
	builder.WriteString(", ")
	builder.WriteString("interval_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalAfter))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewEvents is a parsable slice of ReviewEvent.
type ReviewEvents []*ReviewEvent
