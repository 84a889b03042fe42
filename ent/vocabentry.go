// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/inkwell/ent/vocabentry"
	"github.com/google/uuid"
)

// VocabEntry is the model entity for the VocabEntry schema.
type VocabEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Word holds the value of the "word" field.
	Word string `json:"word,omitempty"`
	// Definition holds the value of the "definition" field.
	Definition string `json:"definition,omitempty"`
	// Example holds the value of the "example" field.
	Example string `json:"example,omitempty"`
	// Difficulty multiplier, floored at 1.3 by the scheduler
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Current review spacing in days
	Interval int `json:"interval,omitempty"`
	// ReviewCount holds the value of the "review_count" field.
	ReviewCount int `json:"review_count,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// Absent until the first review; absent means due immediately
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocabEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabentry.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case vocabentry.FieldInterval, vocabentry.FieldReviewCount:
			values[i] = new(sql.NullInt64)
		case vocabentry.FieldWord, vocabentry.FieldDefinition, vocabentry.FieldExample:
			values[i] = new(sql.NullString)
		case vocabentry.FieldLastReviewedAt, vocabentry.FieldNextReviewAt, vocabentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case vocabentry.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocabEntry fields.
func (_m *VocabEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vocabentry.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case vocabentry.FieldDefinition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field definition", values[i])
			} else if value.Valid {
				_m.Definition = value.String
			}
		case vocabentry.FieldExample:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example", values[i])
			} else if value.Valid {
				_m.Example = value.String
			}
		case vocabentry.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case vocabentry.FieldInterval:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval", values[i])
			} else if value.Valid {
				_m.Interval = int(value.Int64)
			}
		case vocabentry.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case vocabentry.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case vocabentry.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = new(time.Time)
				*_m.NextReviewAt = value.Time
			}
		case vocabentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VocabEntry.
// This includes values selected through modifiers, order, etc.
func (_m *VocabEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VocabEntry.
// Note that you need to call VocabEntry.Unwrap() before calling this method if this VocabEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VocabEntry) Update() *VocabEntryUpdateOne {
	return NewVocabEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VocabEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VocabEntry) Unwrap() *VocabEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocabEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VocabEntry) String() string {
	var builder strings.Builder
	builder.WriteString("VocabEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("definition=")
	builder.WriteString(_m.Definition)
	builder.WriteString(", ")
	builder.WriteString("example=")
	builder.WriteString(_m.Example)
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interval))
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextReviewAt; v != nil {
		builder.WriteString("next_review_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VocabEntries is a parsable slice of VocabEntry.
type VocabEntries []*VocabEntry
