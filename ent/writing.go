// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/inkwell/ent/writing"
	"github.com/google/uuid"
)

// Writing is the model entity for the Writing schema.
type Writing struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// OverallRank holds the value of the "overall_rank" field.
	OverallRank string `json:"overall_rank,omitempty"`
	// GrammarRank holds the value of the "grammar_rank" field.
	GrammarRank string `json:"grammar_rank,omitempty"`
	// VocabularyRank holds the value of the "vocabulary_rank" field.
	VocabularyRank string `json:"vocabulary_rank,omitempty"`
	// StructureRank holds the value of the "structure_rank" field.
	StructureRank string `json:"structure_rank,omitempty"`
	// ContentRank holds the value of the "content_rank" field.
	ContentRank string `json:"content_rank,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Writing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case writing.FieldPrompt, writing.FieldBody, writing.FieldOverallRank, writing.FieldGrammarRank, writing.FieldVocabularyRank, writing.FieldStructureRank, writing.FieldContentRank:
			values[i] = new(sql.NullString)
		case writing.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case writing.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Writing fields.
func (_m *Writing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case writing.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case writing.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case writing.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case writing.FieldOverallRank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field overall_rank", values[i])
			} else if value.Valid {
				_m.OverallRank = value.String
			}
		case writing.FieldGrammarRank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grammar_rank", values[i])
			} else if value.Valid {
				_m.GrammarRank = value.String
			}
		case writing.FieldVocabularyRank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vocabulary_rank", values[i])
			} else if value.Valid {
				_m.VocabularyRank = value.String
			}
		case writing.FieldStructureRank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field structure_rank", values[i])
			} else if value.Valid {
				_m.StructureRank = value.String
			}
		case writing.FieldContentRank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_rank", values[i])
			} else if value.Valid {
				_m.ContentRank = value.String
			}
		case writing.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Writing.
// This includes values selected through modifiers, order, etc.
func (_m *Writing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Writing.
// Note that you need to call Writing.Unwrap() before calling this method if this Writing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Writing) Update() *WritingUpdateOne {
	return NewWritingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Writing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Writing) Unwrap() *Writing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Writing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Writing) String() string {
	var builder strings.Builder
	builder.WriteString("Writing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("overall_rank=")
	builder.WriteString(_m.OverallRank)
	builder.WriteString(", ")
	builder.WriteString("grammar_rank=")
	builder.WriteString(_m.GrammarRank)
	builder.WriteString(", ")
	builder.WriteString("vocabulary_rank=")
	builder.WriteString(_m.VocabularyRank)
	builder.WriteString(", ")
	builder.WriteString("structure_rank=")
	builder.WriteString(_m.StructureRank)
	builder.WriteString(", ")
	builder.WriteString("content_rank=")
	builder.WriteString(_m.ContentRank)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Writings is a parsable slice of Writing.
type Writings []*Writing
