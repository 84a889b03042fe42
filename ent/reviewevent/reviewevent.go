// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEntryID holds the string denoting the entry_id field in the database.
	FieldEntryID = "entry_id"
	// FieldWord holds the string denoting the word field in the database.
	FieldWord = "word"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldEaseBefore holds the string denoting the ease_before field in the database.
	FieldEaseBefore = "ease_before"
	// FieldEaseAfter holds the string denoting the ease_after field in the database.
	FieldEaseAfter = "ease_after"
	// FieldIntervalBefore holds the string denoting the interval_before field in the database.
	FieldIntervalBefore = "interval_before"
	// FieldIntervalAfter holds the string denoting the interval_after field in the database.
	FieldIntervalAfter = "interval_after"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEntryID,
	FieldWord,
	FieldRating,
	FieldEaseBefore,
	FieldEaseAfter,
	FieldIntervalBefore,
	FieldIntervalAfter,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	EntryIDValidator func(string) error
	// WordValidator is a validator for the "word" field. It is called by the builders before save.
	WordValidator func(string) error
	// RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	RatingValidator func(string) error
)

// OrderOption defines the ordering options for the ReviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEntryID orders the results by the entry_id field.
func ByEntryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryID, opts...).ToFunc()
}

// ByWord orders the results by the word field.
func ByWord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWord, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByEaseBefore orders the results by the ease_before field.
func ByEaseBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseBefore, opts...).ToFunc()
}

// ByEaseAfter orders the results by the ease_after field.
func ByEaseAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseAfter, opts...).ToFunc()
}

// ByIntervalBefore orders the results by the interval_before field.
func ByIntervalBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalBefore, opts...).ToFunc()
}

// ByIntervalAfter orders the results by the interval_after field.
func ByIntervalAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalAfter, opts...).ToFunc()
}
