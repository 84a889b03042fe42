// Code generated by ent, DO NOT EDIT.

package vocabentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the vocabentry type in the database.
	Label = "vocab_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWord holds the string denoting the word field in the database.
	FieldWord = "word"
	// FieldDefinition holds the string denoting the definition field in the database.
	FieldDefinition = "definition"
	// FieldExample holds the string denoting the example field in the database.
	FieldExample = "example"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldInterval holds the string denoting the interval field in the database.
	FieldInterval = "interval"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the vocabentry in the database.
	Table = "vocab_entries"
)

// Columns holds all SQL columns for vocabentry fields.
var Columns = []string{
	FieldID,
	FieldWord,
	FieldDefinition,
	FieldExample,
	FieldEaseFactor,
	FieldInterval,
	FieldReviewCount,
	FieldLastReviewedAt,
	FieldNextReviewAt,
	FieldCreatedAt,
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
	// WordValidator is a validator for the "word" field. It is called by the builders before save.
	WordValidator func(string) error
	// DefinitionValidator is a validator for the "definition" field. It is called by the builders before save.
	DefinitionValidator func(string) error
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// DefaultInterval holds the default value on creation for the "interval" field.
	DefaultInterval int
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	ReviewCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VocabEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWord orders the results by the word field.
func ByWord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWord, opts...).ToFunc()
}

// ByDefinition orders the results by the definition field.
func ByDefinition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefinition, opts...).ToFunc()
}

// ByExample orders the results by the example field.
func ByExample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExample, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByInterval orders the results by the interval field.
func ByInterval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterval, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
