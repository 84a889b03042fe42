// Code generated by ent, DO NOT EDIT.

package writing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the writing type in the database.
	Label = "writing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldOverallRank holds the string denoting the overall_rank field in the database.
	FieldOverallRank = "overall_rank"
	// FieldGrammarRank holds the string denoting the grammar_rank field in the database.
	FieldGrammarRank = "grammar_rank"
	// FieldVocabularyRank holds the string denoting the vocabulary_rank field in the database.
	FieldVocabularyRank = "vocabulary_rank"
	// FieldStructureRank holds the string denoting the structure_rank field in the database.
	FieldStructureRank = "structure_rank"
	// FieldContentRank holds the string denoting the content_rank field in the database.
	FieldContentRank = "content_rank"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the writing in the database.
	Table = "writings"
)

// Columns holds all SQL columns for writing fields.
var Columns = []string{
	FieldID,
	FieldPrompt,
	FieldBody,
	FieldOverallRank,
	FieldGrammarRank,
	FieldVocabularyRank,
	FieldStructureRank,
	FieldContentRank,
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
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
	// OverallRankValidator is a validator for the "overall_rank" field. It is called by the builders before save.
	OverallRankValidator func(string) error
	// GrammarRankValidator is a validator for the "grammar_rank" field. It is called by the builders before save.
	GrammarRankValidator func(string) error
	// VocabularyRankValidator is a validator for the "vocabulary_rank" field. It is called by the builders before save.
	VocabularyRankValidator func(string) error
	// StructureRankValidator is a validator for the "structure_rank" field. It is called by the builders before save.
	StructureRankValidator func(string) error
	// ContentRankValidator is a validator for the "content_rank" field. It is called by the builders before save.
	ContentRankValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Writing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByOverallRank orders the results by the overall_rank field.
func ByOverallRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallRank, opts...).ToFunc()
}

// ByGrammarRank orders the results by the grammar_rank field.
func ByGrammarRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrammarRank, opts...).ToFunc()
}

// ByVocabularyRank orders the results by the vocabulary_rank field.
func ByVocabularyRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVocabularyRank, opts...).ToFunc()
}

// ByStructureRank orders the results by the structure_rank field.
func ByStructureRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStructureRank, opts...).ToFunc()
}

// ByContentRank orders the results by the content_rank field.
func ByContentRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentRank, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
