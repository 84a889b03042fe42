// Code generated by ent, DO NOT EDIT.

package vocabentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/inkwell/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldID, id))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldWord, v))
}

// Definition applies equality check predicate on the "definition" field. It's identical to DefinitionEQ.
func Definition(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldDefinition, v))
}

// Example applies equality check predicate on the "example" field. It's identical to ExampleEQ.
func Example(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldExample, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldEaseFactor, v))
}

// Interval applies equality check predicate on the "interval" field. It's identical to IntervalEQ.
func Interval(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldInterval, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldReviewCount, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldLastReviewedAt, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldNextReviewAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldWord, v))
}

// DefinitionEQ applies the EQ predicate on the "definition" field.
func DefinitionEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldDefinition, v))
}

// DefinitionNEQ applies the NEQ predicate on the "definition" field.
func DefinitionNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldDefinition, v))
}

// DefinitionIn applies the In predicate on the "definition" field.
func DefinitionIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldDefinition, vs...))
}

// DefinitionNotIn applies the NotIn predicate on the "definition" field.
func DefinitionNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldDefinition, vs...))
}

// DefinitionGT applies the GT predicate on the "definition" field.
func DefinitionGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldDefinition, v))
}

// DefinitionGTE applies the GTE predicate on the "definition" field.
func DefinitionGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldDefinition, v))
}

// DefinitionLT applies the LT predicate on the "definition" field.
func DefinitionLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldDefinition, v))
}

// DefinitionLTE applies the LTE predicate on the "definition" field.
func DefinitionLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldDefinition, v))
}

// DefinitionContains applies the Contains predicate on the "definition" field.
func DefinitionContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldDefinition, v))
}

// DefinitionHasPrefix applies the HasPrefix predicate on the "definition" field.
func DefinitionHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldDefinition, v))
}

// DefinitionHasSuffix applies the HasSuffix predicate on the "definition" field.
func DefinitionHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldDefinition, v))
}

// DefinitionEqualFold applies the EqualFold predicate on the "definition" field.
func DefinitionEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldDefinition, v))
}

// DefinitionContainsFold applies the ContainsFold predicate on the "definition" field.
func DefinitionContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldDefinition, v))
}

// ExampleEQ applies the EQ predicate on the "example" field.
func ExampleEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldExample, v))
}

// ExampleNEQ applies the NEQ predicate on the "example" field.
func ExampleNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldExample, v))
}

// ExampleIn applies the In predicate on the "example" field.
func ExampleIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldExample, vs...))
}

// ExampleNotIn applies the NotIn predicate on the "example" field.
func ExampleNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldExample, vs...))
}

// ExampleGT applies the GT predicate on the "example" field.
func ExampleGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldExample, v))
}

// ExampleGTE applies the GTE predicate on the "example" field.
func ExampleGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldExample, v))
}

// ExampleLT applies the LT predicate on the "example" field.
func ExampleLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldExample, v))
}

// ExampleLTE applies the LTE predicate on the "example" field.
func ExampleLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldExample, v))
}

// ExampleContains applies the Contains predicate on the "example" field.
func ExampleContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldExample, v))
}

// ExampleHasPrefix applies the HasPrefix predicate on the "example" field.
func ExampleHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldExample, v))
}

// ExampleHasSuffix applies the HasSuffix predicate on the "example" field.
func ExampleHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldExample, v))
}

// ExampleIsNil applies the IsNil predicate on the "example" field.
func ExampleIsNil() predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIsNull(FieldExample))
}

// ExampleNotNil applies the NotNil predicate on the "example" field.
func ExampleNotNil() predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotNull(FieldExample))
}

// ExampleEqualFold applies the EqualFold predicate on the "example" field.
func ExampleEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldExample, v))
}

// ExampleContainsFold applies the ContainsFold predicate on the "example" field.
func ExampleContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldExample, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalEQ applies the EQ predicate on the "interval" field.
func IntervalEQ(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldInterval, v))
}

// IntervalNEQ applies the NEQ predicate on the "interval" field.
func IntervalNEQ(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldInterval, v))
}

// IntervalIn applies the In predicate on the "interval" field.
func IntervalIn(vs ...int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldInterval, vs...))
}

// IntervalNotIn applies the NotIn predicate on the "interval" field.
func IntervalNotIn(vs ...int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldInterval, vs...))
}

// IntervalGT applies the GT predicate on the "interval" field.
func IntervalGT(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldInterval, v))
}

// IntervalGTE applies the GTE predicate on the "interval" field.
func IntervalGTE(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldInterval, v))
}

// IntervalLT applies the LT predicate on the "interval" field.
func IntervalLT(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldInterval, v))
}

// IntervalLTE applies the LTE predicate on the "interval" field.
func IntervalLTE(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldInterval, v))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldReviewCount, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotNull(FieldLastReviewedAt))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldNextReviewAt, v))
}

// NextReviewAtIsNil applies the IsNil predicate on the "next_review_at" field.
func NextReviewAtIsNil() predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIsNull(FieldNextReviewAt))
}

// NextReviewAtNotNil applies the NotNil predicate on the "next_review_at" field.
func NextReviewAtNotNil() predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotNull(FieldNextReviewAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.NotPredicates(p))
}
