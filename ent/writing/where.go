// Code generated by ent, DO NOT EDIT.

package writing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/inkwell/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldID, id))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldPrompt, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldBody, v))
}

// OverallRank applies equality check predicate on the "overall_rank" field. It's identical to OverallRankEQ.
func OverallRank(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldOverallRank, v))
}

// GrammarRank applies equality check predicate on the "grammar_rank" field. It's identical to GrammarRankEQ.
func GrammarRank(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldGrammarRank, v))
}

// VocabularyRank applies equality check predicate on the "vocabulary_rank" field. It's identical to VocabularyRankEQ.
func VocabularyRank(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldVocabularyRank, v))
}

// StructureRank applies equality check predicate on the "structure_rank" field. It's identical to StructureRankEQ.
func StructureRank(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldStructureRank, v))
}

// ContentRank applies equality check predicate on the "content_rank" field. It's identical to ContentRankEQ.
func ContentRank(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldContentRank, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldCreatedAt, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptIsNil applies the IsNil predicate on the "prompt" field.
func PromptIsNil() predicate.Writing {
	return predicate.Writing(sql.FieldIsNull(FieldPrompt))
}

// PromptNotNil applies the NotNil predicate on the "prompt" field.
func PromptNotNil() predicate.Writing {
	return predicate.Writing(sql.FieldNotNull(FieldPrompt))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContainsFold(FieldPrompt, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContainsFold(FieldBody, v))
}

// OverallRankEQ applies the EQ predicate on the "overall_rank" field.
func OverallRankEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldOverallRank, v))
}

// OverallRankNEQ applies the NEQ predicate on the "overall_rank" field.
func OverallRankNEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldOverallRank, v))
}

// OverallRankIn applies the In predicate on the "overall_rank" field.
func OverallRankIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldOverallRank, vs...))
}

// OverallRankNotIn applies the NotIn predicate on the "overall_rank" field.
func OverallRankNotIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldOverallRank, vs...))
}

// OverallRankGT applies the GT predicate on the "overall_rank" field.
func OverallRankGT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldOverallRank, v))
}

// OverallRankGTE applies the GTE predicate on the "overall_rank" field.
func OverallRankGTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldOverallRank, v))
}

// OverallRankLT applies the LT predicate on the "overall_rank" field.
func OverallRankLT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldOverallRank, v))
}

// OverallRankLTE applies the LTE predicate on the "overall_rank" field.
func OverallRankLTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldOverallRank, v))
}

// OverallRankContains applies the Contains predicate on the "overall_rank" field.
func OverallRankContains(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContains(FieldOverallRank, v))
}

// OverallRankHasPrefix applies the HasPrefix predicate on the "overall_rank" field.
func OverallRankHasPrefix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasPrefix(FieldOverallRank, v))
}

// OverallRankHasSuffix applies the HasSuffix predicate on the "overall_rank" field.
func OverallRankHasSuffix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasSuffix(FieldOverallRank, v))
}

// OverallRankEqualFold applies the EqualFold predicate on the "overall_rank" field.
func OverallRankEqualFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEqualFold(FieldOverallRank, v))
}

// OverallRankContainsFold applies the ContainsFold predicate on the "overall_rank" field.
func OverallRankContainsFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContainsFold(FieldOverallRank, v))
}

// GrammarRankEQ applies the EQ predicate on the "grammar_rank" field.
func GrammarRankEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldGrammarRank, v))
}

// GrammarRankNEQ applies the NEQ predicate on the "grammar_rank" field.
func GrammarRankNEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldGrammarRank, v))
}

// GrammarRankIn applies the In predicate on the "grammar_rank" field.
func GrammarRankIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldGrammarRank, vs...))
}

// GrammarRankNotIn applies the NotIn predicate on the "grammar_rank" field.
func GrammarRankNotIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldGrammarRank, vs...))
}

// GrammarRankGT applies the GT predicate on the "grammar_rank" field.
func GrammarRankGT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldGrammarRank, v))
}

// GrammarRankGTE applies the GTE predicate on the "grammar_rank" field.
func GrammarRankGTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldGrammarRank, v))
}

// GrammarRankLT applies the LT predicate on the "grammar_rank" field.
func GrammarRankLT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldGrammarRank, v))
}

// GrammarRankLTE applies the LTE predicate on the "grammar_rank" field.
func GrammarRankLTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldGrammarRank, v))
}

// GrammarRankContains applies the Contains predicate on the "grammar_rank" field.
func GrammarRankContains(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContains(FieldGrammarRank, v))
}

// GrammarRankHasPrefix applies the HasPrefix predicate on the "grammar_rank" field.
func GrammarRankHasPrefix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasPrefix(FieldGrammarRank, v))
}

// GrammarRankHasSuffix applies the HasSuffix predicate on the "grammar_rank" field.
func GrammarRankHasSuffix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasSuffix(FieldGrammarRank, v))
}

// GrammarRankEqualFold applies the EqualFold predicate on the "grammar_rank" field.
func GrammarRankEqualFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEqualFold(FieldGrammarRank, v))
}

// GrammarRankContainsFold applies the ContainsFold predicate on the "grammar_rank" field.
func GrammarRankContainsFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContainsFold(FieldGrammarRank, v))
}

// VocabularyRankEQ applies the EQ predicate on the "vocabulary_rank" field.
func VocabularyRankEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldVocabularyRank, v))
}

// VocabularyRankNEQ applies the NEQ predicate on the "vocabulary_rank" field.
func VocabularyRankNEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldVocabularyRank, v))
}

// VocabularyRankIn applies the In predicate on the "vocabulary_rank" field.
func VocabularyRankIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldVocabularyRank, vs...))
}

// VocabularyRankNotIn applies the NotIn predicate on the "vocabulary_rank" field.
func VocabularyRankNotIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldVocabularyRank, vs...))
}

// VocabularyRankGT applies the GT predicate on the "vocabulary_rank" field.
func VocabularyRankGT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldVocabularyRank, v))
}

// VocabularyRankGTE applies the GTE predicate on the "vocabulary_rank" field.
func VocabularyRankGTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldVocabularyRank, v))
}

// VocabularyRankLT applies the LT predicate on the "vocabulary_rank" field.
func VocabularyRankLT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldVocabularyRank, v))
}

// VocabularyRankLTE applies the LTE predicate on the "vocabulary_rank" field.
func VocabularyRankLTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldVocabularyRank, v))
}

// VocabularyRankContains applies the Contains predicate on the "vocabulary_rank" field.
func VocabularyRankContains(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContains(FieldVocabularyRank, v))
}

// VocabularyRankHasPrefix applies the HasPrefix predicate on the "vocabulary_rank" field.
func VocabularyRankHasPrefix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasPrefix(FieldVocabularyRank, v))
}

// VocabularyRankHasSuffix applies the HasSuffix predicate on the "vocabulary_rank" field.
func VocabularyRankHasSuffix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasSuffix(FieldVocabularyRank, v))
}

// VocabularyRankEqualFold applies the EqualFold predicate on the "vocabulary_rank" field.
func VocabularyRankEqualFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEqualFold(FieldVocabularyRank, v))
}

// VocabularyRankContainsFold applies the ContainsFold predicate on the "vocabulary_rank" field.
func VocabularyRankContainsFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContainsFold(FieldVocabularyRank, v))
}

// StructureRankEQ applies the EQ predicate on the "structure_rank" field.
func StructureRankEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldStructureRank, v))
}

// StructureRankNEQ applies the NEQ predicate on the "structure_rank" field.
func StructureRankNEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldStructureRank, v))
}

// StructureRankIn applies the In predicate on the "structure_rank" field.
func StructureRankIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldStructureRank, vs...))
}

// StructureRankNotIn applies the NotIn predicate on the "structure_rank" field.
func StructureRankNotIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldStructureRank, vs...))
}

// StructureRankGT applies the GT predicate on the "structure_rank" field.
func StructureRankGT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldStructureRank, v))
}

// StructureRankGTE applies the GTE predicate on the "structure_rank" field.
func StructureRankGTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldStructureRank, v))
}

// StructureRankLT applies the LT predicate on the "structure_rank" field.
func StructureRankLT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldStructureRank, v))
}

// StructureRankLTE applies the LTE predicate on the "structure_rank" field.
func StructureRankLTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldStructureRank, v))
}

// StructureRankContains applies the Contains predicate on the "structure_rank" field.
func StructureRankContains(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContains(FieldStructureRank, v))
}

// StructureRankHasPrefix applies the HasPrefix predicate on the "structure_rank" field.
func StructureRankHasPrefix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasPrefix(FieldStructureRank, v))
}

// StructureRankHasSuffix applies the HasSuffix predicate on the "structure_rank" field.
func StructureRankHasSuffix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasSuffix(FieldStructureRank, v))
}

// StructureRankEqualFold applies the EqualFold predicate on the "structure_rank" field.
func StructureRankEqualFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEqualFold(FieldStructureRank, v))
}

// StructureRankContainsFold applies the ContainsFold predicate on the "structure_rank" field.
func StructureRankContainsFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContainsFold(FieldStructureRank, v))
}

// ContentRankEQ applies the EQ predicate on the "content_rank" field.
func ContentRankEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldContentRank, v))
}

// ContentRankNEQ applies the NEQ predicate on the "content_rank" field.
func ContentRankNEQ(v string) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldContentRank, v))
}

// ContentRankIn applies the In predicate on the "content_rank" field.
func ContentRankIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldContentRank, vs...))
}

// ContentRankNotIn applies the NotIn predicate on the "content_rank" field.
func ContentRankNotIn(vs ...string) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldContentRank, vs...))
}

// ContentRankGT applies the GT predicate on the "content_rank" field.
func ContentRankGT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldContentRank, v))
}

// ContentRankGTE applies the GTE predicate on the "content_rank" field.
func ContentRankGTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldContentRank, v))
}

// ContentRankLT applies the LT predicate on the "content_rank" field.
func ContentRankLT(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldContentRank, v))
}

// ContentRankLTE applies the LTE predicate on the "content_rank" field.
func ContentRankLTE(v string) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldContentRank, v))
}

// ContentRankContains applies the Contains predicate on the "content_rank" field.
func ContentRankContains(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContains(FieldContentRank, v))
}

// ContentRankHasPrefix applies the HasPrefix predicate on the "content_rank" field.
func ContentRankHasPrefix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasPrefix(FieldContentRank, v))
}

// ContentRankHasSuffix applies the HasSuffix predicate on the "content_rank" field.
func ContentRankHasSuffix(v string) predicate.Writing {
	return predicate.Writing(sql.FieldHasSuffix(FieldContentRank, v))
}

// ContentRankEqualFold applies the EqualFold predicate on the "content_rank" field.
func ContentRankEqualFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldEqualFold(FieldContentRank, v))
}

// ContentRankContainsFold applies the ContainsFold predicate on the "content_rank" field.
func ContentRankContainsFold(v string) predicate.Writing {
	return predicate.Writing(sql.FieldContainsFold(FieldContentRank, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Writing {
	return predicate.Writing(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Writing) predicate.Writing {
	return predicate.Writing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Writing) predicate.Writing {
	return predicate.Writing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Writing) predicate.Writing {
	return predicate.Writing(sql.NotPredicates(p))
}
