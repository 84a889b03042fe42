// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/inkwell/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EntryID applies equality check predicate on the "entry_id" field. It's identical to EntryIDEQ.
func EntryID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldEntryID, v))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldWord, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldRating, v))
}

// EaseBefore applies equality check predicate on the "ease_before" field. It's identical to EaseBeforeEQ.
func EaseBefore(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldEaseBefore, v))
}

// EaseAfter applies equality check predicate on the "ease_after" field. It's identical to EaseAfterEQ.
func EaseAfter(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldEaseAfter, v))
}

// IntervalBefore applies equality check predicate on the "interval_before" field. It's identical to IntervalBeforeEQ.
func IntervalBefore(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalBefore, v))
}

// IntervalAfter applies equality check predicate on the "interval_after" field. It's identical to IntervalAfterEQ.
func IntervalAfter(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EntryIDEQ applies the EQ predicate on the "entry_id" field.
func EntryIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldEntryID, v))
}

// EntryIDNEQ applies the NEQ predicate on the "entry_id" field.
func EntryIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldEntryID, v))
}

// EntryIDIn applies the In predicate on the "entry_id" field.
func EntryIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldEntryID, vs...))
}

// EntryIDNotIn applies the NotIn predicate on the "entry_id" field.
func EntryIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldEntryID, vs...))
}

// EntryIDGT applies the GT predicate on the "entry_id" field.
func EntryIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldEntryID, v))
}

// EntryIDGTE applies the GTE predicate on the "entry_id" field.
func EntryIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldEntryID, v))
}

// EntryIDLT applies the LT predicate on the "entry_id" field.
func EntryIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldEntryID, v))
}

// EntryIDLTE applies the LTE predicate on the "entry_id" field.
func EntryIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldEntryID, v))
}

// EntryIDContains applies the Contains predicate on the "entry_id" field.
func EntryIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldEntryID, v))
}

// EntryIDHasPrefix applies the HasPrefix predicate on the "entry_id" field.
func EntryIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldEntryID, v))
}

// EntryIDHasSuffix applies the HasSuffix predicate on the "entry_id" field.
func EntryIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldEntryID, v))
}

// EntryIDEqualFold applies the EqualFold predicate on the "entry_id" field.
func EntryIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldEntryID, v))
}

// EntryIDContainsFold applies the ContainsFold predicate on the "entry_id" field.
func EntryIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldEntryID, v))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldWord, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldRating, v))
}

// RatingContains applies the Contains predicate on the "rating" field.
func RatingContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldRating, v))
}

// RatingHasPrefix applies the HasPrefix predicate on the "rating" field.
func RatingHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldRating, v))
}

// RatingHasSuffix applies the HasSuffix predicate on the "rating" field.
func RatingHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldRating, v))
}

// RatingEqualFold applies the EqualFold predicate on the "rating" field.
func RatingEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldRating, v))
}

// RatingContainsFold applies the ContainsFold predicate on the "rating" field.
func RatingContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldRating, v))
}

// EaseBeforeEQ applies the EQ predicate on the "ease_before" field.
func EaseBeforeEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldEaseBefore, v))
}

// EaseBeforeNEQ applies the NEQ predicate on the "ease_before" field.
func EaseBeforeNEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldEaseBefore, v))
}

// EaseBeforeIn applies the In predicate on the "ease_before" field.
func EaseBeforeIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldEaseBefore, vs...))
}

// EaseBeforeNotIn applies the NotIn predicate on the "ease_before" field.
func EaseBeforeNotIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldEaseBefore, vs...))
}

// EaseBeforeGT applies the GT predicate on the "ease_before" field.
func EaseBeforeGT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldEaseBefore, v))
}

// EaseBeforeGTE applies the GTE predicate on the "ease_before" field.
func EaseBeforeGTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldEaseBefore, v))
}

// EaseBeforeLT applies the LT predicate on the "ease_before" field.
func EaseBeforeLT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldEaseBefore, v))
}

// EaseBeforeLTE applies the LTE predicate on the "ease_before" field.
func EaseBeforeLTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldEaseBefore, v))
}

// EaseAfterEQ applies the EQ predicate on the "ease_after" field.
func EaseAfterEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldEaseAfter, v))
}

// EaseAfterNEQ applies the NEQ predicate on the "ease_after" field.
func EaseAfterNEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldEaseAfter, v))
}

// EaseAfterIn applies the In predicate on the "ease_after" field.
func EaseAfterIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldEaseAfter, vs...))
}

// EaseAfterNotIn applies the NotIn predicate on the "ease_after" field.
func EaseAfterNotIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldEaseAfter, vs...))
}

// EaseAfterGT applies the GT predicate on the "ease_after" field.
func EaseAfterGT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldEaseAfter, v))
}

// EaseAfterGTE applies the GTE predicate on the "ease_after" field.
func EaseAfterGTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldEaseAfter, v))
}

// EaseAfterLT applies the LT predicate on the "ease_after" field.
func EaseAfterLT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldEaseAfter, v))
}

// EaseAfterLTE applies the LTE predicate on the "ease_after" field.
func EaseAfterLTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldEaseAfter, v))
}

// IntervalBeforeEQ applies the EQ predicate on the "interval_before" field.
func IntervalBeforeEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalBefore, v))
}

// IntervalBeforeNEQ applies the NEQ predicate on the "interval_before" field.
func IntervalBeforeNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldIntervalBefore, v))
}

// IntervalBeforeIn applies the In predicate on the "interval_before" field.
func IntervalBeforeIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldIntervalBefore, vs...))
}

// IntervalBeforeNotIn applies the NotIn predicate on the "interval_before" field.
func IntervalBeforeNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldIntervalBefore, vs...))
}

// IntervalBeforeGT applies the GT predicate on the "interval_before" field.
func IntervalBeforeGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldIntervalBefore, v))
}

// IntervalBeforeGTE applies the GTE predicate on the "interval_before" field.
func IntervalBeforeGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldIntervalBefore, v))
}

// IntervalBeforeLT applies the LT predicate on the "interval_before" field.
func IntervalBeforeLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldIntervalBefore, v))
}

// IntervalBeforeLTE applies the LTE predicate on the "interval_before" field.
func IntervalBeforeLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldIntervalBefore, v))
}

// IntervalAfterEQ applies the EQ predicate on the "interval_after" field.
func IntervalAfterEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalAfter, v))
}

// IntervalAfterNEQ applies the NEQ predicate on the "interval_after" field.
func IntervalAfterNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldIntervalAfter, v))
}

// IntervalAfterIn applies the In predicate on the "interval_after" field.
func IntervalAfterIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldIntervalAfter, vs...))
}

// IntervalAfterNotIn applies the NotIn predicate on the "interval_after" field.
func IntervalAfterNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldIntervalAfter, vs...))
}

// IntervalAfterGT applies the GT predicate on the "interval_after" field.
func IntervalAfterGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldIntervalAfter, v))
}

// IntervalAfterGTE applies the GTE predicate on the "interval_after" field.
func IntervalAfterGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldIntervalAfter, v))
}

// IntervalAfterLT applies the LT predicate on the "interval_after" field.
func IntervalAfterLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldIntervalAfter, v))
}

// IntervalAfterLTE applies the LTE predicate on the "interval_after" field.
func IntervalAfterLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldIntervalAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.NotPredicates(p))
}
