// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/inkwell/ent/reviewevent"
	"github.com/abhisek/inkwell/ent/schema"
	"github.com/abhisek/inkwell/ent/vocabentry"
	"github.com/abhisek/inkwell/ent/writing"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescEntryID is the schema descriptor for entry_id field.
	revieweventDescEntryID := revieweventFields[0].Descriptor()
	// reviewevent.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	reviewevent.EntryIDValidator = revieweventDescEntryID.Validators[0].(func(string) error)
	// revieweventDescWord is the schema descriptor for word field.
	revieweventDescWord := revieweventFields[1].Descriptor()
	// reviewevent.WordValidator is a validator for the "word" field. It is called by the builders before save.
	reviewevent.WordValidator = revieweventDescWord.Validators[0].(func(string) error)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[2].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(string) error)
	vocabentryFields := schema.VocabEntry{}.Fields()
	_ = vocabentryFields
	// vocabentryDescWord is the schema descriptor for word field.
	vocabentryDescWord := vocabentryFields[1].Descriptor()
	// vocabentry.WordValidator is a validator for the "word" field. It is called by the builders before save.
	vocabentry.WordValidator = vocabentryDescWord.Validators[0].(func(string) error)
	// vocabentryDescDefinition is the schema descriptor for definition field.
	vocabentryDescDefinition := vocabentryFields[2].Descriptor()
	// vocabentry.DefinitionValidator is a validator for the "definition" field. It is called by the builders before save.
	vocabentry.DefinitionValidator = vocabentryDescDefinition.Validators[0].(func(string) error)
	// vocabentryDescEaseFactor is the schema descriptor for ease_factor field.
	vocabentryDescEaseFactor := vocabentryFields[4].Descriptor()
	// vocabentry.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	vocabentry.DefaultEaseFactor = vocabentryDescEaseFactor.Default.(float64)
	// vocabentryDescInterval is the schema descriptor for interval field.
	vocabentryDescInterval := vocabentryFields[5].Descriptor()
	// vocabentry.DefaultInterval holds the default value on creation for the interval field.
	vocabentry.DefaultInterval = vocabentryDescInterval.Default.(int)
	// vocabentryDescReviewCount is the schema descriptor for review_count field.
	vocabentryDescReviewCount := vocabentryFields[6].Descriptor()
	// vocabentry.DefaultReviewCount holds the default value on creation for the review_count field.
	vocabentry.DefaultReviewCount = vocabentryDescReviewCount.Default.(int)
	// vocabentry.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	vocabentry.ReviewCountValidator = vocabentryDescReviewCount.Validators[0].(func(int) error)
	// vocabentryDescCreatedAt is the schema descriptor for created_at field.
	vocabentryDescCreatedAt := vocabentryFields[9].Descriptor()
	// vocabentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	vocabentry.DefaultCreatedAt = vocabentryDescCreatedAt.Default.(func() time.Time)
	// vocabentryDescID is the schema descriptor for id field.
	vocabentryDescID := vocabentryFields[0].Descriptor()
	// vocabentry.DefaultID holds the default value on creation for the id field.
	vocabentry.DefaultID = vocabentryDescID.Default.(func() uuid.UUID)
	writingFields := schema.Writing{}.Fields()
	_ = writingFields
	// writingDescBody is the schema descriptor for body field.
	writingDescBody := writingFields[2].Descriptor()
	// writing.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	writing.BodyValidator = writingDescBody.Validators[0].(func(string) error)
	// writingDescOverallRank is the schema descriptor for overall_rank field.
	writingDescOverallRank := writingFields[3].Descriptor()
	// writing.OverallRankValidator is a validator for the "overall_rank" field. It is called by the builders before save.
	writing.OverallRankValidator = writingDescOverallRank.Validators[0].(func(string) error)
	// writingDescGrammarRank is the schema descriptor for grammar_rank field.
	writingDescGrammarRank := writingFields[4].Descriptor()
	// writing.GrammarRankValidator is a validator for the "grammar_rank" field. It is called by the builders before save.
	writing.GrammarRankValidator = writingDescGrammarRank.Validators[0].(func(string) error)
	// writingDescVocabularyRank is the schema descriptor for vocabulary_rank field.
	writingDescVocabularyRank := writingFields[5].Descriptor()
	// writing.VocabularyRankValidator is a validator for the "vocabulary_rank" field. It is called by the builders before save.
	writing.VocabularyRankValidator = writingDescVocabularyRank.Validators[0].(func(string) error)
	// writingDescStructureRank is the schema descriptor for structure_rank field.
	writingDescStructureRank := writingFields[6].Descriptor()
	// writing.StructureRankValidator is a validator for the "structure_rank" field. It is called by the builders before save.
	writing.StructureRankValidator = writingDescStructureRank.Validators[0].(func(string) error)
	// writingDescContentRank is the schema descriptor for content_rank field.
	writingDescContentRank := writingFields[7].Descriptor()
	// writing.ContentRankValidator is a validator for the "content_rank" field. It is called by the builders before save.
	writing.ContentRankValidator = writingDescContentRank.Validators[0].(func(string) error)
	// writingDescCreatedAt is the schema descriptor for created_at field.
	writingDescCreatedAt := writingFields[8].Descriptor()
	// writing.DefaultCreatedAt holds the default value on creation for the created_at field.
	writing.DefaultCreatedAt = writingDescCreatedAt.Default.(func() time.Time)
	// writingDescID is the schema descriptor for id field.
	writingDescID := writingFields[0].Descriptor()
	// writing.DefaultID holds the default value on creation for the id field.
	writing.DefaultID = writingDescID.Default.(func() uuid.UUID)
}
