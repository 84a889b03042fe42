package store

import (
	"context"
	"time"

	"github.com/abhisek/inkwell/internal/score"
	"github.com/abhisek/inkwell/internal/srs"
)

// Entry is a vocabulary deck entry as the rest of the application sees
// it: identity plus the scheduler's review state.
type Entry struct {
	ID         string
	Word       string
	Definition string
	Example    string
	Review     srs.ReviewState
}

// WritingRecord is a stored graded writing.
type WritingRecord struct {
	ID        string
	Prompt    string
	Body      string
	Feedback  score.Feedback
	CreatedAt time.Time
}

// Graded converts the record to the aggregator's input shape.
func (w *WritingRecord) Graded() score.GradedWriting {
	return score.GradedWriting{CreatedAt: w.CreatedAt, Feedback: w.Feedback}
}

// VocabRepo manages vocabulary entries and their review state.
type VocabRepo interface {
	// Add creates a new entry with default review state.
	Add(ctx context.Context, word, definition, example string) (*Entry, error)

	// Get returns the entry with the given ID.
	Get(ctx context.Context, id string) (*Entry, error)

	// ByWord returns the entry for a word, or nil if absent.
	ByWord(ctx context.Context, word string) (*Entry, error)

	// All returns every entry, in no particular order.
	All(ctx context.Context) ([]*Entry, error)

	// ApplyReview persists a scheduling update onto an entry.
	ApplyReview(ctx context.Context, id string, up srs.Update) error

	// Delete removes an entry.
	Delete(ctx context.Context, id string) error
}

// WritingRepo manages the graded writing history.
type WritingRepo interface {
	// Add stores a graded writing at the given creation time.
	Add(ctx context.Context, prompt, body string, fb score.Feedback, at time.Time) (*WritingRecord, error)

	// All returns the full history, newest first.
	All(ctx context.Context) ([]*WritingRecord, error)

	// CountOnDay returns how many writings fall on the calendar day of
	// the given time, in that time's location.
	CountOnDay(ctx context.Context, day time.Time) (int, error)
}

// ReviewEventData captures one scheduling decision for the event log.
type ReviewEventData struct {
	EntryID        string
	Word           string
	Rating         string
	EaseBefore     float64
	EaseAfter      float64
	IntervalBefore int
	IntervalAfter  int
}

// ReviewEventRecord is a stored review event.
type ReviewEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ReviewEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendReview records a review scheduling event.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// RecentReviews returns the latest review events, newest first.
	RecentReviews(ctx context.Context, limit int) ([]ReviewEventRecord, error)
}
