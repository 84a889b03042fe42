// Package deck manages the vocabulary deck: the due queue and the
// review flow that feeds learner ratings through the scheduler and
// persists the result.
package deck

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/inkwell/internal/srs"
	"github.com/abhisek/inkwell/internal/store"
)

// Service coordinates review scheduling for the vocabulary deck.
type Service struct {
	vocab  store.VocabRepo
	events store.EventRepo
}

// NewService creates a deck service.
func NewService(vocab store.VocabRepo, events store.EventRepo) *Service {
	return &Service{vocab: vocab, events: events}
}

// AddWord adds a new word to the deck with default review state.
func (s *Service) AddWord(ctx context.Context, word, definition, example string) (*store.Entry, error) {
	word = strings.TrimSpace(word)
	definition = strings.TrimSpace(definition)
	if word == "" {
		return nil, fmt.Errorf("word must not be empty")
	}
	if definition == "" {
		return nil, fmt.Errorf("definition must not be empty")
	}
	return s.vocab.Add(ctx, word, definition, strings.TrimSpace(example))
}

// DueEntries returns the entries due for review, most urgent first:
// never-reviewed entries (oldest created first), then overdue entries.
func (s *Service) DueEntries(ctx context.Context, now time.Time) ([]*store.Entry, error) {
	all, err := s.vocab.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}

	var due []*store.Entry
	for _, e := range all {
		if e.Review.IsDue(now) {
			due = append(due, e)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return srs.Sooner(&due[i].Review, &due[j].Review)
	})
	return due, nil
}

// Queue returns the review session queue, capped at limit when limit > 0.
func (s *Service) Queue(ctx context.Context, now time.Time, limit int) ([]*store.Entry, error) {
	due, err := s.DueEntries(ctx, now)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// RecordReview schedules the next review for an entry after the learner
// rates it, persists the update, and appends a review event.
func (s *Service) RecordReview(ctx context.Context, entryID string, rating srs.Rating, now time.Time) (srs.Update, error) {
	entry, err := s.vocab.Get(ctx, entryID)
	if err != nil {
		return srs.Update{}, fmt.Errorf("load entry: %w", err)
	}

	up := srs.Schedule(entry.Review, rating, now)
	if err := s.vocab.ApplyReview(ctx, entryID, up); err != nil {
		return srs.Update{}, fmt.Errorf("persist review: %w", err)
	}

	if s.events != nil {
		_ = s.events.AppendReview(ctx, store.ReviewEventData{
			EntryID:        entry.ID,
			Word:           entry.Word,
			Rating:         string(rating),
			EaseBefore:     entry.Review.EaseFactor,
			EaseAfter:      up.EaseFactor,
			IntervalBefore: entry.Review.Interval,
			IntervalAfter:  up.Interval,
		})
	}

	return up, nil
}

// Previews returns the formatted next interval per rating for an entry,
// for labelling the rating choices in the review UI.
func (s *Service) Previews(state srs.ReviewState, now time.Time) map[srs.Rating]string {
	return srs.PreviewAllRatings(state, now)
}
