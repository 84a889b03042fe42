// Package progress derives the learner's current writing skill snapshot
// from the stored history of graded writings.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/inkwell/internal/score"
	"github.com/abhisek/inkwell/internal/store"
)

// Service computes skill snapshots and records new graded writings.
type Service struct {
	writings store.WritingRepo
}

// NewService creates a progress service.
func NewService(writings store.WritingRepo) *Service {
	return &Service{writings: writings}
}

// Snapshot loads the writing history, computes the current writing
// streak, and aggregates both into a skill snapshot.
func (s *Service) Snapshot(ctx context.Context, now time.Time) (score.SkillScore, error) {
	records, err := s.writings.All(ctx)
	if err != nil {
		return score.SkillScore{}, fmt.Errorf("load writings: %w", err)
	}

	graded := make([]score.GradedWriting, len(records))
	times := make([]time.Time, len(records))
	for i, r := range records {
		graded[i] = r.Graded()
		times[i] = r.CreatedAt
	}

	streak := WritingStreak(times, now)
	return score.Aggregate(graded, streak, now), nil
}

// WroteToday reports whether at least one writing was recorded on the
// calendar day of now.
func (s *Service) WroteToday(ctx context.Context, now time.Time) (bool, error) {
	n, err := s.writings.CountOnDay(ctx, now)
	if err != nil {
		return false, fmt.Errorf("count today's writings: %w", err)
	}
	return n > 0, nil
}

// LogWriting stores an externally graded writing. All five ranks must
// be valid ladder values.
func (s *Service) LogWriting(ctx context.Context, prompt, body string, fb score.Feedback, now time.Time) (*store.WritingRecord, error) {
	if body == "" {
		return nil, fmt.Errorf("writing body must not be empty")
	}
	for _, r := range []struct {
		name string
		rank interface{ Valid() bool }
	}{
		{"overall", fb.Overall},
		{"grammar", fb.Grammar},
		{"vocabulary", fb.Vocabulary},
		{"structure", fb.Structure},
		{"content", fb.Content},
	} {
		if !r.rank.Valid() {
			return nil, fmt.Errorf("invalid %s rank", r.name)
		}
	}
	return s.writings.Add(ctx, prompt, body, fb, now)
}
