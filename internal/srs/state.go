package srs

import "time"

const (
	// DefaultEaseFactor is the ease factor for a freshly added entry.
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the hard floor for the ease factor. No rating
	// sequence can push an entry below it.
	MinEaseFactor = 1.3

	// DefaultInterval is the starting interval in days.
	DefaultInterval = 1
)

// ReviewState holds the spaced repetition state for a single vocabulary entry.
type ReviewState struct {
	EaseFactor     float64    `json:"ease_factor"`
	Interval       int        `json:"interval"`
	ReviewCount    int        `json:"review_count"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewReviewState returns the review state for a just-added entry:
// never reviewed, due immediately.
func NewReviewState(createdAt time.Time) ReviewState {
	return ReviewState{
		EaseFactor: DefaultEaseFactor,
		Interval:   DefaultInterval,
		CreatedAt:  createdAt,
	}
}

// IsDue returns true if the entry should be reviewed now. An entry with
// no scheduled review date has never been reviewed and is always due.
func (s *ReviewState) IsDue(now time.Time) bool {
	if s.NextReviewAt == nil {
		return true
	}
	return !now.Before(*s.NextReviewAt)
}

// OverdueDays returns how many days past due the entry is.
// Returns 0 if not yet due or never reviewed.
func (s *ReviewState) OverdueDays(now time.Time) float64 {
	if s.NextReviewAt == nil || now.Before(*s.NextReviewAt) {
		return 0
	}
	return now.Sub(*s.NextReviewAt).Hours() / 24.0
}

// Apply returns a copy of the state with a scheduling update applied.
func (s ReviewState) Apply(up Update) ReviewState {
	s.EaseFactor = up.EaseFactor
	s.Interval = up.Interval
	s.ReviewCount = up.ReviewCount
	next := up.NextReviewAt
	last := up.LastReviewedAt
	s.NextReviewAt = &next
	s.LastReviewedAt = &last
	return s
}
