package score

import (
	"time"

	"github.com/abhisek/inkwell/internal/rank"
)

// Feedback holds the grades an external grading service assigned to a
// single writing. It arrives fully formed; this package only reads it.
type Feedback struct {
	Overall    rank.Rank
	Grammar    rank.Rank
	Vocabulary rank.Rank
	Structure  rank.Rank
	Content    rank.Rank
}

// GradedWriting is the slice of a writing the aggregator needs:
// when it was written and how it was graded. Immutable once created.
type GradedWriting struct {
	CreatedAt time.Time
	Feedback  Feedback
}

// Trend is the short-horizon direction of recent performance.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// SkillScore is the derived skill snapshot: one rank per axis, an
// overall rank, and a trend signal. Recomputed on demand from the
// writing history — never the source of truth.
type SkillScore struct {
	Grammar       rank.Rank
	Vocabulary    rank.Rank
	Structure     rank.Rank
	Content       rank.Rank
	Overall       rank.Rank
	TotalWritings int
	CurrentStreak int
	Trend         Trend
	ComputedAt    time.Time
}
