// Package score turns a history of graded writings into a current
// skill snapshot. Recent writings dominate through exponential decay
// weighting, but old writings never drop out entirely.
package score

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/inkwell/internal/rank"
)

// decayAlpha controls how fast older writings lose weight: writing i
// (0 = newest) weighs (1-decayAlpha)^i. At 0.3 the last 3-5 writings
// carry most of the weight.
const decayAlpha = 0.3

// Axis weights for the overall score. Sum to 1.0.
const (
	grammarWeight    = 0.30
	vocabularyWeight = 0.25
	structureWeight  = 0.25
	contentWeight    = 0.20
)

const (
	// trendBucket is the maximum bucket size for trend comparison.
	trendBucket = 3
	// trendThreshold is the score gap that flips the trend off stable.
	trendThreshold = 30.0
)

// Aggregate computes the skill snapshot from a writing history.
//
// The input need not be pre-sorted; writings are ordered newest-first
// internally. The streak is supplied by the history layer and passed
// through unvalidated. With no history every rank is D and the trend
// is stable.
func Aggregate(writings []GradedWriting, currentStreak int, now time.Time) SkillScore {
	if len(writings) == 0 {
		return SkillScore{
			Grammar:       rank.D,
			Vocabulary:    rank.D,
			Structure:     rank.D,
			Content:       rank.D,
			Overall:       rank.D,
			CurrentStreak: currentStreak,
			Trend:         TrendStable,
			ComputedAt:    now,
		}
	}

	sorted := make([]GradedWriting, len(writings))
	copy(sorted, writings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	grammar := decayedAxisScore(sorted, func(f Feedback) rank.Rank { return f.Grammar })
	vocabulary := decayedAxisScore(sorted, func(f Feedback) rank.Rank { return f.Vocabulary })
	structure := decayedAxisScore(sorted, func(f Feedback) rank.Rank { return f.Structure })
	content := decayedAxisScore(sorted, func(f Feedback) rank.Rank { return f.Content })

	// The overall rank combines the decay-averaged axis scores. It is
	// deliberately not its own decay average over per-writing overall
	// ranks — that would drift from the axis ranks shown next to it.
	overall := math.Round(
		grammarWeight*grammar +
			vocabularyWeight*vocabulary +
			structureWeight*structure +
			contentWeight*content)

	return SkillScore{
		Grammar:       rank.FromScore(grammar),
		Vocabulary:    rank.FromScore(vocabulary),
		Structure:     rank.FromScore(structure),
		Content:       rank.FromScore(content),
		Overall:       rank.FromScore(overall),
		TotalWritings: len(writings),
		CurrentStreak: currentStreak,
		Trend:         detectTrend(sorted),
		ComputedAt:    now,
	}
}

// decayedAxisScore computes the exponentially-decayed weighted average
// of one axis across the newest-first history. Every writing
// contributes; there is no cutoff window.
func decayedAxisScore(sorted []GradedWriting, axis func(Feedback) rank.Rank) float64 {
	var sum, total float64
	weight := 1.0
	for _, w := range sorted {
		sum += weight * float64(axis(w.Feedback).Score())
		total += weight
		weight *= 1 - decayAlpha
	}
	return sum / total
}

// detectTrend compares the unweighted mean overall score of the most
// recent writings against the bucket immediately before them. This is a
// local signal by design: it answers whether the last few writings
// outperformed the few before, while the main rank smooths the whole
// history.
func detectTrend(sorted []GradedWriting) Trend {
	n := len(sorted)
	if n < 3 {
		return TrendStable
	}

	size := n / 2
	if size > trendBucket {
		size = trendBucket
	}

	older := sorted[size:min(2*size, n)]
	if len(older) == 0 {
		return TrendStable
	}

	diff := bucketMean(sorted[:size]) - bucketMean(older)
	switch {
	case diff > trendThreshold:
		return TrendUp
	case diff < -trendThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}

func bucketMean(bucket []GradedWriting) float64 {
	var sum float64
	for _, w := range bucket {
		sum += float64(w.Feedback.Overall.Score())
	}
	return sum / float64(len(bucket))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
