package score

import (
	"testing"
	"time"

	"github.com/abhisek/inkwell/internal/rank"
)

var scoreNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// writingAt builds a writing with every axis and the overall at the same rank.
func writingAt(daysAgo int, r rank.Rank) GradedWriting {
	return GradedWriting{
		CreatedAt: scoreNow.AddDate(0, 0, -daysAgo),
		Feedback: Feedback{
			Overall:    r,
			Grammar:    r,
			Vocabulary: r,
			Structure:  r,
			Content:    r,
		},
	}
}

func TestAggregate_EmptyHistory(t *testing.T) {
	got := Aggregate(nil, 4, scoreNow)

	for name, r := range map[string]rank.Rank{
		"Grammar": got.Grammar, "Vocabulary": got.Vocabulary,
		"Structure": got.Structure, "Content": got.Content, "Overall": got.Overall,
	} {
		if r != rank.D {
			t.Errorf("%s = %s, want D", name, r)
		}
	}
	if got.TotalWritings != 0 {
		t.Errorf("TotalWritings = %d, want 0", got.TotalWritings)
	}
	if got.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable", got.Trend)
	}
	// Streak is passed through unvalidated, even against an empty history.
	if got.CurrentStreak != 4 {
		t.Errorf("CurrentStreak = %d, want 4", got.CurrentStreak)
	}
	if !got.ComputedAt.Equal(scoreNow) {
		t.Errorf("ComputedAt = %v, want %v", got.ComputedAt, scoreNow)
	}
}

func TestAggregate_SinglePerfectWriting(t *testing.T) {
	got := Aggregate([]GradedWriting{writingAt(0, rank.S)}, 5, scoreNow)

	if got.Overall != rank.S {
		t.Errorf("Overall = %s, want S", got.Overall)
	}
	if got.Grammar != rank.S || got.Vocabulary != rank.S || got.Structure != rank.S || got.Content != rank.S {
		t.Error("all axis ranks should be S")
	}
	if got.TotalWritings != 1 {
		t.Errorf("TotalWritings = %d, want 1", got.TotalWritings)
	}
	if got.CurrentStreak != 5 {
		t.Errorf("CurrentStreak = %d, want 5", got.CurrentStreak)
	}
}

func TestAggregate_RecencyDominates(t *testing.T) {
	// Newest D (500), older S (1000): weights 1 and 0.7, so the
	// average is (500 + 700) / 1.7 = 705.88 -> B-.
	writings := []GradedWriting{
		writingAt(0, rank.D),
		writingAt(7, rank.S),
	}
	got := Aggregate(writings, 0, scoreNow)
	if got.Overall != rank.BMinus {
		t.Errorf("Overall = %s, want B-", got.Overall)
	}
	if got.Grammar != rank.BMinus {
		t.Errorf("Grammar = %s, want B-", got.Grammar)
	}
}

func TestAggregate_SortsInternally(t *testing.T) {
	// Same history, oldest first: callers need not pre-sort.
	writings := []GradedWriting{
		writingAt(7, rank.S),
		writingAt(0, rank.D),
	}
	got := Aggregate(writings, 0, scoreNow)
	if got.Overall != rank.BMinus {
		t.Errorf("Overall = %s, want B- regardless of input order", got.Overall)
	}
}

func TestAggregate_OverallCombinesAxisAverages(t *testing.T) {
	// A lopsided writing: grammar S, everything else D. The overall
	// rank must come from the weighted axis combination
	// (0.30*1000 + 0.25*500 + 0.25*500 + 0.20*500 = 650 -> C+),
	// not from the writing's own overall feedback rank.
	w := GradedWriting{
		CreatedAt: scoreNow,
		Feedback: Feedback{
			Overall:    rank.B, // deliberately inconsistent
			Grammar:    rank.S,
			Vocabulary: rank.D,
			Structure:  rank.D,
			Content:    rank.D,
		},
	}
	got := Aggregate([]GradedWriting{w}, 0, scoreNow)
	if got.Overall != rank.CPlus {
		t.Errorf("Overall = %s, want C+", got.Overall)
	}
	if got.Grammar != rank.S {
		t.Errorf("Grammar = %s, want S", got.Grammar)
	}
}

func TestAggregate_TrendInsufficientData(t *testing.T) {
	writings := []GradedWriting{
		writingAt(0, rank.S),
		writingAt(7, rank.D),
	}
	got := Aggregate(writings, 0, scoreNow)
	if got.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable with fewer than 3 writings", got.Trend)
	}
}

func TestAggregate_TrendUp(t *testing.T) {
	// Three writings: bucket size is 1, so the newest is compared to
	// the one before it. A (900) vs C (600) clears the threshold.
	writings := []GradedWriting{
		writingAt(0, rank.A),
		writingAt(3, rank.C),
		writingAt(6, rank.C),
	}
	got := Aggregate(writings, 0, scoreNow)
	if got.Trend != TrendUp {
		t.Errorf("Trend = %s, want up", got.Trend)
	}
}

func TestAggregate_TrendDown(t *testing.T) {
	writings := []GradedWriting{
		writingAt(0, rank.C),
		writingAt(3, rank.A),
		writingAt(6, rank.A),
	}
	got := Aggregate(writings, 0, scoreNow)
	if got.Trend != TrendDown {
		t.Errorf("Trend = %s, want down", got.Trend)
	}
}

func TestAggregate_TrendStableWithinThreshold(t *testing.T) {
	// Adjacent ranks differ by 50 canonical points; equal buckets
	// differ by 0. B+ vs B+ is flat.
	writings := []GradedWriting{
		writingAt(0, rank.BPlus),
		writingAt(3, rank.BPlus),
		writingAt(6, rank.BPlus),
	}
	got := Aggregate(writings, 0, scoreNow)
	if got.Trend != TrendStable {
		t.Errorf("Trend = %s, want stable", got.Trend)
	}
}

func TestAggregate_TrendBucketsCapAtThree(t *testing.T) {
	// Seven writings: buckets are the newest three vs the three before;
	// the seventh does not participate in the trend.
	writings := []GradedWriting{
		writingAt(0, rank.A),
		writingAt(1, rank.A),
		writingAt(2, rank.A),
		writingAt(3, rank.C),
		writingAt(4, rank.C),
		writingAt(5, rank.C),
		writingAt(6, rank.S),
	}
	got := Aggregate(writings, 0, scoreNow)
	if got.Trend != TrendUp {
		t.Errorf("Trend = %s, want up", got.Trend)
	}
}

func TestAggregate_TrendUsesOverallFeedback(t *testing.T) {
	// Trend compares per-writing overall ranks with a plain mean,
	// not the decayed axis scores.
	up := writingAt(0, rank.D)
	up.Feedback.Overall = rank.A
	down := writingAt(3, rank.S)
	down.Feedback.Overall = rank.C

	writings := []GradedWriting{up, down, writingAt(6, rank.C)}
	got := Aggregate(writings, 0, scoreNow)
	if got.Trend != TrendUp {
		t.Errorf("Trend = %s, want up from overall feedback", got.Trend)
	}
}
