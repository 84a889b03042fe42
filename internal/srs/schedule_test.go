package srs

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSchedule_FirstReviewGraduation(t *testing.T) {
	tests := []struct {
		rating   Rating
		interval int
	}{
		{RatingAgain, 1},
		{RatingHard, 1},
		{RatingGood, 3},
		{RatingEasy, 4},
	}
	for _, tt := range tests {
		state := NewReviewState(testNow)
		up := Schedule(state, tt.rating, testNow)
		if up.Interval != tt.interval {
			t.Errorf("%s: Interval = %d, want %d", tt.rating, up.Interval, tt.interval)
		}
	}
}

func TestSchedule_EaseAdjustment(t *testing.T) {
	tests := []struct {
		rating Rating
		ease   float64
	}{
		{RatingAgain, 2.3},
		{RatingHard, 2.35},
		{RatingGood, 2.5},
		{RatingEasy, 2.65},
	}
	for _, tt := range tests {
		state := NewReviewState(testNow)
		up := Schedule(state, tt.rating, testNow)
		if up.EaseFactor != tt.ease {
			t.Errorf("%s: EaseFactor = %v, want %v", tt.rating, up.EaseFactor, tt.ease)
		}
	}
}

func TestSchedule_MatureCardScaling(t *testing.T) {
	state := ReviewState{EaseFactor: 2.0, Interval: 10, ReviewCount: 5, CreatedAt: testNow}

	up := Schedule(state, RatingGood, testNow)
	if up.EaseFactor != 2.0 {
		t.Errorf("EaseFactor = %v, want 2.0", up.EaseFactor)
	}
	if up.Interval != 20 {
		t.Errorf("Interval = %d, want 20", up.Interval)
	}
}

func TestSchedule_MatureHardAndEasyModifiers(t *testing.T) {
	state := ReviewState{EaseFactor: 2.0, Interval: 10, ReviewCount: 5, CreatedAt: testNow}

	// hard: round(10 * 1.85 * 0.8) = 15
	up := Schedule(state, RatingHard, testNow)
	if up.Interval != 15 {
		t.Errorf("hard: Interval = %d, want 15", up.Interval)
	}

	// easy: round(10 * 2.15 * 1.3) = 28
	up = Schedule(state, RatingEasy, testNow)
	if up.Interval != 28 {
		t.Errorf("easy: Interval = %d, want 28", up.Interval)
	}
}

func TestSchedule_AgainResetsMatureCard(t *testing.T) {
	state := ReviewState{EaseFactor: 2.5, Interval: 45, ReviewCount: 8, CreatedAt: testNow}

	up := Schedule(state, RatingAgain, testNow)
	if up.Interval != 1 {
		t.Errorf("Interval = %d, want 1", up.Interval)
	}
}

func TestSchedule_EaseFloor(t *testing.T) {
	state := NewReviewState(testNow)
	now := testNow
	// Repeated failures must never push the ease factor below the floor.
	for i := 0; i < 20; i++ {
		up := Schedule(state, RatingAgain, now)
		if up.EaseFactor < MinEaseFactor {
			t.Fatalf("review %d: EaseFactor = %v, below floor %v", i, up.EaseFactor, MinEaseFactor)
		}
		state = state.Apply(up)
		now = now.AddDate(0, 0, 1)
	}
	if state.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want %v after repeated failures", state.EaseFactor, MinEaseFactor)
	}
}

func TestSchedule_IntervalFloor(t *testing.T) {
	// A minimum-ease entry rated hard shrinks but never below one day.
	state := ReviewState{EaseFactor: MinEaseFactor, Interval: 2, ReviewCount: 3, CreatedAt: testNow}
	for i := 0; i < 10; i++ {
		up := Schedule(state, RatingHard, testNow)
		if up.Interval < 1 {
			t.Fatalf("review %d: Interval = %d, want >= 1", i, up.Interval)
		}
		state = state.Apply(up)
	}
}

func TestSchedule_ZeroValueStateUsesDefaults(t *testing.T) {
	up := Schedule(ReviewState{}, RatingGood, testNow)
	if up.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", up.EaseFactor, DefaultEaseFactor)
	}
	if up.Interval != 3 {
		t.Errorf("Interval = %d, want 3", up.Interval)
	}
}

func TestSchedule_NextReviewAndCounters(t *testing.T) {
	state := NewReviewState(testNow)
	up := Schedule(state, RatingGood, testNow)

	wantNext := testNow.AddDate(0, 0, 3)
	if !up.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", up.NextReviewAt, wantNext)
	}
	if up.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", up.ReviewCount)
	}
	if !up.LastReviewedAt.Equal(testNow) {
		t.Errorf("LastReviewedAt = %v, want %v", up.LastReviewedAt, testNow)
	}
}

func TestSchedule_ShortIntervalUsesGraduationSteps(t *testing.T) {
	// An entry knocked back to a one-day interval re-graduates through
	// the fixed steps instead of multiplying the tiny interval.
	state := ReviewState{EaseFactor: 2.1, Interval: 1, ReviewCount: 4, CreatedAt: testNow}
	up := Schedule(state, RatingGood, testNow)
	if up.Interval != 3 {
		t.Errorf("Interval = %d, want 3", up.Interval)
	}
}

func TestPreviewAllRatings_DoesNotMutate(t *testing.T) {
	state := ReviewState{EaseFactor: 2.0, Interval: 10, ReviewCount: 5, CreatedAt: testNow}
	before := state

	previews := PreviewAllRatings(state, testNow)

	if state != before {
		t.Error("state mutated by preview")
	}
	if got := previews[RatingAgain]; got != "1 day" {
		t.Errorf("again preview = %q, want %q", got, "1 day")
	}
	if got := previews[RatingGood]; got != "3 weeks" {
		t.Errorf("good preview = %q, want %q", got, "3 weeks")
	}
}

func TestPreviewAllRatings_CoversEveryRating(t *testing.T) {
	previews := PreviewAllRatings(NewReviewState(testNow), testNow)
	if len(previews) != len(AllRatings) {
		t.Fatalf("got %d previews, want %d", len(previews), len(AllRatings))
	}
	for _, r := range AllRatings {
		if previews[r] == "" {
			t.Errorf("missing preview for %s", r)
		}
	}
}
