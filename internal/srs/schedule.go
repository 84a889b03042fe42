package srs

import (
	"math"
	"time"
)

// Update is the result of one scheduling step: a full replacement for
// the mutable review fields plus the new due date. The caller persists
// it onto the vocabulary entry.
type Update struct {
	EaseFactor     float64
	Interval       int
	NextReviewAt   time.Time
	ReviewCount    int
	LastReviewedAt time.Time
}

// Schedule computes the next review schedule for an entry after the
// learner rates a recall attempt.
//
// "Again" always resets the interval to one day regardless of history.
// While an entry is young (first review, or interval still at one day)
// fixed graduation steps are used; mature entries scale their interval
// by the updated ease factor and a per-rating modifier.
func Schedule(state ReviewState, rating Rating, now time.Time) Update {
	ease := state.EaseFactor
	if ease == 0 {
		ease = DefaultEaseFactor
	}
	interval := state.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	newEase := ease + rating.easeDelta()
	if newEase < MinEaseFactor {
		newEase = MinEaseFactor
	}
	// Two decimal places keeps the stored value stable across round trips.
	newEase = math.Round(newEase*100) / 100

	var next int
	switch {
	case rating == RatingAgain:
		next = 1
	case state.ReviewCount == 0 || interval <= 1:
		next = rating.graduationDays()
	default:
		next = int(math.Round(float64(interval) * newEase * rating.intervalModifier()))
		if next < 1 {
			next = 1
		}
	}

	return Update{
		EaseFactor:     newEase,
		Interval:       next,
		NextReviewAt:   now.AddDate(0, 0, next),
		ReviewCount:    state.ReviewCount + 1,
		LastReviewedAt: now,
	}
}

// PreviewAllRatings runs the scheduler once per rating without touching
// the state, returning the formatted next interval for each. Used by the
// review UI to label the rating choices.
func PreviewAllRatings(state ReviewState, now time.Time) map[Rating]string {
	previews := make(map[Rating]string, len(AllRatings))
	for _, r := range AllRatings {
		up := Schedule(state, r, now)
		previews[r] = FormatInterval(float64(up.Interval))
	}
	return previews
}
