package srs

// Rating is the learner's self-assessment of recall difficulty,
// given once per review.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// AllRatings lists the ratings in ascending recall quality.
var AllRatings = []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}

// easeDelta returns the ease factor adjustment for a rating.
func (r Rating) easeDelta() float64 {
	switch r {
	case RatingAgain:
		return -0.20
	case RatingHard:
		return -0.15
	case RatingEasy:
		return 0.15
	default:
		return 0
	}
}

// graduationDays returns the fixed early-review interval for a rating.
// Used instead of the ease multiplier while an entry is still young,
// so new entries don't ping-pong between tiny intervals.
func (r Rating) graduationDays() int {
	switch r {
	case RatingHard:
		return 1
	case RatingEasy:
		return 4
	default:
		return 3
	}
}

// intervalModifier returns the interval multiplier applied on top of
// the ease factor for mature entries.
func (r Rating) intervalModifier() float64 {
	switch r {
	case RatingHard:
		return 0.8
	case RatingEasy:
		return 1.3
	default:
		return 1.0
	}
}

// Label returns the rating name for display.
func (r Rating) Label() string {
	switch r {
	case RatingAgain:
		return "Again"
	case RatingHard:
		return "Hard"
	case RatingGood:
		return "Good"
	case RatingEasy:
		return "Easy"
	default:
		return string(r)
	}
}
