// Package rank defines the ordinal grade ladder shared by the grading
// feedback model and the skill score aggregator.
package rank

import "fmt"

// Rank is an ordinal grade from S (highest) down to D.
type Rank string

const (
	S      Rank = "S"
	APlus  Rank = "A+"
	A      Rank = "A"
	AMinus Rank = "A-"
	BPlus  Rank = "B+"
	B      Rank = "B"
	BMinus Rank = "B-"
	CPlus  Rank = "C+"
	C      Rank = "C"
	CMinus Rank = "C-"
	D      Rank = "D"
)

// Ladder lists all ranks from highest to lowest.
var Ladder = []Rank{S, APlus, A, AMinus, BPlus, B, BMinus, CPlus, C, CMinus, D}

// Score returns the canonical numeric score for a rank, on a 500-1000
// scale spaced by 50 points.
func (r Rank) Score() int {
	switch r {
	case S:
		return 1000
	case APlus:
		return 950
	case A:
		return 900
	case AMinus:
		return 850
	case BPlus:
		return 800
	case B:
		return 750
	case BMinus:
		return 700
	case CPlus:
		return 650
	case C:
		return 600
	case CMinus:
		return 550
	default:
		return 500
	}
}

// FromScore maps a numeric score back to a rank. Each band's lower
// bound is the midpoint between adjacent canonical scores and is
// inclusive (>= 975 is S, >= 925 is A+, and so on), so aggregated
// non-canonical scores round to the nearest rank. There is no floor
// below D.
func FromScore(score float64) Rank {
	for _, r := range Ladder[:len(Ladder)-1] {
		if score >= float64(r.Score())-25 {
			return r
		}
	}
	return D
}

// Valid reports whether r is one of the eleven ladder ranks.
func (r Rank) Valid() bool {
	switch r {
	case S, APlus, A, AMinus, BPlus, B, BMinus, CPlus, C, CMinus, D:
		return true
	}
	return false
}

// Parse converts an external rank string (CLI flag, stored row) into a
// Rank, rejecting anything outside the ladder.
func Parse(s string) (Rank, error) {
	r := Rank(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown rank %q", s)
	}
	return r, nil
}
