package srs

import "sort"

// Sooner reports whether a should be reviewed before b.
//
// Entries that have never been reviewed carry no due date and sort
// first, oldest created first. Scheduled entries follow, most overdue
// first. Sorting naively by due date would mis-order never-reviewed
// entries, which have nothing to compare.
func Sooner(a, b *ReviewState) bool {
	switch {
	case a.NextReviewAt == nil && b.NextReviewAt == nil:
		return a.CreatedAt.Before(b.CreatedAt)
	case a.NextReviewAt == nil:
		return true
	case b.NextReviewAt == nil:
		return false
	default:
		return a.NextReviewAt.Before(*b.NextReviewAt)
	}
}

// SortByPriority orders review states in place, most urgent first.
// The sort is stable: equal entries keep their input order.
func SortByPriority(states []*ReviewState) {
	sort.SliceStable(states, func(i, j int) bool {
		return Sooner(states[i], states[j])
	})
}
