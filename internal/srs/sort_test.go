package srs

import (
	"testing"
	"time"
)

func TestSortByPriority_NeverReviewedFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	fresh := &ReviewState{CreatedAt: now.AddDate(0, 0, -10)}
	dueTomorrow := &ReviewState{NextReviewAt: &tomorrow, CreatedAt: now}
	overdue := &ReviewState{NextReviewAt: &yesterday, CreatedAt: now}

	states := []*ReviewState{dueTomorrow, overdue, fresh}
	SortByPriority(states)

	if states[0] != fresh {
		t.Error("never-reviewed entry should sort first")
	}
	if states[1] != overdue {
		t.Error("overdue entry should sort second")
	}
	if states[2] != dueTomorrow {
		t.Error("future entry should sort last")
	}
}

func TestSortByPriority_NeverReviewedByCreation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := &ReviewState{CreatedAt: now.AddDate(0, 0, -5)}
	newer := &ReviewState{CreatedAt: now.AddDate(0, 0, -1)}

	states := []*ReviewState{newer, older}
	SortByPriority(states)

	if states[0] != older {
		t.Error("oldest unreviewed entry should sort first")
	}
}

func TestSortByPriority_ScheduledByDueDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 1)
	later := now.AddDate(0, 0, 7)

	a := &ReviewState{NextReviewAt: &later}
	b := &ReviewState{NextReviewAt: &soon}

	states := []*ReviewState{a, b}
	SortByPriority(states)

	if states[0] != b || states[1] != a {
		t.Error("scheduled entries should sort by due date ascending")
	}
}

func TestSortByPriority_Stable(t *testing.T) {
	due := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := &ReviewState{NextReviewAt: &due}
	b := &ReviewState{NextReviewAt: &due}

	states := []*ReviewState{a, b}
	SortByPriority(states)

	if states[0] != a || states[1] != b {
		t.Error("equal entries must keep their input order")
	}
}
