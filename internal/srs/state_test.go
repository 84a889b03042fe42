package srs

import (
	"testing"
	"time"
)

func TestNewReviewState_Defaults(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewReviewState(created)

	if s.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", s.EaseFactor, DefaultEaseFactor)
	}
	if s.Interval != DefaultInterval {
		t.Errorf("Interval = %d, want %d", s.Interval, DefaultInterval)
	}
	if s.ReviewCount != 0 {
		t.Errorf("ReviewCount = %d, want 0", s.ReviewCount)
	}
	if s.NextReviewAt != nil {
		t.Error("NextReviewAt should be unset for a new entry")
	}
	if !s.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", s.CreatedAt, created)
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name string
		next *time.Time
		want bool
	}{
		{"never reviewed", nil, true},
		{"overdue", &yesterday, true},
		{"due exactly now", &now, true},
		{"not yet due", &tomorrow, false},
	}
	for _, tt := range tests {
		s := ReviewState{NextReviewAt: tt.next}
		if got := s.IsDue(now); got != tt.want {
			t.Errorf("%s: IsDue = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOverdueDays(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	due := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s := ReviewState{NextReviewAt: &due}
	if got := s.OverdueDays(now); got != 3.0 {
		t.Errorf("OverdueDays = %v, want 3.0", got)
	}

	s = ReviewState{}
	if got := s.OverdueDays(now); got != 0 {
		t.Errorf("never reviewed: OverdueDays = %v, want 0", got)
	}
}

func TestApply_ReplacesMutableFields(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewReviewState(created)

	up := Update{
		EaseFactor:     2.65,
		Interval:       4,
		NextReviewAt:   now.AddDate(0, 0, 4),
		ReviewCount:    1,
		LastReviewedAt: now,
	}
	got := s.Apply(up)

	if got.EaseFactor != 2.65 || got.Interval != 4 || got.ReviewCount != 1 {
		t.Errorf("got %+v, want update fields applied", got)
	}
	if got.NextReviewAt == nil || !got.NextReviewAt.Equal(up.NextReviewAt) {
		t.Error("NextReviewAt not applied")
	}
	if got.LastReviewedAt == nil || !got.LastReviewedAt.Equal(now) {
		t.Error("LastReviewedAt not applied")
	}
	if !got.CreatedAt.Equal(created) {
		t.Error("CreatedAt must not change")
	}
	// Original untouched.
	if s.NextReviewAt != nil || s.ReviewCount != 0 {
		t.Error("Apply mutated the receiver")
	}
}
