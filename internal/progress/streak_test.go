package progress

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 0, 0, 0, time.UTC)
}

func TestWritingStreak(t *testing.T) {
	now := day(2025, 6, 10)

	tests := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{"no writings", nil, 0},
		{"wrote today only", []time.Time{day(2025, 6, 10)}, 1},
		{"wrote yesterday only", []time.Time{day(2025, 6, 9)}, 1},
		{"three day run ending today", []time.Time{
			day(2025, 6, 10), day(2025, 6, 9), day(2025, 6, 8),
		}, 3},
		{"run ending yesterday still counts", []time.Time{
			day(2025, 6, 9), day(2025, 6, 8),
		}, 2},
		{"gap two days ago breaks streak", []time.Time{
			day(2025, 6, 10), day(2025, 6, 8),
		}, 1},
		{"stale history", []time.Time{
			day(2025, 6, 1), day(2025, 5, 31),
		}, 0},
		{"multiple writings same day count once", []time.Time{
			day(2025, 6, 10), day(2025, 6, 10).Add(2 * time.Hour), day(2025, 6, 9),
		}, 2},
	}

	for _, tt := range tests {
		if got := WritingStreak(tt.times, now); got != tt.want {
			t.Errorf("%s: WritingStreak = %d, want %d", tt.name, got, tt.want)
		}
	}
}
