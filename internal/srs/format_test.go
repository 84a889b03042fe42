package srs

import "testing"

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		days float64
		want string
	}{
		{0.5, "< 1 day"},
		{1, "1 day"},
		{2, "2 days"},
		{6, "6 days"},
		{7, "1 week"},
		{10, "1 week"},
		{14, "2 weeks"},
		{29, "4 weeks"},
		{30, "1 month"},
		{60, "2 months"},
		{364, "12 months"},
		{365, "1 year"},
		{730, "2 years"},
	}
	for _, tt := range tests {
		if got := FormatInterval(tt.days); got != tt.want {
			t.Errorf("FormatInterval(%v) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
