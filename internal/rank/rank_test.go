package rank

import "testing"

func TestScore_RoundTrip(t *testing.T) {
	for _, r := range Ladder {
		if got := FromScore(float64(r.Score())); got != r {
			t.Errorf("FromScore(Score(%s)) = %s, want %s", r, got, r)
		}
	}
}

func TestScore_StrictlyDecreasing(t *testing.T) {
	for i := 1; i < len(Ladder); i++ {
		if Ladder[i].Score() >= Ladder[i-1].Score() {
			t.Errorf("Score(%s) = %d not below Score(%s) = %d",
				Ladder[i], Ladder[i].Score(), Ladder[i-1], Ladder[i-1].Score())
		}
	}
}

func TestFromScore_MidpointBands(t *testing.T) {
	tests := []struct {
		score float64
		want  Rank
	}{
		{1000, S},
		{975, S},     // band lower bound inclusive
		{974.9, APlus},
		{925, APlus},
		{924.9, A},
		{760, B},
		{725, B},
		{724.9, BMinus},
		{525, CMinus},
		{524.9, D},
		{500, D},
		{100, D}, // no floor below D
	}
	for _, tt := range tests {
		if got := FromScore(tt.score); got != tt.want {
			t.Errorf("FromScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("A+"); err != nil {
		t.Errorf("Parse(A+) returned error: %v", err)
	}
	if _, err := Parse("E"); err == nil {
		t.Error("Parse(E) should fail")
	}
	if _, err := Parse(""); err == nil {
		t.Error("Parse of empty string should fail")
	}
}
