package session

import "testing"

func TestScore_Bounds(t *testing.T) {
	for _, n := range []int{1, 3, 10, 15, 40} {
		if got := Score(0, n); got != 85 {
			t.Errorf("Score(0/%d) = %d, want 85", n, got)
		}
		if got := Score(n, n); got != 145 {
			t.Errorf("Score(%d/%d) = %d, want 145", n, n, got)
		}
		prev := Score(0, n)
		for c := 1; c <= n; c++ {
			s := Score(c, n)
			if s < prev {
				t.Errorf("Score not monotonic at %d/%d", c, n)
			}
			if s < MinScore || s > MaxScore {
				t.Errorf("Score(%d/%d) = %d out of range", c, n, s)
			}
			prev = s
		}
	}
}

func TestScore_Values(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{3, 15, 97},
		{7, 15, 113},
		{1, 3, 105},
		{20, 15, 145},
		{5, 0, 85},
	}
	for _, tt := range tests {
		if got := Score(tt.correct, tt.total); got != tt.want {
			t.Errorf("Score(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{85, "Above Average"},
		{99, "Above Average"},
		{100, "High Average"},
		{114, "High Average"},
		{115, "Gifted"},
		{129, "Gifted"},
		{130, "Highly Gifted / Genius"},
		{145, "Highly Gifted / Genius"},
	}
	for _, tt := range tests {
		if got := Tier(tt.score); got != tt.want {
			t.Errorf("Tier(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	for secs, want := range map[int]string{300: "05:00", 59: "00:59", 61: "01:01", 0: "00:00", -3: "00:00"} {
		if got := FormatClock(secs); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", secs, got, want)
		}
	}
}
