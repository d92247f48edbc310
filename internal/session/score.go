package session

import (
	"fmt"
	"math"
)

const (
	// MinScore is the score for zero correct answers.
	MinScore = 85

	// MaxScore caps the score.
	MaxScore = 145

	scoreRange = 60
)

// Score maps correct answers out of total onto the 85..145 scale.
func Score(correct, total int) int {
	if total <= 0 || correct <= 0 {
		return MinScore
	}
	s := MinScore + int(math.Round(float64(correct)/float64(total)*scoreRange))
	return min(MaxScore, s)
}

// Tier returns the results title for a score.
func Tier(score int) string {
	switch {
	case score < 100:
		return "Above Average"
	case score < 115:
		return "High Average"
	case score < 130:
		return "Gifted"
	default:
		return "Highly Gifted / Genius"
	}
}

// FormatClock renders seconds as MM:SS.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
