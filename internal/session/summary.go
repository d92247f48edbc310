package session

import "time"

// Summary is what a finished session reports upward.
type Summary struct {
	SessionID         string
	Source            string
	Duration          time.Duration
	TotalQuestions    int
	QuestionsAnswered int
	Correct           int
	Score             int
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State) Summary {
	score, _ := FinalScore(state)
	return Summary{
		SessionID:         state.SessionID,
		Source:            string(state.Source),
		Duration:          state.Elapsed,
		TotalQuestions:    Total(state),
		QuestionsAnswered: state.Index,
		Correct:           state.Correct,
		Score:             score,
	}
}
