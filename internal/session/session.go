package session

import (
	"fmt"
	"time"

	"github.com/abhisek/brainydate/internal/quiz"
)

// Start moves a loading session to Active. Questions past the configured
// total are dropped. An empty list moves the session to PhaseError.
func Start(state *State, batch quiz.Batch, now time.Time) error {
	if state.Phase != PhaseLoading {
		return fmt.Errorf("start session in phase %s", state.Phase)
	}
	if len(batch.Questions) == 0 {
		Fail(state, ErrEmptySession)
		return ErrEmptySession
	}

	qs := batch.Questions
	if total := state.Config.TotalQuestions; total > 0 && len(qs) > total {
		qs = qs[:total]
	}

	state.Questions = qs
	state.Source = batch.Origin
	state.Index = 0
	state.Correct = 0
	state.RemainingSecs = int(state.Config.Duration / time.Second)
	state.Phase = PhaseActive
	state.StartTime = now
	return nil
}

// Fail moves a loading session to PhaseError.
func Fail(state *State, err error) {
	if state.Phase != PhaseLoading {
		return
	}
	state.Phase = PhaseError
	state.Err = err
}

// CurrentQuestion returns the question at the index, if any.
func CurrentQuestion(state *State) (quiz.Question, bool) {
	if state.Phase != PhaseActive || state.Index >= len(state.Questions) {
		return quiz.Question{}, false
	}
	return state.Questions[state.Index], true
}

// Select locks option for the current question. It returns false when the
// selection was ignored: the session is not active, an answer is already
// locked, or the option is out of range.
func Select(state *State, option int) bool {
	q, ok := CurrentQuestion(state)
	if !ok || state.Locked || option < 0 || option >= len(q.Options) {
		return false
	}
	state.Locked = true
	state.Selected = option
	state.LastCorrect = q.IsCorrect(option)
	return true
}

// Advance commits the locked answer and moves to the next question. It
// reports whether the session finished as a result.
func Advance(state *State, now time.Time) bool {
	if state.Phase != PhaseActive || !state.Locked {
		return false
	}
	commit(state)
	if state.Index >= Total(state) || state.Index >= len(state.Questions) {
		finish(state, now)
		return true
	}
	return false
}

// Tick decrements the countdown by one second. It reports whether the
// session finished as a result.
func Tick(state *State, now time.Time) bool {
	if state.Phase != PhaseActive {
		return false
	}
	if state.RemainingSecs > 0 {
		state.RemainingSecs--
	}
	if state.RemainingSecs <= 0 {
		// An answer in its lock delay still counts.
		if state.Locked {
			commit(state)
		}
		finish(state, now)
		return true
	}
	return false
}

// TakeScore returns the final score the first time it is called on a
// finished session. Later calls return false.
func TakeScore(state *State) (int, bool) {
	if state.Phase != PhaseFinished || state.emitted {
		return 0, false
	}
	state.emitted = true
	return state.score, true
}

// FinalScore returns the score of a finished session without consuming it.
func FinalScore(state *State) (int, bool) {
	if state.Phase != PhaseFinished {
		return 0, false
	}
	return state.score, true
}

func commit(state *State) {
	if state.LastCorrect {
		state.Correct++
	}
	state.Index++
	state.Locked = false
	state.Selected = -1
	state.LastCorrect = false
}

func finish(state *State, now time.Time) {
	state.Phase = PhaseFinished
	state.score = Score(state.Correct, Total(state))
	if !state.StartTime.IsZero() {
		state.Elapsed = now.Sub(state.StartTime)
	}
}

// Total is the score denominator. Without a configured total it is the
// question count.
func Total(state *State) int {
	if state.Config.TotalQuestions > 0 {
		return state.Config.TotalQuestions
	}
	return len(state.Questions)
}
