package session

import (
	"errors"
	"time"

	"github.com/abhisek/brainydate/internal/quiz"
)

// ErrEmptySession is returned when a session is started with no questions.
var ErrEmptySession = errors.New("session has no questions")

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseLoading  Phase = iota // Waiting for the question source
	PhaseError                 // No content, nothing more will happen
	PhaseActive                // Serving questions
	PhaseFinished              // Timer ran out or every question was answered
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Config holds the per-session knobs.
type Config struct {
	// TotalQuestions is the score denominator and the question cap.
	TotalQuestions int

	// Duration is the whole-test countdown.
	Duration time.Duration

	// AnswerDelay is how long a selection stays locked before advancing.
	AnswerDelay time.Duration
}

// DefaultConfig returns a 15 question, five minute test.
func DefaultConfig() Config {
	return Config{
		TotalQuestions: 15,
		Duration:       5 * time.Minute,
		AnswerDelay:    500 * time.Millisecond,
	}
}

// State tracks the runtime state of one quiz session.
type State struct {
	// SessionID is the UUID for this session. Timer and generation
	// messages carry it so stale ones can be dropped.
	SessionID string

	Config Config

	// Questions is fixed once the session becomes active.
	Questions []quiz.Question

	// Source records where the questions came from.
	Source quiz.Origin

	// Index is the position of the current question, 0..Total.
	Index int

	// Correct is the number of committed correct answers.
	Correct int

	// RemainingSecs is the countdown, decremented once per tick.
	RemainingSecs int

	Phase Phase

	// Locked is true between a selection and the advance that follows.
	Locked bool

	// Selected is the locked option, -1 when nothing is selected.
	Selected int

	// LastCorrect reports whether the locked option is the right one.
	LastCorrect bool

	// Err is set in PhaseError.
	Err error

	// StartTime is when the session became active.
	StartTime time.Time

	// Elapsed is set when the session finishes.
	Elapsed time.Duration

	score   int
	emitted bool
}

// NewState creates a session waiting for its questions.
func NewState(sessionID string, cfg Config) *State {
	return &State{
		SessionID: sessionID,
		Config:    cfg,
		Phase:     PhaseLoading,
		Selected:  -1,
	}
}
