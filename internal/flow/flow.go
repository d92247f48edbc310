// Package flow sequences the five top-level screens. Transitions are pure:
// the controller state is a value and every event yields a new value.
package flow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteProfile rejects a profile submission with a missing field.
var ErrIncompleteProfile = errors.New("name, bio and photo are all required")

// Screen identifies one of the five views.
type Screen string

const (
	ScreenWelcome         Screen = "welcome"
	ScreenTesting         Screen = "testing"
	ScreenResults         Screen = "results"
	ScreenProfileCreation Screen = "profile_creation"
	ScreenMatching        Screen = "matching"
)

// Normalize maps an unrecognized screen value to ScreenWelcome.
func (s Screen) Normalize() Screen {
	switch s {
	case ScreenWelcome, ScreenTesting, ScreenResults, ScreenProfileCreation, ScreenMatching:
		return s
	}
	return ScreenWelcome
}

// Profile is the user's self description plus the quiz score.
type Profile struct {
	Name string
	Bio  string

	// Photo is a data:<mime>;base64,... URL.
	Photo string

	Score int
}

// Complete reports whether name, bio and photo are all present.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.Bio) != "" &&
		p.Photo != ""
}

// State is the controller value carried between screens.
type State struct {
	Screen Screen

	// Score is set once, by TestCompleted.
	Score    int
	HasScore bool

	// Profile is set once, by ProfileSubmitted.
	Profile    Profile
	HasProfile bool
}

// Initial returns the state the app starts in.
func Initial() State {
	return State{Screen: ScreenWelcome}
}

// Event drives a transition.
type Event interface {
	event()
}

// StartRequested is sent when the user starts the test.
type StartRequested struct{}

// TestCompleted carries the final quiz score.
type TestCompleted struct {
	Score int
}

// ResultsAcknowledged is sent when the user moves on from the results.
type ResultsAcknowledged struct{}

// ProfileSubmitted carries the profile form fields.
type ProfileSubmitted struct {
	Name  string
	Bio   string
	Photo string
}

func (StartRequested) event()      {}
func (TestCompleted) event()       {}
func (ResultsAcknowledged) event() {}
func (ProfileSubmitted) event()    {}

// Transition applies ev to s. An event that does not apply to the current
// screen returns s unchanged with a nil error. Only an incomplete profile
// submission on the profile screen is an error; the state is then
// unchanged too.
func Transition(s State, ev Event) (State, error) {
	s.Screen = s.Screen.Normalize()

	switch e := ev.(type) {
	case StartRequested:
		if s.Screen == ScreenWelcome {
			s.Screen = ScreenTesting
		}
	case TestCompleted:
		if s.Screen == ScreenTesting && !s.HasScore {
			s.Score = e.Score
			s.HasScore = true
			s.Screen = ScreenResults
		}
	case ResultsAcknowledged:
		if s.Screen == ScreenResults {
			s.Screen = ScreenProfileCreation
		}
	case ProfileSubmitted:
		if s.Screen != ScreenProfileCreation || s.HasProfile {
			return s, nil
		}
		p := Profile{Name: strings.TrimSpace(e.Name), Bio: strings.TrimSpace(e.Bio), Photo: e.Photo, Score: s.Score}
		if !p.Complete() {
			return s, ErrIncompleteProfile
		}
		s.Profile = p
		s.HasProfile = true
		s.Screen = ScreenMatching
	case nil:
		return s, fmt.Errorf("flow: nil event")
	}
	return s, nil
}
