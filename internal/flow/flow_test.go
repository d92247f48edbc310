package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const photo = "data:image/png;base64,iVBORw0KGgo="

func TestTransition_HappyPath(t *testing.T) {
	s := Initial()
	require.Equal(t, ScreenWelcome, s.Screen)

	steps := []struct {
		ev   Event
		want Screen
	}{
		{StartRequested{}, ScreenTesting},
		{TestCompleted{Score: 112}, ScreenResults},
		{ResultsAcknowledged{}, ScreenProfileCreation},
		{ProfileSubmitted{Name: "Alex", Bio: "Puzzles and hiking", Photo: photo}, ScreenMatching},
	}
	for _, st := range steps {
		var err error
		s, err = Transition(s, st.ev)
		require.NoError(t, err)
		require.Equal(t, st.want, s.Screen)
	}

	assert.Equal(t, 112, s.Score)
	assert.True(t, s.HasProfile)
	assert.Equal(t, Profile{Name: "Alex", Bio: "Puzzles and hiking", Photo: photo, Score: 112}, s.Profile)
}

func TestTransition_InapplicableEventsIgnored(t *testing.T) {
	tests := []struct {
		name   string
		screen Screen
		ev     Event
	}{
		{"complete on welcome", ScreenWelcome, TestCompleted{Score: 100}},
		{"ack on welcome", ScreenWelcome, ResultsAcknowledged{}},
		{"submit on welcome", ScreenWelcome, ProfileSubmitted{Name: "a", Bio: "b", Photo: photo}},
		{"start while testing", ScreenTesting, StartRequested{}},
		{"start on results", ScreenResults, StartRequested{}},
		{"complete on profile", ScreenProfileCreation, TestCompleted{Score: 90}},
		{"start on matching", ScreenMatching, StartRequested{}},
		{"ack on matching", ScreenMatching, ResultsAcknowledged{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Screen: tt.screen, Score: 120, HasScore: true}
			got, err := Transition(s, tt.ev)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestTransition_ScoreSetOnce(t *testing.T) {
	s := State{Screen: ScreenTesting, Score: 101, HasScore: true}
	got, err := Transition(s, TestCompleted{Score: 140})
	require.NoError(t, err)
	assert.Equal(t, 101, got.Score)
	assert.Equal(t, ScreenTesting, got.Screen)
}

func TestTransition_IncompleteProfile(t *testing.T) {
	base := State{Screen: ScreenProfileCreation, Score: 130, HasScore: true}
	for name, ev := range map[string]ProfileSubmitted{
		"no name":    {Bio: "b", Photo: photo},
		"blank name": {Name: "   ", Bio: "b", Photo: photo},
		"no bio":     {Name: "a", Photo: photo},
		"no photo":   {Name: "a", Bio: "b"},
		"nothing":    {},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Transition(base, ev)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIncompleteProfile))
			assert.Equal(t, base, got)
		})
	}
}

func TestTransition_UnknownScreenNormalizes(t *testing.T) {
	s := State{Screen: Screen("bogus")}
	got, err := Transition(s, StartRequested{})
	require.NoError(t, err)
	assert.Equal(t, ScreenTesting, got.Screen)

	assert.Equal(t, ScreenWelcome, Screen("").Normalize())
	assert.Equal(t, ScreenResults, ScreenResults.Normalize())
}

func TestTransition_NilEvent(t *testing.T) {
	_, err := Transition(Initial(), nil)
	assert.Error(t, err)
}

func TestTransition_NoBackward(t *testing.T) {
	s := State{Screen: ScreenMatching, HasScore: true, HasProfile: true}
	for _, ev := range []Event{StartRequested{}, TestCompleted{}, ResultsAcknowledged{}, ProfileSubmitted{Name: "x", Bio: "y", Photo: photo}} {
		got, err := Transition(s, ev)
		require.NoError(t, err)
		assert.Equal(t, ScreenMatching, got.Screen)
	}
}
