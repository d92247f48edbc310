package matching

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainydate/internal/flow"
	"github.com/abhisek/brainydate/internal/match"
)

var testProfile = flow.Profile{Name: "Alex", Bio: "hi", Photo: "data:image/png;base64,AA==", Score: 121}

func TestView_FirstCandidate(t *testing.T) {
	s := New(testProfile, match.MockCandidates(), nil)
	view := s.View(80, 24)
	for _, want := range []string{"Alex", "IQ 121", "Sophia", "IQ 135", "5 left"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSwipeThroughDeck(t *testing.T) {
	s := New(testProfile, match.MockCandidates(), nil)
	keys := []tea.KeyPressMsg{
		{Code: 'l', Text: "l"},
		{Code: tea.KeyLeft},
		{Code: tea.KeyRight},
		{Code: 'p', Text: "p"},
		{Code: 'x', Text: "x"},
		{Code: 'l', Text: "l"},
	}
	for _, k := range keys {
		s.Update(k)
	}

	if !s.deck.Done() {
		t.Fatalf("expected the deck to be done, %d left", s.deck.Remaining())
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "That's everyone for now!") {
		t.Error("expected the end-of-deck message")
	}
	if !strings.Contains(view, "Sophia, Chloe, Ava") {
		t.Errorf("expected liked names in view:\n%s", view)
	}
	if len(s.KeyHints()) != 1 {
		t.Error("only quit remains after the last swipe")
	}

	// Swipes past the end do nothing.
	s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	if len(s.deck.Liked()) != 3 {
		t.Errorf("liked = %d, want 3", len(s.deck.Liked()))
	}
}

func TestPassOnEveryone(t *testing.T) {
	s := New(testProfile, match.MockCandidates()[:2], nil)
	s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if !strings.Contains(s.View(100, 24), "passed on everyone") {
		t.Error("expected the pass-all message")
	}
}
