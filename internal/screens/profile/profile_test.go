package profile

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainydate/internal/flow"
	prof "github.com/abhisek/brainydate/internal/profile"
	"github.com/abhisek/brainydate/internal/screen"
)

const testPhoto = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="

var ctrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}

func filled() *ProfileScreen {
	s := New(121)
	s.name.SetValue("Alex")
	s.bio.SetValue("Crossword person. Will beat you at chess.")
	s.Update(photoLoadedMsg{Name: "me.png", URL: testPhoto})
	return s
}

func TestSubmit_Complete(t *testing.T) {
	s := filled()

	_, cmd := s.Update(ctrlS)
	if cmd == nil {
		t.Fatal("complete form should submit")
	}
	msg, ok := cmd().(screen.FlowEventMsg)
	if !ok {
		t.Fatal("expected FlowEventMsg")
	}
	ev, ok := msg.Event.(flow.ProfileSubmitted)
	if !ok {
		t.Fatalf("expected ProfileSubmitted, got %T", msg.Event)
	}
	if ev.Name != "Alex" || ev.Photo != testPhoto || !strings.HasPrefix(ev.Bio, "Crossword") {
		t.Errorf("unexpected submission %+v", ev)
	}

	if _, cmd := s.Update(ctrlS); cmd != nil {
		t.Error("second submit should be ignored")
	}
}

func TestSubmit_Incomplete(t *testing.T) {
	tests := []struct {
		name  string
		clear func(*ProfileScreen)
	}{
		{"no name", func(s *ProfileScreen) { s.name.SetValue("") }},
		{"blank bio", func(s *ProfileScreen) { s.bio.SetValue("   ") }},
		{"no photo", func(s *ProfileScreen) { s.photoURL = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filled()
			tt.clear(s)
			if _, cmd := s.Update(ctrlS); cmd != nil {
				t.Fatal("incomplete form must not submit")
			}
			if !strings.Contains(s.errMsg, "name, a short bio and a photo") {
				t.Errorf("unexpected inline error %q", s.errMsg)
			}
			for _, h := range s.KeyHints() {
				if h.Key == "Ctrl+S" {
					t.Error("submit hint should be hidden until the form is ready")
				}
			}
		})
	}
}

func TestSubmitHintWhenReady(t *testing.T) {
	s := filled()
	found := false
	for _, h := range s.KeyHints() {
		if h.Key == "Ctrl+S" {
			found = true
		}
	}
	if !found {
		t.Error("expected the submit hint once every field is set")
	}
}

func TestEnterOnSubmitField(t *testing.T) {
	s := filled()
	s.setFocus(fieldSubmit)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on the button should submit")
	}
}

func TestTabCyclesFocus(t *testing.T) {
	s := New(100)
	want := []field{fieldBio, fieldPhoto, fieldSubmit, fieldName}
	for _, f := range want {
		s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		if s.focus != f {
			t.Fatalf("focus = %d, want %d", s.focus, f)
		}
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.focus != fieldSubmit {
		t.Errorf("shift+tab: focus = %d, want %d", s.focus, fieldSubmit)
	}
}

func TestEnterOnPhotoOpensPicker(t *testing.T) {
	s := New(100)
	s.setFocus(fieldPhoto)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.browsing {
		t.Fatal("expected the file picker to open")
	}
	if !strings.Contains(s.View(80, 24), "Pick a photo") {
		t.Error("expected the picker view")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.browsing {
		t.Error("esc should close the picker")
	}
}

func TestPhotoErrors(t *testing.T) {
	s := New(100)
	s.Update(photoLoadedMsg{Name: "notes.txt", Err: prof.ErrNotImage})
	if s.photoURL != "" || s.errMsg != "That file is not an image." {
		t.Errorf("unexpected state %q %q", s.photoURL, s.errMsg)
	}
	s.Update(photoLoadedMsg{Name: "big.png", Err: prof.ErrPhotoTooLarge})
	if s.errMsg != "That image is too large." {
		t.Errorf("unexpected error %q", s.errMsg)
	}
}

func TestEventRejected(t *testing.T) {
	s := filled()
	s.Update(ctrlS)
	s.Update(screen.EventRejectedMsg{Err: flow.ErrIncompleteProfile})
	if s.submitted {
		t.Error("a rejected submission can be retried")
	}
	if s.errMsg == "" {
		t.Error("expected an inline error")
	}

	s.Update(screen.EventRejectedMsg{Err: errors.New("boom")})
	if s.errMsg != "boom" {
		t.Errorf("errMsg = %q", s.errMsg)
	}
}

func TestView(t *testing.T) {
	s := filled()
	view := s.View(100, 30)
	for _, want := range []string{"Create your profile", "IQ score 121", "4/20", "me.png", "Find Matches"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
