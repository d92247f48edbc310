package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainydate/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	closed  int
}

func (s *stubScreen) Close() { s.closed++ }

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

type plainScreen struct{}

func (plainScreen) Init() tea.Cmd                             { return nil }
func (p plainScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return p, nil }
func (plainScreen) View(int, int) string                      { return "" }
func (plainScreen) Title() string                             { return "plain" }

func TestPopClosesScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	r.Pop()
	if s2.closed != 1 {
		t.Errorf("expected popped screen closed once, got %d", s2.closed)
	}
	r.Pop()
	if s1.closed != 0 {
		t.Error("bottom screen should not be closed by a no-op pop")
	}
}

func TestReplaceClosesOldScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if s1.closed != 1 {
		t.Errorf("expected replaced screen closed once, got %d", s1.closed)
	}
	if s2.closed != 0 {
		t.Error("new screen should not be closed")
	}
}

func TestReplaceNonCloser(t *testing.T) {
	r := New(plainScreen{})
	s2 := &stubScreen{title: "second"}
	r.Replace(s2)
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
}

func TestCloseAll(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Close()
	if s1.closed != 1 || s2.closed != 1 {
		t.Errorf("expected both closed, got %d and %d", s1.closed, s2.closed)
	}
	if r.Depth() != 0 || r.Active() != nil {
		t.Error("expected empty stack after Close")
	}
	if r.View(80, 24) != "" {
		t.Error("expected empty view after Close")
	}
}

func TestUpdatePushPopMsgs(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	s2 := &stubScreen{title: "help"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Active().Title() != "help" || !s2.initRan {
		t.Fatal("expected help pushed and initialized")
	}
	r.Update(PopScreenMsg{})
	if r.Active().Title() != "first" || s2.closed != 1 {
		t.Error("expected help popped and closed")
	}
}
