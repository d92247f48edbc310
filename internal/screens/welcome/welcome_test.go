package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainydate/internal/flow"
	"github.com/abhisek/brainydate/internal/screen"
)

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func TestPhaseTransitions(t *testing.T) {
	w := New()

	view := w.View(80, 40)
	if strings.Contains(view, Tagline) {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, w.elapsed)
	}

	sendTicks(w, 10)
	if w.elapsed != phase2End {
		t.Errorf("expected elapsed %v, got %v", phase2End, w.elapsed)
	}
	view = w.View(80, 40)
	if !strings.Contains(view, Tagline) {
		t.Error("tagline should be visible after phase 2")
	}
	if strings.Contains(view, "Start the IQ Test") {
		t.Error("start button should wait for the end of the animation")
	}

	sendTicks(w, 10)
	if !strings.Contains(w.View(80, 40), "Start the IQ Test") {
		t.Error("start button should be visible after the animation")
	}
}

func TestElapsedCapped(t *testing.T) {
	w := New()
	sendTicks(w, 60)
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestKeypressDuringAnimationSkips(t *testing.T) {
	w := New()
	sendTicks(w, 3)

	_, cmd := w.Update(enter)
	if cmd != nil {
		t.Fatal("first key during animation should only skip it")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected animation skipped, elapsed %v", w.elapsed)
	}
}

func TestEnterEmitsStartOnce(t *testing.T) {
	w := New()
	sendTicks(w, 25)

	_, cmd := w.Update(enter)
	if cmd == nil {
		t.Fatal("expected a command from enter after animation")
	}
	msg, ok := cmd().(screen.FlowEventMsg)
	if !ok {
		t.Fatalf("expected FlowEventMsg, got %T", cmd())
	}
	if _, ok := msg.Event.(flow.StartRequested); !ok {
		t.Errorf("expected StartRequested, got %T", msg.Event)
	}

	if _, cmd := w.Update(enter); cmd != nil {
		t.Error("second enter should not produce a command")
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	w := New()
	sendTicks(w, 25)
	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("unbound key should be ignored")
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "B R A I N Y") {
		t.Error("narrow terminals should get the compact banner")
	}
}

func TestTitleEmpty(t *testing.T) {
	if New().Title() != "" {
		t.Errorf("expected empty title, got %q", New().Title())
	}
}
