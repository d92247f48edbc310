package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainydate/internal/flow"
	"github.com/abhisek/brainydate/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that hold timers or in-flight work.
// The router calls Close exactly once when the screen leaves the stack.
type Closer interface {
	Close()
}

// FlowEventMsg asks the app to apply a flow event.
type FlowEventMsg struct {
	Event flow.Event
}

// EventRejectedMsg is delivered to the active screen when the app refused
// its flow event.
type EventRejectedMsg struct {
	Err error
}

// Emit returns a command producing a FlowEventMsg.
func Emit(ev flow.Event) tea.Cmd {
	return func() tea.Msg { return FlowEventMsg{Event: ev} }
}
