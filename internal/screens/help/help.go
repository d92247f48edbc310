// Package help is the "how it works" overlay.
package help

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainydate/internal/router"
	"github.com/abhisek/brainydate/internal/screen"
	"github.com/abhisek/brainydate/internal/ui/layout"
	"github.com/abhisek/brainydate/internal/ui/theme"
)

// HelpScreen explains the test and the matching rules.
type HelpScreen struct {
	questions int
	minutes   int
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen for a test of questions over minutes.
func New(questions, minutes int) *HelpScreen {
	return &HelpScreen{questions: questions, minutes: minutes}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "How it works"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	text := fmt.Sprintf(`╌╌ How BrainyDate works ╌╌

1. Take a %d question IQ test. You have %d minutes.
   Logic, patterns, spatial reasoning and analogies.

2. Get your score, from 85 to 145.

3. Create a profile with your name, a bio and a photo.

4. Swipe through matches who scored in your league.`, h.questions, h.minutes)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(text)
}
