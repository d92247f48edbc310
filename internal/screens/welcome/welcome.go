// Package welcome is the splash screen with the start button.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainydate/internal/flow"
	"github.com/abhisek/brainydate/internal/screen"
	"github.com/abhisek/brainydate/internal/ui/components"
	"github.com/abhisek/brainydate/internal/ui/layout"
	"github.com/abhisek/brainydate/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Test your IQ, then swipe to match"

const heartArt = `  ▄███▄   ▄███▄
 ███████▄███████
 ▀█████████████▀
   ▀█████████▀
     ▀█████▀
       ▀█▀`

// sparkle frames cycle around the heart
var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen plays a short animation and waits for the user to start.
type WelcomeScreen struct {
	elapsed   time.Duration
	tickCount int
	started   bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New() *WelcomeScreen {
	return &WelcomeScreen{}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start the test"},
		{Key: "?", Description: "How it works"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			// Keep the sparkles moving, but slower.
			w.tickCount++
			return w, tea.Tick(5*tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
		}
		w.elapsed += tickInterval
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// The first key during the animation only skips it.
		if w.elapsed < totalDur {
			w.elapsed = totalDur
			return w, nil
		}
		switch msg.String() {
		case "enter", "space", " ", "s":
			return w, w.start()
		}
	}

	return w, nil
}

func (w *WelcomeScreen) start() tea.Cmd {
	if w.started {
		return nil
	}
	w.started = true
	return screen.Emit(flow.StartRequested{})
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(heartArt)

	if w.elapsed >= phase1End {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 3 {
			lines[3] = s2 + "  " + lines[3] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline))
	}

	if w.elapsed >= totalDur {
		sections = append(sections, "", components.NewButton("Start the IQ Test", true).View())
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press enter to begin"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
