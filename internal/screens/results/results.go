// Package results shows the final IQ score.
package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainydate/internal/flow"
	"github.com/abhisek/brainydate/internal/screen"
	"github.com/abhisek/brainydate/internal/session"
	"github.com/abhisek/brainydate/internal/ui/components"
	"github.com/abhisek/brainydate/internal/ui/layout"
	"github.com/abhisek/brainydate/internal/ui/theme"
)

// The gauge starts below the lowest reachable score so 85 still shows a bar.
const (
	GaugeMin = 70
	GaugeMax = session.MaxScore
)

// ResultsScreen displays the score with its tier.
type ResultsScreen struct {
	score int
	done  bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(score int) *ResultsScreen {
	return &ResultsScreen{score: score}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Create your profile"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" && !s.done {
		s.done = true
		return s, screen.Emit(flow.ResultsAcknowledged{})
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.TextDim), "Your estimated IQ score is")
	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(tierColor(s.score)).Bold(true), fmt.Sprintf("%d", s.score))
	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), session.Tier(s.score))
	b.WriteString("\n")

	gaugeWidth := min(width-8, 60)
	gauge := components.NewProgressBar("", components.GaugePercent(s.score, GaugeMin, GaugeMax), false, gaugeWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, gauge.View()))
	b.WriteString("\n")

	scale := fmt.Sprintf("%-*d%*d", gaugeWidth/2, GaugeMin, gaugeWidth-gaugeWidth/2, GaugeMax)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(scale)))
	b.WriteString("\n\n")

	center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
		"Now let's find someone who can keep up with you.")
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewButton("Create Profile", true).View()))

	return b.String()
}

// tierColor returns the theme color for a score tier.
func tierColor(score int) color.Color {
	switch {
	case score >= 130:
		return theme.Accent
	case score >= 115:
		return theme.Primary
	case score >= 100:
		return theme.Secondary
	default:
		return theme.Text
	}
}
