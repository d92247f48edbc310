// Package matching is the swipe screen shown after the profile is saved.
package matching

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/brainydate/internal/flow"
	"github.com/abhisek/brainydate/internal/match"
	"github.com/abhisek/brainydate/internal/screen"
	"github.com/abhisek/brainydate/internal/ui/layout"
	"github.com/abhisek/brainydate/internal/ui/theme"
)

// MatchingScreen shows one candidate at a time.
type MatchingScreen struct {
	profile flow.Profile
	deck    *match.Deck
	logger  *zap.Logger
}

var _ screen.Screen = (*MatchingScreen)(nil)
var _ screen.KeyHintProvider = (*MatchingScreen)(nil)

// New creates a MatchingScreen for p over candidates.
func New(p flow.Profile, candidates []match.Candidate, logger *zap.Logger) *MatchingScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchingScreen{profile: p, deck: match.NewDeck(candidates), logger: logger}
}

func (s *MatchingScreen) Init() tea.Cmd {
	return nil
}

func (s *MatchingScreen) Title() string {
	return "Matches"
}

func (s *MatchingScreen) KeyHints() []layout.KeyHint {
	if s.deck.Done() {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "←/p", Description: "Pass"},
		{Key: "→/l", Description: "Like"},
	}
}

func (s *MatchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "p", "h":
		s.swipe(match.Pass)
	case "right", "l":
		s.swipe(match.Like)
	}
	return s, nil
}

func (s *MatchingScreen) swipe(d match.Decision) {
	c, ok := s.deck.Current()
	if !ok {
		return
	}
	s.deck.Swipe(d)
	s.logger.Debug("swiped", zap.String("candidate", c.Name), zap.Stringer("decision", d))
}

func (s *MatchingScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%s  ·  IQ %d", s.profile.Name, s.profile.Score)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Matches who scored in your league"))
	b.WriteString("\n\n")

	c, ok := s.deck.Current()
	if !ok {
		b.WriteString(s.renderDone(width))
		return b.String()
	}

	cardWidth := min(width-8, 44)
	body := strings.Join([]string{
		theme.Title.Width(cardWidth - 4).Render(c.Name),
		lipgloss.NewStyle().Width(cardWidth - 4).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(fmt.Sprintf("IQ %d", c.Score)),
		"",
		lipgloss.NewStyle().Width(cardWidth - 4).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(c.PhotoURL),
	}, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Width(cardWidth).Render(body)))
	b.WriteString("\n\n")

	buttons := theme.Pass.Render("  ✗ Pass  ") + "      " + theme.Like.Render("  ♥ Like  ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d left", s.deck.Remaining())))

	return b.String()
}

func (s *MatchingScreen) renderDone(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("That's everyone for now!"))
	b.WriteString("\n\n")

	liked := s.deck.Liked()
	msg := "You passed on everyone. Check back later for new matches."
	if len(liked) > 0 {
		names := make([]string, len(liked))
		for i, c := range liked {
			names[i] = c.Name
		}
		msg = "You liked " + strings.Join(names, ", ") + "."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(msg))
	return b.String()
}
