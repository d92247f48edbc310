package iqtest

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/brainydate/internal/session"
	"github.com/abhisek/brainydate/internal/ui/components"
	"github.com/abhisek/brainydate/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch s.state.Phase {
	case sess.PhaseLoading:
		return renderLoading(width)
	case sess.PhaseError:
		return renderError(width)
	case sess.PhaseFinished:
		return renderFinished(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the header line, the progress bar and the
// current question.
func (s *Screen) renderQuestionView(width int) string {
	state := s.state
	q, ok := sess.CurrentQuestion(state)
	if !ok {
		return renderFinished(width)
	}
	total := sess.Total(state)

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", state.Index+1, total))

	timerColor := theme.TextDim
	if state.RemainingSecs <= 30 {
		timerColor = theme.Error
	}
	infoRight := lipgloss.NewStyle().
		Foreground(timerColor).
		Render("⏱ " + sess.FormatClock(state.RemainingSecs))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(state.Index)/float64(max(total, 1)), false, width-4)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(strings.ToUpper(q.Category)))
	b.WriteString("\n\n")

	textWidth := min(width-8, 70)
	question := lipgloss.NewStyle().
		Width(textWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n")

	if q.ImageURL != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Image: " + q.ImageURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	answers := s.answers
	answers.Width = min(width-8, 50)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answers.View()))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Generating your IQ test...")
}

// renderError renders the blocking no-questions message.
func renderError(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n\n  No questions could be loaded.\n\n  Please restart BrainyDate to try again.")
}

func renderFinished(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Calculating your score...")
}
