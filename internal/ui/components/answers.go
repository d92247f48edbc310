package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainydate/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// AnswerList renders four options with a cursor. Once an option is locked
// it is shown green or red and the cursor is hidden.
type AnswerList struct {
	Options []string
	Cursor  int

	// Locked is the chosen option, -1 while the player is still choosing.
	Locked  int
	Correct bool
	Width   int
}

// NewAnswerList creates an unlocked list with the cursor on the first option.
func NewAnswerList(options []string) AnswerList {
	return AnswerList{Options: options, Locked: -1}
}

// Up moves the cursor up one option.
func (a *AnswerList) Up() {
	if a.Cursor > 0 {
		a.Cursor--
	}
}

// Down moves the cursor down one option.
func (a *AnswerList) Down() {
	if a.Cursor < len(a.Options)-1 {
		a.Cursor++
	}
}

// View renders the options.
func (a AnswerList) View() string {
	var b strings.Builder
	for i, opt := range a.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if a.Locked < 0 && i == a.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		style := theme.Unselected
		switch {
		case a.Locked == i && a.Correct:
			style = theme.Correct
		case a.Locked == i:
			style = theme.Incorrect
		case a.Locked >= 0:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == a.Cursor:
			style = theme.Selected
		}
		if a.Width > 0 {
			style = style.Width(a.Width)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
