package components

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainydate/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with BrainyDate styling and a
// character limit.
type TextInput struct {
	Model textinput.Model
	Limit int
}

// NewTextInput creates a new styled, blurred text input.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{Model: ti, Limit: limit}
}

// Focus gives the input the cursor.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes the cursor.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Counter renders "n/limit" in the dim style.
func Counter(s string, limit int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", utf8.RuneCountInString(s), limit))
}
