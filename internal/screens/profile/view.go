package profile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	prof "github.com/abhisek/brainydate/internal/profile"
	"github.com/abhisek/brainydate/internal/ui/components"
	"github.com/abhisek/brainydate/internal/ui/theme"
)

func (s *ProfileScreen) View(width, height int) string {
	if s.browsing {
		return s.renderPicker(width)
	}

	formWidth := min(width-8, 60)
	label := func(f field, text string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.focus == f {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}
	card := func(f field, body string) string {
		style := theme.BlurredCard
		if s.focus == f {
			style = theme.FocusedCard
		}
		return style.Width(formWidth).Render(body)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(formWidth).Render("Create your profile"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(formWidth).Render(fmt.Sprintf("IQ score %d", s.score)))
	b.WriteString("\n\n")

	b.WriteString(label(fieldName, "Name  ") + components.Counter(s.name.Value(), prof.MaxNameLen))
	b.WriteString("\n")
	b.WriteString(card(fieldName, s.name.View()))
	b.WriteString("\n")

	b.WriteString(label(fieldBio, "Bio  ") + components.Counter(s.bio.Value(), prof.MaxBioLen))
	b.WriteString("\n")
	b.WriteString(card(fieldBio, s.bio.View()))
	b.WriteString("\n")

	photo := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("No photo selected")
	if s.photoURL != "" {
		photo = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ " + s.photoName)
	}
	b.WriteString(label(fieldPhoto, "Photo"))
	b.WriteString("\n")
	b.WriteString(card(fieldPhoto, photo))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(theme.ErrorText.Render(s.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := components.Button{Label: "Find Matches", Enabled: s.form().Ready(), Focused: s.focus == fieldSubmit}
	b.WriteString(button.View())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *ProfileScreen) renderPicker(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Pick a photo"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(s.picker.View())
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
