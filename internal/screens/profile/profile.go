// Package profile is the profile creation screen.
package profile

import (
	"errors"
	"path/filepath"

	"charm.land/bubbles/v2/filepicker"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainydate/internal/flow"
	prof "github.com/abhisek/brainydate/internal/profile"
	"github.com/abhisek/brainydate/internal/screen"
	"github.com/abhisek/brainydate/internal/ui/components"
	"github.com/abhisek/brainydate/internal/ui/layout"
)

type field int

const (
	fieldName field = iota
	fieldBio
	fieldPhoto
	fieldSubmit
	fieldCount
)

// photoLoadedMsg is sent when a picked file has been read.
type photoLoadedMsg struct {
	Name string
	URL  string
	Err  error
}

// ProfileScreen collects name, bio and photo.
type ProfileScreen struct {
	score int

	name   components.TextInput
	bio    textarea.Model
	picker filepicker.Model

	focus    field
	browsing bool

	photoName string
	photoURL  string

	errMsg    string
	submitted bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the form. score is shown as part of the profile preview.
func New(score int) *ProfileScreen {
	bio := textarea.New()
	bio.Placeholder = "Tell your matches something about you..."
	bio.CharLimit = prof.MaxBioLen
	bio.ShowLineNumbers = false
	bio.SetWidth(50)
	bio.SetHeight(4)

	picker := filepicker.New()
	picker.AllowedTypes = prof.ImageExtensions
	picker.ShowPermissions = false

	return &ProfileScreen{
		score:  score,
		name:   components.NewTextInput("Your first name", prof.MaxNameLen),
		bio:    bio,
		picker: picker,
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.name.Focus()
}

func (s *ProfileScreen) Title() string {
	return "Create Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.browsing {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Browse"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
	}
	if s.focus == fieldPhoto {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Pick photo"})
	}
	if s.form().Ready() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Find matches"})
	}
	return hints
}

// form snapshots the current field values.
func (s *ProfileScreen) form() prof.Form {
	return prof.Form{Name: s.name.Value(), Bio: s.bio.Value(), Photo: s.photoURL}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case photoLoadedMsg:
		if msg.Err != nil {
			s.errMsg = photoError(msg.Err)
			return s, nil
		}
		s.photoName = msg.Name
		s.photoURL = msg.URL
		s.errMsg = ""
		return s, nil

	case screen.EventRejectedMsg:
		s.submitted = false
		s.errMsg = rejectedMessage(msg.Err)
		return s, nil

	case tea.KeyPressMsg:
		if s.browsing {
			return s.updatePicker(msg)
		}
		return s.handleKey(msg)
	}

	// Directory listings and cursor blinks.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	cmds = append(cmds, cmd)
	cmds = append(cmds, s.updateFocused(msg))
	return s, tea.Batch(cmds...)
}

func (s *ProfileScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
	case "ctrl+s":
		return s, s.submit()
	case "enter":
		switch s.focus {
		case fieldName:
			return s, s.setFocus(fieldBio)
		case fieldPhoto:
			s.browsing = true
			return s, s.picker.Init()
		case fieldSubmit:
			return s, s.submit()
		}
	}
	return s, s.updateFocused(msg)
}

func (s *ProfileScreen) updatePicker(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		s.browsing = false
		return s, nil
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)

	if ok, path := s.picker.DidSelectFile(msg); ok {
		s.browsing = false
		return s, tea.Batch(cmd, loadPhoto(path))
	}
	if ok, path := s.picker.DidSelectDisabledFile(msg); ok {
		s.errMsg = filepath.Base(path) + " is not a supported image."
	}
	return s, cmd
}

func (s *ProfileScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldBio:
		s.bio, cmd = s.bio.Update(msg)
	}
	return cmd
}

func (s *ProfileScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.name.Blur()
	s.bio.Blur()
	switch f {
	case fieldName:
		return s.name.Focus()
	case fieldBio:
		return s.bio.Focus()
	}
	return nil
}

// submit validates the form and emits the flow event. Invalid forms stay
// on screen with an inline message.
func (s *ProfileScreen) submit() tea.Cmd {
	if s.submitted {
		return nil
	}
	f := s.form()
	if err := f.Validate(); err != nil {
		s.errMsg = rejectedMessage(err)
		return nil
	}
	s.submitted = true
	s.errMsg = ""
	return screen.Emit(f.Submission())
}

func loadPhoto(path string) tea.Cmd {
	return func() tea.Msg {
		url, err := prof.LoadPhoto(path)
		return photoLoadedMsg{Name: filepath.Base(path), URL: url, Err: err}
	}
}

func rejectedMessage(err error) string {
	if errors.Is(err, flow.ErrIncompleteProfile) {
		return "Please add your name, a short bio and a photo."
	}
	return err.Error()
}

func photoError(err error) string {
	switch {
	case errors.Is(err, prof.ErrNotImage):
		return "That file is not an image."
	case errors.Is(err, prof.ErrPhotoTooLarge):
		return "That image is too large."
	}
	return "Could not read that photo: " + err.Error()
}
