// Package profile validates the profile form and turns a picked image file
// into a self-contained data URL.
package profile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/brainydate/internal/flow"
)

const (
	// MaxNameLen is the name field limit, in characters.
	MaxNameLen = 20

	// MaxBioLen is the bio field limit, in characters.
	MaxBioLen = 150

	// MaxPhotoBytes bounds the picked file.
	MaxPhotoBytes = 10 << 20
)

var (
	// ErrNotImage is returned for a file whose content is not an image.
	ErrNotImage = errors.New("file is not an image")

	// ErrPhotoTooLarge is returned for a file over MaxPhotoBytes.
	ErrPhotoTooLarge = errors.New("image is too large")
)

// Form is the in-progress profile.
type Form struct {
	Name  string
	Bio   string
	Photo string
}

// Validate checks the field limits and that every field is set. A missing
// field yields flow.ErrIncompleteProfile.
func (f Form) Validate() error {
	if n := utf8.RuneCountInString(f.Name); n > MaxNameLen {
		return fmt.Errorf("name is %d characters, max %d", n, MaxNameLen)
	}
	if n := utf8.RuneCountInString(f.Bio); n > MaxBioLen {
		return fmt.Errorf("bio is %d characters, max %d", n, MaxBioLen)
	}
	if !f.Ready() {
		return flow.ErrIncompleteProfile
	}
	return nil
}

// Ready reports whether every field is filled in.
func (f Form) Ready() bool {
	return strings.TrimSpace(f.Name) != "" && strings.TrimSpace(f.Bio) != "" && f.Photo != ""
}

// Submission converts the form into the flow event.
func (f Form) Submission() flow.ProfileSubmitted {
	return flow.ProfileSubmitted{Name: f.Name, Bio: f.Bio, Photo: f.Photo}
}

// LoadPhoto reads the file at path and returns it as a data URL.
func LoadPhoto(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxPhotoBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if len(data) > MaxPhotoBytes {
		return "", ErrPhotoTooLarge
	}
	return DataURL(data)
}

// DataURL encodes image bytes as data:<mime>;base64,<payload>.
func DataURL(data []byte) (string, error) {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w (detected %s)", ErrNotImage, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ImageExtensions are offered by the file picker.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}
