package quiz

import (
	"fmt"
	"net/url"
	"strings"
)

// Validator checks one generated question. Implementations are stateless.
type Validator interface {
	Name() string
	Validate(q Question) *ValidationError
}

// ValidationError says which validator rejected a question and why.
type ValidationError struct {
	Validator string
	Index     int // position in the batch
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: question %d: %s", e.Validator, e.Index+1, e.Message)
}

// StructuralValidator enforces the item shape of the question contract.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	switch {
	case strings.TrimSpace(q.Text) == "":
		return fail("questionText is empty")
	case len(q.Text) > 500:
		return fail("questionText exceeds 500 characters")
	case len(q.Options) != OptionCount:
		return fail(fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)))
	case q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount:
		return fail(fmt.Sprintf("correctAnswerIndex %d out of range", q.CorrectIndex))
	case strings.TrimSpace(q.Category) == "":
		return fail("questionType is empty")
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fail(fmt.Sprintf("option %d is empty", i))
		}
	}
	return nil
}

// ImageValidator requires a present image reference to be an absolute
// http(s) URL.
type ImageValidator struct{}

func (v *ImageValidator) Name() string { return "image-url" }

func (v *ImageValidator) Validate(q Question) *ValidationError {
	if q.ImageURL == "" {
		return nil
	}
	u, err := url.Parse(q.ImageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("imageUrl %q is not an http(s) URL", q.ImageURL)}
	}
	return nil
}

// validateAll runs every validator over every question; the first failure
// rejects the whole batch.
func validateAll(qs []Question, validators []Validator) error {
	for i, q := range qs {
		for _, v := range validators {
			if verr := v.Validate(q); verr != nil {
				verr.Index = i
				return verr
			}
		}
	}
	return nil
}
