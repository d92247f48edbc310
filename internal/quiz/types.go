package quiz

import "errors"

// ErrNoQuestions means no question content could be produced at all.
var ErrNoQuestions = errors.New("no questions available")

// Question is one multiple choice item. It is immutable once produced and
// passed around by value.
type Question struct {
	// Text is the prompt shown to the player.
	Text string `json:"questionText"`

	// Options always holds exactly four choices.
	Options []string `json:"options"`

	// CorrectIndex is the index in Options of the right answer, 0..3.
	CorrectIndex int `json:"correctAnswerIndex"`

	// Category is a free-form label such as "Pattern Recognition".
	Category string `json:"questionType"`

	// ImageURL is empty when the question has no picture.
	ImageURL string `json:"imageUrl,omitempty"`
}

// IsCorrect reports whether option i is the right answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectIndex
}

// OptionCount is the fixed number of options per question.
const OptionCount = 4

// Reasoning categories requested from the generator.
const (
	CategoryLogical = "Logical Reasoning"
	CategoryPattern = "Pattern Recognition"
	CategorySpatial = "Spatial Reasoning"
	CategoryAnalogy = "Verbal Analogy"
)

// Categories lists the four reasoning areas in prompt order.
var Categories = []string{CategoryLogical, CategoryPattern, CategorySpatial, CategoryAnalogy}

// Origin records which path produced a Batch.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)

// Batch is the ordered list handed to one quiz session.
type Batch struct {
	Questions []Question
	Origin    Origin

	// FallbackReason is the error that forced the fallback path, if any.
	FallbackReason error
}
