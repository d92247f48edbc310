package quiz

import (
	"context"
	"fmt"
)

// Fallback returns the built-in question list of the given length. The
// first three items are fixed; the rest are numbered filler.
func Fallback(count int) []Question {
	if count <= 0 {
		return nil
	}

	qs := []Question{
		{
			Text:         "Which number should come next in the series: 2, 6, 12, 20, 30, ?",
			Options:      []string{"42", "40", "36", "48"},
			CorrectIndex: 0,
			Category:     CategoryPattern,
		},
		{
			Text:         "Book is to Reading as Fork is to:",
			Options:      []string{"Drawing", "Writing", "Stirring", "Eating"},
			CorrectIndex: 3,
			Category:     CategoryAnalogy,
		},
		{
			Text:         "Which of the following figures is the odd one out?",
			ImageURL:     "https://picsum.photos/400/200?random=1",
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: 2,
			Category:     CategorySpatial,
		},
	}
	if count <= len(qs) {
		return qs[:count]
	}

	for i := 0; i < count-3; i++ {
		qs = append(qs, Question{
			Text:         fmt.Sprintf("Mock Question %d: What is the answer?", i+4),
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: i % OptionCount,
			Category:     CategoryLogical,
		})
	}
	return qs
}

// FallbackSource serves the built-in list. It never fails for a positive
// count.
type FallbackSource struct{}

func (FallbackSource) Produce(ctx context.Context, count int) (Batch, error) {
	if count <= 0 {
		return Batch{}, ErrNoQuestions
	}
	if err := ctx.Err(); err != nil {
		return Batch{}, err
	}
	return Batch{Questions: Fallback(count), Origin: OriginFallback}, nil
}
