package llm

import "context"

type contextKey struct{}

// PurposeQuestions labels the question-set request.
const PurposeQuestions = "iq-questions"

// WithPurpose tags ctx so decorators can attribute a request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, contextKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
