package llm

import (
	"context"
	"encoding/json"
)

// Provider is the seam between BrainyDate and a hosted model.
// A call is a single structured-output request; the answer comes back as
// JSON that already satisfies the request schema.
type Provider interface {
	// Generate performs one request. When req.Schema is set the provider
	// asks for native structured output and validates the reply against
	// the schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the concrete model the provider talks to.
	ModelID() string
}

// Request is a provider-neutral prompt.
type Request struct {
	// System sets the model's role.
	System string

	// Messages is normally a single user turn.
	Messages []Message

	// Schema, when non-nil, constrains the reply to JSON of that shape.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who wrote a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON a request expects back.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "iq-question-set". It doubles
	// as the cache key for the compiled validator.
	Name string

	Description string

	// Definition is a JSON Schema document expressed as Go maps.
	Definition map[string]any
}

// Response is what a provider returns on success.
type Response struct {
	// Content is schema-valid JSON when a schema was requested, otherwise
	// the raw model text.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is one of "end", "max_tokens", "error".
	StopReason string
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
