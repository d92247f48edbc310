package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// testSetSchema mirrors the shape of the question-set schema without
// importing the quiz package.
func testSetSchema() *Schema {
	return &Schema{
		Name:        "test-question-set",
		Description: "A list of multiple choice items",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"questionText": map[string]any{"type": "string"},
							"options": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": 4,
								"maxItems": 4,
							},
							"correctAnswerIndex": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
							"questionType":       map[string]any{"type": "string"},
							"imageUrl":           map[string]any{"type": []any{"string", "null"}},
						},
						"required": []any{"questionText", "options", "correctAnswerIndex", "questionType"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

const validSet = `{"questions":[{"questionText":"2, 4, 8, ?","options":["10","12","16","18"],"correctAnswerIndex":2,"questionType":"Pattern Recognition"}]}`

func TestValidateResponse_ValidSet(t *testing.T) {
	if err := validateResponse(testSetSchema(), json.RawMessage(validSet)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_NullImageAllowed(t *testing.T) {
	raw := json.RawMessage(`{"questions":[{"questionText":"q","options":["a","b","c","d"],"correctAnswerIndex":0,"questionType":"Spatial Reasoning","imageUrl":null}]}`)
	if err := validateResponse(testSetSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing questions", `{}`},
		{"empty list", `{"questions":[]}`},
		{"three options", `{"questions":[{"questionText":"q","options":["a","b","c"],"correctAnswerIndex":0,"questionType":"t"}]}`},
		{"index out of range", `{"questions":[{"questionText":"q","options":["a","b","c","d"],"correctAnswerIndex":4,"questionType":"t"}]}`},
		{"index as string", `{"questions":[{"questionText":"q","options":["a","b","c","d"],"correctAnswerIndex":"1","questionType":"t"}]}`},
		{"missing type", `{"questions":[{"questionText":"q","options":["a","b","c","d"],"correctAnswerIndex":1}]}`},
		{"malformed", `{not json}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSetSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(testSetSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
