package quiz

import "github.com/abhisek/brainydate/internal/llm"

// SetSchema is the structured-output contract for one generation call. The
// root is an object because not every provider accepts a bare array.
var SetSchema = &llm.Schema{
	Name:        "iq-question-set",
	Description: "A list of multiple-choice IQ test questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionText": map[string]any{
							"type":        "string",
							"description": "The question shown to the player",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    OptionCount,
							"maxItems":    OptionCount,
							"description": "Exactly 4 answer options",
						},
						"correctAnswerIndex": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     OptionCount - 1,
							"description": "Index of the correct option",
						},
						"questionType": map[string]any{
							"type":        "string",
							"description": "Reasoning category, e.g. Pattern Recognition",
						},
						"imageUrl": map[string]any{
							"type":        []any{"string", "null"},
							"description": "Placeholder image for visual questions, otherwise null",
						},
					},
					"required": []any{"questionText", "options", "correctAnswerIndex", "questionType"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
