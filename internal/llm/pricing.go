package llm

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

// LookupCost returns pricing for a model ID, or nil when unknown. Local
// Ollama models are free and report nil.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// Covers the models reachable through the friendly names above plus the
// common OpenRouter routes.
var modelCosts = map[string]ModelCost{
	"gemini-2.5-pro":        {1.25, 10},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.0-flash":      {0.1, 0.4},

	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-haiku-4-5":          {1, 5},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},

	"google/gemini-2.5-flash":     {0.3, 2.5},
	"google/gemini-2.5-pro":       {1.25, 10},
	"anthropic/claude-haiku-4.5":  {1, 5},
	"openai/gpt-4o-mini":          {0.15, 0.6},
}
