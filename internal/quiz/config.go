package quiz

// Config controls the LLM-backed source.
type Config struct {
	// Validators run in order over every item; the first failure discards
	// the batch.
	Validators []Validator

	// MaxTokens is the token budget for the whole question set.
	MaxTokens int

	Temperature float64
}

// DefaultConfig returns the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ImageValidator{},
		},
		MaxTokens:   8192,
		Temperature: 0.9,
	}
}
