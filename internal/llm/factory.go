package llm

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Deps are the optional collaborators wired around every provider.
type Deps struct {
	Recorder RequestRecorder
	Observer RequestObserver
	Logger   *zap.Logger
}

// NewProvider builds the configured provider and wraps it:
// caller → timeout → observer → logging → base. There is no retry layer:
// a failed call falls back to local questions.
func NewProvider(ctx context.Context, cfg Config, deps Deps) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderOllama:
		base, err = NewOllamaProvider(cfg.Ollama)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, deps.Recorder, deps.Logger)
	p = WithObserver(p, deps.Observer)
	p = WithTimeout(p, cfg.Timeout)
	return p, nil
}

// NewProviderFromEnv prefers explicit BRAINYDATE_* settings and otherwise
// falls back to DiscoverConfig. It returns (nil, nil) when no credential is
// present so the app can run on local questions alone.
func NewProviderFromEnv(ctx context.Context, deps Deps) (Provider, error) {
	cfg := ConfigFromEnv()
	if os.Getenv("BRAINYDATE_LLM_PROVIDER") != "" || cfg.Validate() == nil {
		return NewProvider(ctx, cfg, deps)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, nil
	}
	discovered.Timeout = cfg.Timeout
	return NewProvider(ctx, discovered, deps)
}
