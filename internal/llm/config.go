package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderMock       = "mock"
)

// Config selects and configures one provider.
type Config struct {
	Provider string

	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Ollama     OllamaConfig

	// Timeout bounds a single generation call. The question source never
	// retries, so this is also the worst-case wait before falling back.
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-pro"
}

type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// OllamaConfig targets a local Ollama server. No API key is involved.
type OllamaConfig struct {
	ServerURL string // Default: "http://localhost:11434"
	Model     string // Default: "llama3.1"
}

// DefaultConfig returns the Gemini-first defaults.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Gemini: GeminiConfig{
			Model: "gemini-pro",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Ollama: OllamaConfig{
			ServerURL: "http://localhost:11434",
			Model:     "llama3.1",
		},
		Timeout: 45 * time.Second,
	}
}

// ConfigFromEnv reads BRAINYDATE_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Provider, "BRAINYDATE_LLM_PROVIDER")

	setFromEnv(&cfg.Gemini.APIKey, "BRAINYDATE_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "BRAINYDATE_GEMINI_MODEL")

	setFromEnv(&cfg.Anthropic.APIKey, "BRAINYDATE_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "BRAINYDATE_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "BRAINYDATE_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "BRAINYDATE_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "BRAINYDATE_OPENAI_BASE_URL")

	setFromEnv(&cfg.OpenRouter.APIKey, "BRAINYDATE_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "BRAINYDATE_OPENROUTER_MODEL")

	setFromEnv(&cfg.Ollama.ServerURL, "BRAINYDATE_OLLAMA_URL")
	setFromEnv(&cfg.Ollama.Model, "BRAINYDATE_OLLAMA_MODEL")

	if d := os.Getenv("BRAINYDATE_LLM_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig looks for well-known credential variables and returns a
// Config for the first one found. API_KEY is honoured as a Gemini key for
// compatibility with the web build of the app.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	for _, key := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if k := os.Getenv(key); k != "" {
			cfg.Provider = ProviderGemini
			cfg.Gemini.APIKey = k
			return cfg, true
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate reports a missing credential for the selected provider.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("BRAINYDATE_GEMINI_API_KEY (or GEMINI_API_KEY / API_KEY) is required for the gemini provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("BRAINYDATE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("BRAINYDATE_OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("BRAINYDATE_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderOllama:
		if c.Ollama.Model == "" {
			return fmt.Errorf("BRAINYDATE_OLLAMA_MODEL is required for the ollama provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
