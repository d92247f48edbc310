package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BRAINYDATE_"

// EnvConfigPath names the variable holding the YAML file path.
const EnvConfigPath = envPrefix + "CONFIG"

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error. Variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
	}
	return nil
}

// Load builds a Config by layering defaults, the YAML file at path (or
// BRAINYDATE_CONFIG when path is empty), and env vars.
func Load(path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// BRAINYDATE_LOG_LEVEL -> log_level, BRAINYDATE_QUIZ_TOTAL_QUESTIONS -> quiz.total_questions.
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(s, "quiz_"); ok {
		return "quiz." + rest
	}
	return s
}

// Validate checks ranges and enums.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.Quiz.TotalQuestions < 1 || c.Quiz.TotalQuestions > 50 {
		return fmt.Errorf("%w: quiz.total_questions must be 1..50, got %d", ErrInvalidConfig, c.Quiz.TotalQuestions)
	}
	if c.Quiz.DurationSecs < 1 {
		return fmt.Errorf("%w: quiz.duration_secs must be positive, got %d", ErrInvalidConfig, c.Quiz.DurationSecs)
	}
	if c.Quiz.AnswerDelayMs < 0 {
		return fmt.Errorf("%w: quiz.answer_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Quiz.AnswerDelayMs)
	}
	return nil
}
