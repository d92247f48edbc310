// Package config loads BrainyDate settings. Layers, low to high: defaults,
// an optional YAML file, then BRAINYDATE_ environment variables.
package config

import (
	"time"

	"github.com/abhisek/brainydate/internal/session"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is "console" or "json".
	LogFormat string `koanf:"log_format"`

	// LogFile receives all log output; the TUI owns the terminal.
	LogFile string `koanf:"log_file"`

	// DB is the SQLite event log path. Empty uses the XDG data dir.
	DB string `koanf:"db"`

	// MetricsFile, when set, gets a Prometheus textfile on exit.
	MetricsFile string `koanf:"metrics_file"`

	Quiz QuizConfig `koanf:"quiz"`
}

// QuizConfig holds the timed test settings.
type QuizConfig struct {
	TotalQuestions int `koanf:"total_questions"`
	DurationSecs   int `koanf:"duration_secs"`
	AnswerDelayMs  int `koanf:"answer_delay_ms"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "json",
		Quiz: QuizConfig{
			TotalQuestions: 15,
			DurationSecs:   300,
			AnswerDelayMs:  500,
		},
	}
}

// Session converts the quiz settings for the session controller.
func (c *Config) Session() session.Config {
	return session.Config{
		TotalQuestions: c.Quiz.TotalQuestions,
		Duration:       time.Duration(c.Quiz.DurationSecs) * time.Second,
		AnswerDelay:    time.Duration(c.Quiz.AnswerDelayMs) * time.Millisecond,
	}
}
