package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/brainydate/internal/app"
	"github.com/abhisek/brainydate/internal/config"
	"github.com/abhisek/brainydate/internal/llm"
	"github.com/abhisek/brainydate/internal/logging"
	"github.com/abhisek/brainydate/internal/metrics"
	"github.com/abhisek/brainydate/internal/quiz"
	"github.com/abhisek/brainydate/internal/store"
)

// runApp loads config, opens the store, builds dependencies, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	m := metrics.NewManager()
	defer func() {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics file", zap.String("path", cfg.MetricsFile), zap.Error(err))
		}
	}()

	eventRepo := st.EventRepo()
	provider, err := llm.NewProviderFromEnv(ctx, llm.Deps{
		Recorder: eventRepo,
		Observer: m,
		Logger:   logger,
	})
	switch {
	case err != nil:
		logger.Warn("LLM provider not configured", zap.Error(err))
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The built-in questions will be used.")
	case provider == nil:
		logger.Warn("no LLM credential found, using built-in questions")
	}

	source := quiz.NewLLMSource(provider, quiz.DefaultConfig(),
		quiz.WithLogger(logger),
		quiz.WithSourceObserver(m),
	)

	logger.Info("starting brainydate", zap.String("version", version), zap.String("db", dbPath))
	return app.Run(app.Options{
		Source:    source,
		EventRepo: eventRepo,
		Observer:  m,
		Logger:    logger,
		Session:   cfg.Session(),
	})
}

func newLogger(cfg *config.Config) (*zap.Logger, func() error, error) {
	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}
	return logger, closeLog, nil
}
