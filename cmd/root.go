package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/brainydate/internal/config"
	"github.com/abhisek/brainydate/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "brainydate",
	Short:        "Test your IQ, then swipe to match",
	Long:         "BrainyDate is a terminal dating app: take a timed IQ test, build a profile and swipe through matches.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BRAINYDATE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides BRAINYDATE_CONFIG env var)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env, then the layered config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the db config key, then BRAINYDATE_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the event log.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
