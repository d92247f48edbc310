// Package logging builds the file-backed zap logger. The TUI owns the
// terminal, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects level, encoding and destination.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json
	File   string // empty uses DefaultLogPath
}

// New opens (appending) the log file and returns a logger writing to it
// together with a close func that syncs and closes the file.
func New(opts Options) (*zap.Logger, func() error, error) {
	path := opts.File
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := newWithSyncer(opts, zapcore.AddSync(f))
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

func newWithSyncer(opts Options, ws zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder
	switch opts.Format {
	case "console":
		enc = zapcore.NewConsoleEncoder(encoderConfig)
	case "", "json":
		enc = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("log format %q: want console or json", opts.Format)
	}

	core := zapcore.NewCore(enc, ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/brainydate/brainydate.log, falling
// back to ~/.local/state.
func DefaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "brainydate", "brainydate.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "brainydate.log")
	}
	return filepath.Join(home, ".local", "state", "brainydate", "brainydate.log")
}
