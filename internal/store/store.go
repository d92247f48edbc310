package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Store owns the SQLite handle behind the event log.
type Store struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

// Open connects to the SQLite database at dsn, applies pragmas and creates
// any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer; pragmas are per connection.
	db.SetMaxOpenConns(1)
	return newStore(db)
}

// NewWithDB wraps an existing handle. Pragmas and migrations are skipped,
// which lets tests drive the repo against sqlmock.
func NewWithDB(db *sqlx.DB) *Store {
	return &Store{db: db, seq: &sequenceCounter{db: db}}
}

func newStore(db *sqlx.DB) (*Store, error) {
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying handle for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns the append/query repository for this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// Reset deletes every recorded event and rewinds the global sequence.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM llm_request_events`,
		`DELETE FROM quiz_session_events`,
		`UPDATE global_sequence SET next_val = 1 WHERE id = 1`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return tx.Commit()
}

func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		created_at    INTEGER NOT NULL,
		provider      TEXT    NOT NULL DEFAULT '',
		model         TEXT    NOT NULL DEFAULT '',
		purpose       TEXT    NOT NULL DEFAULT '',
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL DEFAULT 0,
		error_message TEXT    NOT NULL DEFAULT '',
		request_body  TEXT    NOT NULL DEFAULT '',
		response_body TEXT    NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_llm_request_events_purpose ON llm_request_events (purpose)`,
	`CREATE TABLE IF NOT EXISTS quiz_session_events (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence           INTEGER NOT NULL UNIQUE,
		created_at         INTEGER NOT NULL,
		session_id         TEXT    NOT NULL,
		action             TEXT    NOT NULL,
		source             TEXT    NOT NULL DEFAULT '',
		total_questions    INTEGER NOT NULL DEFAULT 0,
		questions_answered INTEGER NOT NULL DEFAULT 0,
		correct_answers    INTEGER NOT NULL DEFAULT 0,
		score              INTEGER NOT NULL DEFAULT 0,
		duration_secs      INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_session_events_session ON quiz_session_events (session_id)`,
}

func migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. BRAINYDATE_DB environment variable
// 2. $XDG_DATA_HOME/brainydate/brainydate.db
// 3. ~/.local/share/brainydate/brainydate.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("BRAINYDATE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "brainydate", "brainydate.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
