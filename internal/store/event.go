package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
)

// sequenceCounter hands out one monotonic sequence shared by every event
// table, so LLM calls and quiz sessions can be ordered against each other.
// The mutex serializes within the process; RETURNING makes the increment
// atomic in the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sqlx.DB
}

func newSequenceCounter(db *sqlx.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	if _, err := db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next returns the current value and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowxContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on sqlx and the global sequence.
type eventRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}
