package flamerush

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	score        INTEGER NOT NULL,
	coins_earned INTEGER NOT NULL,
	difficulty   REAL NOT NULL,
	flame        TEXT NOT NULL,
	started_at   INTEGER NOT NULL,
	ended_at     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
`

// SQLiteStore is a Store, RunRecorder and RunHistory backed by a SQLite
// database file.
type SQLiteStore struct {
	db *sql.DB
}

var (
	_ RunRecorder = (*SQLiteStore)(nil)
	_ RunHistory  = (*SQLiteStore)(nil)
)

// OpenSQLiteStore opens (creating if needed) the database at path and
// applies the schema. Use ":memory:" for a throwaway store.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("flamerush: open db: %w", err)
	}
	// One connection: the game loop is single-threaded, and ":memory:"
	// databases are per-connection.
	db.SetMaxOpenConns(1)

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("flamerush: enable WAL: %w", err)
		}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("flamerush: migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get implements Store.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("flamerush: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("flamerush: set %s: %w", key, err)
	}
	return nil
}

// RecordRun implements RunRecorder.
func (s *SQLiteStore) RecordRun(run Run) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (id, score, coins_earned, difficulty, flame, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Score, run.CoinsEarned, run.Difficulty, run.Flame,
		run.StartedAt.UnixMilli(), run.EndedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("flamerush: record run %s: %w", run.ID, err)
	}
	return nil
}

// TopRuns implements RunHistory: up to limit runs ordered by score, best
// first.
func (s *SQLiteStore) TopRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, score, coins_earned, difficulty, flame, started_at, ended_at
		FROM runs ORDER BY score DESC, ended_at ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("flamerush: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, ended int64
		if err := rows.Scan(&r.ID, &r.Score, &r.CoinsEarned, &r.Difficulty, &r.Flame, &started, &ended); err != nil {
			return nil, fmt.Errorf("flamerush: scan run: %w", err)
		}
		r.StartedAt = time.UnixMilli(started)
		r.EndedAt = time.UnixMilli(ended)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
