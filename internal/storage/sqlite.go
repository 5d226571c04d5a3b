// Package storage provides the SQLite-backed run log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The database lives in memory only: scores are kept for the lifetime of the
// process (one play session, or every SSH session of one server) and are
// never written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN is a private in-memory database.
const memoryDSN = ":memory:"

// Store manages the SQLite connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is one Running-to-Terminal play-through.
type Run struct {
	ID       string
	Session  string        // Player session (one per terminal or SSH connection)
	Theme    string        // Theme active when the round ended
	Score    float64       // Final score of the round
	Best     float64       // Session best at the end of the round
	GodMode  bool          // Collisions disabled
	Cause    string        // Cue that ended the round ("hit" or "die")
	Duration time.Duration // Time from the first flap to game over
	EndedAt  time.Time
}

// Stats contains aggregated figures over all logged runs.
type Stats struct {
	Runs       int
	Sessions   int
	BestScore  float64
	AvgScore   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Open creates an empty in-memory run log and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so all callers
	// must share one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL,
			theme TEXT NOT NULL DEFAULT '',
			score REAL NOT NULL,
			best REAL NOT NULL,
			god_mode INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_ended ON runs(ended_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The run log is discarded.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A missing ID is generated and a zero
// EndedAt is set to the current time. Returns the run ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, session, theme, score, best, god_mode, cause, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Session,
		r.Theme,
		r.Score,
		r.Best,
		r.GodMode,
		r.Cause,
		r.Duration.Milliseconds(),
		r.EndedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.ID, nil
}

const runColumns = `id, session, theme, score, best, god_mode, cause, duration_ms, ended_at`

// SessionRuns retrieves the runs of one session in play order.
func (s *Store) SessionRuns(session string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE session = ?
		 ORDER BY ended_at ASC, rowid ASC
		 LIMIT ?`,
		session, limit,
	)
}

// TopRuns retrieves the best runs across all sessions.
// Ties keep the earlier run first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY score DESC, ended_at ASC, rowid ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			durationMS int64
			endedAt    int64
		)
		if err := rows.Scan(&r.ID, &r.Session, &r.Theme, &r.Score, &r.Best, &r.GodMode, &r.Cause, &durationMS, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.EndedAt = time.Unix(0, endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated figures over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var (
		totalMS  int64
		lastNano sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT session), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(duration_ms), 0), MAX(ended_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Sessions, &stats.BestScore, &stats.AvgScore, &totalMS, &lastNano)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalMS) * time.Millisecond
	if lastNano.Valid {
		stats.LastPlayed = time.Unix(0, lastNano.Int64)
	}

	return stats, nil
}
