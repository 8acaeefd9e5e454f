// Package storage provides SQLite-based persistence for walk run records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only run metadata is stored; paths are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// Run is the summary of one finished walk.
type Run struct {
	ID        int64
	Surface   string // registry id the walk was started from
	StartMode string
	FinalMode string
	Seed      int64
	Steps     int
	Capacity  int
	Width     float64 // extent at the end of the run
	Height    float64
	FinalX    float64
	FinalY    float64
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			surface TEXT NOT NULL,
			start_mode TEXT NOT NULL,
			final_mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			capacity INTEGER NOT NULL,
			width REAL NOT NULL DEFAULT 0,
			height REAL NOT NULL DEFAULT 0,
			final_x REAL NOT NULL DEFAULT 0,
			final_y REAL NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_surface ON runs(surface);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(surface, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished walk.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Surface == "" {
		return 0, fmt.Errorf("storage: run has no surface")
	}
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (surface, start_mode, final_mode, seed, steps, capacity, width, height, final_x, final_y, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Surface, r.StartMode, r.FinalMode, r.Seed, r.Steps, r.Capacity,
		r.Width, r.Height, r.FinalX, r.FinalY, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest runs, newest first.
// An empty surface selects runs of every surface.
func (s *Store) RecentRuns(surface string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, surface, start_mode, final_mode, seed, steps, capacity,
	                 width, height, final_x, final_y, duration_ms, created_at
	          FROM runs`
	var args []any
	if surface != "" {
		query += " WHERE surface = ?"
		args = append(args, surface)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Surface, &r.StartMode, &r.FinalMode, &r.Seed,
			&r.Steps, &r.Capacity, &r.Width, &r.Height, &r.FinalX, &r.FinalY,
			&durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", strings.TrimSuffix(t, "Z")); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// LongestRun returns the highest step count recorded for the surface.
// Returns 0 if no runs exist.
func (s *Store) LongestRun(surface string) (int, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(steps) FROM runs WHERE surface = ?",
		surface,
	).Scan(&steps)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}

	if !steps.Valid {
		return 0, nil
	}

	return int(steps.Int64), nil
}

// RunCount returns how many runs are stored for the surface, or for all
// surfaces when surface is empty.
func (s *Store) RunCount(surface string) (int, error) {
	var n int
	var err error
	if surface == "" {
		err = s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	} else {
		err = s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE surface = ?", surface).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes all runs for the given surface.
func (s *Store) ClearRuns(surface string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE surface = ?", surface)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
