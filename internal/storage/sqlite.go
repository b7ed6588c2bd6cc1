// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snowboard/internal/core"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single recorded run.
type RunEntry struct {
	ID        string
	Mode      string
	Score     int
	BestTrick string
	MaxAir    float64
	Duration  int // seconds
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
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			best_trick TEXT NOT NULL DEFAULT '',
			max_air REAL NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
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

// SaveRun records a finished run and returns its generated ID.
func (s *Store) SaveRun(run core.RunSummary) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, mode, score, best_trick, max_air, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, run.Mode, run.Score, run.BestTrick, run.MaxAir, int(run.Duration),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*RunEntry, error) {
	var e RunEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, mode, score, best_trick, max_air, duration_secs, created_at
		 FROM runs WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Mode, &e.Score, &e.BestTrick, &e.MaxAir, &e.Duration, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// TopRuns retrieves the top N runs for the given mode.
// Results are ordered by score descending.
func (s *Store) TopRuns(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, best_trick, max_air, duration_secs, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// AllRuns retrieves all runs for the given mode (no limit).
func (s *Store) AllRuns(mode string) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, score, best_trick, max_air, duration_secs, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, created_at ASC`,
		mode,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.BestTrick, &e.MaxAir, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no runs exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given mode.
func (s *Store) ClearRuns(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	MaxAir     float64
	LastPlayed time.Time
}

// ModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) ModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(max_air), 0), MAX(created_at)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.MaxAir, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllModeStats retrieves statistics for every mode that has been played.
func (s *Store) AllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(max_air), MAX(created_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.RunsCount, &m.HighScore, &m.AvgScore, &m.TotalScore, &m.MaxAir, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTime(lastPlayed)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
