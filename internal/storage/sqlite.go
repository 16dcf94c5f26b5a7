// Package storage provides the SQLite-backed run board.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory board that lives as long as the Store.
const MemoryDSN = ":memory:"

// Store manages the SQLite database connection for the run board.
type Store struct {
	db *sql.DB
}

// Run is one finished run of a mode.
type Run struct {
	ID        int64
	Mode      string
	Player    string
	Level     int // Deepest level reached
	Attempts  int
	Seed      int64 // Base seed of the run
	Ticks     int64
	CreatedAt time.Time
}

// Open creates or opens a run board.
// An empty path or MemoryDSN gives an in-memory board; anything else is a
// database file whose parent directories are created as needed.
func Open(dbPath string) (*Store, error) {
	memory := dbPath == "" || dbPath == MemoryDSN
	if memory {
		dbPath = MemoryDSN
	} else {
		// Expand ~ to home directory
		if dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if memory {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
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
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL,
			attempts INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, level DESC, attempts ASC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Mode == "" {
		return 0, errors.New("storage: run has no mode")
	}
	if r.Level < 1 {
		return 0, fmt.Errorf("storage: invalid level %d", r.Level)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (mode, player, level, attempts, seed, ticks) VALUES (?, ?, ?, ?, ?, ?)",
		r.Mode, r.Player, r.Level, r.Attempts, r.Seed, r.Ticks,
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

// TopRuns retrieves the best N runs for a mode: deepest level first,
// fewest attempts breaking ties, earliest run after that.
func (s *Store) TopRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, player, level, attempts, seed, ticks, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY level DESC, attempts ASC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Player, &r.Level, &r.Attempts, &r.Seed, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestLevel returns the deepest level reached in a mode.
// Returns 0 if no runs exist.
func (s *Store) BestLevel(mode string) (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(level) FROM runs WHERE mode = ?",
		mode,
	).Scan(&level)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best level: %w", err)
	}

	if !level.Valid {
		return 0, nil
	}

	return int(level.Int64), nil
}

// ClearRuns deletes all runs of a mode.
func (s *Store) ClearRuns(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode        string
	Runs        int
	BestLevel   int
	AvgAttempts float64
	LastPlayed  time.Time
}

// ModeStats retrieves aggregated statistics for a mode.
func (s *Store) ModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(level), 0), COALESCE(AVG(attempts), 0), MAX(created_at)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &stats.BestLevel, &stats.AvgAttempts, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// AllModeStats retrieves statistics for every mode that has runs.
func (s *Store) AllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(level), AVG(attempts), MAX(created_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var ms ModeStats
		var lastPlayed any
		if err := rows.Scan(&ms.Mode, &ms.Runs, &ms.BestLevel, &ms.AvgAttempts, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.LastPlayed = parseTimestamp(lastPlayed)
		stats[ms.Mode] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and string DATETIME values.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
