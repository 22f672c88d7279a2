// Package storage provides SQLite-based persistence for benchmark runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one recorded benchmark run. Seed, Restitution and TickRate
// together with SceneID and Ticks identify runs that must end in the same
// state hash.
type RunRecord struct {
	ID          int64
	SceneID     string
	Ticks       int
	Bodies      int
	Seed        int64
	Restitution float64
	TickRate    int
	Elapsed     time.Duration
	TicksPerSec float64
	Hash        uint64
	CreatedAt   time.Time
}

// SceneStats contains aggregated statistics for a scene.
type SceneStats struct {
	SceneID    string
	Runs       int
	Best       float64 // Highest ticks/s
	Average    float64
	LastRecord time.Time
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
			scene_id TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			bodies INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			restitution REAL NOT NULL,
			tick_rate INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			ticks_per_sec REAL NOT NULL,
			hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene_id ON runs(scene_id);
		CREATE INDEX IF NOT EXISTS idx_runs_params ON runs(scene_id, ticks, seed, restitution, tick_rate);
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

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (scene_id, ticks, bodies, seed, restitution, tick_rate, elapsed_ns, ticks_per_sec, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SceneID, r.Ticks, r.Bodies, r.Seed, r.Restitution, r.TickRate,
		int64(r.Elapsed), r.TicksPerSec, formatHash(r.Hash),
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

const runColumns = `id, scene_id, ticks, bodies, seed, restitution, tick_rate, elapsed_ns, ticks_per_sec, hash, created_at`

// RecentRuns retrieves the latest runs of a scene, newest first.
func (s *Store) RecentRuns(sceneID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE scene_id = ? ORDER BY id DESC LIMIT ?`,
		sceneID, limit,
	)
}

// FastestRuns retrieves the runs of a scene with the highest throughput.
func (s *Store) FastestRuns(sceneID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE scene_id = ? ORDER BY ticks_per_sec DESC, id ASC LIMIT ?`,
		sceneID, limit,
	)
}

// LastHash returns the hash of the most recent run with the same parameters
// as r. The boolean is false when no such run was recorded.
func (s *Store) LastHash(r RunRecord) (uint64, bool, error) {
	var hash string
	err := s.db.QueryRow(
		`SELECT hash FROM runs
		 WHERE scene_id = ? AND ticks = ? AND seed = ? AND restitution = ? AND tick_rate = ?
		 ORDER BY id DESC LIMIT 1`,
		r.SceneID, r.Ticks, r.Seed, r.Restitution, r.TickRate,
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query last hash: %w", err)
	}

	h, err := parseHash(hash)
	if err != nil {
		return 0, false, err
	}
	return h, true, nil
}

// GetSceneStats retrieves aggregated statistics for a scene.
func (s *Store) GetSceneStats(sceneID string) (*SceneStats, error) {
	stats := &SceneStats{SceneID: sceneID}

	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(ticks_per_sec), 0), COALESCE(AVG(ticks_per_sec), 0), MAX(created_at)
		 FROM runs WHERE scene_id = ?`,
		sceneID,
	).Scan(&stats.Runs, &stats.Best, &stats.Average, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	stats.LastRecord = parseTime(last)
	return stats, nil
}

// ClearRuns deletes all runs of a scene.
func (s *Store) ClearRuns(sceneID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE scene_id = ?", sceneID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r         RunRecord
			elapsed   int64
			hash      string
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.SceneID, &r.Ticks, &r.Bodies, &r.Seed, &r.Restitution,
			&r.TickRate, &elapsed, &r.TicksPerSec, &hash, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsed)
		if r.Hash, err = parseHash(hash); err != nil {
			return nil, err
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Hashes are stored as hex text; SQLite integers are signed.
func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

func parseHash(s string) (uint64, error) {
	h, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("storage: bad hash %q: %w", s, err)
	}
	return h, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
