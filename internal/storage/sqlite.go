// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrDuplicateRun is returned when a run ID has already been saved.
var ErrDuplicateRun = errors.New("storage: run already saved")

// timeLayout is how created_at is written and read back.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Record is one finished game.
type Record struct {
	ID        int64
	RunID     string // unique per game, generated when empty
	Mode      string // difficulty preset the game ran under
	Player    string
	Score     int
	Lines     int
	Pieces    int
	CreatedAt time.Time
}

// Stats contains aggregated statistics for one mode.
type Stats struct {
	Mode       string
	Games      int
	Best       int
	Average    float64
	TotalLines int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			pieces INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode ON scores(mode);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);
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

// SaveScore records a finished game and returns the inserted row ID.
// A record without a RunID gets a fresh one. Saving the same RunID twice
// returns ErrDuplicateRun.
func (s *Store) SaveScore(r Record) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT OR IGNORE INTO scores (run_id, mode, player, score, lines, pieces, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Mode, r.Player, r.Score, r.Lines, r.Pieces, r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if affected == 0 {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateRun, r.RunID)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best limit records for a mode, highest first.
// Ties keep insertion order. A non-positive limit means 10.
func (s *Store) TopScores(mode string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, run_id, mode, player, score, lines, pieces, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
}

// AllScores retrieves every record for a mode, highest first.
func (s *Store) AllScores(mode string) ([]Record, error) {
	return s.query(
		`SELECT id, run_id, mode, player, score, lines, pieces, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC`,
		mode,
	)
}

func (s *Store) query(q string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Mode, &r.Player, &r.Score, &r.Lines, &r.Pieces, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the best score for a mode, or 0 if none exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE mode = ?", mode).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes every record for a mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats returns aggregated statistics for a mode. A mode without records
// yields zero values.
func (s *Store) Stats(mode string) (Stats, error) {
	stats := Stats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), MAX(created_at)
		 FROM scores WHERE mode = ?`,
		mode,
	).Scan(&stats.Games, &stats.Best, &stats.Average, &stats.TotalLines, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Modes returns every mode that has at least one record, sorted by name.
func (s *Store) Modes() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT mode FROM scores ORDER BY mode")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query modes: %w", err)
	}
	defer rows.Close()

	var modes []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("storage: cannot scan mode: %w", err)
		}
		modes = append(modes, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return modes, nil
}

// parseTime accepts both driver-decoded times and raw text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(v)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
