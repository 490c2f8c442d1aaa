// Package storage provides SQLite-based persistence for finished game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values stored in the results ledger.
const (
	OutcomeWin  = "win"
	OutcomeLose = "lose"
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	GameID    string
	Outcome   string // OutcomeWin or OutcomeLose
	Level     int
	Ticks     uint64 // Simulation ticks until the outcome
	Enemies   int    // Enemies alive at the outcome
	CreatedAt time.Time
}

// Stats contains aggregated outcomes for a game.
type Stats struct {
	GameID     string
	Wins       int
	Losses     int
	LastPlayed time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('win', 'lose')),
			level INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			enemies INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_wins ON results(game_id, level, outcome, ticks);
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

// SaveResult records a finished game and returns the ID of the inserted row.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome != OutcomeWin && r.Outcome != OutcomeLose {
		return 0, fmt.Errorf("storage: invalid outcome %q", r.Outcome)
	}

	res, err := s.db.Exec(
		"INSERT INTO results (game_id, outcome, level, ticks, enemies) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Outcome, r.Level, int64(r.Ticks), r.Enemies,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentResults retrieves the latest results for the given game, newest first.
// An empty gameID matches every game.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, level, ticks, enemies, created_at
		 FROM results
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Outcome, &r.Level, &ticks, &r.Enemies, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// BestWin returns the fastest win (fewest ticks) at the given level.
// Returns false if there is no win yet.
func (s *Store) BestWin(gameID string, level int) (Result, bool, error) {
	var r Result
	var ticks int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, outcome, level, ticks, enemies, created_at
		 FROM results
		 WHERE game_id = ? AND level = ? AND outcome = 'win'
		 ORDER BY ticks ASC, id ASC
		 LIMIT 1`,
		gameID, level,
	).Scan(&r.ID, &r.GameID, &r.Outcome, &r.Level, &ticks, &r.Enemies, &createdAt)

	if err == sql.ErrNoRows {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, fmt.Errorf("storage: cannot query best win: %w", err)
	}

	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, true, nil
}

// Stats returns win and loss counts for the given game.
func (s *Store) Stats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN outcome = 'lose' THEN 1 ELSE 0 END), 0),
		   MAX(created_at)
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Wins, &stats.Losses, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
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
