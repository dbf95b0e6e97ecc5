// Package storage provides SQLite-based persistence for the run history.
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

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run: its score and the stage it reached.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Stage     int
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
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			stage INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
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

// SaveScore records a finished run for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score, stage int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, stage) VALUES (?, ?, ?)",
		gameID, score, stage,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Order selects how run listings are sorted.
type Order int

const (
	ByScore  Order = iota // Highest score first, ties by stage
	ByStage               // Furthest stage first, ties by score
	ByRecent              // Newest run first
)

var orderClauses = map[Order]string{
	ByScore:  "score DESC, stage DESC, id ASC",
	ByStage:  "stage DESC, score DESC, id ASC",
	ByRecent: "created_at DESC, id DESC",
}

// String returns the name used by the CLI and the scoreboard.
func (o Order) String() string {
	switch o {
	case ByStage:
		return "stage"
	case ByRecent:
		return "recent"
	default:
		return "score"
	}
}

// Next cycles through the orders.
func (o Order) Next() Order {
	return (o + 1) % Order(len(orderClauses))
}

// ParseOrder maps a name to an Order. Unknown names sort by score.
func ParseOrder(name string) Order {
	for o := range Order(len(orderClauses)) {
		if o.String() == name {
			return o
		}
	}
	return ByScore
}

// Runs lists runs of a game in the given order. A non-positive limit
// returns every run.
func (s *Store) Runs(gameID string, order Order, limit int) ([]ScoreEntry, error) {
	clause, ok := orderClauses[order]
	if !ok {
		clause = orderClauses[ByScore]
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, stage, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY `+clause+`
		 LIMIT ?`, //#nosec G202 -- clause comes from a fixed table
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanEntries(rows)
}

// TopScores returns the best n runs by score; n defaults to 10.
func (s *Store) TopScores(gameID string, n int) ([]ScoreEntry, error) {
	if n <= 0 {
		n = 10
	}
	return s.Runs(gameID, ByScore, n)
}

// AllScores returns every run of a game by score.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.Runs(gameID, ByScore, 0)
}

func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Stage, &createdAt); err != nil {
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

// HighScore returns the highest score for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (int, error) {
	return s.maxColumn("score", gameID)
}

// BestStage returns the furthest stage reached in the given game.
// Returns 0 if no runs exist.
func (s *Store) BestStage(gameID string) (int, error) {
	return s.maxColumn("stage", gameID)
}

func (s *Store) maxColumn(column, gameID string) (int, error) {
	var v sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX("+column+") FROM runs WHERE game_id = ?", //#nosec G202 -- column is a fixed name
		gameID,
	).Scan(&v)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best %s: %w", column, err)
	}

	if !v.Valid {
		return 0, nil
	}

	return int(v.Int64), nil
}

// ClearScores deletes all runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats aggregates every run of a game.
type GameStats struct {
	GameID     string
	Runs       int
	HighScore  int
	BestStage  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time // Zero when there are no runs
}

// Stats returns the aggregate of every run of a game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(stage), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.HighScore, &stats.BestStage, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
