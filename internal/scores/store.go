// Package scores keeps finished-run scores for the lifetime of the process.
// Runs live in an in-memory SQLite database via the pure-Go
// modernc.org/sqlite driver, so nothing is written to disk.
package scores

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Entry represents a single recorded run.
type Entry struct {
	ID        int64
	GameID    string
	Score     int
	Height    int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestHeight int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Store records runs in a private in-memory database.
// It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates an empty store. Every store owns a separate database.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open database: %w", err)
	}
	// Each connection to :memory: is a fresh database; keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: cannot connect to database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}
	return s, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			height INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC, id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database. Recorded runs are lost.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a finished run and returns its ID.
func (s *Store) Record(gameID string, score, height int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, height, created_at) VALUES (?, ?, ?, ?)",
		gameID, score, height, s.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("scores: cannot record run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("scores: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Top returns the best limit entries for a game, highest score first.
// Equal scores keep the order in which they were recorded.
func (s *Store) Top(gameID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, game_id, score, height, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id
		 LIMIT ?`,
		gameID, limit,
	)
}

// All returns every entry for a game in recording order.
func (s *Store) All(gameID string) ([]Entry, error) {
	return s.query(
		`SELECT id, game_id, score, height, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id`,
		gameID,
	)
}

func (s *Store) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Height, &createdAt); err != nil {
			return nil, fmt.Errorf("scores: cannot scan row: %w", err)
		}
		e.CreatedAt = time.Unix(0, createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}
	return entries, nil
}

// Best returns the highest score recorded for a game, or 0.
func (s *Store) Best(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE game_id = ?", gameID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("scores: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates the runs of one game.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(height), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestHeight, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("scores: cannot get game stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = time.Unix(0, lastPlayed.Int64)
	}
	return stats, nil
}

// AllStats aggregates every game that has at least one run.
func (s *Store) AllStats() (map[string]GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), MAX(height), AVG(score), SUM(score), MAX(created_at)
		 FROM runs
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed int64
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.BestHeight, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("scores: cannot scan stats row: %w", err)
		}
		st.LastPlayed = time.Unix(0, lastPlayed)
		stats[st.GameID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}
	return stats, nil
}

// Games returns the IDs of games with runs, sorted.
func (s *Store) Games() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT game_id FROM runs ORDER BY game_id")
	if err != nil {
		return nil, fmt.Errorf("scores: cannot list games: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scores: cannot scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Clear removes all runs for a game. An empty gameID clears the store.
func (s *Store) Clear(gameID string) error {
	var err error
	if gameID == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	}
	if err != nil {
		return fmt.Errorf("scores: cannot clear runs: %w", err)
	}
	return nil
}
