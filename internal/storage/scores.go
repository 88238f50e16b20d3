package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScoreEntry is one finished round.
type ScoreEntry struct {
	ID          int64
	GameID      string
	SettingsKey string // Empty for games without settings
	RoundID     string // UUID, generated on save when empty
	Player      string // SSH user, empty when playing locally
	Score       int
	Attempts    int
	CreatedAt   time.Time
}

// SaveScore records a finished round and returns the inserted row ID.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.GameID == "" {
		return 0, errors.New("storage: cannot save score: empty game id")
	}
	if e.RoundID == "" {
		e.RoundID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO scores (game_id, settings_key, round_id, player, score, attempts)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.GameID, e.SettingsKey, e.RoundID, e.Player, e.Score, e.Attempts,
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

// TopScores returns the best rounds of a game across all settings,
// ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, game_id, settings_key, round_id, player, score, attempts, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// TopScoresFor returns the best rounds played under one settings key.
func (s *Store) TopScoresFor(gameID, settingsKey string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, game_id, settings_key, round_id, player, score, attempts, created_at
		 FROM scores
		 WHERE game_id = ? AND settings_key = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, settingsKey, limit,
	)
}

// AllScores returns every round of a game, optionally narrowed to one
// settings key, oldest first.
func (s *Store) AllScores(gameID string, settingsKey ...string) ([]ScoreEntry, error) {
	if len(settingsKey) > 0 {
		return s.queryScores(
			`SELECT id, game_id, settings_key, round_id, player, score, attempts, created_at
			 FROM scores
			 WHERE game_id = ? AND settings_key = ?
			 ORDER BY id ASC`,
			gameID, settingsKey[0],
		)
	}
	return s.queryScores(
		`SELECT id, game_id, settings_key, round_id, player, score, attempts, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY id ASC`,
		gameID,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.SettingsKey, &e.RoundID, &e.Player,
			&e.Score, &e.Attempts, &createdAt); err != nil {
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

// HighScore returns the best score for a game under one settings key.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID, settingsKey string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ? AND settings_key = ?",
		gameID, settingsKey,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// SettingsKeys lists the distinct settings keys a game has scores under,
// most played first.
func (s *Store) SettingsKeys(gameID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT settings_key FROM scores
		 WHERE game_id = ?
		 GROUP BY settings_key
		 ORDER BY COUNT(*) DESC, settings_key ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query settings keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return keys, nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every game that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
