package storage

import (
	"fmt"
	"sort"
)

// LoadWeights returns the saved flashcard weights of a player. Cards that
// were never saved are absent from the map.
func (s *Store) LoadWeights(player string) (map[int]int, error) {
	rows, err := s.db.Query(
		"SELECT card, weight FROM card_weights WHERE player = ?",
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query card weights: %w", err)
	}
	defer rows.Close()

	weights := make(map[int]int)
	for rows.Next() {
		var card, weight int
		if err := rows.Scan(&card, &weight); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		weights[card] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return weights, nil
}

// SaveWeights replaces the stored flashcard weights of a player in one
// transaction. Weights below 1 are rejected.
func (s *Store) SaveWeights(player string, weights map[int]int) error {
	cards := make([]int, 0, len(weights))
	for card, w := range weights {
		if w < 1 {
			return fmt.Errorf("storage: cannot save card weights: card %d has weight %d", card, w)
		}
		cards = append(cards, card)
	}
	sort.Ints(cards)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec("DELETE FROM card_weights WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear card weights: %w", err)
	}
	for _, card := range cards {
		if _, err := tx.Exec(
			"INSERT INTO card_weights (player, card, weight) VALUES (?, ?, ?)",
			player, card, weights[card],
		); err != nil {
			return fmt.Errorf("storage: cannot save card weights: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit card weights: %w", err)
	}
	return nil
}
