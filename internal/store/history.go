package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one archived sentence.
type HistoryEntry struct {
	ID        string
	Sentence  string
	WordCount int
	CreatedAt time.Time
}

// HistoryRepository stores sentences archived by the clear command.
type HistoryRepository struct {
	db *sql.DB
}

// History returns the history repository for this store.
func (s *Store) History() *HistoryRepository {
	return &HistoryRepository{db: s.db}
}

// Append archives one sentence and returns its entry.
func (r *HistoryRepository) Append(sentence string, wordCount int) (*HistoryEntry, error) {
	e := &HistoryEntry{
		ID:        uuid.New().String(),
		Sentence:  sentence,
		WordCount: wordCount,
		CreatedAt: time.Now(),
	}

	_, err := r.db.Exec(
		`INSERT INTO sentence_history (id, sentence, word_count, created_at)
		 VALUES (?, ?, ?, ?)`,
		e.ID, e.Sentence, e.WordCount, e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Recent returns the most recently archived sentences, newest first.
func (r *HistoryRepository) Recent(limit int) ([]*HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(
		`SELECT id, sentence, word_count, created_at
		 FROM sentence_history ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		e := &HistoryEntry{}
		if err := rows.Scan(&e.ID, &e.Sentence, &e.WordCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
