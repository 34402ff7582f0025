package store

import (
	"database/sql"
	"errors"
)

// SignRepository provides access to the persisted sign vocabulary.
type SignRepository struct {
	db *sql.DB
}

// Signs returns the sign repository for this store.
func (s *Store) Signs() *SignRepository {
	return &SignRepository{db: s.db}
}

// All returns the full vocabulary as an id-to-word map.
func (r *SignRepository) All() (map[int]string, error) {
	rows, err := r.db.Query(`SELECT id, word FROM signs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := make(map[int]string)
	for rows.Next() {
		var id int
		var word string
		if err := rows.Scan(&id, &word); err != nil {
			return nil, err
		}
		words[id] = word
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// Get returns the word for one sign ID.
func (r *SignRepository) Get(id int) (string, error) {
	var word string
	err := r.db.QueryRow(`SELECT word FROM signs WHERE id = ?`, id).Scan(&word)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return word, nil
}

// Put inserts or replaces one vocabulary entry.
func (r *SignRepository) Put(id int, word string) error {
	_, err := r.db.Exec(
		`INSERT INTO signs (id, word) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET word = excluded.word`,
		id, word,
	)
	return err
}

// Delete removes one vocabulary entry.
func (r *SignRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM signs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Seed inserts the given entries for any IDs not already present,
// leaving existing rows untouched. Used to install the built-in
// vocabulary on first run without clobbering user edits.
func (r *SignRepository) Seed(words map[int]string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for id, word := range words {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO signs (id, word) VALUES (?, ?)`,
			id, word,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
