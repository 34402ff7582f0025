package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Signs table - the recognizable vocabulary, sign id to word
		`CREATE TABLE IF NOT EXISTS signs (
			id INTEGER PRIMARY KEY CHECK(id >= 0),
			word TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - runtime configuration as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Sentence history - sentences archived when the user clears
		`CREATE TABLE IF NOT EXISTS sentence_history (
			id TEXT PRIMARY KEY,
			sentence TEXT NOT NULL,
			word_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sentence_history_created_at ON sentence_history(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
