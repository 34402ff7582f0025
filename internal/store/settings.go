package store

import (
	"database/sql"
	"errors"
	"strconv"
)

// Setting keys persisted across restarts.
const (
	SettingConfidenceThreshold = "confidence_threshold"
	SettingHoldDurationMs      = "hold_duration_ms"
	SettingTTSEnabled          = "tts_enabled"
)

// SettingsRepository stores runtime configuration as key-value pairs.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get returns the value for a key, or ErrNotFound.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set inserts or replaces the value for a key.
func (r *SettingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// GetFloat returns a key parsed as float64, or fallback when the key is
// missing or malformed.
func (r *SettingsRepository) GetFloat(key string, fallback float64) float64 {
	raw, err := r.Get(key)
	if err != nil {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// SetFloat stores a float64 value for a key.
func (r *SettingsRepository) SetFloat(key string, value float64) error {
	return r.Set(key, strconv.FormatFloat(value, 'g', -1, 64))
}
