package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSignRepository_PutGet(t *testing.T) {
	s := newTestStore(t)
	signs := s.Signs()

	if err := signs.Put(0, "Hello"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	word, err := signs.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if word != "Hello" {
		t.Errorf("got %q, want %q", word, "Hello")
	}

	// Put on an existing id replaces the word.
	if err := signs.Put(0, "Hola"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	word, _ = signs.Get(0)
	if word != "Hola" {
		t.Errorf("got %q, want %q", word, "Hola")
	}
}

func TestSignRepository_GetNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Signs().Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSignRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	signs := s.Signs()

	signs.Put(1, "Yes")
	if err := signs.Delete(1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := signs.Get(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := signs.Delete(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting a missing row, got %v", err)
	}
}

func TestSignRepository_SeedPreservesEdits(t *testing.T) {
	s := newTestStore(t)
	signs := s.Signs()

	if err := signs.Seed(map[int]string{0: "Hello", 10: "Stop"}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	// A user edit survives a re-seed.
	signs.Put(0, "Hola")
	if err := signs.Seed(map[int]string{0: "Hello", 10: "Stop", 12: "More"}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	all, err := signs.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 signs, got %d", len(all))
	}
	if all[0] != "Hola" {
		t.Errorf("seed clobbered a user edit: got %q", all[0])
	}
	if all[12] != "More" {
		t.Errorf("seed did not add the new sign: got %q", all[12])
	}
}

func TestSettingsRepository(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	if _, err := settings.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := settings.Set(SettingTTSEnabled, "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, err := settings.Get(SettingTTSEnabled)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "true" {
		t.Errorf("got %q, want %q", value, "true")
	}

	// Set replaces.
	settings.Set(SettingTTSEnabled, "false")
	value, _ = settings.Get(SettingTTSEnabled)
	if value != "false" {
		t.Errorf("got %q, want %q", value, "false")
	}
}

func TestSettingsRepository_Float(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	// Missing key falls back.
	if got := settings.GetFloat(SettingConfidenceThreshold, 0.4); got != 0.4 {
		t.Errorf("got %f, want fallback 0.4", got)
	}

	if err := settings.SetFloat(SettingConfidenceThreshold, 0.65); err != nil {
		t.Fatalf("SetFloat failed: %v", err)
	}
	if got := settings.GetFloat(SettingConfidenceThreshold, 0.4); got != 0.65 {
		t.Errorf("got %f, want 0.65", got)
	}

	// Malformed value falls back.
	settings.Set(SettingHoldDurationMs, "not-a-number")
	if got := settings.GetFloat(SettingHoldDurationMs, 1000); got != 1000 {
		t.Errorf("got %f, want fallback 1000", got)
	}
}

func TestHistoryRepository(t *testing.T) {
	s := newTestStore(t)
	history := s.History()

	e, err := history.Append("Hello Water", 2)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if e.ID == "" {
		t.Error("expected a generated id")
	}
	if e.WordCount != 2 {
		t.Errorf("got word count %d, want 2", e.WordCount)
	}

	if _, err := history.Append("Stop", 1); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := history.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Limit caps the result.
	entries, _ = history.Recent(1)
	if len(entries) != 1 {
		t.Errorf("expected 1 entry with limit 1, got %d", len(entries))
	}
}

func TestHistoryRepository_EmptyRecent(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.History().Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := New(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	s.Signs().Put(0, "Hello")
	s.Close()

	s, err = New(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer s.Close()

	word, err := s.Signs().Get(0)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if word != "Hello" {
		t.Errorf("got %q, want %q", word, "Hello")
	}
}
