package sign

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	word, ok := c.Lookup(SignHello)
	if !ok {
		t.Fatal("expected Hello to be in the default catalog")
	}
	if word != "Hello" {
		t.Errorf("got %q, want %q", word, "Hello")
	}

	if _, ok := c.Lookup(999); ok {
		t.Error("expected lookup miss for unknown sign id")
	}
}

func TestNewCatalog_DropsInvalidEntries(t *testing.T) {
	c := NewCatalog(map[int]string{
		1:  "One",
		-5: "Negative",
		2:  "",
	})

	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
	if _, ok := c.Lookup(-5); ok {
		t.Error("expected negative id to be dropped")
	}
	if _, ok := c.Lookup(2); ok {
		t.Error("expected empty word to be dropped")
	}
}

func TestCatalog_IDsSorted(t *testing.T) {
	c := NewCatalog(map[int]string{7: "a", 3: "b", 20: "c", 0: "d"})

	ids := c.IDs()
	want := []int{0, 3, 7, 20}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signs.json")
	data := `{"0": "Hola", "10": "Alto"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}

	word, ok := c.Lookup(10)
	if !ok || word != "Alto" {
		t.Errorf("got (%q, %v), want (%q, true)", word, ok, "Alto")
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"0": `},
		{"non-numeric key", `{"abc": "word"}`},
		{"negative id", `{"-1": "word"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadCatalog(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := LoadCatalog(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDefaultWords_CoverRuleTable(t *testing.T) {
	words := DefaultWords()

	for _, r := range DefaultRules {
		if _, ok := words[r.SignID]; !ok {
			t.Errorf("rule %q yields sign %d with no default word", r.Name, r.SignID)
		}
	}
}
