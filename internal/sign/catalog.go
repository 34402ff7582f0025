package sign

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Catalog maps sign IDs to their display words. Loaded once at startup
// and read-only afterwards; it defines the entire recognizable
// vocabulary.
type Catalog struct {
	words map[int]string
}

// DefaultWords is the built-in vocabulary, used to seed the store on
// first run.
func DefaultWords() map[int]string {
	return map[int]string{
		SignHello:    "Hello",
		SignYes:      "Yes",
		SignILoveYou: "I Love You",
		SignGood:     "Good",
		SignBad:      "Bad",
		SignStop:     "Stop",
		SignMore:     "More",
		SignLess:     "Less",
		SignWater:    "Water",
		SignVictory:  "Victory",
		SignLetterA:  "A",
		SignLetterB:  "B",
		SignLetterC:  "C",
	}
}

// NewCatalog builds a catalog from an id-to-word mapping. The map is
// copied; entries with empty words are dropped.
func NewCatalog(words map[int]string) *Catalog {
	c := &Catalog{words: make(map[int]string, len(words))}
	for id, w := range words {
		if id < 0 || w == "" {
			continue
		}
		c.words[id] = w
	}
	return c
}

// DefaultCatalog returns a catalog over the built-in vocabulary.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultWords())
}

// LoadCatalog reads a sign dictionary JSON file of the form
// {"0": "Hello", "10": "Stop", ...}.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sign dictionary: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse sign dictionary: %w", err)
	}

	words := make(map[int]string, len(raw))
	for key, word := range raw {
		id, err := strconv.Atoi(key)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid sign id %q in dictionary", key)
		}
		words[id] = word
	}

	return NewCatalog(words), nil
}

// Lookup returns the display word for a sign ID. The second return is
// false for IDs outside the catalog; callers must drop such detections
// rather than emit a blank word.
func (c *Catalog) Lookup(id int) (string, bool) {
	w, ok := c.words[id]
	return w, ok
}

// IDs returns the catalog's sign IDs in ascending order.
func (c *Catalog) IDs() []int {
	ids := make([]int, 0, len(c.words))
	for id := range c.words {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the vocabulary size.
func (c *Catalog) Len() int {
	return len(c.words)
}
