package speech

import (
	"context"
	"sync"
)

// MockEngine records spoken text for tests.
type MockEngine struct {
	mu     sync.Mutex
	spoken []string
	err    error
}

// NewMockEngine creates a MockEngine.
func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

// SetError makes subsequent Speak calls fail with err.
func (m *MockEngine) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Speak records the text, or returns the configured error.
func (m *MockEngine) Speak(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.spoken = append(m.spoken, text)
	return nil
}

// Spoken returns a copy of everything spoken so far.
func (m *MockEngine) Spoken() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.spoken))
	copy(out, m.spoken)
	return out
}
