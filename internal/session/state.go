// Package session holds the single shared mutable record the capture
// loop and the HTTP handlers both touch: the sentence under
// construction, the currently detected sign, and the TTS and camera
// flags. One mutex guards the whole record so snapshots are never torn.
package session

import "sync"

// Snapshot is an atomic copy of the full session state.
type Snapshot struct {
	Sentence        []string `json:"sentence"`
	CurrentSign     string   `json:"current_sign"`
	Confidence      float64  `json:"confidence"`
	TTSEnabled      bool     `json:"tts_enabled"`
	CameraConnected bool     `json:"camera_connected"`
}

// State is the process-wide session record. The zero value is not
// usable; construct with NewState.
type State struct {
	mu sync.Mutex

	sentence        []string
	currentSign     string
	currentConf     float64
	ttsEnabled      bool
	cameraConnected bool
}

// NewState creates a session with an empty sentence and the given
// initial TTS flag.
func NewState(ttsEnabled bool) *State {
	return &State{
		sentence:   make([]string, 0),
		ttsEnabled: ttsEnabled,
	}
}

// Snapshot returns a consistent copy of every field. The sentence slice
// is copied so the caller can never observe a concurrent append.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sentence := make([]string, len(s.sentence))
	copy(sentence, s.sentence)

	return Snapshot{
		Sentence:        sentence,
		CurrentSign:     s.currentSign,
		Confidence:      s.currentConf,
		TTSEnabled:      s.ttsEnabled,
		CameraConnected: s.cameraConnected,
	}
}

// AppendWord appends a committed word to the sentence.
func (s *State) AppendWord(word string) {
	if word == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentence = append(s.sentence, word)
}

// ClearSentence empties the sentence and returns the words it held,
// so the caller can record them as history. Clearing an empty sentence
// is a no-op returning nil.
func (s *State) ClearSentence() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sentence) == 0 {
		return nil
	}
	cleared := s.sentence
	s.sentence = make([]string, 0)
	return cleared
}

// Backspace removes the last word. A no-op on an empty sentence.
func (s *State) Backspace() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sentence) > 0 {
		s.sentence = s.sentence[:len(s.sentence)-1]
	}
}

// SetCurrentSign records the sign detected on the latest frame, for
// display alongside its confidence.
func (s *State) SetCurrentSign(word string, confidence float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentSign = word
	s.currentConf = confidence
}

// ClearCurrentSign resets the detected-sign display.
func (s *State) ClearCurrentSign() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentSign = ""
	s.currentConf = 0
}

// ToggleTTS flips the TTS flag and returns the new state.
func (s *State) ToggleTTS() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ttsEnabled = !s.ttsEnabled
	return s.ttsEnabled
}

// TTSEnabled reports whether speech dispatch is enabled.
func (s *State) TTSEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ttsEnabled
}

// SetCameraConnected records whether frames are currently arriving.
// Informational only; it never gates sentence building.
func (s *State) SetCameraConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameraConnected = connected
}
