// Package sentence stabilizes the per-frame detection stream into
// committed words. A sign must stay the candidate, above the confidence
// threshold, for a full hold duration before its word commits; a
// committed sign then cannot commit again until the detected sign
// changes away from it.
package sentence

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/signspeak/internal/sign"
)

// Default stabilizer parameters, matching the web shell's defaults.
const (
	DefaultConfidenceThreshold = 0.4
	DefaultHoldDuration        = time.Second
)

// Params are the externally configurable stabilizer knobs. Runtime
// updates are staged and applied at the next frame boundary.
type Params struct {
	ConfidenceThreshold float64
	HoldDuration        time.Duration
}

// DefaultParams returns the default stabilizer parameters.
func DefaultParams() Params {
	return Params{
		ConfidenceThreshold: DefaultConfidenceThreshold,
		HoldDuration:        DefaultHoldDuration,
	}
}

// phase is the stabilizer state machine position.
type phase int

const (
	phaseIdle phase = iota
	phaseCandidate
	phaseCooldown
)

// Commit records one word appended to the sentence.
type Commit struct {
	SignID int
	Word   string
	At     time.Time
}

// Builder runs the stabilizer state machine. Observe is driven by the
// capture loop; Reset and SetParams may be called concurrently from
// request handlers.
type Builder struct {
	mu      sync.Mutex
	catalog *sign.Catalog

	params  Params
	pending *Params

	phase          phase
	candidateID    int
	candidateStart time.Time
	cooldownID     int
}

// NewBuilder creates a Builder committing words from the given catalog.
func NewBuilder(catalog *sign.Catalog, params Params) *Builder {
	if params.ConfidenceThreshold <= 0 {
		params.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if params.HoldDuration <= 0 {
		params.HoldDuration = DefaultHoldDuration
	}
	return &Builder{
		catalog:     catalog,
		params:      params,
		candidateID: sign.NoSign,
		cooldownID:  sign.NoSign,
	}
}

// Observe feeds one detection event through the state machine. It
// returns the committed word and true when the event completed a hold;
// otherwise the zero Commit and false. Elapsed time is measured on the
// event timestamps, so a replayed stream stabilizes identically.
func (b *Builder) Observe(d sign.Detection) (Commit, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Frame boundary: runtime parameter updates land here.
	if b.pending != nil {
		b.params = *b.pending
		b.pending = nil
	}

	// No sign, or not confident enough: fall back to idle. This also
	// releases the cooldown so the same sign can be signed again after
	// the hand drops.
	if d.SignID == sign.NoSign || d.Confidence < b.params.ConfidenceThreshold {
		b.toIdle()
		return Commit{}, false
	}

	switch b.phase {
	case phaseIdle:
		b.phase = phaseCandidate
		b.candidateID = d.SignID
		b.candidateStart = d.At

	case phaseCandidate:
		if d.SignID != b.candidateID {
			// A different qualifying sign immediately becomes the new
			// candidate; no round trip through idle.
			b.candidateID = d.SignID
			b.candidateStart = d.At
			return Commit{}, false
		}
		if d.At.Sub(b.candidateStart) >= b.params.HoldDuration {
			return b.commit(d)
		}

	case phaseCooldown:
		if d.SignID != b.cooldownID {
			b.phase = phaseCandidate
			b.candidateID = d.SignID
			b.candidateStart = d.At
		}
	}

	return Commit{}, false
}

// commit resolves the held candidate to its word and enters cooldown.
// Caller holds the lock.
func (b *Builder) commit(d sign.Detection) (Commit, bool) {
	id := b.candidateID
	b.phase = phaseCooldown
	b.cooldownID = id
	b.candidateID = sign.NoSign

	word, ok := b.catalog.Lookup(id)
	if !ok {
		// Catalog miss is a configuration defect; drop the event but
		// keep the loop running. Cooldown stops this from logging on
		// every subsequent frame of the held sign.
		log.Printf("sign %d has no catalog entry, dropping commit", id)
		return Commit{}, false
	}

	return Commit{SignID: id, Word: word, At: d.At}, true
}

func (b *Builder) toIdle() {
	b.phase = phaseIdle
	b.candidateID = sign.NoSign
	b.cooldownID = sign.NoSign
}

// Reset drops any in-flight candidate and cooldown, returning the
// stabilizer to idle. Invoked by the clear command.
func (b *Builder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.toIdle()
}

// SetParams stages new stabilizer parameters. They take effect at the
// next observed frame so an in-flight hold is never torn mid-frame.
func (b *Builder) SetParams(p Params) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p.ConfidenceThreshold <= 0 || p.ConfidenceThreshold > 1 || p.HoldDuration <= 0 {
		return
	}
	staged := p
	b.pending = &staged
}

// Params returns the parameters currently in effect (staged updates not
// yet applied are excluded).
func (b *Builder) Params() Params {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params
}
