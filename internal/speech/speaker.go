package speech

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ayusman/signspeak/internal/session"
)

// speakTimeout bounds one synthesis call so a wedged audio device
// cannot back the queue up forever.
const speakTimeout = 10 * time.Second

// queueSize bounds pending utterances. Commits arrive at most once per
// hold duration, so the queue only fills when the engine is stuck, and
// then words are dropped rather than buffered without limit.
const queueSize = 16

// Speaker forwards committed words to a TTS engine from its own
// goroutine. Announce never blocks and never returns an error: speech
// is strictly best-effort.
type Speaker struct {
	engine  Engine
	session *session.State

	queue chan string
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewSpeaker starts the dispatch worker. The session's TTS flag gates
// every announcement; a nil engine disables speech entirely.
func NewSpeaker(engine Engine, st *session.State) *Speaker {
	s := &Speaker{
		engine:  engine,
		session: st,
		queue:   make(chan string, queueSize),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Announce queues a committed word for synthesis if TTS is enabled.
// Fire-and-forget: a full queue drops the word with a log line.
func (s *Speaker) Announce(word string) {
	if word == "" || s.engine == nil {
		return
	}
	if !s.session.TTSEnabled() {
		return
	}

	select {
	case s.queue <- word:
	default:
		log.Printf("speech queue full, dropping %q", word)
	}
}

// run drains the queue until Close.
func (s *Speaker) run() {
	defer s.wg.Done()

	for word := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		if err := s.engine.Speak(ctx, word); err != nil {
			// Synthesis failures stay inside this boundary.
			log.Printf("speech synthesis failed for %q: %v", word, err)
		}
		cancel()
	}
}

// Close stops accepting announcements and waits for queued words to
// finish speaking.
func (s *Speaker) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}
