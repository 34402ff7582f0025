package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ayusman/signspeak/internal/session"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// eventsInterval is how often connected clients receive a fresh session
// snapshot. Matches the active capture rate so clients never see a sign
// later than the poller would.
const eventsInterval = 66 * time.Millisecond

// EventsHandler pushes session snapshots to WebSocket clients so the
// web UI can show the live sign without polling.
type EventsHandler struct {
	session *session.State
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex

	done      chan struct{}
	closeOnce sync.Once
}

// NewEventsHandler creates an EventsHandler over the given session and
// starts its broadcast loop. Close stops the loop.
func NewEventsHandler(s *session.State) *EventsHandler {
	h := &EventsHandler{
		session: s,
		clients: make(map[*websocket.Conn]bool),
		done:    make(chan struct{}),
	}
	go h.broadcast()
	return h
}

// Close stops the broadcast loop. Safe to call more than once.
func (h *EventsHandler) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends the current snapshot to all connected clients until
// Close. Only changed snapshots go out, so an idle session costs
// nothing on the wire.
func (h *EventsHandler) broadcast() {
	ticker := time.NewTicker(eventsInterval)
	defer ticker.Stop()

	var last session.Snapshot
	sent := false

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
		}

		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}
		h.mu.RUnlock()

		snap := h.session.Snapshot()
		if sent && snapshotsEqual(snap, last) {
			continue
		}
		last = snap
		sent = true

		msg, err := json.Marshal(eventMessage{
			Snapshot:  snap,
			Timestamp: time.Now().UnixMilli(),
		})
		if err != nil {
			continue
		}

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}

// eventMessage is one pushed state update.
type eventMessage struct {
	session.Snapshot
	Timestamp int64 `json:"timestamp"`
}

// snapshotsEqual reports whether two snapshots carry the same state.
func snapshotsEqual(a, b session.Snapshot) bool {
	if a.CurrentSign != b.CurrentSign ||
		a.Confidence != b.Confidence ||
		a.TTSEnabled != b.TTSEnabled ||
		a.CameraConnected != b.CameraConnected {
		return false
	}
	if len(a.Sentence) != len(b.Sentence) {
		return false
	}
	for i := range a.Sentence {
		if a.Sentence[i] != b.Sentence[i] {
			return false
		}
	}
	return true
}
