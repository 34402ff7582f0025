// Package server provides the HTTP surface: polling endpoints for the
// web client, the sentence commands, and the live stream handlers.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/signspeak/internal/app"
	"github.com/ayusman/signspeak/internal/capture"
	"github.com/ayusman/signspeak/internal/server/api"
	"github.com/ayusman/signspeak/internal/session"
	"github.com/ayusman/signspeak/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Session   *session.State
	App       *app.App
	Camera    capture.Camera
	Store     *store.Store
}

// Server is the HTTP server for the application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
	events *EventsHandler
}

// New creates a Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Session != nil {
		statusHandler := api.NewStatusHandler(s.config.Session, s.config.App)
		s.mux.Handle("/api/status", statusHandler)

		s.events = NewEventsHandler(s.config.Session)
		s.mux.Handle("/api/events", s.events)
	}

	if s.config.App != nil {
		sentenceHandler := api.NewSentenceHandler(s.config.App)
		s.mux.Handle("/api/sentence", sentenceHandler)
		s.mux.Handle("/api/sentence/backspace", sentenceHandler)

		ttsHandler := api.NewTTSHandler(s.config.App)
		s.mux.Handle("/api/tts/toggle", ttsHandler)

		configHandler := api.NewConfigHandler(s.config.App)
		s.mux.Handle("/api/config", configHandler)
	}

	if s.config.Store != nil {
		historyHandler := api.NewHistoryHandler(s.config.Store)
		s.mux.Handle("/api/history", historyHandler)
	}

	if s.config.Camera != nil {
		streamHandler := NewStreamHandler(s.config.Camera)
		s.mux.Handle("/api/stream", streamHandler)
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}
	if s.config.Session != nil {
		response["camera"] = s.config.Session.Snapshot().CameraConnected
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

// Close stops the background broadcast loop. The HTTP listener is not
// touched; callers stop it by exiting.
func (s *Server) Close() {
	if s.events != nil {
		s.events.Close()
	}
}
