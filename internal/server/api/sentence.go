// Package api provides the HTTP API handlers for the sign-language
// sentence builder.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/signspeak/internal/app"
)

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// SentenceHandler serves the sentence resource: read, clear and
// backspace.
type SentenceHandler struct {
	app *app.App
}

// NewSentenceHandler creates a SentenceHandler.
func NewSentenceHandler(a *app.App) *SentenceHandler {
	return &SentenceHandler{app: a}
}

type sentenceResponse struct {
	Sentence string   `json:"sentence"`
	Words    []string `json:"words"`
}

// ServeHTTP routes sentence requests:
//
//	GET  /api/sentence            current sentence
//	POST /api/sentence            clear the sentence
//	POST /api/sentence/backspace  remove the last word
func (h *SentenceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/backspace") {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.app.Backspace()
		h.writeSentence(w)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.writeSentence(w)
	case http.MethodPost:
		h.app.ClearSentence()
		h.writeSentence(w)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *SentenceHandler) writeSentence(w http.ResponseWriter) {
	words := h.app.Session().Snapshot().Sentence
	writeJSON(w, http.StatusOK, sentenceResponse{
		Sentence: strings.Join(words, " "),
		Words:    words,
	})
}

// TTSHandler toggles speech output.
type TTSHandler struct {
	app *app.App
}

// NewTTSHandler creates a TTSHandler.
func NewTTSHandler(a *app.App) *TTSHandler {
	return &TTSHandler{app: a}
}

// ServeHTTP handles POST /api/tts/toggle.
func (h *TTSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	enabled := h.app.ToggleTTS()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tts_enabled": enabled,
	})
}
