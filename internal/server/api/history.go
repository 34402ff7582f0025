package api

import (
	"net/http"
	"strconv"

	"github.com/ayusman/signspeak/internal/store"
)

// historyDefaultLimit caps how many archived sentences one request
// returns unless the client asks for fewer.
const historyDefaultLimit = 20

// HistoryHandler serves archived sentences.
type HistoryHandler struct {
	store *store.Store
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(s *store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

type historyEntryResponse struct {
	ID        string `json:"id"`
	Sentence  string `json:"sentence"`
	WordCount int    `json:"word_count"`
	CreatedAt string `json:"created_at"`
}

type historyResponse struct {
	History []historyEntryResponse `json:"history"`
}

// ServeHTTP handles GET /api/history?limit=N.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit := historyDefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.store.History().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	resp := historyResponse{
		History: make([]historyEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.History = append(resp.History, historyEntryResponse{
			ID:        e.ID,
			Sentence:  e.Sentence,
			WordCount: e.WordCount,
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
