package api

import (
	"net/http"
	"strings"

	"github.com/ayusman/signspeak/internal/app"
	"github.com/ayusman/signspeak/internal/session"
)

// StatusHandler serves the polled session snapshot.
type StatusHandler struct {
	session *session.State
	app     *app.App
}

// NewStatusHandler creates a StatusHandler. The app may be nil; the
// threshold fields are then omitted.
func NewStatusHandler(s *session.State, a *app.App) *StatusHandler {
	return &StatusHandler{session: s, app: a}
}

type statusResponse struct {
	Sentence            string   `json:"sentence"`
	Words               []string `json:"words"`
	CurrentSign         string   `json:"current_sign"`
	Confidence          float64  `json:"confidence"`
	TTSEnabled          bool     `json:"tts_enabled"`
	CameraConnected     bool     `json:"camera_connected"`
	ConfidenceThreshold float64  `json:"confidence_threshold,omitempty"`
	HoldDurationMs      int64    `json:"hold_duration_ms,omitempty"`
}

// ServeHTTP handles GET /api/status with one consistent snapshot.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	snap := h.session.Snapshot()

	resp := statusResponse{
		Sentence:        strings.Join(snap.Sentence, " "),
		Words:           snap.Sentence,
		CurrentSign:     snap.CurrentSign,
		Confidence:      snap.Confidence,
		TTSEnabled:      snap.TTSEnabled,
		CameraConnected: snap.CameraConnected,
	}

	if h.app != nil {
		params := h.app.StabilizerParams()
		resp.ConfidenceThreshold = params.ConfidenceThreshold
		resp.HoldDurationMs = params.HoldDuration.Milliseconds()
	}

	writeJSON(w, http.StatusOK, resp)
}
