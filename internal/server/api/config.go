package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/signspeak/internal/app"
)

// ConfigHandler reads and updates the stabilizer tuning at runtime.
type ConfigHandler struct {
	app *app.App
}

// NewConfigHandler creates a ConfigHandler.
func NewConfigHandler(a *app.App) *ConfigHandler {
	return &ConfigHandler{app: a}
}

type configResponse struct {
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	HoldDurationMs      int64   `json:"hold_duration_ms"`
}

type updateConfigRequest struct {
	ConfidenceThreshold *float64 `json:"confidence_threshold"`
	HoldDurationMs      *int64   `json:"hold_duration_ms"`
}

// ServeHTTP handles GET and POST on /api/config. Updates take effect at
// the next frame boundary, so an in-flight hold is never corrupted.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.writeConfig(w)

	case http.MethodPost:
		var req updateConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		params := h.app.StabilizerParams()
		if req.ConfidenceThreshold != nil {
			if *req.ConfidenceThreshold <= 0 || *req.ConfidenceThreshold > 1 {
				writeError(w, http.StatusBadRequest, "confidence_threshold must be in (0,1]")
				return
			}
			params.ConfidenceThreshold = *req.ConfidenceThreshold
		}
		if req.HoldDurationMs != nil {
			if *req.HoldDurationMs <= 0 {
				writeError(w, http.StatusBadRequest, "hold_duration_ms must be positive")
				return
			}
			params.HoldDuration = time.Duration(*req.HoldDurationMs) * time.Millisecond
		}

		h.app.SetStabilizerParams(params)
		h.writeConfig(w)

	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *ConfigHandler) writeConfig(w http.ResponseWriter) {
	params := h.app.StabilizerParams()
	writeJSON(w, http.StatusOK, configResponse{
		ConfidenceThreshold: params.ConfidenceThreshold,
		HoldDurationMs:      params.HoldDuration.Milliseconds(),
	})
}
