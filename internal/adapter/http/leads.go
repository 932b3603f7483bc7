package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// handleLeadQuality classifies a lead as good or bad and reports
// conversion feedback to the platform best-effort. Unknown leads yield
// 404, an unknown quality value 400.
func (h *Handler) handleLeadQuality(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lead id"})
		return
	}

	var req struct {
		Quality string `json:"quality"`
	}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	sent, err := h.feedback.Classify(r.Context(), id, domain.LeadQuality(req.Quality))
	if err != nil {
		var verr *port.ValidationError
		switch {
		case errors.As(err, &verr):
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
		case errors.Is(err, port.ErrLeadNotFound):
			h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		default:
			h.logger.Error("lead quality error", slog.Any("error", err))
			h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"sent": sent})
}
