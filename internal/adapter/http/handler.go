package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the use cases and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling;
// chi answers 405 for known paths with the wrong method.
type Handler struct {
	launch     port.LaunchUseCase
	automation port.AutomationUseCase
	feedback   port.FeedbackUseCase
	secret     string
	staleAfter time.Duration
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. The secret
// authenticates scheduler trigger requests from the external timer.
func NewHandler(launch port.LaunchUseCase, automation port.AutomationUseCase, feedback port.FeedbackUseCase, secret string, staleAfter time.Duration, logger *slog.Logger) *Handler {
	h := &Handler{launch: launch, automation: automation, feedback: feedback, secret: secret, staleAfter: staleAfter, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns/launch", h.handleLaunch)
		r.Get("/campaigns/stale", h.handleStaleCampaigns)
		r.Post("/automation/run", h.handleAutomationRun)
		r.Post("/leads/{id}/quality", h.handleLeadQuality)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with the given status. Encoding failures are logged
// and otherwise ignored; headers are already written at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
