package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// launchRequest is the inbound launch body. A single ad variant is built
// from headline/body/cta; additional variants may be supplied explicitly.
type launchRequest struct {
	BusinessID       int64              `json:"business_id"`
	Name             string             `json:"name"`
	Headline         string             `json:"headline"`
	Body             string             `json:"body"`
	CTA              string             `json:"cta"`
	LinkURL          string             `json:"link_url"`
	ImageURL         string             `json:"image_url"`
	DailyBudgetCents int64              `json:"daily_budget_cents"`
	RadiusKm         float64            `json:"radius_km"`
	Countries        []string           `json:"countries"`
	AgeMin           int                `json:"age_min"`
	AgeMax           int                `json:"age_max"`
	Variants         []domain.AdVariant `json:"variants"`
}

type errorResponse struct {
	Error     string `json:"error"`
	MetaError string `json:"meta_error,omitempty"`
	Step      string `json:"step,omitempty"`
	Reconnect bool   `json:"reconnect_required,omitempty"`
}

// handleLaunch provisions a new campaign. The caller identity comes from
// the X-User-ID header set by the upstream auth layer. Error classes map
// to statuses: validation and missing credentials 400, ownership 403,
// unknown business 404, platform rejection 502, persistence 500.
func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing or invalid X-User-ID header"})
		return
	}

	var req launchRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	if req.BusinessID == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required field: business_id"})
		return
	}

	variants := req.Variants
	if len(variants) == 0 && (req.Headline != "" || req.Body != "") {
		variants = []domain.AdVariant{{
			Headline: req.Headline,
			Body:     req.Body,
			CTA:      req.CTA,
			LinkURL:  req.LinkURL,
			ImageURL: req.ImageURL,
		}}
	}

	camp, err := h.launch.Launch(r.Context(), userID, domain.LaunchSpec{
		BusinessID:       req.BusinessID,
		Name:             req.Name,
		DailyBudgetCents: req.DailyBudgetCents,
		RadiusKm:         req.RadiusKm,
		Countries:        req.Countries,
		AgeMin:           req.AgeMin,
		AgeMax:           req.AgeMax,
		Variants:         variants,
	})
	if err != nil {
		h.writeLaunchError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, camp)
}

// writeLaunchError maps pipeline errors onto the HTTP taxonomy.
func (h *Handler) writeLaunchError(w http.ResponseWriter, err error) {
	var (
		verr *port.ValidationError
		perr *port.ProvisioningError
		nerr *port.NoViableAdError
		serr *port.PersistenceError
	)
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.Is(err, port.ErrNoCredentials):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Reconnect: true})
	case errors.Is(err, port.ErrNotOwner):
		h.writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrBusinessNotFound), errors.Is(err, port.ErrCampaignNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &perr):
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: perr.Error(), MetaError: perr.Message, Step: perr.Step})
	case errors.As(err, &nerr):
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: nerr.Error(), Step: port.StepAds})
	case errors.As(err, &serr):
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: serr.Error()})
	default:
		h.logger.Error("launch error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// handleStaleCampaigns lists campaigns stuck in provisioning or error
// beyond the configured threshold, for operator reconciliation.
func (h *Handler) handleStaleCampaigns(w http.ResponseWriter, r *http.Request) {
	stale, err := h.launch.ListStale(r.Context(), h.staleAfter)
	if err != nil {
		h.logger.Error("stale campaigns error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaigns": stale})
}
