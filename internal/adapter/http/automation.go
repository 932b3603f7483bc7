package httpadapter

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// handleAutomationRun is the scheduler trigger called by an external
// timer. It requires a bearer secret; unauthorized requests receive 401.
// The body is empty. On success it returns the dispatch report, which
// reflects dispatch acceptance only.
func (h *Handler) handleAutomationRun(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	report, err := h.automation.RunBatch(r.Context())
	if err != nil {
		h.logger.Error("automation run error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// authorized checks the bearer secret in constant time. An empty
// configured secret rejects everything; the endpoint cannot be left open
// by omission.
func (h *Handler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
