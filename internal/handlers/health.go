package handlers

import (
	"net/http"
	"time"
)

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	}, http.StatusOK)
}
