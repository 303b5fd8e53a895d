package handlers

import "net/http"

// isoMillis matches JavaScript's Date.prototype.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

// HealthHandler godoc
// @Summary Service health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResult
// @Router /health [get]
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, HealthResult{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: h.now().UTC().Format(isoMillis),
	})
}
