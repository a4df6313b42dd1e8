package handlers

import (
	"log/slog"
	"net/http"

	"github.com/uptrace/bun"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	db     *bun.DB
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler. db may be nil for handlers
// serving static health only.
func NewHealthHandler(db *bun.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.logger.Error("health check failed", "error", err)
			respondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
