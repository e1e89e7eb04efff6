package handlers

import (
	"net/http"
	"time"

	"github.com/parishbooks/parishbooks-backend/internal/api/dto"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	Base
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
