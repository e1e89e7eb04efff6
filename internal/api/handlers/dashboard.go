package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/parishbooks/parishbooks-backend/internal/api/dto"
	"github.com/parishbooks/parishbooks-backend/internal/domain/period"
	"github.com/parishbooks/parishbooks-backend/internal/domain/report"
)

// DashboardProvider runs one aggregation for a period.
type DashboardProvider interface {
	GetDashboardData(ctx context.Context, p period.Period) (*report.DashboardData, error)
}

// DashboardHandler handles dashboard aggregation requests.
type DashboardHandler struct {
	Base
	provider DashboardProvider
	logger   *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(provider DashboardProvider, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{provider: provider, logger: logger}
}

// Get handles GET /api/dashboard?period=week|month - returns the aggregated
// dashboard for the requested period (month when omitted).
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := period.Parse(r.URL.Query().Get("period"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError(err.Error()))
		return
	}

	data, err := h.provider.GetDashboardData(r.Context(), p)
	if err != nil {
		h.logger.Error("dashboard aggregation failed", "period", string(p), "error", err)
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.FromDashboardData(string(p), data))
}
