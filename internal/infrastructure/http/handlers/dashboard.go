package handlers

import (
	"net/http"

	"github.com/hearthhq/hearth/internal/ports/inbound"
	"go.uber.org/zap"
)

// DashboardHandlers serves the home summary
type DashboardHandlers struct {
	responder
	dashboard inbound.DashboardService
}

// NewDashboardHandlers creates dashboard handlers
func NewDashboardHandlers(dashboard inbound.DashboardService, logger *zap.Logger) *DashboardHandlers {
	return &DashboardHandlers{
		responder: newResponder(logger.Named("dashboard-handlers")),
		dashboard: dashboard,
	}
}

// Summary handles GET /api/v1/dashboard
func (h *DashboardHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, summary, "")
}
