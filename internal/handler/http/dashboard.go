package http

import (
	"log/slog"
	"net/http"

	"github.com/rnrran/HUBDAM-KP/internal/domain/dashboard"
	"github.com/rnrran/HUBDAM-KP/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	dashboardResponse, err := h.dashboardService.GetDashboard(r.Context(), page, limit)
	if err != nil {
		slog.Error("Get dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, dashboardResponse)
}
