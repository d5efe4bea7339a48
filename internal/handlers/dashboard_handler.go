package handlers

import (
	"net/http"

	"estate-backend/internal/services"
	"estate-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// Status returns the per-property rent-cycle and lease status rows.
func (h *DashboardHandler) Status(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Statuses(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, rows)
}

// Summary returns the portfolio aggregates.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, summary)
}
