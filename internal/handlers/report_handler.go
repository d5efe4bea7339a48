package handlers

import (
	"fmt"
	"net/http"

	"estate-backend/internal/services"
	"estate-backend/internal/timeutil"
	"estate-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) RentRollPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.RentRollPDF(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("rent-roll-%s.pdf", timeutil.Now().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *ReportHandler) RentRollCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.RentRollCSV(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("rent-roll-%s.csv", timeutil.Now().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
