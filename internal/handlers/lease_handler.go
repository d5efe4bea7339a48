package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type LeaseHandler struct {
	Service *services.LeaseService
}

func NewLeaseHandler(service *services.LeaseService) *LeaseHandler {
	return &LeaseHandler{Service: service}
}

func (h *LeaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lease, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repositories.ErrActiveLeaseExists) {
			utils.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, lease)
}

func (h *LeaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid lease ID")
		return
	}

	lease, err := h.Service.Get(r.Context(), id)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "lease not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, lease)
}

// List returns all leases, optionally filtered by ?property_id=
func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	if pid := r.URL.Query().Get("property_id"); pid != "" {
		propertyID, err := strconv.Atoi(pid)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid property_id")
			return
		}
		leases, err := h.Service.ListByProperty(r.Context(), propertyID)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.RespondJSON(w, http.StatusOK, leases)
		return
	}

	leases, err := h.Service.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, leases)
}

func (h *LeaseHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid lease ID")
		return
	}

	var req models.TerminateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Terminate(r.Context(), id, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "lease terminated"})
}
