package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	payment, err := h.Service.Record(r.Context(), &req, userID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, payment)
}

// Reverse appends a compensating record for the given payment. The result
// of a successful call is the new reversal row.
func (h *PaymentHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid payment ID")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	reversal, err := h.Service.Reverse(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPaymentNotFound):
			utils.RespondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, repositories.ErrAlreadyReversed):
			utils.RespondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrCannotReverseReversal):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, reversal)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid payment ID")
		return
	}

	payment, err := h.Service.Get(r.Context(), id)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "payment not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, payment)
}

// List returns the ledger. Reversed pairs are hidden unless
// ?include_reversed=true; ?lease_id= filters to one lease.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	includeReversed := r.URL.Query().Get("include_reversed") == "true"

	if lid := r.URL.Query().Get("lease_id"); lid != "" {
		leaseID, err := strconv.Atoi(lid)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid lease_id")
			return
		}
		payments, err := h.Service.ListByLease(r.Context(), leaseID, includeReversed)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.RespondJSON(w, http.StatusOK, payments)
		return
	}

	payments, err := h.Service.List(r.Context(), includeReversed)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, payments)
}
