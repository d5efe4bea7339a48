package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"estate-backend/internal/models"
	"estate-backend/internal/services"
	"estate-backend/pkg/utils"
)

type RazorpayHandler struct {
	Service *services.RazorpayService
}

func NewRazorpayHandler(service *services.RazorpayService) *RazorpayHandler {
	return &RazorpayHandler{Service: service}
}

func (h *RazorpayHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.CreateOrder(r.Context(), &req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, resp)
}

// Webhook handles Razorpay webhook callbacks. Always returns 200 for
// processed events so Razorpay does not retry forever on payload quirks;
// signature failures return 401.
func (h *RazorpayHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !h.Service.VerifyWebhookSignature(body, signature) {
		utils.RespondError(w, http.StatusUnauthorized, "invalid webhook signature")
		return
	}

	var event struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid webhook payload")
		return
	}

	if err := h.Service.ProcessWebhook(r.Context(), event.Event, event.Payload); err != nil {
		log.Printf("[Razorpay] webhook processing failed: %v", err)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
