package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService lets tenants pay rent online. A captured payment lands in
// the ledger as a completed record via the same path manual entries take.
type RazorpayService struct {
	leaseRepo *repositories.LeaseRepository
	payments  *PaymentService

	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayService(keyID, keySecret, webhookSecret string, leaseRepo *repositories.LeaseRepository, payments *PaymentService) *RazorpayService {
	return &RazorpayService{
		leaseRepo:     leaseRepo,
		payments:      payments,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}
}

// IsEnabled reports whether Razorpay credentials are configured.
func (s *RazorpayService) IsEnabled() bool {
	return s.keyID != "" && s.keySecret != ""
}

// CreateOrder creates a Razorpay order for a rent payment on a lease.
func (s *RazorpayService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	if !s.IsEnabled() {
		return nil, fmt.Errorf("online payments are not configured")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	lease, err := s.leaseRepo.Get(ctx, req.LeaseID)
	if err != nil {
		return nil, fmt.Errorf("lease not found: %w", err)
	}
	if !lease.IsActive {
		return nil, fmt.Errorf("lease %d is not active", lease.ID)
	}

	client := razorpay.NewClient(s.keyID, s.keySecret)

	// Razorpay amounts are in paise
	amountPaise := toPaise(req.Amount)
	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("rent_%d_%d", lease.ID, time.Now().Unix()),
		"notes": map[string]interface{}{
			"lease_id":    strconv.Itoa(lease.ID),
			"tenant_name": lease.TenantName,
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, _ := order["id"].(string)
	return &models.CreateOrderResponse{
		OrderID:  orderID,
		Amount:   amountPaise,
		Currency: "INR",
		KeyID:    s.keyID,
	}, nil
}

// toPaise converts a rupee amount to integer paise, rounding to the
// nearest paisa so float representation cannot shave an order short.
func toPaise(amount float64) int {
	return int(math.Round(amount * 100))
}

// VerifyWebhookSignature verifies the webhook signature
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return true // Skip verification if not configured
	}

	h := hmac.New(sha256.New, []byte(s.webhookSecret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessWebhook handles Razorpay webhook events.
func (s *RazorpayService) ProcessWebhook(ctx context.Context, event string, payload map[string]interface{}) error {
	switch event {
	case "payment.captured":
		return s.handlePaymentCaptured(ctx, payload)
	case "payment.failed":
		log.Printf("[Razorpay] payment failed event received")
		return nil
	default:
		log.Printf("[Razorpay] Unhandled webhook event: %s", event)
		return nil
	}
}

func (s *RazorpayService) handlePaymentCaptured(ctx context.Context, payload map[string]interface{}) error {
	entity := extractEntity(payload)

	paymentID, _ := entity["id"].(string)
	notes, _ := entity["notes"].(map[string]interface{})
	leaseIDStr, _ := notes["lease_id"].(string)
	leaseID, err := strconv.Atoi(leaseIDStr)
	if err != nil || leaseID <= 0 {
		return fmt.Errorf("missing lease_id in webhook notes")
	}

	amountPaise, ok := entity["amount"].(float64)
	if !ok || amountPaise <= 0 {
		return fmt.Errorf("missing amount in webhook payload")
	}

	req := &models.CreatePaymentRequest{
		LeaseID:       leaseID,
		Amount:        amountPaise / 100,
		PaymentMethod: "online",
		PaymentType:   "rent",
		Notes:         fmt.Sprintf("Online payment via Razorpay | Payment ID: %s", paymentID),
	}

	// RecordedByUserID 0 marks system-recorded payments
	if _, err := s.payments.Record(ctx, req, 0); err != nil {
		return fmt.Errorf("failed to record online payment: %w", err)
	}

	log.Printf("[Razorpay] Recorded online payment %s for lease %d, amount %.2f", paymentID, leaseID, amountPaise/100)
	return nil
}

// extractEntity digs the payment entity out of the webhook envelope.
func extractEntity(payload map[string]interface{}) map[string]interface{} {
	paymentEntity, ok := payload["payment"].(map[string]interface{})
	if !ok {
		paymentEntity = payload
	}
	entity, ok := paymentEntity["entity"].(map[string]interface{})
	if !ok {
		entity = paymentEntity
	}
	return entity
}
