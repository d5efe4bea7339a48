package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estate-backend/internal/cache"
	"estate-backend/internal/metrics"
	"estate-backend/internal/models"
	"estate-backend/internal/rentcycle"
	"estate-backend/internal/timeutil"
)

// ErrCannotReverseReversal is returned when the target of a reversal is
// itself a compensating record. Reversing a reversal would re-reveal the
// original instead of correcting anything.
var ErrCannotReverseReversal = errors.New("cannot reverse a reversal record")

// PaymentStore is the slice of the payment repository the service needs.
// Kept small so tests can swap in an in-memory ledger.
type PaymentStore interface {
	NextReceiptNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id int) (*models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
	ListByLease(ctx context.Context, leaseID int) ([]models.Payment, error)
}

type PaymentService struct {
	Store PaymentStore

	// now is swappable in tests; defaults to the business clock
	now func() time.Time
}

func NewPaymentService(store PaymentStore) *PaymentService {
	return &PaymentService{Store: store, now: timeutil.Now}
}

// Record appends a payment to the ledger and assigns it a receipt number.
func (s *PaymentService) Record(ctx context.Context, req *models.CreatePaymentRequest, userID int) (*models.Payment, error) {
	if req.LeaseID <= 0 {
		return nil, errors.New("lease_id is required")
	}
	if req.Amount <= 0 {
		return nil, errors.New("payment_amount must be positive")
	}

	paymentDate := timeutil.StartOfDay(s.now())
	if req.PaymentDate != "" {
		pd, err := timeutil.ParseDate(req.PaymentDate)
		if err != nil {
			return nil, errors.New("payment_date must be YYYY-MM-DD")
		}
		paymentDate = pd
	}

	status := models.PaymentStatusCompleted
	if req.Status != "" {
		switch models.PaymentStatus(req.Status) {
		case models.PaymentStatusCompleted, models.PaymentStatusPending, models.PaymentStatusFailed:
			status = models.PaymentStatus(req.Status)
		default:
			return nil, errors.New("status must be completed, pending or failed")
		}
	}

	receipt, err := s.Store.NextReceiptNumber(ctx)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ReceiptNumber:    receipt,
		LeaseID:          req.LeaseID,
		Amount:           req.Amount,
		PaymentDate:      paymentDate,
		Status:           status,
		PaymentMethod:    req.PaymentMethod,
		PaymentType:      req.PaymentType,
		Notes:            req.Notes,
		RecordedByUserID: userID,
	}
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = "cash"
	}
	if payment.PaymentType == "" {
		payment.PaymentType = "rent"
	}

	if err := s.Store.Create(ctx, payment); err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	cache.InvalidateDashboard(ctx)
	return payment, nil
}

// Reverse appends a compensating record that cancels the given payment.
// The original row is never touched. A second reversal of the same payment
// fails with repositories.ErrAlreadyReversed via the storage constraint.
func (s *PaymentService) Reverse(ctx context.Context, paymentID, userID int) (*models.Payment, error) {
	original, err := s.Store.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if original.IsReversal() {
		return nil, ErrCannotReverseReversal
	}

	reversal := rentcycle.NewReversal(*original, timeutil.StartOfDay(s.now()))
	reversal.RecordedByUserID = userID

	receipt, err := s.Store.NextReceiptNumber(ctx)
	if err != nil {
		return nil, err
	}
	reversal.ReceiptNumber = receipt

	if err := s.Store.Create(ctx, &reversal); err != nil {
		return nil, fmt.Errorf("failed to reverse payment %d: %w", paymentID, err)
	}

	metrics.PaymentsReversed.Inc()
	cache.InvalidateDashboard(ctx)
	return &reversal, nil
}

func (s *PaymentService) Get(ctx context.Context, id int) (*models.Payment, error) {
	return s.Store.GetByID(ctx, id)
}

// List returns the ledger. The default view hides reversals and the
// payments they cancel; includeReversed exposes the full audit trail.
func (s *PaymentService) List(ctx context.Context, includeReversed bool) ([]models.Payment, error) {
	payments, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeReversed {
		return payments, nil
	}
	return rentcycle.VisiblePayments(payments), nil
}

func (s *PaymentService) ListByLease(ctx context.Context, leaseID int, includeReversed bool) ([]models.Payment, error) {
	payments, err := s.Store.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if includeReversed {
		return payments, nil
	}
	return rentcycle.VisiblePayments(payments), nil
}
