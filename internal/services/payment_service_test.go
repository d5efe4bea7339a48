package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

// fakeLedger is an in-memory PaymentStore that enforces the same
// one-reversal-per-original rule the database index does.
type fakeLedger struct {
	payments []models.Payment
	nextSeq  int
}

func (f *fakeLedger) NextReceiptNumber(ctx context.Context) (string, error) {
	f.nextSeq++
	return fmt.Sprintf("RCP-%06d", f.nextSeq), nil
}

func (f *fakeLedger) Create(ctx context.Context, p *models.Payment) error {
	if p.OriginalPaymentID != nil {
		for _, existing := range f.payments {
			if existing.OriginalPaymentID != nil && *existing.OriginalPaymentID == *p.OriginalPaymentID {
				return repositories.ErrAlreadyReversed
			}
		}
	}
	p.ID = len(f.payments) + 1
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakeLedger) GetByID(ctx context.Context, id int) (*models.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repositories.ErrPaymentNotFound
}

func (f *fakeLedger) List(ctx context.Context) ([]models.Payment, error) {
	return append([]models.Payment(nil), f.payments...), nil
}

func (f *fakeLedger) ListByLease(ctx context.Context, leaseID int) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.LeaseID == leaseID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestPaymentService(ledger *fakeLedger) *PaymentService {
	s := NewPaymentService(ledger)
	s.now = func() time.Time {
		return time.Date(2025, time.May, 20, 14, 30, 0, 0, time.UTC)
	}
	return s
}

func TestRecordPaymentDefaults(t *testing.T) {
	ledger := &fakeLedger{}
	s := newTestPaymentService(ledger)

	got, err := s.Record(context.Background(), &models.CreatePaymentRequest{
		LeaseID: 7,
		Amount:  12000,
	}, 3)
	require.NoError(t, err)

	assert.Equal(t, "RCP-000001", got.ReceiptNumber)
	assert.Equal(t, models.PaymentStatusCompleted, got.Status)
	assert.Equal(t, "cash", got.PaymentMethod)
	assert.Equal(t, "rent", got.PaymentType)
	assert.Equal(t, 3, got.RecordedByUserID)
	// Defaults to today at midnight, not the wall-clock instant
	assert.Equal(t, time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), got.PaymentDate)
}

func TestRecordPaymentValidation(t *testing.T) {
	s := newTestPaymentService(&fakeLedger{})
	ctx := context.Background()

	_, err := s.Record(ctx, &models.CreatePaymentRequest{Amount: 100}, 1)
	assert.Error(t, err)

	_, err = s.Record(ctx, &models.CreatePaymentRequest{LeaseID: 7, Amount: -5}, 1)
	assert.Error(t, err)

	_, err = s.Record(ctx, &models.CreatePaymentRequest{LeaseID: 7, Amount: 100, Status: "bogus"}, 1)
	assert.Error(t, err)

	_, err = s.Record(ctx, &models.CreatePaymentRequest{LeaseID: 7, Amount: 100, PaymentDate: "20-05-2025"}, 1)
	assert.Error(t, err)
}

func TestReversePayment(t *testing.T) {
	ledger := &fakeLedger{}
	s := newTestPaymentService(ledger)
	ctx := context.Background()

	original, err := s.Record(ctx, &models.CreatePaymentRequest{
		LeaseID:     7,
		Amount:      15000,
		PaymentDate: "2025-05-02",
	}, 3)
	require.NoError(t, err)

	rev, err := s.Reverse(ctx, original.ID, 4)
	require.NoError(t, err)

	assert.Equal(t, -15000.0, rev.Amount)
	assert.Equal(t, models.PaymentStatusCompleted, rev.Status)
	require.NotNil(t, rev.OriginalPaymentID)
	assert.Equal(t, original.ID, *rev.OriginalPaymentID)
	assert.Equal(t, 4, rev.RecordedByUserID)
	assert.NotEqual(t, original.ReceiptNumber, rev.ReceiptNumber)
	// Reversal dated today, not the original payment date
	assert.Equal(t, time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), rev.PaymentDate)

	// Ledger is append-only: the original row is untouched
	stored, err := s.Get(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, stored.Amount)
	assert.Equal(t, models.PaymentStatusCompleted, stored.Status)
}

func TestReversePaymentNotFound(t *testing.T) {
	s := newTestPaymentService(&fakeLedger{})

	_, err := s.Reverse(context.Background(), 999, 1)
	assert.ErrorIs(t, err, repositories.ErrPaymentNotFound)
}

func TestReversePaymentTwiceConflicts(t *testing.T) {
	ledger := &fakeLedger{}
	s := newTestPaymentService(ledger)
	ctx := context.Background()

	original, err := s.Record(ctx, &models.CreatePaymentRequest{LeaseID: 7, Amount: 9000}, 1)
	require.NoError(t, err)

	_, err = s.Reverse(ctx, original.ID, 1)
	require.NoError(t, err)

	_, err = s.Reverse(ctx, original.ID, 1)
	assert.ErrorIs(t, err, repositories.ErrAlreadyReversed)
}

func TestReverseAReversalRejected(t *testing.T) {
	ledger := &fakeLedger{}
	s := newTestPaymentService(ledger)
	ctx := context.Background()

	original, err := s.Record(ctx, &models.CreatePaymentRequest{LeaseID: 7, Amount: 9000}, 1)
	require.NoError(t, err)
	rev, err := s.Reverse(ctx, original.ID, 1)
	require.NoError(t, err)

	_, err = s.Reverse(ctx, rev.ID, 1)
	assert.ErrorIs(t, err, ErrCannotReverseReversal)
}

func TestListHidesReversedByDefault(t *testing.T) {
	ledger := &fakeLedger{}
	s := newTestPaymentService(ledger)
	ctx := context.Background()

	p1, err := s.Record(ctx, &models.CreatePaymentRequest{LeaseID: 7, Amount: 9000}, 1)
	require.NoError(t, err)
	p2, err := s.Record(ctx, &models.CreatePaymentRequest{LeaseID: 7, Amount: 4000}, 1)
	require.NoError(t, err)
	_, err = s.Reverse(ctx, p1.ID, 1)
	require.NoError(t, err)

	visible, err := s.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, p2.ID, visible[0].ID)

	full, err := s.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, full, 3)
}
