package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-backend/internal/models"
	"estate-backend/internal/rentcycle"
)

type fakePortfolio struct {
	rows []models.PropertyWithLease
}

func (f *fakePortfolio) ListWithLease(ctx context.Context) ([]models.PropertyWithLease, error) {
	return f.rows, nil
}

type fakeRawLedger struct {
	payments []models.Payment
}

func (f *fakeRawLedger) List(ctx context.Context) ([]models.Payment, error) {
	return f.payments, nil
}

func occupied(propertyID, leaseID int, rent float64, start time.Time) models.PropertyWithLease {
	return models.PropertyWithLease{
		ID:          propertyID,
		LeaseID:     &leaseID,
		MonthlyRent: rent,
		StartDate:   &start,
		IsActive:    true,
	}
}

func newTestDashboard(portfolio []models.PropertyWithLease, payments []models.Payment, now time.Time) *DashboardService {
	s := NewDashboardService(&fakePortfolio{rows: portfolio}, &fakeRawLedger{payments: payments})
	s.now = func() time.Time { return now }
	return s
}

func TestDashboardStatuses(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 10, 9, 15, 0, 0, time.UTC)

	portfolio := []models.PropertyWithLease{
		occupied(1, 10, 20000, start),
		occupied(2, 20, 30000, start),
		{ID: 3}, // vacant
	}
	payments := []models.Payment{
		{ID: 1, LeaseID: 10, Amount: 20000, PaymentDate: time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC), Status: models.PaymentStatusCompleted},
	}

	s := newTestDashboard(portfolio, payments, now)
	rows, err := s.Statuses(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, rentcycle.StatusPaid, rows[0].PaymentStatus.Status)
	assert.Equal(t, rentcycle.StatusOverdue, rows[1].PaymentStatus.Status)
	assert.Nil(t, rows[2].PaymentStatus)
}

func TestDashboardFiltersReversalsBeforeEvaluation(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 10, 9, 15, 0, 0, time.UTC)

	original := models.Payment{
		ID: 1, LeaseID: 10, Amount: 20000,
		PaymentDate: time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC),
		Status:      models.PaymentStatusCompleted,
	}
	reversal := rentcycle.NewReversal(original, time.Date(2025, time.May, 6, 0, 0, 0, 0, time.UTC))
	reversal.ID = 2

	s := newTestDashboard(
		[]models.PropertyWithLease{occupied(1, 10, 20000, start)},
		[]models.Payment{original, reversal},
		now,
	)

	rows, err := s.Statuses(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// The reversal is dated this month and completed, but it must not
	// settle the cycle: the pair is filtered out before evaluation.
	assert.Equal(t, rentcycle.StatusOverdue, rows[0].PaymentStatus.Status)
}

func TestDashboardSummary(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 10, 9, 15, 0, 0, time.UTC)

	portfolio := []models.PropertyWithLease{
		occupied(1, 10, 20000, start),
		occupied(2, 20, 30000, start),
		{ID: 3},
	}
	payments := []models.Payment{
		{ID: 1, LeaseID: 10, Amount: 20000, PaymentDate: time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC), Status: models.PaymentStatusCompleted},
	}

	s := newTestDashboard(portfolio, payments, now)
	summary, err := s.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalProperties)
	assert.Equal(t, 2, summary.OccupiedCount)
	assert.Equal(t, 1, summary.VacantCount)
	assert.Equal(t, 20000.0, summary.TotalCollected)
	assert.Equal(t, 30000.0, summary.TotalOverdue)
	assert.Equal(t, 1, summary.OverdueCount)
	assert.Equal(t, 100.0, summary.CollectionRate)
}
