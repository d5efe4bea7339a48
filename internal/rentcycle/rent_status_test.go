package rentcycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-backend/internal/models"
)

func snapshot(leaseID int, rent float64, start time.Time) models.PropertyWithLease {
	return models.PropertyWithLease{
		ID:          1,
		LeaseID:     &leaseID,
		MonthlyRent: rent,
		StartDate:   &start,
		IsActive:    true,
	}
}

func completedPayment(id, leaseID int, amount float64, day time.Time) models.Payment {
	return models.Payment{
		ID:          id,
		LeaseID:     leaseID,
		Amount:      amount,
		PaymentDate: day,
		Status:      models.PaymentStatusCompleted,
	}
}

func TestEvaluateRentCycleProration(t *testing.T) {
	// Rent 30,000; previous month (April) has 30 days; lease started on the
	// 16th -> 15 days occupied at a daily rate of 1,000.
	lease := snapshot(7, 30000, date(2025, time.April, 16))
	today := date(2025, time.May, 10)

	got, err := EvaluateRentCycle(lease, nil, today)
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, got.Status) // the 10th is past the grace period
	assert.Equal(t, 15, got.DaysOccupied)
	assert.Equal(t, 15000.0, got.Amount)
	assert.Equal(t, date(2025, time.April, 16), got.EffectiveStart)
	assert.Equal(t, date(2025, time.May, 1), got.DueDate)
	assert.Equal(t, date(2025, time.May, 6), got.OverdueDate)
}

func TestEvaluateRentCycleFullMonth(t *testing.T) {
	// Lease predates the cycle entirely: full-month proration.
	lease := snapshot(7, 31000, date(2024, time.January, 1))
	today := date(2025, time.June, 3) // previous month May has 31 days

	got, err := EvaluateRentCycle(lease, nil, today)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, 31, got.DaysOccupied)
	assert.Equal(t, 31000.0, got.Amount)
}

func TestEvaluateRentCycleStartsOnFirstOfPreviousMonth(t *testing.T) {
	lease := snapshot(7, 30000, date(2025, time.April, 1))
	today := date(2025, time.May, 2)

	got, err := EvaluateRentCycle(lease, nil, today)
	require.NoError(t, err)
	assert.Equal(t, 30, got.DaysOccupied)
	assert.Equal(t, 30000.0, got.Amount)
}

func TestEvaluateRentCycleStartsOnLastDayOfPreviousMonth(t *testing.T) {
	lease := snapshot(7, 30000, date(2025, time.April, 30))
	today := date(2025, time.May, 2)

	got, err := EvaluateRentCycle(lease, nil, today)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DaysOccupied)
	assert.Equal(t, 1000.0, got.Amount)
}

func TestEvaluateRentCycleLeaseNewerThanBillingWindow(t *testing.T) {
	// Lease started this month: nothing owed for the previous cycle.
	lease := snapshot(7, 30000, date(2025, time.May, 3))
	today := date(2025, time.May, 10)

	got, err := EvaluateRentCycle(lease, nil, today)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, got.Status)
	assert.Zero(t, got.Amount)
	assert.Zero(t, got.DaysOccupied)
}

func TestEvaluateRentCyclePaidByCurrentMonthPayment(t *testing.T) {
	lease := snapshot(7, 30000, date(2024, time.January, 1))
	today := date(2025, time.May, 20)

	// Amount does not matter: any completed payment this month settles the
	// cycle. Partial payments count as full settlement.
	payments := []models.Payment{completedPayment(1, 7, 500, date(2025, time.May, 4))}

	got, err := EvaluateRentCycle(lease, payments, today)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, got.Status)
	assert.Zero(t, got.Amount)
	assert.Zero(t, got.DaysOccupied)
}

func TestEvaluateRentCyclePaidUnderWesternBusinessZone(t *testing.T) {
	// Payment dates come out of a DATE column as UTC midnight while today
	// carries the business zone. A payment dated the 1st must still count
	// toward this month in a zone west of UTC; converting the stored
	// instant into that zone would shift it back into the previous month.
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	lease := snapshot(7, 30000, date(2024, time.January, 1))
	today := time.Date(2025, time.May, 10, 0, 0, 0, 0, ny)
	payments := []models.Payment{completedPayment(1, 7, 30000, date(2025, time.May, 1))}

	got, err := EvaluateRentCycle(lease, payments, today)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, got.Status)
}

func TestEvaluateRentCycleResultDatesShareTodayZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	lease := snapshot(7, 30000, date(2024, time.January, 1))
	today := time.Date(2025, time.May, 10, 0, 0, 0, 0, ny)

	got, err := EvaluateRentCycle(lease, nil, today)
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, got.Status)
	assert.Same(t, ny, got.DueDate.Location())
	assert.Same(t, ny, got.OverdueDate.Location())
	assert.Same(t, ny, got.EffectiveStart.Location())
	assert.Equal(t, 30, got.DaysOccupied) // cross-zone dates still count whole days
	assert.Equal(t, 30000.0, got.Amount)
}

func TestEvaluateRentCycleStalePaymentDoesNotSettle(t *testing.T) {
	lease := snapshot(7, 30000, date(2024, time.January, 1))
	today := date(2025, time.May, 20)

	payments := []models.Payment{
		completedPayment(1, 7, 30000, date(2025, time.March, 2)), // two months ago
		completedPayment(2, 9, 30000, date(2025, time.May, 2)),   // other lease
		{ID: 3, LeaseID: 7, Amount: 30000, PaymentDate: date(2025, time.May, 2), Status: models.PaymentStatusPending},
		{ID: 4, LeaseID: 7, Amount: 30000, PaymentDate: date(2025, time.May, 2), Status: models.PaymentStatusFailed},
	}

	got, err := EvaluateRentCycle(lease, payments, today)
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, got.Status)
	assert.Equal(t, 30000.0, got.Amount) // full previous month (April, 30 days)
}

func TestEvaluateRentCycleGraceBoundary(t *testing.T) {
	lease := snapshot(7, 30000, date(2024, time.January, 1))

	onFifth, err := EvaluateRentCycle(lease, nil, date(2025, time.May, 5))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, onFifth.Status)

	onSixth, err := EvaluateRentCycle(lease, nil, date(2025, time.May, 6))
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, onSixth.Status)

	// All else equal, the flip happens exactly at the boundary.
	assert.Equal(t, onFifth.Amount, onSixth.Amount)
	assert.Equal(t, onFifth.DaysOccupied, onSixth.DaysOccupied)
}

func TestEvaluateRentCycleYearWraparound(t *testing.T) {
	// January evaluates December of the previous year (31 days).
	lease := snapshot(7, 31000, date(2024, time.June, 1))
	today := date(2025, time.January, 8)

	got, err := EvaluateRentCycle(lease, nil, today)
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, got.Status)
	assert.Equal(t, 31, got.DaysOccupied)
	assert.Equal(t, 31000.0, got.Amount)
	assert.Equal(t, date(2025, time.January, 1), got.DueDate)
}

func TestEvaluateRentCycleVacantProperty(t *testing.T) {
	_, err := EvaluateRentCycle(models.PropertyWithLease{ID: 1}, nil, date(2025, time.May, 10))
	assert.ErrorIs(t, err, ErrNoActiveLease)
}

func TestEvaluateRentCycleZeroToday(t *testing.T) {
	lease := snapshot(7, 30000, date(2024, time.January, 1))
	_, err := EvaluateRentCycle(lease, nil, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
