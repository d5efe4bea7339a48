package rentcycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-backend/internal/models"
)

func TestEvaluatePortfolioAndSummarize(t *testing.T) {
	today := date(2025, time.May, 10) // past the grace period

	paidLease := snapshot(1, 20000, date(2024, time.January, 1))
	paidLease.ID = 1
	overdueLease := snapshot(2, 30000, date(2024, time.January, 1))
	overdueLease.ID = 2
	vacant := models.PropertyWithLease{ID: 3}

	raw := []models.Payment{
		completedPayment(1, 1, 20000, date(2025, time.May, 3)), // settles lease 1
		completedPayment(2, 2, 30000, date(2025, time.March, 3)), // stale, lease 2 unpaid
	}
	visible := VisiblePayments(raw)

	rows, err := EvaluatePortfolio([]models.PropertyWithLease{paidLease, overdueLease, vacant}, visible, today)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, StatusPaid, rows[0].PaymentStatus.Status)
	assert.Equal(t, StatusOverdue, rows[1].PaymentStatus.Status)
	assert.Nil(t, rows[2].PaymentStatus, "vacant property must never be billed")
	assert.Nil(t, rows[2].LeaseStatus)

	s := Summarize(rows, visible)
	assert.Equal(t, 3, s.TotalProperties)
	assert.Equal(t, 2, s.OccupiedCount)
	assert.Equal(t, 1, s.VacantCount)
	assert.Equal(t, 50000.0, s.TotalCollected)
	assert.Equal(t, 0.0, s.TotalPending)
	assert.Equal(t, 30000.0, s.TotalOverdue)
	assert.Equal(t, 1, s.OverdueCount)
	assert.Equal(t, 100.0, s.CollectionRate)
}

func TestEvaluatePortfolioLeaseStatus(t *testing.T) {
	today := date(2025, time.May, 10)

	end := date(2025, time.May, 15)
	prop := snapshot(1, 20000, date(2024, time.January, 1))
	prop.EndDate = &end

	rows, err := EvaluatePortfolio([]models.PropertyWithLease{prop}, nil, today)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].LeaseStatus)
	assert.Equal(t, LeaseExpiringSoon, rows[0].LeaseStatus.Status)
	assert.Equal(t, 5, rows[0].LeaseStatus.DaysRemaining)

	// Open-ended lease: no lease status, callers render it as plain active.
	prop.EndDate = nil
	rows, err = EvaluatePortfolio([]models.PropertyWithLease{prop}, nil, today)
	require.NoError(t, err)
	assert.Nil(t, rows[0].LeaseStatus)
}

func TestSummarizeReversedPairDoesNotInflateCollected(t *testing.T) {
	today := date(2025, time.May, 10)
	prop := snapshot(1, 20000, date(2024, time.January, 1))

	p := completedPayment(1, 1, 20000, date(2025, time.May, 3))
	r := NewReversal(p, date(2025, time.May, 5))
	r.ID = 2
	keep := completedPayment(3, 1, 5000, date(2025, time.April, 20))

	raw := []models.Payment{p, r, keep}
	visible := VisiblePayments(raw)

	rows, err := EvaluatePortfolio([]models.PropertyWithLease{prop}, visible, today)
	require.NoError(t, err)

	s := Summarize(rows, visible)
	assert.Equal(t, 5000.0, s.TotalCollected)

	// Keeping the pair yields the same total: the amounts cancel exactly.
	var withPair float64
	for _, x := range raw {
		if x.Status == models.PaymentStatusCompleted {
			withPair += x.Amount
		}
	}
	assert.Equal(t, withPair, s.TotalCollected)

	// And the reversal pair no longer settles the cycle.
	assert.Equal(t, StatusOverdue, rows[0].PaymentStatus.Status)
}

func TestSummarizeEmptyLedger(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, 0.0, s.CollectionRate, "empty ledger is rate 0, not a divide error")
	assert.Zero(t, s.TotalCollected)
}

func TestSummarizeCollectionRateBounds(t *testing.T) {
	visible := []models.Payment{
		completedPayment(1, 1, 100, date(2025, time.May, 1)),
		{ID: 2, LeaseID: 1, Amount: 100, PaymentDate: date(2025, time.May, 2), Status: models.PaymentStatusPending},
		{ID: 3, LeaseID: 1, Amount: 100, PaymentDate: date(2025, time.May, 3), Status: models.PaymentStatusFailed},
	}
	s := Summarize(nil, visible)
	assert.GreaterOrEqual(t, s.CollectionRate, 0.0)
	assert.LessOrEqual(t, s.CollectionRate, 100.0)
	assert.InDelta(t, 33.33, s.CollectionRate, 0.01)
}

func TestSummarizeLedgerEndToEnd(t *testing.T) {
	today := date(2025, time.May, 4) // within the grace period

	pendingLease := snapshot(5, 24000, date(2024, time.June, 1))
	pendingLease.ID = 10

	s, err := SummarizeLedger([]models.PropertyWithLease{pendingLease}, nil, today)
	require.NoError(t, err)
	assert.Equal(t, 24000.0, s.TotalPending)
	assert.Equal(t, 1, s.PendingCount)
	assert.Zero(t, s.TotalOverdue)
}
