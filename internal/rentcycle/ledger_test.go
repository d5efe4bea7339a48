package rentcycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-backend/internal/models"
)

func TestVisiblePaymentsHidesReversedPair(t *testing.T) {
	p := completedPayment(1, 7, 12000, date(2025, time.May, 2))
	r := NewReversal(p, date(2025, time.May, 9))
	r.ID = 2

	assert.Empty(t, VisiblePayments([]models.Payment{p, r}))
}

func TestVisiblePaymentsKeepsUnreversed(t *testing.T) {
	p := completedPayment(1, 7, 12000, date(2025, time.May, 2))

	got := VisiblePayments([]models.Payment{p})
	require.Len(t, got, 1)
	assert.Equal(t, p, got[0])
}

func TestVisiblePaymentsPreservesOrder(t *testing.T) {
	a := completedPayment(1, 7, 100, date(2025, time.May, 1))
	b := completedPayment(2, 7, 200, date(2025, time.May, 2))
	c := completedPayment(3, 8, 300, date(2025, time.May, 3))
	rb := NewReversal(b, date(2025, time.May, 4))
	rb.ID = 4
	d := completedPayment(5, 8, 400, date(2025, time.May, 5))

	got := VisiblePayments([]models.Payment{a, b, c, rb, d})
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestVisiblePaymentsCancellationInvariant(t *testing.T) {
	// Removing a reversed pair and keeping it must yield the same total:
	// the signed amounts cancel exactly.
	p := completedPayment(1, 7, 9500, date(2025, time.May, 2))
	r := NewReversal(p, date(2025, time.May, 9))
	r.ID = 2
	other := completedPayment(3, 7, 4000, date(2025, time.May, 3))

	raw := []models.Payment{p, r, other}
	sum := func(ps []models.Payment) float64 {
		var total float64
		for _, x := range ps {
			total += x.Amount
		}
		return total
	}

	assert.Equal(t, sum(raw), sum(VisiblePayments(raw)))
	assert.Equal(t, 4000.0, sum(VisiblePayments(raw)))
}

func TestVisiblePaymentsDoubleReversal(t *testing.T) {
	// Storage enforces at most one reversal per original, but data from
	// before that constraint may contain duplicates: every compensating
	// record stays hidden and the original stays hidden.
	p := completedPayment(1, 7, 9500, date(2025, time.May, 2))
	r1 := NewReversal(p, date(2025, time.May, 9))
	r1.ID = 2
	r2 := NewReversal(p, date(2025, time.May, 10))
	r2.ID = 3

	assert.Empty(t, VisiblePayments([]models.Payment{p, r1, r2}))
}

func TestNewReversal(t *testing.T) {
	original := models.Payment{
		ID:            42,
		ReceiptNumber: "RCP-000042",
		LeaseID:       7,
		PropertyID:    3,
		Amount:        15000,
		PaymentDate:   date(2025, time.May, 2),
		Status:        models.PaymentStatusCompleted,
		PaymentMethod: "bank_transfer",
		PaymentType:   "rent",
	}
	today := date(2025, time.May, 20)

	rev := NewReversal(original, today)

	assert.Equal(t, -15000.0, rev.Amount)
	assert.Equal(t, today, rev.PaymentDate)
	assert.Equal(t, models.PaymentStatusCompleted, rev.Status)
	assert.Equal(t, 7, rev.LeaseID)
	assert.Equal(t, 3, rev.PropertyID)
	assert.Equal(t, "bank_transfer", rev.PaymentMethod)
	assert.Equal(t, "rent", rev.PaymentType)
	require.NotNil(t, rev.OriginalPaymentID)
	assert.Equal(t, 42, *rev.OriginalPaymentID)
	assert.True(t, rev.IsReversal())
	assert.Contains(t, rev.Notes, "#42")
}
