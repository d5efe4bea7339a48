package rentcycle

import (
	"math"
	"time"

	"estate-backend/internal/models"
)

// Rent cycle statuses
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusOverdue = "overdue"
)

// Payment for last month's rent is accepted without penalty through the
// 5th of the current month; from the 6th it is overdue.
const graceDays = 5

// EvaluateRentCycle determines whether rent for the current billing cycle
// is paid, pending or overdue, and how much is owed. Rent is invoiced in
// arrears: the cycle under evaluation is the previous calendar month, and
// payment for it is expected during the current month.
//
// Any completed payment for this lease dated in the current month settles
// the cycle in full, regardless of amount. Partial payments therefore count
// as full settlement; this matches the recorded-payment workflow and must
// not be "fixed" without redesigning the ledger around running balances.
//
// payments may be the raw ledger filtered only by lease, but callers on the
// dashboard path pass the visible ledger (see VisiblePayments) so that a
// reversed payment cannot settle a cycle.
func EvaluateRentCycle(lease models.PropertyWithLease, payments []models.Payment, today time.Time) (models.RentCycleResult, error) {
	if !lease.HasActiveLease() {
		return models.RentCycleResult{}, ErrNoActiveLease
	}
	if today.IsZero() || lease.StartDate.IsZero() {
		return models.RentCycleResult{}, ErrInvalidDate
	}

	loc := today.Location()
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	firstOfPrev := firstOfMonth.AddDate(0, -1, 0)
	lastOfPrev := firstOfMonth.AddDate(0, 0, -1) // day 0 of the current month

	result := models.RentCycleResult{
		DueDate:     firstOfMonth,
		OverdueDate: firstOfMonth.AddDate(0, 0, graceDays), // the 6th
	}

	// Occupancy window: a lease that started mid-cycle is billed from its
	// start date; one that started after the cycle ended owes nothing.
	effectiveStart := dateOnly(*lease.StartDate, loc)
	if effectiveStart.Before(firstOfPrev) {
		effectiveStart = firstOfPrev
	}
	result.EffectiveStart = effectiveStart

	// A completed payment recorded this month settles last month's rent.
	// Older completed payments never retroactively satisfy this cycle.
	// Payment dates are calendar dates, so the month comparison reads the
	// components as stored instead of converting the instant into today's
	// zone, which would shift a 1st-of-month payment into the prior month.
	for _, p := range payments {
		if p.Status == models.PaymentStatusCompleted &&
			p.LeaseID == *lease.LeaseID &&
			sameMonth(p.PaymentDate, today) {
			result.Status = StatusPaid
			return result, nil
		}
	}

	if effectiveStart.After(lastOfPrev) {
		// Lease is newer than the billing window; nothing owed yet.
		result.Status = StatusPaid
		return result, nil
	}

	daysOccupied := daysBetween(effectiveStart, lastOfPrev) + 1
	if daysOccupied < 0 {
		daysOccupied = 0
	}

	daysInPrev := lastOfPrev.Day()
	dailyRate := lease.MonthlyRent / float64(daysInPrev)

	result.DaysOccupied = daysOccupied
	// Round half away from zero; keep consistent everywhere amounts are derived.
	result.Amount = math.Round(dailyRate * float64(daysOccupied))

	if today.Day() <= graceDays {
		result.Status = StatusPending
	} else {
		result.Status = StatusOverdue
	}
	return result, nil
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
