package rentcycle

import (
	"fmt"
	"time"

	"estate-backend/internal/models"
)

// Lease lifecycle statuses
const (
	LeaseActive        = "active"
	LeaseExpiringSoon  = "expiring_soon"
	LeaseExpiringToday = "expiring_today"
	LeaseExpired       = "expired"
)

// Leases within this many days of their end date are flagged as expiring
const expiryWarningDays = 15

// dateOnly reanchors t's calendar date at midnight in loc. The evaluators
// work on calendar dates: a DATE scanned from the database carries UTC
// while "today" carries the business zone, and only the year/month/day
// components are meaningful.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// daysBetween returns b - a in whole calendar days, ignoring whatever
// zones the inputs carry.
func daysBetween(a, b time.Time) int {
	au := dateOnly(a, time.UTC)
	bu := dateOnly(b, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// EvaluateLeaseStatus classifies a lease by its end date relative to today.
// Both dates are normalized to midnight before comparison. DaysRemaining is
// always non-negative: days until expiry for live leases, days since expiry
// for expired ones.
func EvaluateLeaseStatus(endDate, today time.Time) (models.LeaseStatusInfo, error) {
	if endDate.IsZero() || today.IsZero() {
		return models.LeaseStatusInfo{}, ErrInvalidDate
	}

	days := daysBetween(today, endDate)

	switch {
	case days == 0:
		return models.LeaseStatusInfo{
			Status:        LeaseExpiringToday,
			Message:       "Lease expires today",
			DaysRemaining: 0,
			Priority:      5,
		}, nil

	case days < 0:
		return models.LeaseStatusInfo{
			Status:        LeaseExpired,
			Message:       fmt.Sprintf("Lease expired %d day(s) ago", -days),
			DaysRemaining: -days,
			Priority:      5,
		}, nil

	case days <= expiryWarningDays:
		priority := 3
		if days <= 3 {
			priority = 5
		} else if days <= 7 {
			priority = 4
		}
		return models.LeaseStatusInfo{
			Status:        LeaseExpiringSoon,
			Message:       fmt.Sprintf("Lease expires in %d day(s)", days),
			DaysRemaining: days,
			Priority:      priority,
		}, nil

	default:
		return models.LeaseStatusInfo{
			Status:        LeaseActive,
			Message:       "Lease active",
			DaysRemaining: days,
			Priority:      1,
		}, nil
	}
}
