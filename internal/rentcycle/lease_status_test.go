package rentcycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEvaluateLeaseStatus(t *testing.T) {
	today := date(2025, time.June, 10)

	tests := []struct {
		name          string
		endDate       time.Time
		wantStatus    string
		wantDays      int
		wantPriority  int
	}{
		{"far future end date", date(2025, time.December, 31), LeaseActive, 204, 1},
		{"sixteen days out is still active", date(2025, time.June, 26), LeaseActive, 16, 1},
		{"fifteen days out", date(2025, time.June, 25), LeaseExpiringSoon, 15, 3},
		{"eight days out", date(2025, time.June, 18), LeaseExpiringSoon, 8, 3},
		{"seven days out", date(2025, time.June, 17), LeaseExpiringSoon, 7, 4},
		{"four days out", date(2025, time.June, 14), LeaseExpiringSoon, 4, 4},
		{"three days out", date(2025, time.June, 13), LeaseExpiringSoon, 3, 5},
		{"tomorrow", date(2025, time.June, 11), LeaseExpiringSoon, 1, 5},
		{"ends today", date(2025, time.June, 10), LeaseExpiringToday, 0, 5},
		{"expired yesterday", date(2025, time.June, 9), LeaseExpired, 1, 5},
		{"long expired", date(2024, time.June, 10), LeaseExpired, 365, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateLeaseStatus(tt.endDate, today)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantDays, got.DaysRemaining)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.GreaterOrEqual(t, got.DaysRemaining, 0, "days remaining must never be negative")
		})
	}
}

func TestEvaluateLeaseStatusIgnoresTimeOfDay(t *testing.T) {
	// End date late in the evening, "now" early in the morning of the same
	// day: still expiring today, not in one day.
	end := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	now := time.Date(2025, time.June, 10, 0, 1, 0, 0, time.UTC)

	got, err := EvaluateLeaseStatus(end, now)
	require.NoError(t, err)
	assert.Equal(t, LeaseExpiringToday, got.Status)
	assert.Equal(t, 0, got.DaysRemaining)
}

func TestEvaluateLeaseStatusMixedZones(t *testing.T) {
	// End dates are stored as UTC calendar dates; today may carry the
	// business zone. Day counts stay exact whole days either way.
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	today := time.Date(2025, time.June, 10, 8, 30, 0, 0, ny)

	got, err := EvaluateLeaseStatus(date(2025, time.June, 20), today)
	require.NoError(t, err)
	assert.Equal(t, LeaseExpiringSoon, got.Status)
	assert.Equal(t, 10, got.DaysRemaining)

	got, err = EvaluateLeaseStatus(date(2025, time.June, 10), today)
	require.NoError(t, err)
	assert.Equal(t, LeaseExpiringToday, got.Status)
}

func TestEvaluateLeaseStatusExpiredIffBeforeToday(t *testing.T) {
	today := date(2025, time.March, 15)
	for d := -40; d <= 40; d++ {
		end := today.AddDate(0, 0, d)
		got, err := EvaluateLeaseStatus(end, today)
		require.NoError(t, err)
		if d < 0 {
			assert.Equal(t, LeaseExpired, got.Status, "end %s", end)
		} else {
			assert.NotEqual(t, LeaseExpired, got.Status, "end %s", end)
		}
		assert.GreaterOrEqual(t, got.DaysRemaining, 0)
	}
}

func TestEvaluateLeaseStatusZeroDates(t *testing.T) {
	_, err := EvaluateLeaseStatus(time.Time{}, date(2025, time.June, 10))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = EvaluateLeaseStatus(date(2025, time.June, 10), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
