package models

import "time"

// PropertyRentStatus is the per-property dashboard row: the lease snapshot
// plus the evaluated rent-cycle and lease-lifecycle results. PaymentStatus
// is null for vacant properties (they are never billed).
type PropertyRentStatus struct {
	Property      PropertyWithLease `json:"property"`
	PaymentStatus *RentCycleResult  `json:"payment_status"`
	LeaseStatus   *LeaseStatusInfo  `json:"lease_status"`
}

// RentCycleResult is derived, never stored; recomputed on every evaluation.
type RentCycleResult struct {
	Status         string    `json:"status"` // paid, pending, overdue
	Amount         float64   `json:"amount"`
	DaysOccupied   int       `json:"days_occupied"`
	EffectiveStart time.Time `json:"effective_start_date"`
	DueDate        time.Time `json:"due_date"`
	OverdueDate    time.Time `json:"overdue_date"`
}

// LeaseStatusInfo is derived from the lease end date and the current date.
type LeaseStatusInfo struct {
	Status        string `json:"status"` // active, expiring_soon, expiring_today, expired
	Message       string `json:"message"`
	DaysRemaining int    `json:"days_remaining"`
	Priority      int    `json:"priority"` // 1 (low) .. 5 (urgent)
}

// PortfolioSummary holds the dashboard aggregates over all properties.
type PortfolioSummary struct {
	TotalProperties int     `json:"total_properties"`
	OccupiedCount   int     `json:"occupied_count"`
	VacantCount     int     `json:"vacant_count"`
	TotalCollected  float64 `json:"total_collected"`
	TotalPending    float64 `json:"total_pending"`
	TotalOverdue    float64 `json:"total_overdue"`
	PendingCount    int     `json:"pending_count"`
	OverdueCount    int     `json:"overdue_count"`
	CollectionRate  float64 `json:"collection_rate"` // percent, 0..100
}
