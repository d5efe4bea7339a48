package models

import "time"

type Lease struct {
	ID          int        `json:"id"`
	PropertyID  int        `json:"property_id"`
	TenantID    int        `json:"tenant_id"`
	TenantName  string     `json:"tenant_name,omitempty"` // Joined from tenants table
	MonthlyRent float64    `json:"monthly_rent"`
	Deposit     float64    `json:"deposit"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsActive    bool       `json:"is_active"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateLeaseRequest struct {
	PropertyID  int     `json:"property_id"`
	TenantID    int     `json:"tenant_id"`
	MonthlyRent float64 `json:"monthly_rent"`
	Deposit     float64 `json:"deposit"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`   // YYYY-MM-DD, optional
	Notes       string  `json:"notes"`
}

type TerminateLeaseRequest struct {
	EndDate string `json:"end_date"` // YYYY-MM-DD, defaults to today
	Notes   string `json:"notes"`
}
