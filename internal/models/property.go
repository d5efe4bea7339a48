package models

import "time"

type Property struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Type      string    `json:"type"` // apartment, house, commercial
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms int       `json:"bathrooms"`
	AreaSqFt  float64   `json:"area_sqft"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PropertyWithLease is the lease snapshot the rent-cycle engine consumes:
// a property joined with its active lease, if any. At most one lease per
// property is active at a time (enforced by a partial unique index).
type PropertyWithLease struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	LeaseID     *int       `json:"lease_id"`
	TenantID    *int       `json:"tenant_id"`
	TenantName  string     `json:"tenant_name,omitempty"`
	MonthlyRent float64    `json:"monthly_rent"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsActive    bool       `json:"is_active"`
}

// HasActiveLease reports whether this snapshot carries a billable lease
func (p *PropertyWithLease) HasActiveLease() bool {
	return p.IsActive && p.LeaseID != nil && p.StartDate != nil
}

type CreatePropertyRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Type      string  `json:"type"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	AreaSqFt  float64 `json:"area_sqft"`
	Notes     string  `json:"notes"`
}

type UpdatePropertyRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Type      string  `json:"type"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	AreaSqFt  float64 `json:"area_sqft"`
	Notes     string  `json:"notes"`
}
