package models

import "time"

// PaymentStatus represents the settlement state of a payment record
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is one row of the append-only payment ledger. A payment with
// OriginalPaymentID set is a reversal: its amount is the negation of the
// referenced payment and it exists only to cancel that payment's effect.
// History is never mutated or deleted; corrections are compensating rows.
type Payment struct {
	ID                int           `json:"id"`
	ReceiptNumber     string        `json:"receipt_number"`
	LeaseID           int           `json:"lease_id"`
	PropertyID        int           `json:"property_id"`
	TenantName        string        `json:"tenant_name,omitempty"` // Joined from tenants table
	Amount            float64       `json:"payment_amount"`
	PaymentDate       time.Time     `json:"payment_date"`
	Status            PaymentStatus `json:"status"`
	PaymentMethod     string        `json:"payment_method"` // cash, bank_transfer, online
	PaymentType       string        `json:"payment_type"`   // rent, deposit, fee
	Notes             string        `json:"notes"`
	OriginalPaymentID *int          `json:"original_payment_id,omitempty"`
	RecordedByUserID  int           `json:"recorded_by_user_id"`
	CreatedAt         time.Time     `json:"created_at"`
}

// IsReversal reports whether this record is a compensating entry
func (p *Payment) IsReversal() bool {
	return p.OriginalPaymentID != nil
}

type CreatePaymentRequest struct {
	LeaseID       int     `json:"lease_id"`
	Amount        float64 `json:"payment_amount"`
	PaymentDate   string  `json:"payment_date"` // YYYY-MM-DD, defaults to today
	Status        string  `json:"status"`       // defaults to completed
	PaymentMethod string  `json:"payment_method"`
	PaymentType   string  `json:"payment_type"`
	Notes         string  `json:"notes"`
}
