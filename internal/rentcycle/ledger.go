package rentcycle

import (
	"fmt"
	"time"

	"estate-backend/internal/models"
)

// VisiblePayments filters a raw payment stream down to the causally
// consistent view: reversal records are hidden, and so is any record that
// has been reversed. Both halves of a reversed pair disappear from every
// downstream view and total (their signed amounts cancel exactly, so hiding
// them leaves aggregates unchanged). Input order is preserved.
func VisiblePayments(payments []models.Payment) []models.Payment {
	reversed := make(map[int]bool)
	for _, p := range payments {
		if p.OriginalPaymentID != nil {
			reversed[*p.OriginalPaymentID] = true
		}
	}

	visible := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.OriginalPaymentID == nil && !reversed[p.ID] {
			visible = append(visible, p)
		}
	}
	return visible
}

// NewReversal synthesizes the compensating record for a payment: the same
// lease, method and type, the negated amount, dated today, referencing the
// original. The original row is never mutated or deleted; appending this
// record removes both from the visible ledger.
func NewReversal(original models.Payment, today time.Time) models.Payment {
	originalID := original.ID
	return models.Payment{
		LeaseID:           original.LeaseID,
		PropertyID:        original.PropertyID,
		Amount:            -original.Amount,
		PaymentDate:       today,
		Status:            models.PaymentStatusCompleted,
		PaymentMethod:     original.PaymentMethod,
		PaymentType:       original.PaymentType,
		Notes:             fmt.Sprintf("Reversal of payment #%d (%s)", original.ID, original.ReceiptNumber),
		OriginalPaymentID: &originalID,
	}
}
