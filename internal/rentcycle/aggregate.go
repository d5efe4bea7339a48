package rentcycle

import (
	"time"

	"estate-backend/internal/models"
)

// EvaluatePortfolio runs the lease and rent-cycle evaluators over every
// property snapshot. Vacant properties get a nil PaymentStatus (they are
// never billed) and leases without an end date get a nil LeaseStatus, which
// the display layer renders as "No Lease" / plain active.
//
// visible must already be the filtered ledger (see VisiblePayments).
func EvaluatePortfolio(portfolio []models.PropertyWithLease, visible []models.Payment, today time.Time) ([]models.PropertyRentStatus, error) {
	rows := make([]models.PropertyRentStatus, 0, len(portfolio))
	for _, prop := range portfolio {
		row := models.PropertyRentStatus{Property: prop}

		if prop.HasActiveLease() {
			rc, err := EvaluateRentCycle(prop, visible, today)
			if err != nil {
				return nil, err
			}
			row.PaymentStatus = &rc

			if prop.EndDate != nil {
				ls, err := EvaluateLeaseStatus(*prop.EndDate, today)
				if err != nil {
					return nil, err
				}
				row.LeaseStatus = &ls
			}
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// Summarize reduces evaluated rows and the visible ledger to the dashboard
// aggregates. TotalCollected sums completed visible payments only; reversed
// pairs were removed by the filter, so the total needs no adjustment.
// CollectionRate is the completed share of all visible payments, and is 0
// (not an error) for an empty ledger.
func Summarize(rows []models.PropertyRentStatus, visible []models.Payment) models.PortfolioSummary {
	s := models.PortfolioSummary{TotalProperties: len(rows)}

	for _, row := range rows {
		if row.Property.HasActiveLease() {
			s.OccupiedCount++
		} else {
			s.VacantCount++
			continue
		}
		if row.PaymentStatus == nil {
			continue
		}
		switch row.PaymentStatus.Status {
		case StatusPending:
			s.TotalPending += row.PaymentStatus.Amount
			s.PendingCount++
		case StatusOverdue:
			s.TotalOverdue += row.PaymentStatus.Amount
			s.OverdueCount++
		}
	}

	completed := 0
	for _, p := range visible {
		if p.Status == models.PaymentStatusCompleted {
			s.TotalCollected += p.Amount
			completed++
		}
	}
	if len(visible) > 0 {
		s.CollectionRate = float64(completed) / float64(len(visible)) * 100
	}
	return s
}

// SummarizeLedger is a convenience for callers that have the raw stream:
// it filters, evaluates and aggregates in one pass.
func SummarizeLedger(portfolio []models.PropertyWithLease, raw []models.Payment, today time.Time) (models.PortfolioSummary, error) {
	visible := VisiblePayments(raw)
	rows, err := EvaluatePortfolio(portfolio, visible, today)
	if err != nil {
		return models.PortfolioSummary{}, err
	}
	return Summarize(rows, visible), nil
}
