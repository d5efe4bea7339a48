package services

import (
	"context"
	"encoding/json"
	"time"

	"estate-backend/internal/cache"
	"estate-backend/internal/metrics"
	"estate-backend/internal/models"
	"estate-backend/internal/rentcycle"
	"estate-backend/internal/timeutil"
)

// PortfolioStore loads the property snapshots the rent-cycle engine needs.
type PortfolioStore interface {
	ListWithLease(ctx context.Context) ([]models.PropertyWithLease, error)
}

// LedgerStore loads the raw payment ledger, reversals included.
type LedgerStore interface {
	List(ctx context.Context) ([]models.Payment, error)
}

// DashboardService runs the rent-cycle evaluation over the whole portfolio.
// Reversal filtering happens before evaluation so a completed reversal can
// never settle a cycle.
type DashboardService struct {
	Properties PortfolioStore
	Payments   LedgerStore

	now func() time.Time
}

func NewDashboardService(properties PortfolioStore, payments LedgerStore) *DashboardService {
	return &DashboardService{
		Properties: properties,
		Payments:   payments,
		now:        timeutil.Now,
	}
}

// Statuses returns the per-property rent and lease status rows.
func (s *DashboardService) Statuses(ctx context.Context) ([]models.PropertyRentStatus, error) {
	if data, ok := cache.GetCached(ctx, cache.DashboardStatusKey); ok {
		var rows []models.PropertyRentStatus
		if err := json.Unmarshal(data, &rows); err == nil {
			return rows, nil
		}
	}

	rows, _, err := s.evaluate(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		cache.SetCached(ctx, cache.DashboardStatusKey, data, cache.DashboardTTL)
	}
	return rows, nil
}

// Summary returns the portfolio-level aggregates.
func (s *DashboardService) Summary(ctx context.Context) (*models.PortfolioSummary, error) {
	if data, ok := cache.GetCached(ctx, cache.DashboardSummaryKey); ok {
		var summary models.PortfolioSummary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
	}

	rows, visible, err := s.evaluate(ctx)
	if err != nil {
		return nil, err
	}
	summary := rentcycle.Summarize(rows, visible)

	if data, err := json.Marshal(summary); err == nil {
		cache.SetCached(ctx, cache.DashboardSummaryKey, data, cache.DashboardTTL)
	}
	return &summary, nil
}

func (s *DashboardService) evaluate(ctx context.Context) ([]models.PropertyRentStatus, []models.Payment, error) {
	portfolio, err := s.Properties.ListWithLease(ctx)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.Payments.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	visible := rentcycle.VisiblePayments(raw)

	today := timeutil.StartOfDay(s.now())
	rows, err := rentcycle.EvaluatePortfolio(portfolio, visible, today)
	if err != nil {
		return nil, nil, err
	}

	overdue := 0
	for _, row := range rows {
		if row.PaymentStatus != nil && row.PaymentStatus.Status == rentcycle.StatusOverdue {
			overdue++
		}
	}
	metrics.OverdueProperties.Set(float64(overdue))

	return rows, visible, nil
}
