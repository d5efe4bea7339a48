package services

import (
	"context"
	"errors"
	"time"

	"estate-backend/internal/cache"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/timeutil"
)

type LeaseService struct {
	Repo *repositories.LeaseRepository
}

func NewLeaseService(repo *repositories.LeaseRepository) *LeaseService {
	return &LeaseService{Repo: repo}
}

func (s *LeaseService) Create(ctx context.Context, req *models.CreateLeaseRequest) (*models.Lease, error) {
	if req.PropertyID <= 0 || req.TenantID <= 0 {
		return nil, errors.New("property_id and tenant_id are required")
	}
	if req.MonthlyRent <= 0 {
		return nil, errors.New("monthly_rent must be positive")
	}

	startDate, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.New("start_date must be YYYY-MM-DD")
	}

	var endDate *time.Time
	if req.EndDate != "" {
		ed, err := timeutil.ParseDate(req.EndDate)
		if err != nil {
			return nil, errors.New("end_date must be YYYY-MM-DD")
		}
		if !ed.After(startDate) {
			return nil, errors.New("end_date must be after start_date")
		}
		endDate = &ed
	}

	lease := &models.Lease{
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
		StartDate:   startDate,
		EndDate:     endDate,
		Notes:       req.Notes,
	}

	if err := s.Repo.Create(ctx, lease); err != nil {
		return nil, err
	}

	cache.InvalidateDashboard(ctx)
	return lease, nil
}

func (s *LeaseService) Get(ctx context.Context, id int) (*models.Lease, error) {
	return s.Repo.Get(ctx, id)
}

func (s *LeaseService) List(ctx context.Context) ([]*models.Lease, error) {
	return s.Repo.List(ctx)
}

func (s *LeaseService) ListByProperty(ctx context.Context, propertyID int) ([]*models.Lease, error) {
	return s.Repo.ListByProperty(ctx, propertyID)
}

// Terminate ends a lease. The end date defaults to today when the request
// leaves it blank.
func (s *LeaseService) Terminate(ctx context.Context, id int, req *models.TerminateLeaseRequest) error {
	endDate := timeutil.StartOfDay(timeutil.Now())
	if req.EndDate != "" {
		ed, err := timeutil.ParseDate(req.EndDate)
		if err != nil {
			return errors.New("end_date must be YYYY-MM-DD")
		}
		endDate = ed
	}

	if err := s.Repo.Terminate(ctx, id, endDate, req.Notes); err != nil {
		return err
	}

	cache.InvalidateDashboard(ctx)
	return nil
}
