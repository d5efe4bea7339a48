package services

import (
	"context"
	"errors"

	"estate-backend/internal/cache"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

type PropertyService struct {
	Repo *repositories.PropertyRepository
}

func NewPropertyService(repo *repositories.PropertyRepository) *PropertyService {
	return &PropertyService{Repo: repo}
}

func (s *PropertyService) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	if req.Name == "" {
		return nil, errors.New("property name is required")
	}

	p := &models.Property{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Type:      req.Type,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		AreaSqFt:  req.AreaSqFt,
		Notes:     req.Notes,
	}
	if p.Type == "" {
		p.Type = "apartment"
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	cache.InvalidateDashboard(ctx)
	return p, nil
}

func (s *PropertyService) Get(ctx context.Context, id int) (*models.Property, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PropertyService) List(ctx context.Context) ([]*models.Property, error) {
	return s.Repo.List(ctx)
}

func (s *PropertyService) Update(ctx context.Context, id int, req *models.UpdatePropertyRequest) error {
	if req.Name == "" {
		return errors.New("property name is required")
	}
	if err := s.Repo.Update(ctx, id, req); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

func (s *PropertyService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}
