package services

import (
	"context"
	"errors"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

type TenantService struct {
	Repo *repositories.TenantRepository
}

func NewTenantService(repo *repositories.TenantRepository) *TenantService {
	return &TenantService{Repo: repo}
}

func (s *TenantService) Create(ctx context.Context, req *models.CreateTenantRequest) (*models.Tenant, error) {
	if req.Name == "" {
		return nil, errors.New("tenant name is required")
	}

	t := &models.Tenant{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *TenantService) Get(ctx context.Context, id int) (*models.Tenant, error) {
	return s.Repo.Get(ctx, id)
}

func (s *TenantService) List(ctx context.Context) ([]*models.Tenant, error) {
	return s.Repo.List(ctx)
}

func (s *TenantService) Update(ctx context.Context, id int, req *models.UpdateTenantRequest) error {
	if req.Name == "" {
		return errors.New("tenant name is required")
	}
	return s.Repo.Update(ctx, id, req)
}

func (s *TenantService) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
