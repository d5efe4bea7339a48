package repositories

import (
	"context"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantRepository struct {
	DB *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{DB: db}
}

func (r *TenantRepository) Create(ctx context.Context, t *models.Tenant) error {
	query := `
		INSERT INTO tenants (name, phone, email, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		t.Name,
		t.Phone,
		t.Email,
		t.Notes,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TenantRepository) Get(ctx context.Context, id int) (*models.Tenant, error) {
	query := `
		SELECT id, name, phone, email, notes, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	t := &models.Tenant{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Phone,
		&t.Email,
		&t.Notes,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TenantRepository) List(ctx context.Context) ([]*models.Tenant, error) {
	query := `
		SELECT id, name, phone, email, notes, created_at, updated_at
		FROM tenants
		ORDER BY name
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		t := &models.Tenant{}
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Phone,
			&t.Email,
			&t.Notes,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	return tenants, nil
}

func (r *TenantRepository) Update(ctx context.Context, id int, req *models.UpdateTenantRequest) error {
	query := `
		UPDATE tenants
		SET name = $2, phone = $3, email = $4, notes = $5, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.DB.Exec(ctx, query, id, req.Name, req.Phone, req.Email, req.Notes)
	return err
}

func (r *TenantRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	return err
}
