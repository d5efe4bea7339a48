package repositories

import (
	"context"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) error {
	query := `
		INSERT INTO properties (name, address, city, type, bedrooms, bathrooms, area_sqft, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		p.Name,
		p.Address,
		p.City,
		p.Type,
		p.Bedrooms,
		p.Bathrooms,
		p.AreaSqFt,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) Get(ctx context.Context, id int) (*models.Property, error) {
	query := `
		SELECT id, name, address, city, type, bedrooms, bathrooms, area_sqft, notes, created_at, updated_at
		FROM properties
		WHERE id = $1
	`

	p := &models.Property{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.City,
		&p.Type,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.AreaSqFt,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]*models.Property, error) {
	query := `
		SELECT id, name, address, city, type, bedrooms, bathrooms, area_sqft, notes, created_at, updated_at
		FROM properties
		ORDER BY name
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		p := &models.Property{}
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Address,
			&p.City,
			&p.Type,
			&p.Bedrooms,
			&p.Bathrooms,
			&p.AreaSqFt,
			&p.Notes,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	return properties, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id int, req *models.UpdatePropertyRequest) error {
	query := `
		UPDATE properties
		SET name = $2, address = $3, city = $4, type = $5,
		    bedrooms = $6, bathrooms = $7, area_sqft = $8, notes = $9,
		    updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.DB.Exec(ctx, query, id,
		req.Name,
		req.Address,
		req.City,
		req.Type,
		req.Bedrooms,
		req.Bathrooms,
		req.AreaSqFt,
		req.Notes,
	)
	return err
}

func (r *PropertyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	return err
}

// ListWithLease returns every property joined against its active lease, if
// any. Vacant properties come back with NULL lease columns.
func (r *PropertyRepository) ListWithLease(ctx context.Context) ([]models.PropertyWithLease, error) {
	query := `
		SELECT p.id, p.name, p.address,
		       l.id, l.tenant_id, t.name,
		       COALESCE(l.monthly_rent, 0),
		       l.start_date, l.end_date,
		       COALESCE(l.is_active, FALSE)
		FROM properties p
		LEFT JOIN leases l ON l.property_id = p.id AND l.is_active = TRUE
		LEFT JOIN tenants t ON t.id = l.tenant_id
		ORDER BY p.name
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.PropertyWithLease
	for rows.Next() {
		var pw models.PropertyWithLease
		var tenantName *string
		err := rows.Scan(
			&pw.ID,
			&pw.Name,
			&pw.Address,
			&pw.LeaseID,
			&pw.TenantID,
			&tenantName,
			&pw.MonthlyRent,
			&pw.StartDate,
			&pw.EndDate,
			&pw.IsActive,
		)
		if err != nil {
			return nil, err
		}
		if tenantName != nil {
			pw.TenantName = *tenantName
		}
		result = append(result, pw)
	}

	return result, nil
}
