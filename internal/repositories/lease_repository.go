package repositories

import (
	"context"
	"errors"
	"time"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrActiveLeaseExists is returned when a lease is created for a property
// that already has an active lease. A partial unique index on
// leases(property_id) WHERE is_active enforces this at the storage level.
var ErrActiveLeaseExists = errors.New("property already has an active lease")

type LeaseRepository struct {
	DB *pgxpool.Pool
}

func NewLeaseRepository(db *pgxpool.Pool) *LeaseRepository {
	return &LeaseRepository{DB: db}
}

func (r *LeaseRepository) Create(ctx context.Context, l *models.Lease) error {
	query := `
		INSERT INTO leases (property_id, tenant_id, monthly_rent, deposit, start_date, end_date, is_active, notes)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRow(ctx, query,
		l.PropertyID,
		l.TenantID,
		l.MonthlyRent,
		l.Deposit,
		l.StartDate,
		l.EndDate,
		l.Notes,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrActiveLeaseExists
		}
		return err
	}

	l.IsActive = true
	return nil
}

func (r *LeaseRepository) Get(ctx context.Context, id int) (*models.Lease, error) {
	query := `
		SELECT l.id, l.property_id, l.tenant_id, t.name, l.monthly_rent, l.deposit,
		       l.start_date, l.end_date, l.is_active, l.notes, l.created_at, l.updated_at
		FROM leases l
		JOIN tenants t ON t.id = l.tenant_id
		WHERE l.id = $1
	`

	l := &models.Lease{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.PropertyID,
		&l.TenantID,
		&l.TenantName,
		&l.MonthlyRent,
		&l.Deposit,
		&l.StartDate,
		&l.EndDate,
		&l.IsActive,
		&l.Notes,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (r *LeaseRepository) List(ctx context.Context) ([]*models.Lease, error) {
	query := `
		SELECT l.id, l.property_id, l.tenant_id, t.name, l.monthly_rent, l.deposit,
		       l.start_date, l.end_date, l.is_active, l.notes, l.created_at, l.updated_at
		FROM leases l
		JOIN tenants t ON t.id = l.tenant_id
		ORDER BY l.start_date DESC
	`

	return r.scanLeases(ctx, query)
}

func (r *LeaseRepository) ListByProperty(ctx context.Context, propertyID int) ([]*models.Lease, error) {
	query := `
		SELECT l.id, l.property_id, l.tenant_id, t.name, l.monthly_rent, l.deposit,
		       l.start_date, l.end_date, l.is_active, l.notes, l.created_at, l.updated_at
		FROM leases l
		JOIN tenants t ON t.id = l.tenant_id
		WHERE l.property_id = $1
		ORDER BY l.start_date DESC
	`

	return r.scanLeases(ctx, query, propertyID)
}

func (r *LeaseRepository) scanLeases(ctx context.Context, query string, args ...interface{}) ([]*models.Lease, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []*models.Lease
	for rows.Next() {
		l := &models.Lease{}
		err := rows.Scan(
			&l.ID,
			&l.PropertyID,
			&l.TenantID,
			&l.TenantName,
			&l.MonthlyRent,
			&l.Deposit,
			&l.StartDate,
			&l.EndDate,
			&l.IsActive,
			&l.Notes,
			&l.CreatedAt,
			&l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}

	return leases, nil
}

// Terminate deactivates a lease and stamps its end date. A terminated lease
// stays in history; it just stops feeding the rent cycle.
func (r *LeaseRepository) Terminate(ctx context.Context, id int, endDate time.Time, notes string) error {
	query := `
		UPDATE leases
		SET is_active = FALSE,
		    end_date = $2,
		    notes = CASE WHEN $3 = '' THEN notes ELSE $3 END,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.DB.Exec(ctx, query, id, endDate, notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("lease not found")
	}

	return nil
}
