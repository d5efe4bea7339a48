package repositories

import (
	"context"
	"errors"
	"fmt"

	"estate-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrPaymentNotFound is returned when the referenced payment record
	// does not exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrAlreadyReversed is returned when a second reversal is attempted
	// for the same original payment. A partial unique index on
	// payments(original_payment_id) makes the conflict detectable at the
	// storage level even under concurrent requests.
	ErrAlreadyReversed = errors.New("payment already reversed")
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// NextReceiptNumber draws the next receipt from the DB sequence so that
// concurrent inserts never collide.
func (r *PaymentRepository) NextReceiptNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.DB.QueryRow(ctx, `SELECT nextval('receipt_number_seq')`).Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to get receipt number: %w", err)
	}
	return fmt.Sprintf("RCP-%06d", seq), nil
}

// Create appends a payment record to the ledger. Reversal rows carry
// original_payment_id; inserting a second reversal for the same original
// violates the unique index and maps to ErrAlreadyReversed.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (receipt_number, lease_id, amount, payment_date, status,
		                      payment_method, payment_type, notes, original_payment_id, recorded_by_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		p.ReceiptNumber,
		p.LeaseID,
		p.Amount,
		p.PaymentDate,
		p.Status,
		p.PaymentMethod,
		p.PaymentType,
		p.Notes,
		p.OriginalPaymentID,
		p.RecordedByUserID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && p.OriginalPaymentID != nil {
			return ErrAlreadyReversed
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int) (*models.Payment, error) {
	query := `
		SELECT p.id, p.receipt_number, p.lease_id, l.property_id, t.name,
		       p.amount, p.payment_date, p.status, p.payment_method, p.payment_type,
		       p.notes, p.original_payment_id, p.recorded_by_user_id, p.created_at
		FROM payments p
		JOIN leases l ON l.id = p.lease_id
		JOIN tenants t ON t.id = l.tenant_id
		WHERE p.id = $1
	`

	p := &models.Payment{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.ReceiptNumber,
		&p.LeaseID,
		&p.PropertyID,
		&p.TenantName,
		&p.Amount,
		&p.PaymentDate,
		&p.Status,
		&p.PaymentMethod,
		&p.PaymentType,
		&p.Notes,
		&p.OriginalPaymentID,
		&p.RecordedByUserID,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return p, nil
}

// List returns the full ledger in insertion order, reversals included.
// Callers that want the customer-facing view filter it afterwards.
func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	query := `
		SELECT p.id, p.receipt_number, p.lease_id, l.property_id, t.name,
		       p.amount, p.payment_date, p.status, p.payment_method, p.payment_type,
		       p.notes, p.original_payment_id, p.recorded_by_user_id, p.created_at
		FROM payments p
		JOIN leases l ON l.id = p.lease_id
		JOIN tenants t ON t.id = l.tenant_id
		ORDER BY p.id
	`

	return r.scanPayments(ctx, query)
}

func (r *PaymentRepository) ListByLease(ctx context.Context, leaseID int) ([]models.Payment, error) {
	query := `
		SELECT p.id, p.receipt_number, p.lease_id, l.property_id, t.name,
		       p.amount, p.payment_date, p.status, p.payment_method, p.payment_type,
		       p.notes, p.original_payment_id, p.recorded_by_user_id, p.created_at
		FROM payments p
		JOIN leases l ON l.id = p.lease_id
		JOIN tenants t ON t.id = l.tenant_id
		WHERE p.lease_id = $1
		ORDER BY p.id
	`

	return r.scanPayments(ctx, query, leaseID)
}

func (r *PaymentRepository) scanPayments(ctx context.Context, query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(
			&p.ID,
			&p.ReceiptNumber,
			&p.LeaseID,
			&p.PropertyID,
			&p.TenantName,
			&p.Amount,
			&p.PaymentDate,
			&p.Status,
			&p.PaymentMethod,
			&p.PaymentType,
			&p.Notes,
			&p.OriginalPaymentID,
			&p.RecordedByUserID,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}
