package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type leaseRepository struct {
	db *sql.DB
}

func NewLeaseRepository(db *sql.DB) repository.LeaseRepository {
	return &leaseRepository{db: db}
}

func (r *leaseRepository) Create(ctx context.Context, l *domain.Lease) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	query := `INSERT INTO leases (id, unit_id, tenant_id, start_date, end_date, rent_amount, deposit_amount, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, l.ID, l.UnitID, l.TenantID, l.StartDate, l.EndDate, l.RentAmount, depositValue(l.DepositAmount), l.Status, time.Now(), time.Now())
	if isUniqueViolation(err) {
		return domain.NewConflictError("a lease on unit %s starting %s already exists",
			l.UnitID, l.StartDate.Format("2006-01-02"))
	}
	return err
}

func (r *leaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lease, error) {
	query := `SELECT id, unit_id, tenant_id, start_date, end_date, rent_amount, deposit_amount, status, created_at, updated_at
	          FROM leases WHERE id = $1`
	l, err := scanLease(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("lease", id.String())
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *leaseRepository) Update(ctx context.Context, l *domain.Lease) error {
	query := `UPDATE leases SET end_date=$1, status=$2, updated_at=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, l.EndDate, l.Status, time.Now(), l.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("lease", l.ID.String())
	}
	return nil
}

func (r *leaseRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Lease, error) {
	query := `SELECT id, unit_id, tenant_id, start_date, end_date, rent_amount, deposit_amount, status, created_at, updated_at
	          FROM leases WHERE tenant_id = $1 ORDER BY start_date DESC`
	return r.list(ctx, query, tenantID)
}

func (r *leaseRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]domain.Lease, error) {
	query := `SELECT l.id, l.unit_id, l.tenant_id, l.start_date, l.end_date, l.rent_amount, l.deposit_amount, l.status, l.created_at, l.updated_at
	          FROM leases l
	          JOIN units u ON l.unit_id = u.id
	          JOIN properties p ON u.property_id = p.id
	          WHERE p.landlord_id = $1 ORDER BY l.start_date DESC`
	return r.list(ctx, query, landlordID)
}

func (r *leaseRepository) HasOverlap(ctx context.Context, unitID uuid.UUID, start, end time.Time) (bool, error) {
	// Inclusive interval overlap: existing.start <= end AND existing.end >= start.
	query := `SELECT EXISTS (
	            SELECT 1 FROM leases
	            WHERE unit_id = $1 AND status IN ('pending', 'active')
	              AND start_date <= $2 AND end_date >= $3
	          )`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, unitID, end, start).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *leaseRepository) list(ctx context.Context, query string, arg any) ([]domain.Lease, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []domain.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, *l)
	}
	return leases, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLease(row rowScanner) (*domain.Lease, error) {
	l := &domain.Lease{}
	var deposit decimal.NullDecimal
	err := row.Scan(&l.ID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate, &l.RentAmount, &deposit, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if deposit.Valid {
		l.DepositAmount = &deposit.Decimal
	}
	return l, nil
}

func depositValue(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
