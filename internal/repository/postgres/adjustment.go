package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type rentAdjustmentRepository struct {
	db *sql.DB
}

func NewRentAdjustmentRepository(db *sql.DB) repository.RentAdjustmentRepository {
	return &rentAdjustmentRepository{db: db}
}

func (r *rentAdjustmentRepository) Create(ctx context.Context, adj *domain.RentAdjustment) error {
	if adj.ID == uuid.Nil {
		adj.ID = uuid.New()
	}
	query := `INSERT INTO rent_adjustments (id, unit_id, new_rent, effective_date, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, adj.ID, adj.UnitID, adj.NewRent, adj.EffectiveDate, time.Now())
	if isUniqueViolation(err) {
		return domain.NewConflictError("an adjustment for unit %s on %s is already scheduled",
			adj.UnitID, adj.EffectiveDate.Format("2006-01-02"))
	}
	return err
}

func (r *rentAdjustmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RentAdjustment, error) {
	adj := &domain.RentAdjustment{}
	query := `SELECT id, unit_id, new_rent, effective_date, created_at FROM rent_adjustments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&adj.ID, &adj.UnitID, &adj.NewRent, &adj.EffectiveDate, &adj.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("rent adjustment", id.String())
	}
	if err != nil {
		return nil, err
	}
	return adj, nil
}

func (r *rentAdjustmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rent_adjustments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("rent adjustment", id.String())
	}
	return nil
}

func (r *rentAdjustmentRepository) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]domain.RentAdjustment, error) {
	query := `SELECT id, unit_id, new_rent, effective_date, created_at
	          FROM rent_adjustments WHERE unit_id = $1 ORDER BY effective_date`
	rows, err := r.db.QueryContext(ctx, query, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adjustments []domain.RentAdjustment
	for rows.Next() {
		var adj domain.RentAdjustment
		if err := rows.Scan(&adj.ID, &adj.UnitID, &adj.NewRent, &adj.EffectiveDate, &adj.CreatedAt); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}
	return adjustments, rows.Err()
}

// ApplyDue updates unit rents and deletes the applied adjustments in one
// transaction, so concurrent readers never observe an updated rent with its
// adjustment still pending, or the reverse. Adjustments are applied in
// effective_date order; when several are due for one unit, the latest wins.
func (r *rentAdjustmentRepository) ApplyDue(ctx context.Context, asOf time.Time) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, unit_id, new_rent FROM rent_adjustments
		 WHERE effective_date <= $1 ORDER BY effective_date FOR UPDATE`, asOf)
	if err != nil {
		return 0, err
	}

	type due struct {
		id      uuid.UUID
		unitID  uuid.UUID
		newRent decimal.Decimal
	}
	var dues []due
	for rows.Next() {
		var d due
		if err := rows.Scan(&d.id, &d.unitID, &d.newRent); err != nil {
			rows.Close()
			return 0, err
		}
		dues = append(dues, d)
	}
	if err := rows.Close(); err != nil {
		return 0, err
	}
	if len(dues) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(dues))
	for _, d := range dues {
		if _, err := tx.ExecContext(ctx,
			`UPDATE units SET rent_amount = $1, updated_at = $2 WHERE id = $3`,
			d.newRent, time.Now(), d.unitID); err != nil {
			return 0, err
		}
		ids = append(ids, d.id.String())
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rent_adjustments WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(dues), nil
}
