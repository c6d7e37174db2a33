package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type unitRepository struct {
	db *sql.DB
}

func NewUnitRepository(db *sql.DB) repository.UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(ctx context.Context, u *domain.Unit) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	query := `INSERT INTO units (id, property_id, unit_number, unit_type, rent_amount, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.PropertyID, u.UnitNumber, u.UnitType, u.RentAmount, u.Status, time.Now(), time.Now())
	if isUniqueViolation(err) {
		return domain.NewConflictError("unit %s already exists on this property", u.UnitNumber)
	}
	return err
}

func (r *unitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	u := &domain.Unit{}
	query := `SELECT id, property_id, unit_number, unit_type, rent_amount, status, created_at, updated_at FROM units WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.PropertyID, &u.UnitNumber, &u.UnitType, &u.RentAmount, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("unit", id.String())
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *unitRepository) Update(ctx context.Context, u *domain.Unit) error {
	query := `UPDATE units SET unit_number=$1, unit_type=$2, rent_amount=$3, status=$4, updated_at=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, u.UnitNumber, u.UnitType, u.RentAmount, u.Status, time.Now(), u.ID)
	if isUniqueViolation(err) {
		return domain.NewConflictError("unit %s already exists on this property", u.UnitNumber)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("unit", u.ID.String())
	}
	return nil
}

func (r *unitRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UnitStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE units SET status=$1, updated_at=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("unit", id.String())
	}
	return nil
}

func (r *unitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("unit", id.String())
	}
	return nil
}

func (r *unitRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Unit, error) {
	query := `SELECT id, property_id, unit_number, unit_type, rent_amount, status, created_at, updated_at
	          FROM units WHERE property_id = $1 ORDER BY unit_number`
	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		var u domain.Unit
		if err := rows.Scan(&u.ID, &u.PropertyID, &u.UnitNumber, &u.UnitType, &u.RentAmount, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}
