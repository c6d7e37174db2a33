package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type amenityRepository struct {
	db *sql.DB
}

func NewAmenityRepository(db *sql.DB) repository.AmenityRepository {
	return &amenityRepository{db: db}
}

func (r *amenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO amenities (id, name, description) VALUES ($1, $2, $3)`, a.ID, a.Name, a.Description)
	if isUniqueViolation(err) {
		return domain.NewConflictError("amenity %q already exists", a.Name)
	}
	return err
}

func (r *amenityRepository) List(ctx context.Context) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description FROM amenities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var amenities []domain.Amenity
	for rows.Next() {
		var a domain.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description); err != nil {
			return nil, err
		}
		amenities = append(amenities, a)
	}
	return amenities, rows.Err()
}

func (r *amenityRepository) Update(ctx context.Context, a *domain.Amenity) error {
	res, err := r.db.ExecContext(ctx, `UPDATE amenities SET name=$1, description=$2 WHERE id=$3`, a.Name, a.Description, a.ID)
	if isUniqueViolation(err) {
		return domain.NewConflictError("amenity %q already exists", a.Name)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("amenity", a.ID.String())
	}
	return nil
}

func (r *amenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("amenity", id.String())
	}
	return nil
}
