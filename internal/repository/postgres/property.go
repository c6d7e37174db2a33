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

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	query := `INSERT INTO properties (id, landlord_id, name, address_line1, address_line2, city, state, postal_code, country, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.LandlordID, p.Name, p.AddressLine1, p.AddressLine2, p.City, p.State, p.PostalCode, p.Country, time.Now(), time.Now())
	return err
}

func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p := &domain.Property{}
	query := `SELECT id, landlord_id, name, address_line1, address_line2, city, state, postal_code, country, created_at, updated_at
	          FROM properties WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.LandlordID, &p.Name, &p.AddressLine1, &p.AddressLine2, &p.City, &p.State, &p.PostalCode, &p.Country, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("property", id.String())
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET name=$1, address_line1=$2, address_line2=$3, city=$4, state=$5, postal_code=$6, country=$7, updated_at=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.AddressLine1, p.AddressLine2, p.City, p.State, p.PostalCode, p.Country, time.Now(), p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("property", p.ID.String())
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("property", id.String())
	}
	return nil
}

func (r *propertyRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]domain.Property, error) {
	query := `SELECT id, landlord_id, name, address_line1, address_line2, city, state, postal_code, country, created_at, updated_at
	          FROM properties WHERE landlord_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.LandlordID, &p.Name, &p.AddressLine1, &p.AddressLine2, &p.City, &p.State, &p.PostalCode, &p.Country, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
