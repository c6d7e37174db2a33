package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"rentdesk-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PropertyRepository
	repository.AmenityRepository
	repository.UnitRepository
	repository.RentAdjustmentRepository
	repository.LeaseRepository
	repository.InvoiceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		UserRepository:           NewUserRepository(db),
		PropertyRepository:       NewPropertyRepository(db),
		AmenityRepository:        NewAmenityRepository(db),
		UnitRepository:           NewUnitRepository(db),
		RentAdjustmentRepository: NewRentAdjustmentRepository(db),
		LeaseRepository:          NewLeaseRepository(db),
		InvoiceRepository:        NewInvoiceRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
