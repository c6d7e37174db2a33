package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentdesk-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]domain.Property, error)
}

type AmenityRepository interface {
	Create(ctx context.Context, a *domain.Amenity) error
	List(ctx context.Context) ([]domain.Amenity, error)
	Update(ctx context.Context, a *domain.Amenity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UnitRepository interface {
	Create(ctx context.Context, u *domain.Unit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	Update(ctx context.Context, u *domain.Unit) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UnitStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Unit, error)
}

type RentAdjustmentRepository interface {
	Create(ctx context.Context, adj *domain.RentAdjustment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RentAdjustment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUnit(ctx context.Context, unitID uuid.UUID) ([]domain.RentAdjustment, error)
	// ApplyDue applies every adjustment with effective_date <= asOf: each
	// referenced unit's rent is set to the adjustment's new rent and the
	// adjustment row is deleted, all in one transaction. Returns the number
	// of adjustments applied; zero due adjustments is a zero-count success.
	ApplyDue(ctx context.Context, asOf time.Time) (int, error)
}

type LeaseRepository interface {
	Create(ctx context.Context, l *domain.Lease) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lease, error)
	Update(ctx context.Context, l *domain.Lease) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Lease, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]domain.Lease, error)
	// HasOverlap reports whether any pending or active lease on the unit
	// overlaps the inclusive [start, end] interval.
	HasOverlap(ctx context.Context, unitID uuid.UUID, start, end time.Time) (bool, error)
}

type InvoiceRepository interface {
	// CreateBatch inserts all invoices in one transaction. A duplicate
	// (lease, period_start, period_end) tuple fails the whole batch with a
	// ConflictError.
	CreateBatch(ctx context.Context, invoices []domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
	// MarkPaid transitions the invoice to paid unless it already is. The
	// condition lives in the UPDATE itself, so of two concurrent payments
	// exactly one succeeds; the loser gets an InvalidTransitionError.
	MarkPaid(ctx context.Context, id uuid.UUID) error
	// BulkMarkOverdue flips every issued invoice with due_date < before to
	// overdue in a single statement and returns the count affected.
	BulkMarkOverdue(ctx context.Context, before time.Time) (int64, error)
	// PurgeFuturePeriods deletes the lease's invoices whose period_start is
	// strictly after the given date.
	PurgeFuturePeriods(ctx context.Context, leaseID uuid.UUID, after time.Time) (int64, error)
	ListByLease(ctx context.Context, leaseID uuid.UUID) ([]domain.Invoice, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Invoice, error)
	// ListDueOn returns issued invoices due exactly on the given date, with
	// tenant contact details for reminder delivery.
	ListDueOn(ctx context.Context, dueOn time.Time) ([]domain.InvoiceContact, error)
	// ListOverdueWithContacts returns overdue invoices with tenant contact
	// details for overdue notification delivery.
	ListOverdueWithContacts(ctx context.Context) ([]domain.InvoiceContact, error)
}
