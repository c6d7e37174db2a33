package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentdesk-backend/internal/domain"
)

// CreateLeaseParams carries the caller-supplied fields for a new lease.
// RentAmount defaults to the unit's current rent when nil.
type CreateLeaseParams struct {
	UnitID        uuid.UUID
	TenantID      uuid.UUID
	StartDate     string // "2006-01-02"
	EndDate       string
	RentAmount    *decimal.Decimal
	DepositAmount *decimal.Decimal
}

type LeaseService interface {
	CreateLease(ctx context.Context, params CreateLeaseParams) (*domain.Lease, error)
	ActivateLease(ctx context.Context, id uuid.UUID) (*domain.Lease, error)
	TerminateLease(ctx context.Context, id uuid.UUID) (*domain.Lease, error)
	GetLease(ctx context.Context, id uuid.UUID) (*domain.Lease, error)
	ListTenantLeases(ctx context.Context, tenantID uuid.UUID) ([]domain.Lease, error)
	ListLandlordLeases(ctx context.Context, landlordID uuid.UUID) ([]domain.Lease, error)
	ListLeaseInvoices(ctx context.Context, leaseID uuid.UUID) ([]domain.Invoice, error)
}

type InvoiceService interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	ListTenantInvoices(ctx context.Context, tenantID uuid.UUID) ([]domain.Invoice, error)
	// PayInvoice transitions issued or overdue to paid.
	PayInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	// MarkOverdue transitions a single issued invoice to overdue (admin path).
	MarkOverdue(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	// SweepOverdue flips every issued invoice due before asOf to overdue.
	SweepOverdue(ctx context.Context, asOf time.Time) (int64, error)
	// DispatchDueReminders emails tenants whose invoices fall due exactly
	// days_before days after today, per configured rule. Returns the number
	// of reminders sent; delivery failures are logged and skipped.
	DispatchDueReminders(ctx context.Context, today time.Time) (int, error)
	// NotifyOverdue emails tenants of currently overdue invoices.
	NotifyOverdue(ctx context.Context) (int, error)
}

type PropertyService interface {
	CreateProperty(ctx context.Context, p *domain.Property) error
	GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	UpdateProperty(ctx context.Context, p *domain.Property) error
	DeleteProperty(ctx context.Context, id uuid.UUID) error
	ListMyProperties(ctx context.Context, landlordID uuid.UUID) ([]domain.Property, error)

	CreateAmenity(ctx context.Context, a *domain.Amenity) error
	ListAmenities(ctx context.Context) ([]domain.Amenity, error)
	UpdateAmenity(ctx context.Context, a *domain.Amenity) error
	DeleteAmenity(ctx context.Context, id uuid.UUID) error
}

type UnitService interface {
	AddUnit(ctx context.Context, u *domain.Unit) error
	GetUnit(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, u *domain.Unit) error
	DeleteUnit(ctx context.Context, id uuid.UUID) error
	ListUnits(ctx context.Context, propertyID uuid.UUID) ([]domain.Unit, error)

	// ScheduleRentAdjustment records a future rent change for a unit. At most
	// one adjustment may exist per (unit, effective date).
	ScheduleRentAdjustment(ctx context.Context, unitID uuid.UUID, newRent decimal.Decimal, effectiveDate string) (*domain.RentAdjustment, error)
	ListRentAdjustments(ctx context.Context, unitID uuid.UUID) ([]domain.RentAdjustment, error)
	CancelRentAdjustment(ctx context.Context, id uuid.UUID) error
}

// AccessService answers "may this caller act on this resource". It replaces
// per-endpoint permission classes with explicit allow/deny checks invoked
// before the lease/invoice/unit operations.
type AccessService interface {
	CanManageProperty(ctx context.Context, caller *domain.User, propertyID uuid.UUID) error
	CanManageUnit(ctx context.Context, caller *domain.User, unitID uuid.UUID) error
	CanManageLease(ctx context.Context, caller *domain.User, leaseID uuid.UUID) error
	CanViewLease(ctx context.Context, caller *domain.User, leaseID uuid.UUID) error
	CanViewInvoice(ctx context.Context, caller *domain.User, invoiceID uuid.UUID) error
	CanPayInvoice(ctx context.Context, caller *domain.User, invoiceID uuid.UUID) error
}

// EmailService is the outbound notification channel. Delivery failures are
// logged by callers and never affect invoice or lease state.
type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
	SendInvoiceReminder(ctx context.Context, to, name, template string, inv *domain.Invoice) error
	SendOverdueNotice(ctx context.Context, to, name string, inv *domain.Invoice) error
}
