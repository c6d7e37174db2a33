package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentdesk-backend/internal/billing"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

type leaseService struct {
	leaseRepo     repository.LeaseRepository
	unitRepo      repository.UnitRepository
	invoiceRepo   repository.InvoiceRepository
	invoiceSvc    InvoiceService
	dueOffsetDays int
}

func NewLeaseService(
	leaseRepo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
	invoiceRepo repository.InvoiceRepository,
	invoiceSvc InvoiceService,
	dueOffsetDays int,
) LeaseService {
	return &leaseService{
		leaseRepo:     leaseRepo,
		unitRepo:      unitRepo,
		invoiceRepo:   invoiceRepo,
		invoiceSvc:    invoiceSvc,
		dueOffsetDays: dueOffsetDays,
	}
}

// CreateLease persists a pending lease and populates its full invoice
// schedule. The overlap check and the batch insert are not one transaction;
// the invoice unique index is the backstop on a create race, surfacing a
// ConflictError to the caller.
func (s *leaseService) CreateLease(ctx context.Context, params CreateLeaseParams) (*domain.Lease, error) {
	start, err := time.Parse("2006-01-02", params.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("invalid start_date %q", params.StartDate)
	}
	end, err := time.Parse("2006-01-02", params.EndDate)
	if err != nil {
		return nil, domain.NewValidationError("invalid end_date %q", params.EndDate)
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("end_date must be on or after start_date")
	}

	unit, err := s.unitRepo.GetByID(ctx, params.UnitID)
	if err != nil {
		return nil, err
	}

	rent := unit.RentAmount
	if params.RentAmount != nil {
		rent = *params.RentAmount
	}
	if !rent.IsPositive() {
		return nil, domain.NewValidationError("rent_amount must be positive")
	}

	overlaps, err := s.leaseRepo.HasOverlap(ctx, unit.ID, start, end)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, domain.NewConflictError("unit %s is already leased during the requested period", unit.ID)
	}

	lease := &domain.Lease{
		UnitID:        unit.ID,
		TenantID:      params.TenantID,
		StartDate:     start,
		EndDate:       end,
		RentAmount:    rent,
		DepositAmount: params.DepositAmount,
		Status:        domain.LeaseStatusPending,
	}
	if err := s.leaseRepo.Create(ctx, lease); err != nil {
		return nil, err
	}

	periods, err := billing.GeneratePeriods(start, end, rent, s.dueOffsetDays)
	if err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, 0, len(periods))
	for _, p := range periods {
		invoices = append(invoices, domain.Invoice{
			LeaseID:     lease.ID,
			PeriodStart: p.Start,
			PeriodEnd:   p.End,
			AmountDue:   p.AmountDue,
			DueDate:     p.DueDate,
			Status:      domain.InvoiceStatusIssued,
		})
	}
	if err := s.invoiceRepo.CreateBatch(ctx, invoices); err != nil {
		return nil, err
	}

	logger.Info("Lease created", "lease_id", lease.ID, "unit_id", unit.ID, "invoices", len(invoices))
	return lease, nil
}

func (s *leaseService) ActivateLease(ctx context.Context, id uuid.UUID) (*domain.Lease, error) {
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lease.Status != domain.LeaseStatusPending {
		return nil, domain.NewInvalidTransitionError("only pending leases can be activated, lease %s is %s", lease.ID, lease.Status)
	}

	lease.Status = domain.LeaseStatusActive
	if err := s.leaseRepo.Update(ctx, lease); err != nil {
		return nil, err
	}
	if err := s.unitRepo.UpdateStatus(ctx, lease.UnitID, domain.UnitStatusOccupied); err != nil {
		logger.Error("Failed to mark unit occupied", "unit_id", lease.UnitID, "error", err)
	}

	// One reminder pass so invoices already inside a reminder window are not
	// silently skipped until the next nightly run. Not awaited for
	// correctness; failures only log.
	if n, err := s.invoiceSvc.DispatchDueReminders(ctx, time.Now()); err != nil {
		logger.Error("Reminder pass after activation failed", "lease_id", lease.ID, "error", err)
	} else if n > 0 {
		logger.Info("Reminder pass after activation", "lease_id", lease.ID, "sent", n)
	}

	return lease, nil
}

func (s *leaseService) TerminateLease(ctx context.Context, id uuid.UUID) (*domain.Lease, error) {
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lease.Status != domain.LeaseStatusActive {
		return nil, domain.NewInvalidTransitionError("only active leases can be terminated, lease %s is %s", lease.ID, lease.Status)
	}

	today := dateOnly(time.Now())
	lease.Status = domain.LeaseStatusTerminated
	lease.EndDate = today
	if err := s.leaseRepo.Update(ctx, lease); err != nil {
		return nil, err
	}

	purged, err := s.invoiceRepo.PurgeFuturePeriods(ctx, lease.ID, today)
	if err != nil {
		return nil, err
	}
	if err := s.unitRepo.UpdateStatus(ctx, lease.UnitID, domain.UnitStatusAvailable); err != nil {
		logger.Error("Failed to mark unit available", "unit_id", lease.UnitID, "error", err)
	}

	logger.Info("Lease terminated", "lease_id", lease.ID, "invoices_purged", purged)
	return lease, nil
}

func (s *leaseService) GetLease(ctx context.Context, id uuid.UUID) (*domain.Lease, error) {
	return s.leaseRepo.GetByID(ctx, id)
}

func (s *leaseService) ListTenantLeases(ctx context.Context, tenantID uuid.UUID) ([]domain.Lease, error) {
	return s.leaseRepo.ListByTenant(ctx, tenantID)
}

func (s *leaseService) ListLandlordLeases(ctx context.Context, landlordID uuid.UUID) ([]domain.Lease, error) {
	return s.leaseRepo.ListByLandlord(ctx, landlordID)
}

func (s *leaseService) ListLeaseInvoices(ctx context.Context, leaseID uuid.UUID) ([]domain.Invoice, error) {
	if _, err := s.leaseRepo.GetByID(ctx, leaseID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListByLease(ctx, leaseID)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
