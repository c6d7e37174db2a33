package service

import (
	"context"

	"github.com/google/uuid"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type accessService struct {
	propertyRepo repository.PropertyRepository
	unitRepo     repository.UnitRepository
	leaseRepo    repository.LeaseRepository
	invoiceRepo  repository.InvoiceRepository
}

func NewAccessService(
	propertyRepo repository.PropertyRepository,
	unitRepo repository.UnitRepository,
	leaseRepo repository.LeaseRepository,
	invoiceRepo repository.InvoiceRepository,
) AccessService {
	return &accessService{
		propertyRepo: propertyRepo,
		unitRepo:     unitRepo,
		leaseRepo:    leaseRepo,
		invoiceRepo:  invoiceRepo,
	}
}

func (s *accessService) CanManageProperty(ctx context.Context, caller *domain.User, propertyID uuid.UUID) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if caller.Role == domain.RoleLandlord && p.LandlordID == caller.ID {
		return nil
	}
	return domain.ErrForbidden
}

func (s *accessService) CanManageUnit(ctx context.Context, caller *domain.User, unitID uuid.UUID) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	u, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return err
	}
	return s.CanManageProperty(ctx, caller, u.PropertyID)
}

func (s *accessService) CanManageLease(ctx context.Context, caller *domain.User, leaseID uuid.UUID) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	l, err := s.leaseRepo.GetByID(ctx, leaseID)
	if err != nil {
		return err
	}
	return s.CanManageUnit(ctx, caller, l.UnitID)
}

func (s *accessService) CanViewLease(ctx context.Context, caller *domain.User, leaseID uuid.UUID) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	l, err := s.leaseRepo.GetByID(ctx, leaseID)
	if err != nil {
		return err
	}
	if caller.Role == domain.RoleTenant && l.TenantID == caller.ID {
		return nil
	}
	return s.CanManageUnit(ctx, caller, l.UnitID)
}

func (s *accessService) CanViewInvoice(ctx context.Context, caller *domain.User, invoiceID uuid.UUID) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	return s.CanViewLease(ctx, caller, inv.LeaseID)
}

// CanPayInvoice allows the invoice's tenant and admins. Landlords do not pay
// invoices on their own units.
func (s *accessService) CanPayInvoice(ctx context.Context, caller *domain.User, invoiceID uuid.UUID) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	l, err := s.leaseRepo.GetByID(ctx, inv.LeaseID)
	if err != nil {
		return err
	}
	if caller.Role == domain.RoleTenant && l.TenantID == caller.ID {
		return nil
	}
	return domain.ErrForbidden
}
