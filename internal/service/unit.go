package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type unitService struct {
	unitRepo       repository.UnitRepository
	propertyRepo   repository.PropertyRepository
	adjustmentRepo repository.RentAdjustmentRepository
}

func NewUnitService(
	unitRepo repository.UnitRepository,
	propertyRepo repository.PropertyRepository,
	adjustmentRepo repository.RentAdjustmentRepository,
) UnitService {
	return &unitService{
		unitRepo:       unitRepo,
		propertyRepo:   propertyRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

func (s *unitService) AddUnit(ctx context.Context, u *domain.Unit) error {
	if u.UnitNumber == "" {
		return domain.NewValidationError("unit_number is required")
	}
	if !u.RentAmount.IsPositive() {
		return domain.NewValidationError("rent_amount must be positive")
	}
	if _, err := s.propertyRepo.GetByID(ctx, u.PropertyID); err != nil {
		return err
	}
	if u.UnitType == "" {
		u.UnitType = domain.UnitTypeSingle
	}
	if u.Status == "" {
		u.Status = domain.UnitStatusAvailable
	}
	return s.unitRepo.Create(ctx, u)
}

func (s *unitService) GetUnit(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	return s.unitRepo.GetByID(ctx, id)
}

func (s *unitService) UpdateUnit(ctx context.Context, u *domain.Unit) error {
	if u.UnitNumber == "" {
		return domain.NewValidationError("unit_number is required")
	}
	if !u.RentAmount.IsPositive() {
		return domain.NewValidationError("rent_amount must be positive")
	}
	return s.unitRepo.Update(ctx, u)
}

func (s *unitService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	return s.unitRepo.Delete(ctx, id)
}

func (s *unitService) ListUnits(ctx context.Context, propertyID uuid.UUID) ([]domain.Unit, error) {
	return s.unitRepo.ListByProperty(ctx, propertyID)
}

func (s *unitService) ScheduleRentAdjustment(ctx context.Context, unitID uuid.UUID, newRent decimal.Decimal, effectiveDate string) (*domain.RentAdjustment, error) {
	if !newRent.IsPositive() {
		return nil, domain.NewValidationError("new_rent must be positive")
	}
	effective, err := time.Parse("2006-01-02", effectiveDate)
	if err != nil {
		return nil, domain.NewValidationError("invalid effective_date %q", effectiveDate)
	}
	if _, err := s.unitRepo.GetByID(ctx, unitID); err != nil {
		return nil, err
	}

	adj := &domain.RentAdjustment{
		UnitID:        unitID,
		NewRent:       newRent,
		EffectiveDate: effective,
	}
	if err := s.adjustmentRepo.Create(ctx, adj); err != nil {
		return nil, err
	}
	return adj, nil
}

func (s *unitService) ListRentAdjustments(ctx context.Context, unitID uuid.UUID) ([]domain.RentAdjustment, error) {
	return s.adjustmentRepo.ListByUnit(ctx, unitID)
}

func (s *unitService) CancelRentAdjustment(ctx context.Context, id uuid.UUID) error {
	return s.adjustmentRepo.Delete(ctx, id)
}
