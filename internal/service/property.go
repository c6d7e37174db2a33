package service

import (
	"context"

	"github.com/google/uuid"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	amenityRepo  repository.AmenityRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository, amenityRepo repository.AmenityRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo, amenityRepo: amenityRepo}
}

func (s *propertyService) CreateProperty(ctx context.Context, p *domain.Property) error {
	if p.Name == "" {
		return domain.NewValidationError("property name is required")
	}
	if p.AddressLine1 == "" || p.City == "" || p.Country == "" {
		return domain.NewValidationError("property address, city and country are required")
	}
	return s.propertyRepo.Create(ctx, p)
}

func (s *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) UpdateProperty(ctx context.Context, p *domain.Property) error {
	if p.Name == "" {
		return domain.NewValidationError("property name is required")
	}
	return s.propertyRepo.Update(ctx, p)
}

func (s *propertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	return s.propertyRepo.Delete(ctx, id)
}

func (s *propertyService) ListMyProperties(ctx context.Context, landlordID uuid.UUID) ([]domain.Property, error) {
	return s.propertyRepo.ListByLandlord(ctx, landlordID)
}

func (s *propertyService) CreateAmenity(ctx context.Context, a *domain.Amenity) error {
	if a.Name == "" {
		return domain.NewValidationError("amenity name is required")
	}
	return s.amenityRepo.Create(ctx, a)
}

func (s *propertyService) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return s.amenityRepo.List(ctx)
}

func (s *propertyService) UpdateAmenity(ctx context.Context, a *domain.Amenity) error {
	if a.Name == "" {
		return domain.NewValidationError("amenity name is required")
	}
	return s.amenityRepo.Update(ctx, a)
}

func (s *propertyService) DeleteAmenity(ctx context.Context, id uuid.UUID) error {
	return s.amenityRepo.Delete(ctx, id)
}
