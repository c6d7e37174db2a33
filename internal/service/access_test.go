package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk-backend/internal/domain"
)

func newAccessServiceForTest() (*MockPropertyRepo, *MockUnitRepo, *MockLeaseRepo, *MockInvoiceRepo, AccessService) {
	propertyRepo := new(MockPropertyRepo)
	unitRepo := new(MockUnitRepo)
	leaseRepo := new(MockLeaseRepo)
	invoiceRepo := new(MockInvoiceRepo)
	svc := NewAccessService(propertyRepo, unitRepo, leaseRepo, invoiceRepo)
	return propertyRepo, unitRepo, leaseRepo, invoiceRepo, svc
}

func TestAccessService_CanManageProperty(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	owner := &domain.User{ID: uuid.New(), Role: domain.RoleLandlord}
	property := &domain.Property{ID: propertyID, LandlordID: owner.ID}

	t.Run("OwnerAllowed", func(t *testing.T) {
		propertyRepo, _, _, _, svc := newAccessServiceForTest()
		propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)

		assert.NoError(t, svc.CanManageProperty(ctx, owner, propertyID))
	})

	t.Run("OtherLandlordForbidden", func(t *testing.T) {
		propertyRepo, _, _, _, svc := newAccessServiceForTest()
		propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)

		stranger := &domain.User{ID: uuid.New(), Role: domain.RoleLandlord}
		assert.ErrorIs(t, svc.CanManageProperty(ctx, stranger, propertyID), domain.ErrForbidden)
	})

	t.Run("TenantForbidden", func(t *testing.T) {
		propertyRepo, _, _, _, svc := newAccessServiceForTest()
		propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)

		tenant := &domain.User{ID: uuid.New(), Role: domain.RoleTenant}
		assert.ErrorIs(t, svc.CanManageProperty(ctx, tenant, propertyID), domain.ErrForbidden)
	})

	t.Run("AdminBypassesLookup", func(t *testing.T) {
		propertyRepo, _, _, _, svc := newAccessServiceForTest()

		admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
		assert.NoError(t, svc.CanManageProperty(ctx, admin, propertyID))
		propertyRepo.AssertNotCalled(t, "GetByID", ctx, propertyID)
	})
}

func TestAccessService_CanViewLease(t *testing.T) {
	ctx := context.Background()
	leaseID := uuid.New()
	tenant := &domain.User{ID: uuid.New(), Role: domain.RoleTenant}
	lease := &domain.Lease{ID: leaseID, UnitID: uuid.New(), TenantID: tenant.ID}

	t.Run("LeaseTenantAllowed", func(t *testing.T) {
		_, _, leaseRepo, _, svc := newAccessServiceForTest()
		leaseRepo.On("GetByID", ctx, leaseID).Return(lease, nil)

		assert.NoError(t, svc.CanViewLease(ctx, tenant, leaseID))
	})

	t.Run("UnitOwnerAllowed", func(t *testing.T) {
		propertyRepo, unitRepo, leaseRepo, _, svc := newAccessServiceForTest()
		landlord := &domain.User{ID: uuid.New(), Role: domain.RoleLandlord}
		propertyID := uuid.New()

		leaseRepo.On("GetByID", ctx, leaseID).Return(lease, nil)
		unitRepo.On("GetByID", ctx, lease.UnitID).
			Return(&domain.Unit{ID: lease.UnitID, PropertyID: propertyID}, nil)
		propertyRepo.On("GetByID", ctx, propertyID).
			Return(&domain.Property{ID: propertyID, LandlordID: landlord.ID}, nil)

		assert.NoError(t, svc.CanViewLease(ctx, landlord, leaseID))
	})

	t.Run("UnrelatedTenantForbidden", func(t *testing.T) {
		propertyRepo, unitRepo, leaseRepo, _, svc := newAccessServiceForTest()
		propertyID := uuid.New()

		leaseRepo.On("GetByID", ctx, leaseID).Return(lease, nil)
		unitRepo.On("GetByID", ctx, lease.UnitID).
			Return(&domain.Unit{ID: lease.UnitID, PropertyID: propertyID}, nil)
		propertyRepo.On("GetByID", ctx, propertyID).
			Return(&domain.Property{ID: propertyID, LandlordID: uuid.New()}, nil)

		other := &domain.User{ID: uuid.New(), Role: domain.RoleTenant}
		assert.ErrorIs(t, svc.CanViewLease(ctx, other, leaseID), domain.ErrForbidden)
	})
}

func TestAccessService_CanPayInvoice(t *testing.T) {
	ctx := context.Background()
	invoiceID := uuid.New()
	leaseID := uuid.New()
	tenant := &domain.User{ID: uuid.New(), Role: domain.RoleTenant}
	invoice := &domain.Invoice{ID: invoiceID, LeaseID: leaseID}
	lease := &domain.Lease{ID: leaseID, TenantID: tenant.ID}

	t.Run("LeaseTenantAllowed", func(t *testing.T) {
		_, _, leaseRepo, invoiceRepo, svc := newAccessServiceForTest()
		invoiceRepo.On("GetByID", ctx, invoiceID).Return(invoice, nil)
		leaseRepo.On("GetByID", ctx, leaseID).Return(lease, nil)

		assert.NoError(t, svc.CanPayInvoice(ctx, tenant, invoiceID))
	})

	t.Run("LandlordForbidden", func(t *testing.T) {
		_, _, leaseRepo, invoiceRepo, svc := newAccessServiceForTest()
		invoiceRepo.On("GetByID", ctx, invoiceID).Return(invoice, nil)
		leaseRepo.On("GetByID", ctx, leaseID).Return(lease, nil)

		landlord := &domain.User{ID: uuid.New(), Role: domain.RoleLandlord}
		assert.ErrorIs(t, svc.CanPayInvoice(ctx, landlord, invoiceID), domain.ErrForbidden)
	})

	t.Run("MissingInvoicePropagatesNotFound", func(t *testing.T) {
		_, _, _, invoiceRepo, svc := newAccessServiceForTest()
		invoiceRepo.On("GetByID", ctx, invoiceID).
			Return(nil, domain.NewNotFoundError("invoice", invoiceID.String()))

		err := svc.CanPayInvoice(ctx, tenant, invoiceID)
		require.Error(t, err)
		var nferr *domain.NotFoundError
		assert.ErrorAs(t, err, &nferr)
	})
}
