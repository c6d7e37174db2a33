package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rentdesk-backend/internal/domain"
)

// MockLeaseRepo
type MockLeaseRepo struct {
	mock.Mock
}

func (m *MockLeaseRepo) Create(ctx context.Context, l *domain.Lease) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLeaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lease), args.Error(1)
}
func (m *MockLeaseRepo) Update(ctx context.Context, l *domain.Lease) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLeaseRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Lease, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Lease), args.Error(1)
}
func (m *MockLeaseRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]domain.Lease, error) {
	args := m.Called(ctx, landlordID)
	return args.Get(0).([]domain.Lease), args.Error(1)
}
func (m *MockLeaseRepo) HasOverlap(ctx context.Context, unitID uuid.UUID, start, end time.Time) (bool, error) {
	args := m.Called(ctx, unitID, start, end)
	return args.Bool(0), args.Error(1)
}

// MockUnitRepo
type MockUnitRepo struct {
	mock.Mock
}

func (m *MockUnitRepo) Create(ctx context.Context, u *domain.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUnitRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}
func (m *MockUnitRepo) Update(ctx context.Context, u *domain.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUnitRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UnitStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockUnitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUnitRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Unit, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Unit), args.Error(1)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]domain.Property, error) {
	args := m.Called(ctx, landlordID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

// MockInvoiceRepo
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) CreateBatch(ctx context.Context, invoices []domain.Invoice) error {
	args := m.Called(ctx, invoices)
	return args.Error(0)
}
func (m *MockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockInvoiceRepo) MarkPaid(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockInvoiceRepo) BulkMarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockInvoiceRepo) PurgeFuturePeriods(ctx context.Context, leaseID uuid.UUID, after time.Time) (int64, error) {
	args := m.Called(ctx, leaseID, after)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockInvoiceRepo) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, leaseID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) ListDueOn(ctx context.Context, dueOn time.Time) ([]domain.InvoiceContact, error) {
	args := m.Called(ctx, dueOn)
	return args.Get(0).([]domain.InvoiceContact), args.Error(1)
}
func (m *MockInvoiceRepo) ListOverdueWithContacts(ctx context.Context) ([]domain.InvoiceContact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InvoiceContact), args.Error(1)
}

// MockRentAdjustmentRepo
type MockRentAdjustmentRepo struct {
	mock.Mock
}

func (m *MockRentAdjustmentRepo) Create(ctx context.Context, adj *domain.RentAdjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}
func (m *MockRentAdjustmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RentAdjustment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentAdjustment), args.Error(1)
}
func (m *MockRentAdjustmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentAdjustmentRepo) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]domain.RentAdjustment, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]domain.RentAdjustment), args.Error(1)
}
func (m *MockRentAdjustmentRepo) ApplyDue(ctx context.Context, asOf time.Time) (int, error) {
	args := m.Called(ctx, asOf)
	return args.Int(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
func (m *MockEmailService) SendInvoiceReminder(ctx context.Context, to, name, template string, inv *domain.Invoice) error {
	args := m.Called(ctx, to, name, template, inv)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, to, name string, inv *domain.Invoice) error {
	args := m.Called(ctx, to, name, inv)
	return args.Error(0)
}

// MockInvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListTenantInvoices(ctx context.Context, tenantID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) PayInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) MarkOverdue(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) SweepOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockInvoiceService) DispatchDueReminders(ctx context.Context, today time.Time) (int, error) {
	args := m.Called(ctx, today)
	return args.Int(0), args.Error(1)
}
func (m *MockInvoiceService) NotifyOverdue(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
