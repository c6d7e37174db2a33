package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
)

type mockAdjustmentRepo struct {
	mock.Mock
}

func (m *mockAdjustmentRepo) Create(ctx context.Context, adj *domain.RentAdjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}
func (m *mockAdjustmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RentAdjustment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentAdjustment), args.Error(1)
}
func (m *mockAdjustmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *mockAdjustmentRepo) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]domain.RentAdjustment, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]domain.RentAdjustment), args.Error(1)
}
func (m *mockAdjustmentRepo) ApplyDue(ctx context.Context, asOf time.Time) (int, error) {
	args := m.Called(ctx, asOf)
	return args.Int(0), args.Error(1)
}

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *mockInvoiceService) ListTenantInvoices(ctx context.Context, tenantID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *mockInvoiceService) PayInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *mockInvoiceService) MarkOverdue(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *mockInvoiceService) SweepOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockInvoiceService) DispatchDueReminders(ctx context.Context, today time.Time) (int, error) {
	args := m.Called(ctx, today)
	return args.Int(0), args.Error(1)
}
func (m *mockInvoiceService) NotifyOverdue(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newTestRunner() (*mockAdjustmentRepo, *mockInvoiceService, *JobRunner) {
	adjustments := new(mockAdjustmentRepo)
	invoiceSvc := new(mockInvoiceService)
	runner := NewJobRunner(adjustments, invoiceSvc, &config.Config{})
	return adjustments, invoiceSvc, runner
}

func TestJobRunner_ApplyRentAdjustments(t *testing.T) {
	adjustments, _, runner := newTestRunner()
	adjustments.On("ApplyDue", mock.Anything, mock.Anything).Return(2, nil)

	runner.ApplyRentAdjustments()
	adjustments.AssertExpectations(t)
}

func TestJobRunner_MarkOverdueInvoices(t *testing.T) {
	_, invoiceSvc, runner := newTestRunner()
	invoiceSvc.On("SweepOverdue", mock.Anything, mock.Anything).Return(int64(3), nil)

	runner.MarkOverdueInvoices()
	invoiceSvc.AssertExpectations(t)
}

func TestJobRunner_RunAllNightlyJobs(t *testing.T) {
	adjustments, invoiceSvc, runner := newTestRunner()
	adjustments.On("ApplyDue", mock.Anything, mock.Anything).Return(0, nil)
	invoiceSvc.On("SweepOverdue", mock.Anything, mock.Anything).Return(int64(0), nil)
	invoiceSvc.On("DispatchDueReminders", mock.Anything, mock.Anything).Return(0, nil)
	invoiceSvc.On("NotifyOverdue", mock.Anything).Return(0, nil)

	runner.RunAllNightlyJobs()
	adjustments.AssertExpectations(t)
	invoiceSvc.AssertExpectations(t)
}

func TestJobRunner_RecoversFromPanic(t *testing.T) {
	adjustments, _, runner := newTestRunner()
	adjustments.On("ApplyDue", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { panic("db handle gone") }).
		Return(0, errors.New("unreachable"))

	// Must not propagate the panic.
	runner.ApplyRentAdjustments()
}
