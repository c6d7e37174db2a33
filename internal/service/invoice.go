package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	emailSvc    EmailService
	reminders   []config.ReminderRule
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	emailSvc EmailService,
	reminders []config.ReminderRule,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		emailSvc:    emailSvc,
		reminders:   reminders,
	}
}

func (s *invoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) ListTenantInvoices(ctx context.Context, tenantID uuid.UUID) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListByTenant(ctx, tenantID)
}

func (s *invoiceService) PayInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceStatusPaid {
		return nil, domain.NewInvalidTransitionError("invoice %s is already paid", inv.ID)
	}
	if err := s.invoiceRepo.MarkPaid(ctx, inv.ID); err != nil {
		return nil, err
	}
	inv.Status = domain.InvoiceStatusPaid
	logger.Info("Invoice paid", "invoice_id", inv.ID, "lease_id", inv.LeaseID)
	return inv, nil
}

func (s *invoiceService) MarkOverdue(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvoiceStatusIssued {
		return nil, domain.NewInvalidTransitionError("only issued invoices can be marked overdue, invoice %s is %s", inv.ID, inv.Status)
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, inv.ID, domain.InvoiceStatusOverdue); err != nil {
		return nil, err
	}
	inv.Status = domain.InvoiceStatusOverdue
	return inv, nil
}

// SweepOverdue compares calendar dates, not wall-clock instants: an invoice
// is overdue only once its due date has fully passed, so one due today stays
// issued until tomorrow's sweep and the due_today reminder can still reach it.
func (s *invoiceService) SweepOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return s.invoiceRepo.BulkMarkOverdue(ctx, truncateToDay(asOf))
}

// DispatchDueReminders fires each configured rule against invoices due
// exactly today+days_before. The equality match is what keeps a rule from
// re-notifying: a 7-day rule fires once per invoice, seven days out, never
// for six or eight.
func (s *invoiceService) DispatchDueReminders(ctx context.Context, today time.Time) (int, error) {
	day := truncateToDay(today)
	sent := 0
	for _, rule := range s.reminders {
		target := day.AddDate(0, 0, rule.DaysBefore)
		contacts, err := s.invoiceRepo.ListDueOn(ctx, target)
		if err != nil {
			return sent, err
		}
		for _, c := range contacts {
			inv := c.Invoice
			if err := s.emailSvc.SendInvoiceReminder(ctx, c.TenantEmail, c.TenantName, rule.Template, &inv); err != nil {
				logger.Error("Failed to send invoice reminder",
					"invoice_id", inv.ID,
					"email", c.TenantEmail,
					"template", rule.Template,
					"error", err)
				continue
			}
			sent++
		}
	}
	return sent, nil
}

func (s *invoiceService) NotifyOverdue(ctx context.Context) (int, error) {
	contacts, err := s.invoiceRepo.ListOverdueWithContacts(ctx)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, c := range contacts {
		inv := c.Invoice
		if err := s.emailSvc.SendOverdueNotice(ctx, c.TenantEmail, c.TenantName, &inv); err != nil {
			logger.Error("Failed to send overdue notice",
				"invoice_id", inv.ID,
				"email", c.TenantEmail,
				"error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
