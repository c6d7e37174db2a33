package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"rentdesk-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendInvoiceReminder(ctx context.Context, to, name, template string, inv *domain.Invoice) error {
	var subject string
	switch template {
	case "due_today":
		subject = fmt.Sprintf("Your rent invoice is due today (%s)", inv.DueDate.Format("2006-01-02"))
	default:
		subject = fmt.Sprintf("Reminder: rent invoice due on %s", inv.DueDate.Format("2006-01-02"))
	}

	body := fmt.Sprintf(`Hello %s,

This is a reminder that your rent invoice for the period %s to %s is due on %s.

Amount due: %s

Thank you,
Rentdesk`,
		name,
		inv.PeriodStart.Format("2006-01-02"),
		inv.PeriodEnd.Format("2006-01-02"),
		inv.DueDate.Format("2006-01-02"),
		inv.AmountDue.StringFixed(2))

	return s.Send(ctx, to, subject, body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, to, name string, inv *domain.Invoice) error {
	subject := fmt.Sprintf("Overdue invoice: rent for %s", inv.PeriodStart.Format("2006-01-02"))
	body := fmt.Sprintf(`Hello %s,

Your rent invoice for the period %s to %s was due on %s and is now overdue.

Amount due: %s

Please settle it as soon as possible to avoid further action.

Thank you,
Rentdesk`,
		name,
		inv.PeriodStart.Format("2006-01-02"),
		inv.PeriodEnd.Format("2006-01-02"),
		inv.DueDate.Format("2006-01-02"),
		inv.AmountDue.StringFixed(2))

	return s.Send(ctx, to, subject, body)
}
