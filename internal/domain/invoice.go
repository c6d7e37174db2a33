package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusIssued  InvoiceStatus = "issued"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceContact pairs an invoice with its tenant's contact details, as
// loaded by the reminder and overdue-notification jobs.
type InvoiceContact struct {
	Invoice
	TenantName  string `json:"tenant_name"`
	TenantEmail string `json:"tenant_email"`
}

// Invoice bills one period of a lease. Invoices are unique per
// (lease, period_start, period_end) and are created in bulk when the lease
// is created. Status moves issued -> paid via an explicit payment,
// issued -> overdue via the nightly sweep, and overdue -> paid on late
// payment. Paid is terminal.
type Invoice struct {
	ID          uuid.UUID       `json:"id"`
	LeaseID     uuid.UUID       `json:"lease_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	DueDate     time.Time       `json:"due_date"`
	Status      InvoiceStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
