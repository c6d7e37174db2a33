package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, lease_id, period_start, period_end, amount_due, due_date, status, created_at, updated_at`

// CreateBatch inserts the full invoice schedule in one transaction. The
// (lease_id, period_start, period_end) unique index is the race backstop for
// concurrent lease creation: any duplicate fails the whole batch.
func (r *invoiceRepository) CreateBatch(ctx context.Context, invoices []domain.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO invoices (id, lease_id, period_start, period_end, amount_due, due_date, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for i := range invoices {
		inv := &invoices[i]
		if inv.ID == uuid.Nil {
			inv.ID = uuid.New()
		}
		if inv.Status == "" {
			inv.Status = domain.InvoiceStatusIssued
		}
		if _, err := stmt.ExecContext(ctx, inv.ID, inv.LeaseID, inv.PeriodStart, inv.PeriodEnd, inv.AmountDue, inv.DueDate, inv.Status, now, now); err != nil {
			if isUniqueViolation(err) {
				return domain.NewConflictError("invoice for lease %s period %s..%s already exists",
					inv.LeaseID, inv.PeriodStart.Format("2006-01-02"), inv.PeriodEnd.Format("2006-01-02"))
			}
			return err
		}
	}
	return tx.Commit()
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.LeaseID, &inv.PeriodStart, &inv.PeriodEnd, &inv.AmountDue, &inv.DueDate, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("invoice", id.String())
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE invoices SET status=$1, updated_at=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("invoice", id.String())
	}
	return nil
}

func (r *invoiceRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status='paid', updated_at=$1 WHERE id=$2 AND status <> 'paid'`,
		time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	// Zero rows: either the invoice is missing or another payment won.
	var status domain.InvoiceStatus
	err = r.db.QueryRowContext(ctx, `SELECT status FROM invoices WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError("invoice", id.String())
	}
	if err != nil {
		return err
	}
	return domain.NewInvalidTransitionError("invoice %s is already paid", id)
}

// BulkMarkOverdue is a single UPDATE, so the sweep is atomic and naturally
// idempotent: rows already overdue no longer match status='issued'.
func (r *invoiceRepository) BulkMarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status='overdue', updated_at=$1 WHERE status='issued' AND due_date < $2`,
		time.Now(), before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *invoiceRepository) PurgeFuturePeriods(ctx context.Context, leaseID uuid.UUID, after time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM invoices WHERE lease_id = $1 AND period_start > $2`, leaseID, after)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *invoiceRepository) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE lease_id = $1 ORDER BY period_start`
	return r.list(ctx, query, leaseID)
}

func (r *invoiceRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Invoice, error) {
	query := `SELECT i.id, i.lease_id, i.period_start, i.period_end, i.amount_due, i.due_date, i.status, i.created_at, i.updated_at
	          FROM invoices i
	          JOIN leases l ON i.lease_id = l.id
	          WHERE l.tenant_id = $1 ORDER BY i.period_start`
	return r.list(ctx, query, tenantID)
}

func (r *invoiceRepository) ListDueOn(ctx context.Context, dueOn time.Time) ([]domain.InvoiceContact, error) {
	query := `SELECT i.id, i.lease_id, i.period_start, i.period_end, i.amount_due, i.due_date, i.status, i.created_at, i.updated_at,
	                 u.name, u.email
	          FROM invoices i
	          JOIN leases l ON i.lease_id = l.id
	          JOIN users u ON l.tenant_id = u.id
	          WHERE i.status = 'issued' AND i.due_date = $1
	          ORDER BY i.due_date`
	return r.listContacts(ctx, query, dueOn)
}

func (r *invoiceRepository) ListOverdueWithContacts(ctx context.Context) ([]domain.InvoiceContact, error) {
	query := `SELECT i.id, i.lease_id, i.period_start, i.period_end, i.amount_due, i.due_date, i.status, i.created_at, i.updated_at,
	                 u.name, u.email
	          FROM invoices i
	          JOIN leases l ON i.lease_id = l.id
	          JOIN users u ON l.tenant_id = u.id
	          WHERE i.status = 'overdue'
	          ORDER BY i.due_date`
	return r.listContacts(ctx, query)
}

func (r *invoiceRepository) list(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(&inv.ID, &inv.LeaseID, &inv.PeriodStart, &inv.PeriodEnd, &inv.AmountDue, &inv.DueDate, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) listContacts(ctx context.Context, query string, args ...any) ([]domain.InvoiceContact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.InvoiceContact
	for rows.Next() {
		var c domain.InvoiceContact
		if err := rows.Scan(&c.ID, &c.LeaseID, &c.PeriodStart, &c.PeriodEnd, &c.AmountDue, &c.DueDate, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.TenantName, &c.TenantEmail); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
