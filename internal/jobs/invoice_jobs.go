package jobs

import (
	"context"
	"time"

	"rentdesk-backend/internal/logger"
)

// MarkOverdueInvoices flips every issued invoice past its due date to
// overdue. Idempotent: a second run the same day matches nothing, because
// flipped invoices no longer have status issued.
func (jr *JobRunner) MarkOverdueInvoices() {
	jr.runWithRecovery("MarkOverdueInvoices", func() {
		ctx := context.Background()

		count, err := jr.invoiceSvc.SweepOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue invoices", "error", err)
			return
		}
		if count == 0 {
			logger.Info("No invoices to mark overdue")
			return
		}
		logger.Info("Invoices marked overdue", "count", count)
	})
}

// DispatchDueReminders emails tenants whose invoices fall due exactly
// days_before days from today, one email per configured rule per invoice.
func (jr *JobRunner) DispatchDueReminders() {
	jr.runWithRecovery("DispatchDueReminders", func() {
		ctx := context.Background()

		sent, err := jr.invoiceSvc.DispatchDueReminders(ctx, time.Now())
		if err != nil {
			logger.Error("Reminder dispatch failed", "sent_before_failure", sent, "error", err)
			return
		}
		logger.Info("Invoice reminders dispatched", "count", sent)
	})
}

// NotifyOverdueInvoices emails tenants of invoices already in overdue status.
// Kept separate from the sweep so the cron configuration decides whether and
// when overdue notices go out; notification has no effect on invoice state.
func (jr *JobRunner) NotifyOverdueInvoices() {
	jr.runWithRecovery("NotifyOverdueInvoices", func() {
		ctx := context.Background()

		sent, err := jr.invoiceSvc.NotifyOverdue(ctx)
		if err != nil {
			logger.Error("Overdue notification failed", "sent_before_failure", sent, "error", err)
			return
		}
		logger.Info("Overdue notices sent", "count", sent)
	})
}
