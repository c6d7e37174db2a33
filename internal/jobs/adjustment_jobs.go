package jobs

import (
	"context"
	"time"

	"rentdesk-backend/internal/logger"
)

// ApplyRentAdjustments applies every rent adjustment whose effective date has
// arrived: each referenced unit's rent is updated and the adjustment deleted,
// atomically. A day with nothing due is a normal zero-count run, and a failed
// run rolls back whole and is retried naturally by the next schedule, since
// unapplied adjustments still match the selection.
func (jr *JobRunner) ApplyRentAdjustments() {
	jr.runWithRecovery("ApplyRentAdjustments", func() {
		ctx := context.Background()

		applied, err := jr.adjustments.ApplyDue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to apply rent adjustments", "error", err)
			return
		}
		if applied == 0 {
			logger.Info("No rent adjustments due")
			return
		}
		logger.Info("Rent adjustments applied", "count", applied)
	})
}
