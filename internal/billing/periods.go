// Package billing contains the pure billing-period calculations used when a
// lease's invoice schedule is generated.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"rentdesk-backend/internal/domain"
)

// DefaultDueOffsetDays is the number of days after a period's start that its
// invoice falls due when no offset is configured.
const DefaultDueOffsetDays = 30

// Period is one invoice-to-be: a contiguous date range and the amount owed
// for it. Start and End are inclusive calendar dates.
type Period struct {
	Start     time.Time
	End       time.Time
	AmountDue decimal.Decimal
	DueDate   time.Time
}

// GeneratePeriods splits [startDate, endDate] into consecutive monthly
// periods. Each period ends the day before the next month's start, except the
// last, which truncates at endDate. A lease shorter than one month yields a
// single period covering the whole range. The result covers every day of the
// range exactly once, in order.
//
// Month stepping clamps to the shorter month's last day (Jan 31 -> Feb 28),
// it never spills into the following month. Due dates are plain day offsets
// from each period's start.
func GeneratePeriods(startDate, endDate time.Time, rent decimal.Decimal, dueOffsetDays int) ([]Period, error) {
	start := dateOnly(startDate)
	end := dateOnly(endDate)
	if end.Before(start) {
		return nil, domain.NewValidationError("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if dueOffsetDays <= 0 {
		dueOffsetDays = DefaultDueOffsetDays
	}

	var periods []Period
	for ps := start; !ps.After(end); {
		next := addOneMonth(ps)
		pe := next.AddDate(0, 0, -1)
		if pe.After(end) {
			pe = end
		}
		periods = append(periods, Period{
			Start:     ps,
			End:       pe,
			AmountDue: rent,
			DueDate:   ps.AddDate(0, 0, dueOffsetDays),
		})
		ps = next
	}
	return periods, nil
}

// addOneMonth advances a date by one calendar month, clamping the day to the
// target month's length. time.AddDate would normalize Jan 31 into March.
func addOneMonth(d time.Time) time.Time {
	y, m, day := d.Date()
	if last := daysInMonth(y, m+1); day > last {
		day = last
	}
	return time.Date(y, m+1, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
