package analytics

import (
	"time"

	"github.com/iliyamo/property-management/internal/model"
)

// DefaultCashFlowMonths is the trailing window length used when the caller
// does not ask for a specific number of buckets.
const DefaultCashFlowMonths = 6

// CashFlowBucket aggregates one calendar month of income and expense.
type CashFlowBucket struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// monthStart returns the first instant of t's calendar month in UTC.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// inMonth reports whether t falls in the half-open interval
// [start, start+1month).
func inMonth(t, start time.Time) bool {
	t = t.UTC()
	end := start.AddDate(0, 1, 0)
	return !t.Before(start) && t.Before(end)
}

// BuildCashFlowSeries produces exactly `months` trailing calendar-month
// buckets ending at now's month (inclusive), oldest first. Income is paid
// rent bucketed by due date; expenses are completed maintenance costs
// bucketed by the ticket's last transition. Months without records still
// appear with zero values, so the series length never varies with data
// sparsity.
func BuildCashFlowSeries(
	payments []model.Payment,
	requests []model.MaintenanceRequest,
	now time.Time,
	months int,
) []CashFlowBucket {
	if months <= 0 {
		months = DefaultCashFlowMonths
	}
	current := monthStart(now)

	series := make([]CashFlowBucket, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)

		var income float64
		for _, p := range payments {
			if p.Type == model.PaymentTypeRent && p.Status == model.PaymentStatusPaid && inMonth(p.DueDate, start) {
				income += p.Amount
			}
		}

		var expenses float64
		for _, m := range requests {
			if m.Status == model.MaintenanceStatusCompleted && m.Cost != nil && inMonth(m.UpdatedAt, start) {
				expenses += *m.Cost
			}
		}

		series = append(series, CashFlowBucket{
			Month:    start.Format("January 2006"),
			Income:   income,
			Expenses: expenses,
			Net:      income - expenses,
		})
	}
	return series
}
