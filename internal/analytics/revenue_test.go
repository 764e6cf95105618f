package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/property-management/internal/model"
)

func TestRevenueComparisonSinglePayment(t *testing.T) {
	payments := []model.Payment{
		{Amount: 1000, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid, PaidAt: tptr(day(2024, time.March, 15))},
	}

	cmp := BuildRevenueComparison(payments, 2024, time.March)

	assert.Equal(t, 1000.0, cmp.MonthlyRevenue)
	assert.Equal(t, 1000.0, cmp.AnnualRevenue)
	// No 2023 data: growth reports the no-prior-data default, it never throws.
	assert.True(t, cmp.YoYGrowth.NoPriorData)
	assert.Equal(t, 0.0, cmp.YoYGrowth.Percent)
	assert.Equal(t, TrendNeutral, cmp.YoYGrowth.Trend)
}

func TestGrowthIsAlwaysFinite(t *testing.T) {
	for _, current := range []float64{0, 1, 1000, -5} {
		g := growth(current, 0)
		assert.True(t, g.NoPriorData)
		assert.False(t, math.IsNaN(g.Percent))
		assert.False(t, math.IsInf(g.Percent, 0))
		assert.Equal(t, 0.0, g.Percent)
	}
}

func TestGrowthTrendFromSign(t *testing.T) {
	up := growth(150, 100)
	assert.Equal(t, TrendUp, up.Trend)
	assert.InDelta(t, 50.0, up.Percent, 1e-9)

	down := growth(50, 100)
	assert.Equal(t, TrendDown, down.Trend)
	assert.InDelta(t, -50.0, down.Percent, 1e-9)

	flat := growth(100, 100)
	assert.Equal(t, TrendNeutral, flat.Trend)
	assert.Equal(t, 0.0, flat.Percent)
	assert.False(t, flat.NoPriorData)
}

func TestMonthOverMonthWrapsIntoPreviousYear(t *testing.T) {
	payments := []model.Payment{
		{Amount: 700, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid, PaidAt: tptr(day(2024, time.December, 20))},
		{Amount: 1400, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid, PaidAt: tptr(day(2025, time.January, 5))},
	}

	cmp := BuildRevenueComparison(payments, 2025, time.January)

	assert.Equal(t, 1400.0, cmp.MonthlyRevenue)
	assert.Equal(t, 700.0, cmp.PreviousMonthlyRevenue)
	assert.Equal(t, TrendUp, cmp.MoMGrowth.Trend)
	assert.InDelta(t, 100.0, cmp.MoMGrowth.Percent, 1e-9)

	// The December payment also seeds the prior-year annual figure.
	assert.Equal(t, 700.0, cmp.PreviousAnnualRevenue)
	assert.InDelta(t, 100.0, cmp.YoYGrowth.Percent, 1e-9)
}

func TestRevenueFiltersByPaidDateNotDueDate(t *testing.T) {
	payments := []model.Payment{
		// Due in March but settled in April: counts toward April.
		{
			Amount:  1000,
			Type:    model.PaymentTypeRent,
			Status:  model.PaymentStatusPaid,
			DueDate: day(2024, time.March, 1),
			PaidAt:  tptr(day(2024, time.April, 2)),
		},
		// Paid flag without a paid date never counts.
		{Amount: 500, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid},
	}

	assert.Equal(t, 0.0, monthlyRevenue(payments, 2024, time.March))
	assert.Equal(t, 1000.0, monthlyRevenue(payments, 2024, time.April))
	assert.Equal(t, 1000.0, annualRevenue(payments, 2024))
}
