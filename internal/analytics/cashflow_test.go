package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

func TestCashFlowSeriesAlwaysHasRequestedLength(t *testing.T) {
	now := day(2025, time.June, 15)

	for _, n := range []int{1, 3, 6, 12} {
		series := BuildCashFlowSeries(nil, nil, now, n)
		require.Len(t, series, n)
		for _, b := range series {
			assert.Zero(t, b.Income)
			assert.Zero(t, b.Expenses)
			assert.Zero(t, b.Net)
		}
	}
}

func TestCashFlowSeriesOrderAndLabels(t *testing.T) {
	now := day(2025, time.March, 31)
	series := BuildCashFlowSeries(nil, nil, now, 3)

	require.Len(t, series, 3)
	assert.Equal(t, "January 2025", series[0].Month)
	assert.Equal(t, "February 2025", series[1].Month)
	assert.Equal(t, "March 2025", series[2].Month)
}

func TestCashFlowSeriesBucketsByCalendarMonth(t *testing.T) {
	now := day(2025, time.March, 10)
	payments := []model.Payment{
		// Last day of February: belongs to the February bucket.
		{Amount: 800, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid, DueDate: day(2025, time.February, 28)},
		// First day of March: half-open boundary puts it in March.
		{Amount: 900, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid, DueDate: day(2025, time.March, 1)},
		// Unpaid and non-rent rows never count as income.
		{Amount: 500, Type: model.PaymentTypeRent, Status: model.PaymentStatusDue, DueDate: day(2025, time.March, 2)},
		{Amount: 500, Type: model.PaymentTypeOther, Status: model.PaymentStatusPaid, DueDate: day(2025, time.March, 2)},
	}
	requests := []model.MaintenanceRequest{
		{Status: model.MaintenanceStatusCompleted, Cost: fptr(200), UpdatedAt: day(2025, time.March, 3)},
		{Status: model.MaintenanceStatusPending, Cost: fptr(999), UpdatedAt: day(2025, time.March, 4)},
	}

	series := BuildCashFlowSeries(payments, requests, now, 2)
	require.Len(t, series, 2)

	feb, mar := series[0], series[1]
	assert.Equal(t, 800.0, feb.Income)
	assert.Equal(t, 0.0, feb.Expenses)
	assert.Equal(t, 800.0, feb.Net)

	assert.Equal(t, 900.0, mar.Income)
	assert.Equal(t, 200.0, mar.Expenses)
	assert.Equal(t, 700.0, mar.Net)
}

func TestCashFlowSeriesDefaultsWindow(t *testing.T) {
	series := BuildCashFlowSeries(nil, nil, day(2025, time.January, 1), 0)
	assert.Len(t, series, DefaultCashFlowMonths)
}

func TestCashFlowSeriesCrossesYearBoundary(t *testing.T) {
	now := day(2025, time.January, 20)
	series := BuildCashFlowSeries(nil, nil, now, 3)

	require.Len(t, series, 3)
	assert.Equal(t, "November 2024", series[0].Month)
	assert.Equal(t, "December 2024", series[1].Month)
	assert.Equal(t, "January 2025", series[2].Month)
}
