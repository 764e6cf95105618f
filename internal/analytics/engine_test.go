package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

// stubGateway returns whatever collections (or errors) the test loads into it.
type stubGateway struct {
	properties []model.Property
	contracts  []model.Contract
	payments   []model.Payment
	requests   []model.MaintenanceRequest
	err        error
}

func (s *stubGateway) ListProperties(ctx context.Context, ownerID uint64) ([]model.Property, error) {
	return s.properties, s.err
}

func (s *stubGateway) ListContracts(ctx context.Context, ownerID uint64) ([]model.Contract, error) {
	return s.contracts, s.err
}

func (s *stubGateway) ListPayments(ctx context.Context, ownerID uint64) ([]model.Payment, error) {
	return s.payments, s.err
}

func (s *stubGateway) ListMaintenanceRequests(ctx context.Context, ownerID uint64) ([]model.MaintenanceRequest, error) {
	return s.requests, s.err
}

func TestSnapshotEmptyPortfolio(t *testing.T) {
	e := NewEngine(&stubGateway{})
	e.Now = func() time.Time { return day(2025, time.June, 15) }

	snap, err := e.Snapshot(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), snap.OwnerID)
	assert.Equal(t, "2025-06-15T00:00:00Z", snap.GeneratedAt)

	assert.Equal(t, 0, snap.KPIs.TotalProperties)
	assert.Equal(t, 0, snap.KPIs.OccupancyRate)
	assert.Equal(t, 0.0, snap.KPIs.MonthlyRevenue)

	require.Len(t, snap.CashFlow, DefaultCashFlowMonths)
	for _, b := range snap.CashFlow {
		assert.Equal(t, 0.0, b.Net)
	}

	assert.True(t, snap.Revenue.YoYGrowth.NoPriorData)
	assert.Equal(t, TrendNeutral, snap.Revenue.YoYGrowth.Trend)

	assert.Equal(t, 0, snap.Alerts.ExpiringContracts.Count)
	assert.Empty(t, snap.Properties)
}

func TestSnapshotAbsorbsGatewayErrors(t *testing.T) {
	e := NewEngine(&stubGateway{err: errors.New("connection refused")})
	e.Now = func() time.Time { return day(2025, time.June, 15) }

	snap, err := e.Snapshot(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.KPIs.TotalProperties)
	require.Len(t, snap.CashFlow, DefaultCashFlowMonths)
}

func TestSnapshotRejectsZeroOwner(t *testing.T) {
	e := NewEngine(&stubGateway{})

	_, err := e.Snapshot(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidOwner)

	_, err = e.CashFlow(context.Background(), 0, 6)
	assert.ErrorIs(t, err, ErrInvalidOwner)

	_, err = e.RevenueReport(context.Background(), 0, 2025, time.June)
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestSnapshotWiresCollections(t *testing.T) {
	gw := &stubGateway{
		properties: []model.Property{{ID: 1, Name: "Flat A"}},
		contracts: []model.Contract{
			{ID: 1, PropertyID: 1, Status: model.ContractStatusActive, MonthlyRent: 1000,
				StartDate: day(2025, time.January, 1), EndDate: day(2025, time.June, 25)},
		},
		payments: []model.Payment{
			{ID: 1, Amount: 1000, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid,
				PaidAt: tptr(day(2025, time.June, 3)), DueDate: day(2025, time.June, 1)},
		},
	}
	e := NewEngine(gw)
	e.Now = func() time.Time { return day(2025, time.June, 15) }

	snap, err := e.Snapshot(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.KPIs.TotalProperties)
	assert.Equal(t, 100, snap.KPIs.OccupancyRate)
	assert.Equal(t, 1000.0, snap.KPIs.CollectedRents)

	// The contract ends in 10 days, so it shows up as expiring soon.
	require.Equal(t, 1, snap.Alerts.ExpiringContracts.Count)
	assert.Equal(t, 10, snap.Alerts.ExpiringContracts.Items[0].DaysLeft)

	require.Len(t, snap.Properties, 1)
	assert.Equal(t, StatusRented, snap.Properties[0].Status)

	// June income lands in the newest cash-flow bucket.
	last := snap.CashFlow[len(snap.CashFlow)-1]
	assert.Equal(t, "June 2025", last.Month)
	assert.Equal(t, 1000.0, last.Income)
}

func TestCashFlowExplicitWindow(t *testing.T) {
	e := NewEngine(&stubGateway{})
	e.Now = func() time.Time { return day(2025, time.June, 15) }

	buckets, err := e.CashFlow(context.Background(), 7, 12)
	require.NoError(t, err)
	require.Len(t, buckets, 12)
	assert.Equal(t, "July 2024", buckets[0].Month)

	// A non-positive count falls back to the default window.
	buckets, err = e.CashFlow(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.Len(t, buckets, DefaultCashFlowMonths)
}

func TestRevenueReportDefaultsPeriod(t *testing.T) {
	gw := &stubGateway{
		payments: []model.Payment{
			{ID: 1, Amount: 500, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid,
				PaidAt: tptr(day(2025, time.June, 2)), DueDate: day(2025, time.June, 1)},
		},
	}
	e := NewEngine(gw)
	e.Now = func() time.Time { return day(2025, time.June, 15) }

	cmp, err := e.RevenueReport(context.Background(), 7, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2025, cmp.Year)
	assert.Equal(t, int(time.June), cmp.Month)
	assert.Equal(t, 500.0, cmp.MonthlyRevenue)
}
