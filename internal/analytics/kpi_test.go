package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/property-management/internal/model"
)

func TestBuildKPIs(t *testing.T) {
	properties := []model.Property{
		{ID: 1, OwnerID: 7},
		{ID: 2, OwnerID: 7},
	}
	contracts := []model.Contract{
		{ID: 1, PropertyID: 1, Status: model.ContractStatusActive, MonthlyRent: 1200},
		{ID: 2, PropertyID: 2, Status: model.ContractStatusExpired, MonthlyRent: 900},
	}
	paid := day(2025, time.March, 5)
	payments := []model.Payment{
		{ID: 1, Amount: 1200, Type: model.PaymentTypeRent, Status: model.PaymentStatusPaid, PaidAt: tptr(paid)},
		{ID: 2, Amount: 1200, Type: model.PaymentTypeRent, Status: model.PaymentStatusDue},
		{ID: 3, Amount: 300, Type: model.PaymentTypeOther, Status: model.PaymentStatusPaid, PaidAt: tptr(paid)},
	}
	requests := []model.MaintenanceRequest{
		{ID: 1, Status: model.MaintenanceStatusCompleted, Cost: fptr(150)},
		{ID: 2, Status: model.MaintenanceStatusCompleted}, // no cost recorded -> contributes 0
		{ID: 3, Status: model.MaintenanceStatusPending, Cost: fptr(999)},
	}

	kpis := BuildKPIs(properties, contracts, payments, requests)

	assert.Equal(t, 2, kpis.TotalProperties)
	assert.Equal(t, 50, kpis.OccupancyRate)
	assert.Equal(t, 1200.0, kpis.CollectedRents) // only paid rent, not due and not "other"
	assert.Equal(t, 150.0, kpis.Expenses)
	assert.Equal(t, 1200.0, kpis.MonthlyRevenue) // only the active contract's rent
}

func TestBuildKPIsEmptyInputsAreAllZero(t *testing.T) {
	kpis := BuildKPIs(nil, nil, nil, nil)
	assert.Equal(t, KPIBlock{}, kpis)
}

func TestExpensesExcludeNonCompletedRegardlessOfCost(t *testing.T) {
	requests := []model.MaintenanceRequest{
		{ID: 1, Status: model.MaintenanceStatusPending, Cost: fptr(500)},
		{ID: 2, Status: model.MaintenanceStatusScheduled, Cost: fptr(500)},
		{ID: 3, Status: model.MaintenanceStatusCancelled, Cost: fptr(500)},
	}
	kpis := BuildKPIs(nil, nil, nil, requests)
	assert.Equal(t, 0.0, kpis.Expenses)
}
