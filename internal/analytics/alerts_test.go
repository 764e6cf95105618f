package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

func TestExpiringSoonWindow(t *testing.T) {
	now := day(2025, time.May, 1)
	contracts := []model.Contract{
		{ID: 1, PropertyID: 1, Status: model.ContractStatusActive, EndDate: day(2025, time.May, 11)},  // 10 days
		{ID: 2, PropertyID: 2, Status: model.ContractStatusActive, EndDate: day(2026, time.June, 5)},  // ~400 days
		{ID: 3, PropertyID: 3, Status: model.ContractStatusActive, EndDate: day(2025, time.May, 31)},  // 30 days: inclusive
		{ID: 4, PropertyID: 4, Status: model.ContractStatusActive, EndDate: day(2025, time.June, 1)},  // 31 days: out
		{ID: 5, PropertyID: 5, Status: model.ContractStatusActive, EndDate: day(2025, time.May, 1)},   // ends today: not "expiring soon"
	}

	block := BuildAlerts(contracts, nil, nil, now)

	require.Equal(t, 2, block.ExpiringContracts.Count)
	// Sorted by soonest end date.
	assert.Equal(t, uint64(1), block.ExpiringContracts.Items[0].ContractID)
	assert.Equal(t, 10, block.ExpiringContracts.Items[0].DaysLeft)
	assert.Equal(t, uint64(3), block.ExpiringContracts.Items[1].ContractID)
}

func TestExpiredDateCheckOverridesStaleStatus(t *testing.T) {
	now := day(2025, time.May, 1)
	contracts := []model.Contract{
		// Stored status still says active but the window has ended: the date
		// check is authoritative.
		{ID: 1, PropertyID: 1, Status: model.ContractStatusActive, EndDate: day(2025, time.April, 20)},
		// Explicitly expired status counts even with a future end date.
		{ID: 2, PropertyID: 2, Status: model.ContractStatusExpired, EndDate: day(2025, time.December, 1)},
	}

	block := BuildAlerts(contracts, nil, nil, now)

	assert.Equal(t, 2, block.ExpiredContracts.Count)
	assert.Equal(t, 0, block.ExpiringContracts.Count)
}

func TestUrgentMaintenanceAlert(t *testing.T) {
	now := day(2025, time.May, 1)
	requests := []model.MaintenanceRequest{
		{ID: 1, PropertyID: 1, Title: "Burst pipe", Priority: model.MaintenancePriorityUrgent, Status: model.MaintenanceStatusPending},
		{ID: 2, PropertyID: 1, Title: "Burst pipe", Priority: model.MaintenancePriorityUrgent, Status: model.MaintenanceStatusCompleted},
		{ID: 3, PropertyID: 1, Title: "Squeaky door", Priority: model.MaintenancePriorityNormal, Status: model.MaintenanceStatusPending},
		{ID: 4, PropertyID: 2, Title: "No heating", Priority: model.MaintenancePriorityUrgent, Status: model.MaintenanceStatusScheduled},
	}

	block := BuildAlerts(nil, requests, nil, now)

	require.Equal(t, 2, block.UrgentMaintenance.Count)
	assert.Equal(t, uint64(1), block.UrgentMaintenance.Items[0].RequestID)
	assert.Equal(t, uint64(4), block.UrgentMaintenance.Items[1].RequestID)
}

func TestDueInvoiceWindow(t *testing.T) {
	now := day(2025, time.May, 10)
	payments := []model.Payment{
		{ID: 1, Amount: 100, Status: model.PaymentStatusDue, DueDate: day(2025, time.May, 10)}, // today: in
		{ID: 2, Amount: 100, Status: model.PaymentStatusDue, DueDate: day(2025, time.May, 15)}, // +5 days: in
		{ID: 3, Amount: 100, Status: model.PaymentStatusDue, DueDate: day(2025, time.May, 16)}, // +6 days: out
		{ID: 4, Amount: 100, Status: model.PaymentStatusOverdue, DueDate: day(2025, time.May, 11)}, // overdue class, not due
		{ID: 5, Amount: 100, Status: model.PaymentStatusDue, DueDate: day(2025, time.May, 8)},  // already past: out
	}

	block := BuildAlerts(nil, nil, payments, now)

	require.Equal(t, 2, block.DueInvoices.Count)
	assert.Equal(t, uint64(1), block.DueInvoices.Items[0].PaymentID)
	assert.Equal(t, 0, block.DueInvoices.Items[0].DaysLeft)
	assert.Equal(t, uint64(2), block.DueInvoices.Items[1].PaymentID)
}

func TestAlertListCapDoesNotAffectCount(t *testing.T) {
	now := day(2025, time.May, 1)
	var contracts []model.Contract
	for i := 1; i <= 8; i++ {
		contracts = append(contracts, model.Contract{
			ID:         uint64(i),
			PropertyID: uint64(i),
			Status:     model.ContractStatusActive,
			EndDate:    day(2025, time.May, 1+i),
		})
	}

	block := BuildAlerts(contracts, nil, nil, now)

	assert.Equal(t, 8, block.ExpiringContracts.Count)
	require.Len(t, block.ExpiringContracts.Items, alertListCap)
	// The capped list keeps the soonest entries.
	for i, item := range block.ExpiringContracts.Items {
		assert.Equal(t, uint64(i+1), item.ContractID, fmt.Sprintf("item %d", i))
	}
}
