package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/property-management/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func TestOccupancyIgnoresStoredStatus(t *testing.T) {
	// The property claims to be available; the active contract wins.
	properties := []model.Property{
		{ID: 1, OwnerID: 7, Name: "Seaside Flat", Status: model.PropertyStatusAvailable},
	}
	contracts := []model.Contract{
		{ID: 10, OwnerID: 7, PropertyID: 1, Status: model.ContractStatusActive},
	}

	occupied := occupiedProperties(contracts)
	assert.True(t, occupied[1])
	assert.Equal(t, StatusRented, propertyStatus(properties[0], occupied[1]))
}

func TestOccupancyIgnoresMaintenanceStatusWhenOccupied(t *testing.T) {
	p := model.Property{ID: 1, Status: model.PropertyStatusMaintenance}
	contracts := []model.Contract{{ID: 2, PropertyID: 1, Status: model.ContractStatusActive}}

	occupied := occupiedProperties(contracts)
	assert.Equal(t, StatusRented, propertyStatus(p, occupied[1]))
}

func TestNonActiveContractsDoNotOccupy(t *testing.T) {
	contracts := []model.Contract{
		{ID: 1, PropertyID: 1, Status: model.ContractStatusExpired},
		{ID: 2, PropertyID: 1, Status: model.ContractStatusPendingSignature},
		{ID: 3, PropertyID: 1, Status: model.ContractStatusDraft},
	}
	occupied := occupiedProperties(contracts)
	assert.False(t, occupied[1])
}

func TestPropertyStatusPrecedence(t *testing.T) {
	// Not occupied + maintenance hint -> maintenance; otherwise available.
	maint := model.Property{ID: 1, Status: model.PropertyStatusMaintenance}
	assert.Equal(t, StatusMaintenance, propertyStatus(maint, false))

	avail := model.Property{ID: 2, Status: model.PropertyStatusAvailable}
	assert.Equal(t, StatusAvailable, propertyStatus(avail, false))

	// Free-text variants of the maintenance hint are normalized.
	fuzzy := model.Property{ID: 3, Status: " Maintenance "}
	assert.Equal(t, StatusMaintenance, propertyStatus(fuzzy, false))
}

func TestOccupancyRateBounds(t *testing.T) {
	assert.Equal(t, 0, occupancyRate(0, 0)) // empty portfolio, no NaN
	assert.Equal(t, 50, occupancyRate(2, 1))
	assert.Equal(t, 100, occupancyRate(3, 3))
	assert.Equal(t, 33, occupancyRate(3, 1)) // rounded to nearest
	assert.Equal(t, 67, occupancyRate(3, 2))
}
