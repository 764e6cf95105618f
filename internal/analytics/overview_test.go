package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

func TestOverviewTwoPropertiesOneRented(t *testing.T) {
	properties := []model.Property{
		{ID: 1, Name: "Property X", Status: model.PropertyStatusAvailable},
		{ID: 2, Name: "Property Y", Status: model.PropertyStatusAvailable},
	}
	contracts := []model.Contract{
		{ID: 1, PropertyID: 1, Status: model.ContractStatusActive, MonthlyRent: 1500},
	}

	rows := BuildOverview(properties, contracts)
	require.Len(t, rows, 2)

	x, y := rows[0], rows[1]
	assert.Equal(t, StatusRented, x.Status)
	assert.Equal(t, 100, x.OccupancyPercent)
	assert.Equal(t, 1500.0, x.MonthlyRevenue)

	assert.Equal(t, StatusAvailable, y.Status)
	assert.Equal(t, 0, y.OccupancyPercent)
	assert.Equal(t, 0.0, y.MonthlyRevenue)
}

func TestOverviewSumsActiveContractRents(t *testing.T) {
	properties := []model.Property{{ID: 1, Name: "Duplex", MonthlyRent: fptr(2000)}}
	contracts := []model.Contract{
		{ID: 1, PropertyID: 1, Status: model.ContractStatusActive, MonthlyRent: 900},
		{ID: 2, PropertyID: 1, Status: model.ContractStatusActive, MonthlyRent: 850},
		{ID: 3, PropertyID: 1, Status: model.ContractStatusExpired, MonthlyRent: 800},
	}

	rows := BuildOverview(properties, contracts)
	require.Len(t, rows, 1)
	assert.Equal(t, 1750.0, rows[0].MonthlyRevenue)
}

func TestOverviewListedRentOnlyWhenNoContractsAtAll(t *testing.T) {
	properties := []model.Property{
		{ID: 1, Name: "Never leased", MonthlyRent: fptr(1200)},
		{ID: 2, Name: "Previously leased", MonthlyRent: fptr(1100)},
	}
	// Property 2 has a contract history but nothing active: it shows 0,
	// not the asking rent.
	contracts := []model.Contract{
		{ID: 1, PropertyID: 2, Status: model.ContractStatusExpired, MonthlyRent: 1000},
	}

	rows := BuildOverview(properties, contracts)
	require.Len(t, rows, 2)
	assert.Equal(t, 1200.0, rows[0].MonthlyRevenue)
	assert.Equal(t, 0.0, rows[1].MonthlyRevenue)
}

func TestOverviewMaintenanceStatus(t *testing.T) {
	properties := []model.Property{{ID: 1, Name: "Leaky roof", Status: model.PropertyStatusMaintenance}}

	rows := BuildOverview(properties, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusMaintenance, rows[0].Status)
	assert.Equal(t, "1 unit", rows[0].UnitsLabel)
}
