package analytics

import "github.com/iliyamo/property-management/internal/model"

// PropertyOverview is one summary row in the dashboard's property table.
type PropertyOverview struct {
	ID               uint64  `json:"id"`
	Name             string  `json:"name"`
	UnitsLabel       string  `json:"units_label"`
	OccupancyPercent int     `json:"occupancy_percent"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	Status           string  `json:"status"`
}

// BuildOverview assembles one row per property, in the order the properties
// were listed. Monthly revenue sums the property's active contracts; the
// listed asking rent is used only when the property has no contracts at all
// (a unit with only expired contracts shows 0, not the asking rent).
func BuildOverview(properties []model.Property, contracts []model.Contract) []PropertyOverview {
	occupied := occupiedProperties(contracts)

	activeRent := make(map[uint64]float64)
	hasContract := make(map[uint64]bool)
	for _, c := range contracts {
		hasContract[c.PropertyID] = true
		if c.Status == model.ContractStatusActive {
			activeRent[c.PropertyID] += c.MonthlyRent
		}
	}

	out := make([]PropertyOverview, 0, len(properties))
	for _, p := range properties {
		revenue := activeRent[p.ID]
		if !hasContract[p.ID] && p.MonthlyRent != nil {
			revenue = *p.MonthlyRent
		}
		percent := 0
		if occupied[p.ID] {
			percent = 100
		}
		out = append(out, PropertyOverview{
			ID:               p.ID,
			Name:             p.Name,
			UnitsLabel:       "1 unit",
			OccupancyPercent: percent,
			MonthlyRevenue:   revenue,
			Status:           propertyStatus(p, occupied[p.ID]),
		})
	}
	return out
}
