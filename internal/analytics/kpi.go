package analytics

import "github.com/iliyamo/property-management/internal/model"

// KPIBlock is the portfolio-wide headline figures shown at the top of the
// owner dashboard.
//
// CollectedRents is all-time cash actually received (paid rent payments,
// no date filter). MonthlyRevenue is forward-looking recurring rent across
// active contracts. Both get called "revenue" informally but must not be
// conflated; the period-filtered figures live in RevenueComparison.
type KPIBlock struct {
	TotalProperties int     `json:"total_properties"`
	OccupancyRate   int     `json:"occupancy_rate"`
	CollectedRents  float64 `json:"collected_rents"`
	Expenses        float64 `json:"expenses"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
}

// BuildKPIs computes the KPI block from the owner's normalized collections.
// Missing optional values (a ticket without a cost) contribute 0; no input
// combination can produce NaN.
func BuildKPIs(
	properties []model.Property,
	contracts []model.Contract,
	payments []model.Payment,
	requests []model.MaintenanceRequest,
) KPIBlock {
	occupied := occupiedProperties(contracts)
	occupiedCount := 0
	for _, p := range properties {
		if occupied[p.ID] {
			occupiedCount++
		}
	}

	var collected float64
	for _, p := range payments {
		if p.Type == model.PaymentTypeRent && p.Status == model.PaymentStatusPaid {
			collected += p.Amount
		}
	}

	var expenses float64
	for _, m := range requests {
		if m.Status == model.MaintenanceStatusCompleted && m.Cost != nil {
			expenses += *m.Cost
		}
	}

	var recurring float64
	for _, c := range contracts {
		if c.Status == model.ContractStatusActive {
			recurring += c.MonthlyRent
		}
	}

	return KPIBlock{
		TotalProperties: len(properties),
		OccupancyRate:   occupancyRate(len(properties), occupiedCount),
		CollectedRents:  collected,
		Expenses:        expenses,
		MonthlyRevenue:  recurring,
	}
}
