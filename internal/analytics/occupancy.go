// Package analytics turns an owner's raw records (properties, contracts,
// payments, maintenance requests) into the dashboard figures: KPIs, a
// trailing cash-flow series, revenue growth comparisons, alerts and a
// per-property overview. All computation is pure over in-memory slices;
// fetching goes through the Gateway interface and a single reference
// instant is injected at the engine entry point so every component sees
// the same "now".
package analytics

import (
	"math"
	"strings"

	"github.com/iliyamo/property-management/internal/model"
)

// Derived per-property display statuses. These are computed, never read
// from the stored properties.status column.
const (
	StatusRented      = "rented"
	StatusMaintenance = "maintenance"
	StatusAvailable   = "available"
)

// occupiedProperties returns the set of property IDs that have at least one
// contract with status active. The stored property status is deliberately
// ignored here: it may say "available" while a contract is pending, or
// "under_maintenance" while the unit is still occupied.
func occupiedProperties(contracts []model.Contract) map[uint64]bool {
	occupied := make(map[uint64]bool)
	for _, c := range contracts {
		if c.Status == model.ContractStatusActive {
			occupied[c.PropertyID] = true
		}
	}
	return occupied
}

// occupancyRate returns occupied/total as a percentage rounded to the
// nearest integer. An empty portfolio yields 0, not NaN.
func occupancyRate(total, occupied int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

// isMaintenanceStatus reports whether a stored property status string marks
// the unit as under maintenance. The column is free text written by the
// listing flow, so matching is normalized.
func isMaintenanceStatus(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	return s == model.PropertyStatusMaintenance || s == "maintenance"
}

// propertyStatus derives the display status for one property. Precedence is
// fixed: contract-derived occupancy first, then the stored maintenance hint,
// then available. Owners rely on the ordering to tell "empty but fine" from
// "empty but broken".
func propertyStatus(p model.Property, occupied bool) string {
	if occupied {
		return StatusRented
	}
	if isMaintenanceStatus(p.Status) {
		return StatusMaintenance
	}
	return StatusAvailable
}
