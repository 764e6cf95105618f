package analytics

import (
	"sort"
	"time"

	"github.com/iliyamo/property-management/internal/model"
)

// alertListCap bounds the detail lists. Counts always reflect the true
// totals; only the item lists are capped.
const alertListCap = 5

// expiringSoonDays is the look-ahead window for contract expiry alerts.
const expiringSoonDays = 30

// dueSoonDays is the look-ahead window for due-invoice alerts, inclusive
// of today.
const dueSoonDays = 5

// ContractAlert is one contract flagged by the expiry rules.
type ContractAlert struct {
	ContractID uint64 `json:"contract_id"`
	PropertyID uint64 `json:"property_id"`
	EndDate    string `json:"end_date"`
	DaysLeft   int    `json:"days_left"`
}

// MaintenanceAlert is one urgent open maintenance ticket.
type MaintenanceAlert struct {
	RequestID  uint64 `json:"request_id"`
	PropertyID uint64 `json:"property_id"`
	Title      string `json:"title"`
	Priority   string `json:"priority"`
}

// PaymentAlert is one unpaid invoice falling due within the window.
type PaymentAlert struct {
	PaymentID  uint64  `json:"payment_id"`
	ContractID uint64  `json:"contract_id"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"due_date"`
	DaysLeft   int     `json:"days_left"`
}

// ContractAlerts pairs the true total with a capped detail list.
type ContractAlerts struct {
	Count int             `json:"count"`
	Items []ContractAlert `json:"items"`
}

// MaintenanceAlerts pairs the true total with a capped detail list.
type MaintenanceAlerts struct {
	Count int                `json:"count"`
	Items []MaintenanceAlert `json:"items"`
}

// PaymentAlerts pairs the true total with a capped detail list.
type PaymentAlerts struct {
	Count int            `json:"count"`
	Items []PaymentAlert `json:"items"`
}

// AlertBlock carries every alert class computed for one snapshot. Nothing
// here is persisted; the block is recomputed from dates on every request.
type AlertBlock struct {
	ExpiringContracts ContractAlerts    `json:"expiring_contracts"`
	ExpiredContracts  ContractAlerts    `json:"expired_contracts"`
	UrgentMaintenance MaintenanceAlerts `json:"urgent_maintenance"`
	DueInvoices       PaymentAlerts     `json:"due_invoices"`
}

// dayOf truncates t to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a's day to b's day (negative when
// b is in the past).
func daysBetween(a, b time.Time) int {
	return int(dayOf(b).Sub(dayOf(a)).Hours() / 24)
}

// BuildAlerts evaluates every alert class against the injected reference
// instant. For expired contracts the end-date check is authoritative and
// wins over a possibly-stale stored status, mirroring how occupancy ignores
// the stored property status.
func BuildAlerts(
	contracts []model.Contract,
	requests []model.MaintenanceRequest,
	payments []model.Payment,
	now time.Time,
) AlertBlock {
	var expiring, expired []ContractAlert
	for _, c := range contracts {
		days := daysBetween(now, c.EndDate)
		ended := days < 0
		switch {
		case c.Status == model.ContractStatusExpired || ended:
			expired = append(expired, ContractAlert{
				ContractID: c.ID,
				PropertyID: c.PropertyID,
				EndDate:    c.EndDate.UTC().Format("2006-01-02"),
				DaysLeft:   days,
			})
		case c.Status == model.ContractStatusActive && days > 0 && days <= expiringSoonDays:
			expiring = append(expiring, ContractAlert{
				ContractID: c.ID,
				PropertyID: c.PropertyID,
				EndDate:    c.EndDate.UTC().Format("2006-01-02"),
				DaysLeft:   days,
			})
		}
	}
	sort.Slice(expiring, func(i, j int) bool { return expiring[i].DaysLeft < expiring[j].DaysLeft })
	sort.Slice(expired, func(i, j int) bool { return expired[i].EndDate < expired[j].EndDate })

	var urgent []MaintenanceAlert
	for _, m := range requests {
		open := m.Status == model.MaintenanceStatusPending || m.Status == model.MaintenanceStatusScheduled
		if m.Priority == model.MaintenancePriorityUrgent && open {
			urgent = append(urgent, MaintenanceAlert{
				RequestID:  m.ID,
				PropertyID: m.PropertyID,
				Title:      m.Title,
				Priority:   m.Priority,
			})
		}
	}

	var due []PaymentAlert
	for _, p := range payments {
		if p.Status != model.PaymentStatusDue {
			continue
		}
		days := daysBetween(now, p.DueDate)
		if days >= 0 && days <= dueSoonDays {
			due = append(due, PaymentAlert{
				PaymentID:  p.ID,
				ContractID: p.ContractID,
				Amount:     p.Amount,
				DueDate:    p.DueDate.UTC().Format("2006-01-02"),
				DaysLeft:   days,
			})
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].DaysLeft < due[j].DaysLeft })

	return AlertBlock{
		ExpiringContracts: ContractAlerts{Count: len(expiring), Items: capContracts(expiring)},
		ExpiredContracts:  ContractAlerts{Count: len(expired), Items: capContracts(expired)},
		UrgentMaintenance: MaintenanceAlerts{Count: len(urgent), Items: capMaintenance(urgent)},
		DueInvoices:       PaymentAlerts{Count: len(due), Items: capPayments(due)},
	}
}

func capContracts(in []ContractAlert) []ContractAlert {
	if len(in) > alertListCap {
		return in[:alertListCap]
	}
	return in
}

func capMaintenance(in []MaintenanceAlert) []MaintenanceAlert {
	if len(in) > alertListCap {
		return in[:alertListCap]
	}
	return in
}

func capPayments(in []PaymentAlert) []PaymentAlert {
	if len(in) > alertListCap {
		return in[:alertListCap]
	}
	return in
}
