package analytics

import (
	"time"

	"github.com/iliyamo/property-management/internal/model"
)

// Trend directions derived from the sign of a growth value.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"
)

// GrowthIndicator is a period-over-period growth figure. When the prior
// period collected nothing there is no basis for a percentage: Percent is
// reported as 0 with NoPriorData set instead of ±Inf or NaN.
type GrowthIndicator struct {
	Percent     float64 `json:"percent"`
	Trend       string  `json:"trend"`
	NoPriorData bool    `json:"no_prior_data"`
}

// RevenueComparison holds annual and monthly collected-rent revenue for a
// reference period together with the preceding period and growth figures.
// Unlike the KPI block's all-time CollectedRents, everything here filters
// by the payment's paid date.
type RevenueComparison struct {
	Year                   int             `json:"year"`
	Month                  int             `json:"month"`
	AnnualRevenue          float64         `json:"annual_revenue"`
	PreviousAnnualRevenue  float64         `json:"previous_annual_revenue"`
	MonthlyRevenue         float64         `json:"monthly_revenue"`
	PreviousMonthlyRevenue float64         `json:"previous_monthly_revenue"`
	YoYGrowth              GrowthIndicator `json:"yoy_growth"`
	MoMGrowth              GrowthIndicator `json:"mom_growth"`
}

// paidRent reports whether p contributes to collected revenue at all.
func paidRent(p model.Payment) bool {
	return p.Type == model.PaymentTypeRent && p.Status == model.PaymentStatusPaid && p.PaidAt != nil
}

// annualRevenue sums paid rent whose paid date falls in the given calendar
// year (UTC).
func annualRevenue(payments []model.Payment, year int) float64 {
	var sum float64
	for _, p := range payments {
		if paidRent(p) && p.PaidAt.UTC().Year() == year {
			sum += p.Amount
		}
	}
	return sum
}

// monthlyRevenue sums paid rent whose paid date falls in the given calendar
// month (UTC).
func monthlyRevenue(payments []model.Payment, year int, month time.Month) float64 {
	var sum float64
	for _, p := range payments {
		if !paidRent(p) {
			continue
		}
		t := p.PaidAt.UTC()
		if t.Year() == year && t.Month() == month {
			sum += p.Amount
		}
	}
	return sum
}

// growth computes (current-previous)/previous*100 guarded against a zero
// denominator. The result is always finite.
func growth(current, previous float64) GrowthIndicator {
	if previous == 0 {
		return GrowthIndicator{Percent: 0, Trend: TrendNeutral, NoPriorData: true}
	}
	pct := (current - previous) / previous * 100
	trend := TrendNeutral
	switch {
	case pct > 0:
		trend = TrendUp
	case pct < 0:
		trend = TrendDown
	}
	return GrowthIndicator{Percent: pct, Trend: trend}
}

// BuildRevenueComparison computes the revenue block for a reference year and
// month. The previous month wraps into December of the prior year.
func BuildRevenueComparison(payments []model.Payment, year int, month time.Month) RevenueComparison {
	prevYear, prevMonth := year, month-1
	if prevMonth < time.January {
		prevYear, prevMonth = year-1, time.December
	}

	annual := annualRevenue(payments, year)
	prevAnnual := annualRevenue(payments, year-1)
	monthly := monthlyRevenue(payments, year, month)
	prevMonthly := monthlyRevenue(payments, prevYear, prevMonth)

	return RevenueComparison{
		Year:                   year,
		Month:                  int(month),
		AnnualRevenue:          annual,
		PreviousAnnualRevenue:  prevAnnual,
		MonthlyRevenue:         monthly,
		PreviousMonthlyRevenue: prevMonthly,
		YoYGrowth:              growth(annual, prevAnnual),
		MoMGrowth:              growth(monthly, prevMonthly),
	}
}
