package handler // handler package contains the owner analytics endpoints

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
)

// maxCashFlowMonths bounds the ?months= query parameter so a caller cannot
// ask for an unbounded series.
const maxCashFlowMonths = 24

// GetDashboard handles GET /v1/dashboard and returns the full analytics
// snapshot for the authenticated owner: KPIs, the trailing cash-flow
// series, the revenue comparison, alerts and the per-property overview.
// A portfolio with no data yet renders a complete all-zero snapshot, not
// an error.
func (h *OwnerHandler) GetDashboard(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    snapshot, err := h.Engine.Snapshot(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid owner"})
    }
    return c.JSON(http.StatusOK, snapshot)
}

// GetCashFlow handles GET /v1/dashboard/cashflow?months=N and returns only
// the trailing series. N defaults to the engine's window and is clamped to
// [1, 24].
func (h *OwnerHandler) GetCashFlow(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    months := 0
    if raw := c.QueryParam("months"); raw != "" {
        n, err := strconv.Atoi(raw)
        if err != nil || n < 1 {
            return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid months"})
        }
        if n > maxCashFlowMonths {
            n = maxCashFlowMonths
        }
        months = n
    }
    series, err := h.Engine.CashFlow(c.Request().Context(), ownerID, months)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid owner"})
    }
    return c.JSON(http.StatusOK, map[string]any{"items": series})
}

// GetRevenueReport handles GET /v1/reports/revenue?year=&month= and returns
// the revenue comparison block for an explicit reference period. Both
// parameters default to the current year/month.
func (h *OwnerHandler) GetRevenueReport(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    year := 0
    if raw := c.QueryParam("year"); raw != "" {
        n, err := strconv.Atoi(raw)
        if err != nil || n < 1970 || n > 9999 {
            return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid year"})
        }
        year = n
    }
    var month time.Month
    if raw := c.QueryParam("month"); raw != "" {
        n, err := strconv.Atoi(raw)
        if err != nil || n < 1 || n > 12 {
            return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid month"})
        }
        month = time.Month(n)
    }
    report, err := h.Engine.RevenueReport(c.Request().Context(), ownerID, year, month)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid owner"})
    }
    return c.JSON(http.StatusOK, report)
}
