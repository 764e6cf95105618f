package handler // handler package contains owner-specific contract handlers

import (
    "database/sql"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/iliyamo/property-management/internal/model"
    "github.com/iliyamo/property-management/internal/repository"
    "github.com/labstack/echo/v4"
)

// contractBody is the JSON payload accepted when creating a contract.
// Dates arrive as "2006-01-02" strings.
type contractBody struct {
    PropertyID  uint64  `json:"property_id"`
    TenantID    uint64  `json:"tenant_id"`
    Status      string  `json:"status"`
    StartDate   string  `json:"start_date"`
    EndDate     string  `json:"end_date"`
    MonthlyRent float64 `json:"monthly_rent"`
}

// parseDay parses a YYYY-MM-DD date in UTC.
func parseDay(s string) (time.Time, error) {
    return time.Parse("2006-01-02", strings.TrimSpace(s))
}

// CreateContract handles POST /v1/contracts for the authenticated owner.
// The referenced property must belong to the same owner.
func (h *OwnerHandler) CreateContract(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    var body contractBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    if body.PropertyID == 0 || body.TenantID == 0 {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "property_id and tenant_id are required"})
    }
    start, err := parseDay(body.StartDate)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_date"})
    }
    end, err := parseDay(body.EndDate)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end_date"})
    }
    // Ownership check: the property must exist and belong to this owner.
    if _, err := h.PropertyRepo.GetByIDAndOwner(c.Request().Context(), body.PropertyID, ownerID); err != nil {
        if err == repository.ErrPropertyNotFound {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "property not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    contract := &model.Contract{
        OwnerID:     ownerID,
        PropertyID:  body.PropertyID,
        TenantID:    body.TenantID,
        Status:      strings.TrimSpace(body.Status),
        StartDate:   start,
        EndDate:     end,
        MonthlyRent: body.MonthlyRent,
    }
    if err := h.ContractRepo.Create(c.Request().Context(), contract); err != nil {
        if err == repository.ErrInvalidContractWindow {
            return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_date after end_date"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create contract"})
    }
    return c.JSON(http.StatusCreated, contract)
}

// ListContracts handles GET /v1/contracts for the authenticated owner
func (h *OwnerHandler) ListContracts(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    items, err := h.ContractRepo.ListByOwner(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// UpdateContractStatus handles PATCH /v1/contracts/:id/status.  Status
// transitions (renewal, expiry, cancellation) are recorded here as
// authoritative inputs; the dashboard re-derives expiry proximity from
// dates regardless of what is stored.
func (h *OwnerHandler) UpdateContractStatus(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    var body struct {
        Status string `json:"status"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    status := strings.ToLower(strings.TrimSpace(body.Status))
    switch status {
    case model.ContractStatusActive, model.ContractStatusExpired,
        model.ContractStatusPendingSignature, model.ContractStatusDraft:
    default:
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status"})
    }
    if err := h.ContractRepo.UpdateStatus(c.Request().Context(), id, ownerID, status); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "contract not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
    }
    updated, err := h.ContractRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    return c.JSON(http.StatusOK, updated)
}
