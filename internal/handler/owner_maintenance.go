package handler // handler package contains owner-specific maintenance handlers

import (
    "database/sql"
    "net/http"
    "strconv"
    "strings"

    "github.com/iliyamo/property-management/internal/model"
    "github.com/iliyamo/property-management/internal/repository"
    "github.com/labstack/echo/v4"
)

// maintenanceBody is the JSON payload accepted when opening a ticket.
type maintenanceBody struct {
    PropertyID uint64   `json:"property_id"`
    Title      string   `json:"title"`
    Priority   string   `json:"priority"`
    Cost       *float64 `json:"cost"`
}

// CreateMaintenanceRequest handles POST /v1/maintenance for the
// authenticated owner.
func (h *OwnerHandler) CreateMaintenanceRequest(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    var body maintenanceBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    title := strings.TrimSpace(body.Title)
    if title == "" {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
    }
    if body.PropertyID == 0 {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "property_id is required"})
    }
    if _, err := h.PropertyRepo.GetByIDAndOwner(c.Request().Context(), body.PropertyID, ownerID); err != nil {
        if err == repository.ErrPropertyNotFound {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "property not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    request := &model.MaintenanceRequest{
        OwnerID:    ownerID,
        PropertyID: body.PropertyID,
        Title:      title,
        Priority:   strings.ToLower(strings.TrimSpace(body.Priority)),
        Cost:       body.Cost,
    }
    if err := h.MaintenanceRepo.Create(c.Request().Context(), request); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create request"})
    }
    return c.JSON(http.StatusCreated, request)
}

// ListMaintenanceRequests handles GET /v1/maintenance for the authenticated owner
func (h *OwnerHandler) ListMaintenanceRequests(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    items, err := h.MaintenanceRepo.ListByOwner(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// UpdateMaintenanceStatus handles PATCH /v1/maintenance/:id/status.  Closing
// a ticket as completed usually carries the final cost, which is what the
// dashboard counts as an expense.
func (h *OwnerHandler) UpdateMaintenanceStatus(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    var body struct {
        Status string   `json:"status"`
        Cost   *float64 `json:"cost"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    status := strings.ToLower(strings.TrimSpace(body.Status))
    switch status {
    case model.MaintenanceStatusPending, model.MaintenanceStatusScheduled,
        model.MaintenanceStatusCompleted, model.MaintenanceStatusCancelled:
    default:
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status"})
    }
    if err := h.MaintenanceRepo.UpdateStatus(c.Request().Context(), id, ownerID, status, body.Cost); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "request not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
    }
    updated, err := h.MaintenanceRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    return c.JSON(http.StatusOK, updated)
}
