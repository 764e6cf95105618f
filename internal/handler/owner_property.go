package handler // handler package contains owner-specific property handlers

import (
    "database/sql"                                              // sql is imported for sentinel errors like sql.ErrNoRows
    "net/http"                                                  // http provides status code constants
    "strconv"                                                   // strconv parses string identifiers to numeric types
    "strings"                                                   // strings offers trimming utilities

    "github.com/iliyamo/property-management/internal/model"      // model holds entity structs
    "github.com/iliyamo/property-management/internal/repository" // repository holds database access
    "github.com/labstack/echo/v4"                                // echo is the web framework used for handlers
)

// propertyBody is the JSON payload accepted when creating or updating a property.
type propertyBody struct {
    Name        string   `json:"name"`
    Type        string   `json:"type"`
    MonthlyRent *float64 `json:"monthly_rent"`
    Status      string   `json:"status"`
}

// CreateProperty handles POST /v1/properties and lists a new property for the authenticated owner
func (h *OwnerHandler) CreateProperty(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    var body propertyBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    name := strings.TrimSpace(body.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
    }
    property := &model.Property{
        OwnerID:     ownerID,
        Name:        name,
        Type:        strings.TrimSpace(body.Type),
        MonthlyRent: body.MonthlyRent,
        Status:      strings.TrimSpace(body.Status),
    }
    if err := h.PropertyRepo.Create(c.Request().Context(), property); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create property"})
    }
    return c.JSON(http.StatusCreated, property)
}

// ListProperties handles GET /v1/properties and returns all properties owned by the authenticated user
func (h *OwnerHandler) ListProperties(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    items, err := h.PropertyRepo.ListByOwner(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// GetProperty handles GET /v1/properties/:id for the authenticated owner
func (h *OwnerHandler) GetProperty(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    property, err := h.PropertyRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
    if err != nil {
        if err == repository.ErrPropertyNotFound {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "property not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    return c.JSON(http.StatusOK, property)
}

// UpdateProperty handles PUT/PATCH /v1/properties/:id and edits the listing fields
func (h *OwnerHandler) UpdateProperty(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    var body propertyBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    // Load the current record first so partial payloads keep existing values.
    current, err := h.PropertyRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
    if err != nil {
        if err == repository.ErrPropertyNotFound {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "property not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    if name := strings.TrimSpace(body.Name); name != "" {
        current.Name = name
    }
    if typ := strings.TrimSpace(body.Type); typ != "" {
        current.Type = typ
    }
    if body.MonthlyRent != nil {
        current.MonthlyRent = body.MonthlyRent
    }
    if status := strings.TrimSpace(body.Status); status != "" {
        current.Status = status
    }
    if err := h.PropertyRepo.Update(c.Request().Context(), current); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "property not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, current)
}
