package handler // handler exposes unauthenticated browse endpoints

import (
    "net/http"

    "github.com/iliyamo/property-management/internal/repository"
    "github.com/labstack/echo/v4"
)

// PublicHandler serves sanitized data for guests browsing listings. No JWT
// or role middleware applies to these routes.
type PublicHandler struct {
    PropertyRepo *repository.PropertyRepo
}

// NewPublicHandler constructs a PublicHandler and panics on a nil repository.
func NewPublicHandler(propertyRepo *repository.PropertyRepo) *PublicHandler {
    if propertyRepo == nil {
        panic("nil repository passed to NewPublicHandler")
    }
    return &PublicHandler{PropertyRepo: propertyRepo}
}

// listingItem is the sanitized public view of a property. Owner and
// timestamp fields stay internal.
type listingItem struct {
    ID          uint64   `json:"id"`
    Name        string   `json:"name"`
    Type        string   `json:"type"`
    MonthlyRent *float64 `json:"monthly_rent,omitempty"`
}

// GetListings handles GET /v1/listings and returns the properties whose
// stored status is "available". The stored status is good enough for a
// public shop window; the owner dashboard uses the contract-derived state.
func (h *PublicHandler) GetListings(c echo.Context) error {
    items, err := h.PropertyRepo.ListAvailable(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    out := make([]listingItem, 0, len(items))
    for _, p := range items {
        out = append(out, listingItem{ID: p.ID, Name: p.Name, Type: p.Type, MonthlyRent: p.MonthlyRent})
    }
    return c.JSON(http.StatusOK, map[string]any{"items": out})
}
