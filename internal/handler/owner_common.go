package handler // handler defines http handlers

import (
    "errors"       // errors provides sentinel values used in getUserID
    "strconv"      // strconv converts strings to numeric types

    "github.com/iliyamo/property-management/internal/analytics" // analytics computes dashboard snapshots
    "github.com/iliyamo/property-management/internal/repository" // repository holds data access layer
    "github.com/labstack/echo/v4"                                // echo defines request context types
)

// OwnerHandler bundles repositories and the analytics engine for owners to
// manage their portfolio.
type OwnerHandler struct {
    PropertyRepo    *repository.PropertyRepo    // PropertyRepo provides property persistence
    ContractRepo    *repository.ContractRepo    // ContractRepo provides contract persistence
    PaymentRepo     *repository.PaymentRepo     // PaymentRepo provides payment persistence
    MaintenanceRepo *repository.MaintenanceRepo // MaintenanceRepo provides maintenance persistence
    Engine          *analytics.Engine           // Engine derives dashboard analytics from the repositories
}

// NewOwnerHandler constructs a new OwnerHandler and panics if any dependency is nil
func NewOwnerHandler(propertyRepo *repository.PropertyRepo, contractRepo *repository.ContractRepo, paymentRepo *repository.PaymentRepo, maintenanceRepo *repository.MaintenanceRepo, engine *analytics.Engine) *OwnerHandler {
    if propertyRepo == nil || contractRepo == nil || paymentRepo == nil || maintenanceRepo == nil || engine == nil {
        panic("nil dependency passed to NewOwnerHandler")
    }
    return &OwnerHandler{
        PropertyRepo:    propertyRepo,
        ContractRepo:    contractRepo,
        PaymentRepo:     paymentRepo,
        MaintenanceRepo: maintenanceRepo,
        Engine:          engine,
    }
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}
