package model

import "time"

// Stored property statuses. The stored status is a display hint written by
// the listing flow; it can drift from reality and is never used to decide
// whether a property is occupied (see the analytics package).
const (
    PropertyStatusAvailable   = "available"
    PropertyStatusMaintenance = "under_maintenance"
)

// Property represents a rentable unit owned by a user.  A property
// accumulates contracts over time and may carry a listed monthly
// rent used when no contract exists yet.  This struct corresponds
// to a row in the `properties` table.
//
// Fields:
//  ID          – primary key identifier.
//  OwnerID     – user ID of the property owner.
//  Name        – human-friendly name of the property.
//  Type        – kind of unit (apartment, villa, office, ...).
//  MonthlyRent – listed asking rent; nil when not set.
//  Status      – advisory display status (available, under_maintenance).
//  CreatedAt   – timestamp when the property was created.
//  UpdatedAt   – timestamp of last update.
type Property struct {
    ID          uint64     // properties.id
    OwnerID     uint64     // properties.owner_id
    Name        string     // properties.name
    Type        string     // properties.type
    MonthlyRent *float64   // properties.monthly_rent (nullable)
    Status      string     // properties.status
    CreatedAt   time.Time  // properties.created_at
    UpdatedAt   time.Time  // properties.updated_at
}
