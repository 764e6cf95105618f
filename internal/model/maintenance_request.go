package model

import "time"

// Maintenance request statuses and priorities. Cost contributes to the
// owner's expenses only once the request reaches "completed".
const (
    MaintenanceStatusPending   = "pending"
    MaintenanceStatusScheduled = "scheduled"
    MaintenanceStatusCompleted = "completed"
    MaintenanceStatusCancelled = "cancelled"

    MaintenancePriorityNormal = "normal"
    MaintenancePriorityMedium = "medium"
    MaintenancePriorityUrgent = "urgent"
)

// MaintenanceRequest is a service ticket raised against a property by
// either the owner or a tenant.  It moves through status transitions
// and is never deleted by this service.
//
// Fields:
//  ID         – primary key identifier.
//  OwnerID    – user ID of the property owner.
//  PropertyID – property the ticket concerns.
//  Title      – short description of the issue.
//  Status     – pending, scheduled, completed or cancelled.
//  Priority   – normal, medium or urgent.
//  Cost       – actual cost; nil until known.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last status-transition timestamp.
type MaintenanceRequest struct {
    ID         uint64     // maintenance_requests.id
    OwnerID    uint64     // maintenance_requests.owner_id
    PropertyID uint64     // maintenance_requests.property_id
    Title      string     // maintenance_requests.title
    Status     string     // maintenance_requests.status
    Priority   string     // maintenance_requests.priority
    Cost       *float64   // maintenance_requests.cost (nullable)
    CreatedAt  time.Time  // maintenance_requests.created_at
    UpdatedAt  time.Time  // maintenance_requests.updated_at
}
