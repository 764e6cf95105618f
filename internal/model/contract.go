package model

import "time"

// Contract statuses as written by the signing/renewal flows. Status
// transitions happen outside this service's analytics: the engine only
// re-derives expiry proximity from dates, it never mutates status.
const (
    ContractStatusActive           = "active"
    ContractStatusExpired          = "expired"
    ContractStatusPendingSignature = "pending_signature"
    ContractStatusDraft            = "draft"
)

// Contract records a lease agreement between one owner, one property
// and one tenant.  Exactly one property and one owner per contract;
// a property may accumulate many contracts over its lifetime.
//
// Fields:
//  ID          – primary key identifier.
//  OwnerID     – user ID of the property owner.
//  PropertyID  – property being leased.
//  TenantID    – user ID of the tenant.
//  Status      – state of the contract (active, expired,
//                pending_signature, draft).
//  StartDate   – first day of the lease window.
//  EndDate     – last day of the lease window (start ≤ end).
//  MonthlyRent – agreed recurring rent for this contract.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Contract struct {
    ID          uint64    // contracts.id
    OwnerID     uint64    // contracts.owner_id
    PropertyID  uint64    // contracts.property_id
    TenantID    uint64    // contracts.tenant_id
    Status      string    // contracts.status
    StartDate   time.Time // contracts.start_date
    EndDate     time.Time // contracts.end_date
    MonthlyRent float64   // contracts.monthly_rent
    CreatedAt   time.Time // contracts.created_at
    UpdatedAt   time.Time // contracts.updated_at
}
