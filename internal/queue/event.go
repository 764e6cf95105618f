// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published when a payment is marked paid.
// It contains enough information for downstream consumers to log, notify,
// or refresh derived figures without querying the primary database.
type PaymentRecordedEvent struct {
    PaymentID  uint64  `json:"payment_id"`
    ContractID uint64  `json:"contract_id"`
    OwnerID    uint64  `json:"owner_id"`
    Amount     float64 `json:"amount"`
    Type       string  `json:"type"`
    PaidAt     string  `json:"paid_at"`
}
