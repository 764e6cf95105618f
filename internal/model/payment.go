package model

import "time"

// Payment statuses and types. A payment with status "paid" always carries
// a non-nil PaidAt; only paid rent payments count toward collected revenue.
const (
    PaymentStatusPaid    = "paid"
    PaymentStatusDue     = "due"
    PaymentStatusOverdue = "overdue"

    PaymentTypeRent  = "rent"
    PaymentTypeOther = "other"
)

// Payment is a single financial obligation tied to a contract.  One
// payment row is issued per billing period when a contract is signed;
// ad hoc charges are recorded with type "other".  Owner scoping goes
// through the contract (payments carry no owner_id column).
//
// Fields:
//  ID         – primary key identifier.
//  ContractID – contract this payment belongs to.
//  Amount     – amount owed, in the portfolio's base currency unit.
//  Type       – rent or other.
//  Status     – paid, due or overdue.
//  DueDate    – when the payment falls due.
//  PaidAt     – when it was actually paid; nil until marked paid.
//  CreatedAt  – creation timestamp.
type Payment struct {
    ID         uint64     // payments.id
    ContractID uint64     // payments.contract_id
    Amount     float64    // payments.amount
    Type       string     // payments.type
    Status     string     // payments.status
    DueDate    time.Time  // payments.due_date
    PaidAt     *time.Time // payments.paid_at (nullable)
    CreatedAt  time.Time  // payments.created_at
}
