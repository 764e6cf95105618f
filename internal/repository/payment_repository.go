// This file defines repository methods for payments. Payments carry no
// owner_id column; owner scoping always goes through a JOIN to contracts so
// that a payment can never leak across owners even if a contract is
// reassigned.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/property-management/internal/model"
)

// ErrPaymentNotFound is returned when a payment cannot be found in the DB.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepo encapsulates all database queries related to payments.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo with the provided DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func scanPayment(sc interface{ Scan(...any) error }) (*model.Payment, error) {
	var (
		p      model.Payment
		paidAt sql.NullTime
	)
	if err := sc.Scan(&p.ID, &p.ContractID, &p.Amount, &p.Type, &p.Status,
		&p.DueDate, &paidAt, &p.CreatedAt); err != nil {
		return nil, err
	}
	if paidAt.Valid {
		t := paidAt.Time
		p.PaidAt = &t
	}
	return &p, nil
}

// Create inserts a payment row for a contract owned by ownerID.  The
// ownership check happens in the INSERT ... SELECT so a forged contract id
// belonging to another owner inserts nothing and surfaces ErrForbidden.
func (r *PaymentRepo) Create(ctx context.Context, ownerID uint64, p *model.Payment) error {
	const qInsert = `INSERT INTO payments (contract_id, amount, type, status, due_date)
	                 SELECT c.id, ?, ?, ?, ?
	                 FROM contracts c WHERE c.id = ? AND c.owner_id = ?`
	status := p.Status
	if status == "" {
		status = model.PaymentStatusDue
	}
	typ := p.Type
	if typ == "" {
		typ = model.PaymentTypeRent
	}
	res, err := r.db.ExecContext(ctx, qInsert, p.Amount, typ, status, p.DueDate, p.ContractID, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrForbidden
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const qSelect = `SELECT id, contract_id, amount, type, status, due_date, paid_at, created_at
	                 FROM payments WHERE id = ?`
	stored, err := scanPayment(r.db.QueryRowContext(ctx, qSelect, p.ID))
	if err != nil {
		return err
	}
	*p = *stored
	return nil
}

// GetByIDAndOwner fetches a payment by id, constrained through the contract
// join to the specified owner.
func (r *PaymentRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Payment, error) {
	const q = `SELECT p.id, p.contract_id, p.amount, p.type, p.status, p.due_date, p.paid_at, p.created_at
	           FROM payments p
	           JOIN contracts c ON c.id = p.contract_id
	           WHERE p.id = ? AND c.owner_id = ?`
	p, err := scanPayment(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByOwner returns all payments across the owner's contracts ordered by
// due date. A missing payments table is treated as zero payments.
func (r *PaymentRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Payment, error) {
	const q = `SELECT p.id, p.contract_id, p.amount, p.type, p.status, p.due_date, p.paid_at, p.created_at
	           FROM payments p
	           JOIN contracts c ON c.id = p.contract_id
	           WHERE c.owner_id = ? ORDER BY p.due_date, p.id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var out []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkPaid records a payment as settled at the given instant.  Ownership is
// enforced through the contract join; marking an already-paid payment again
// returns ErrConflict so callers don't double-publish settlement events.
func (r *PaymentRepo) MarkPaid(ctx context.Context, id, ownerID uint64, paidAt time.Time) error {
	const q = `UPDATE payments p
	           JOIN contracts c ON c.id = p.contract_id
	           SET p.status = ?, p.paid_at = ?
	           WHERE p.id = ? AND c.owner_id = ? AND p.status <> ?`
	res, err := r.db.ExecContext(ctx, q, model.PaymentStatusPaid, paidAt, id, ownerID, model.PaymentStatusPaid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "not yours / missing" from "already paid".
		if _, err := r.GetByIDAndOwner(ctx, id, ownerID); err != nil {
			return err
		}
		return ErrConflict
	}
	return nil
}
