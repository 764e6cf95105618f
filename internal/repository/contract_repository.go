// This file defines repository methods for lease contracts. Contract status
// transitions (renewal, expiry, cancellation) are authoritative inputs
// written here; the analytics engine never mutates them, it only re-derives
// expiry proximity from the stored dates.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/property-management/internal/model"
)

// ErrContractNotFound is returned when a contract cannot be found in the DB.
var ErrContractNotFound = errors.New("contract not found")

// ErrInvalidContractWindow is returned when a contract's start date falls
// after its end date.
var ErrInvalidContractWindow = errors.New("contract start date after end date")

// ContractRepo encapsulates all database queries related to contracts.
type ContractRepo struct {
	db *sql.DB
}

// NewContractRepo constructs a ContractRepo with the provided DB handle.
func NewContractRepo(db *sql.DB) *ContractRepo {
	return &ContractRepo{db: db}
}

func scanContract(sc interface{ Scan(...any) error }) (*model.Contract, error) {
	var c model.Contract
	if err := sc.Scan(&c.ID, &c.OwnerID, &c.PropertyID, &c.TenantID, &c.Status,
		&c.StartDate, &c.EndDate, &c.MonthlyRent, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new contract.  The start date must not fall after the
// end date; violations are rejected before touching the database.  On
// success the generated ID and DB-side timestamps are populated.
func (r *ContractRepo) Create(ctx context.Context, c *model.Contract) error {
	if c.StartDate.After(c.EndDate) {
		return ErrInvalidContractWindow
	}
	const qInsert = `INSERT INTO contracts (owner_id, property_id, tenant_id, status, start_date, end_date, monthly_rent)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	status := c.Status
	if status == "" {
		status = model.ContractStatusDraft
	}
	res, err := r.db.ExecContext(ctx, qInsert, c.OwnerID, c.PropertyID, c.TenantID, status,
		c.StartDate, c.EndDate, c.MonthlyRent)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	const qSelect = `SELECT id, owner_id, property_id, tenant_id, status, start_date, end_date, monthly_rent, created_at, updated_at
	                 FROM contracts WHERE id = ?`
	stored, err := scanContract(r.db.QueryRowContext(ctx, qSelect, c.ID))
	if err != nil {
		return err
	}
	*c = *stored
	return nil
}

// GetByIDAndOwner fetches a contract by id but only if it belongs to the
// specified owner.
func (r *ContractRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Contract, error) {
	const q = `SELECT id, owner_id, property_id, tenant_id, status, start_date, end_date, monthly_rent, created_at, updated_at
	           FROM contracts WHERE id = ? AND owner_id = ?`
	c, err := scanContract(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListByOwner returns all contracts for a specific owner ordered by id.
// A missing contracts table is treated as zero contracts.
func (r *ContractRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Contract, error) {
	const q = `SELECT id, owner_id, property_id, tenant_id, status, start_date, end_date, monthly_rent, created_at, updated_at
	           FROM contracts WHERE owner_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var out []model.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus transitions a contract's status if it belongs to the provided
// owner. It returns sql.ErrNoRows when no row is affected.
func (r *ContractRepo) UpdateStatus(ctx context.Context, id, ownerID uint64, status string) error {
	const q = `UPDATE contracts
	           SET status = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, status, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
