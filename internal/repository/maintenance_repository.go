// This file defines repository methods for maintenance requests. Tickets
// move through status transitions and are never deleted; completed tickets
// with a cost feed the owner's expense figures in the analytics package.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/property-management/internal/model"
)

// ErrMaintenanceNotFound is returned when a maintenance request cannot be
// found in the DB.
var ErrMaintenanceNotFound = errors.New("maintenance request not found")

// MaintenanceRepo encapsulates all database queries related to maintenance
// requests.
type MaintenanceRepo struct {
	db *sql.DB
}

// NewMaintenanceRepo constructs a MaintenanceRepo with the provided DB handle.
func NewMaintenanceRepo(db *sql.DB) *MaintenanceRepo {
	return &MaintenanceRepo{db: db}
}

func scanMaintenance(sc interface{ Scan(...any) error }) (*model.MaintenanceRequest, error) {
	var (
		m    model.MaintenanceRequest
		cost sql.NullFloat64
	)
	if err := sc.Scan(&m.ID, &m.OwnerID, &m.PropertyID, &m.Title, &m.Status,
		&m.Priority, &cost, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	if cost.Valid {
		v := cost.Float64
		m.Cost = &v
	}
	return &m, nil
}

// Create inserts a new maintenance request.  Status defaults to pending and
// priority to normal when unset.
func (r *MaintenanceRepo) Create(ctx context.Context, m *model.MaintenanceRequest) error {
	const qInsert = `INSERT INTO maintenance_requests (owner_id, property_id, title, status, priority, cost)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	status := m.Status
	if status == "" {
		status = model.MaintenanceStatusPending
	}
	priority := m.Priority
	if priority == "" {
		priority = model.MaintenancePriorityNormal
	}
	var cost any
	if m.Cost != nil {
		cost = *m.Cost
	}
	res, err := r.db.ExecContext(ctx, qInsert, m.OwnerID, m.PropertyID, m.Title, status, priority, cost)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const qSelect = `SELECT id, owner_id, property_id, title, status, priority, cost, created_at, updated_at
	                 FROM maintenance_requests WHERE id = ?`
	stored, err := scanMaintenance(r.db.QueryRowContext(ctx, qSelect, m.ID))
	if err != nil {
		return err
	}
	*m = *stored
	return nil
}

// GetByIDAndOwner fetches a maintenance request by id but only if it belongs
// to the specified owner.
func (r *MaintenanceRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.MaintenanceRequest, error) {
	const q = `SELECT id, owner_id, property_id, title, status, priority, cost, created_at, updated_at
	           FROM maintenance_requests WHERE id = ? AND owner_id = ?`
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, err
	}
	return m, nil
}

// ListByOwner returns all maintenance requests for a specific owner ordered
// by id. A missing table is treated as zero requests.
func (r *MaintenanceRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.MaintenanceRequest, error) {
	const q = `SELECT id, owner_id, property_id, title, status, priority, cost, created_at, updated_at
	           FROM maintenance_requests WHERE owner_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var out []model.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus transitions a ticket's status and optionally records the
// final cost (pass nil to leave cost untouched). updated_at moves with
// every transition; the analytics cash-flow series buckets completed
// expenses by that timestamp.
func (r *MaintenanceRepo) UpdateStatus(ctx context.Context, id, ownerID uint64, status string, cost *float64) error {
	var (
		res sql.Result
		err error
	)
	if cost != nil {
		const q = `UPDATE maintenance_requests
		           SET status = ?, cost = ?, updated_at = CURRENT_TIMESTAMP
		           WHERE id = ? AND owner_id = ?`
		res, err = r.db.ExecContext(ctx, q, status, *cost, id, ownerID)
	} else {
		const q = `UPDATE maintenance_requests
		           SET status = ?, updated_at = CURRENT_TIMESTAMP
		           WHERE id = ? AND owner_id = ?`
		res, err = r.db.ExecContext(ctx, q, status, id, ownerID)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
