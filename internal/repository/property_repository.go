// This file defines repository methods for properties. A Property is the
// central owner-scoped entity: contracts, payments and maintenance requests
// all hang off it. The stored status column is a display hint only; true
// occupancy is derived in the analytics package from active contracts.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/property-management/internal/model"
)

// ErrPropertyNotFound is returned when a property cannot be found in the DB.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepo encapsulates all database queries related to properties.  It
// depends on a sql.DB connection which should be configured elsewhere.
type PropertyRepo struct {
	db *sql.DB
}

// NewPropertyRepo constructs a PropertyRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at startup.
func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{db: db}
}

// scanProperty reads one property row. monthly_rent is nullable so it goes
// through sql.NullFloat64 before landing on the model pointer field.
func scanProperty(sc interface{ Scan(...any) error }) (*model.Property, error) {
	var (
		p    model.Property
		rent sql.NullFloat64
	)
	if err := sc.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Type, &rent, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if rent.Valid {
		v := rent.Float64
		p.MonthlyRent = &v
	}
	return &p, nil
}

// Create inserts a new property into the database.  On success the property's
// ID field will be populated with the auto-generated value.  After the insert,
// a SELECT is executed to populate the CreatedAt and UpdatedAt fields so that
// callers receive a fully populated record.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	const qInsert = "INSERT INTO properties (owner_id, name, type, monthly_rent, status) VALUES (?, ?, ?, ?, ?)"
	var rent any
	if p.MonthlyRent != nil {
		rent = *p.MonthlyRent
	}
	status := p.Status
	if status == "" {
		status = model.PropertyStatusAvailable
	}
	res, err := r.db.ExecContext(ctx, qInsert, p.OwnerID, p.Name, p.Type, rent, status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const qSelect = "SELECT id, owner_id, name, type, monthly_rent, status, created_at, updated_at FROM properties WHERE id = ?"
	stored, err := scanProperty(r.db.QueryRowContext(ctx, qSelect, p.ID))
	if err != nil {
		return err
	}
	*p = *stored
	return nil
}

// GetByIDAndOwner fetches a property by id but only if it belongs to the
// specified owner.  If the property doesn't exist or is owned by someone
// else, ErrPropertyNotFound is returned.
func (r *PropertyRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Property, error) {
	const q = "SELECT id, owner_id, name, type, monthly_rent, status, created_at, updated_at FROM properties WHERE id = ? AND owner_id = ?"
	p, err := scanProperty(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByOwner returns all properties for a specific owner ordered by id.
// A missing properties table is treated as an empty portfolio.
func (r *PropertyRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Property, error) {
	const q = `SELECT id, owner_id, name, type, monthly_rent, status, created_at, updated_at
	           FROM properties WHERE owner_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var out []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
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

// Update edits the mutable columns of a property owned by the given user.
// It returns sql.ErrNoRows when no row is affected (not found / not owned).
func (r *PropertyRepo) Update(ctx context.Context, p *model.Property) error {
	const q = `UPDATE properties
	           SET name = ?, type = ?, monthly_rent = ?, status = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND owner_id = ?`
	var rent any
	if p.MonthlyRent != nil {
		rent = *p.MonthlyRent
	}
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Type, rent, p.Status, p.ID, p.OwnerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAvailable returns properties whose stored status is "available",
// regardless of owner. It backs the public listings endpoint, so only
// presentation fields are selected; owner and timestamps stay internal.
func (r *PropertyRepo) ListAvailable(ctx context.Context) ([]model.Property, error) {
	const q = `SELECT id, name, type, monthly_rent FROM properties WHERE status = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, model.PropertyStatusAvailable)
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()
	var out []model.Property
	for rows.Next() {
		var (
			p    model.Property
			rent sql.NullFloat64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &rent); err != nil {
			return nil, err
		}
		if rent.Valid {
			v := rent.Float64
			p.MonthlyRent = &v
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
