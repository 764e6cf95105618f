package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

var propertyColumns = []string{"id", "owner_id", "name", "type", "monthly_rent", "status", "created_at", "updated_at"}

func TestPropertyListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM properties WHERE owner_id = \\?").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(propertyColumns).
			AddRow(1, 7, "Flat A", "apartment", 1200.0, "available", now, now).
			AddRow(2, 7, "Flat B", "apartment", nil, "under_maintenance", now, now))

	repo := NewPropertyRepo(db)
	out, err := repo.ListByOwner(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].MonthlyRent)
	assert.Equal(t, 1200.0, *out[0].MonthlyRent)
	assert.Nil(t, out[1].MonthlyRent)
	assert.Equal(t, "under_maintenance", out[1].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyListByOwnerMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM properties WHERE owner_id = \\?").
		WithArgs(uint64(7)).
		WillReturnError(errors.New("Error 1146: Table 'app.properties' doesn't exist"))

	repo := NewPropertyRepo(db)
	out, err := repo.ListByOwner(context.Background(), 7)
	assert.NoError(t, err)
	assert.Nil(t, out)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyGetByIDAndOwnerNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM properties WHERE id = \\? AND owner_id = \\?").
		WithArgs(uint64(9), uint64(7)).
		WillReturnRows(sqlmock.NewRows(propertyColumns))

	repo := NewPropertyRepo(db)
	_, err = repo.GetByIDAndOwner(context.Background(), 9, 7)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyUpdateNotOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE properties").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPropertyRepo(db)
	p := model.Property{ID: 9, OwnerID: 7, Name: "Flat A", Type: "apartment", Status: "available"}
	err = repo.Update(context.Background(), &p)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
