package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (LicenseRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewLicenseRepository(db, logger.Nop()), mock
}

func TestLicenseRepository_CreateLicense(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)
	license := models.License{GUID: "guid-1", Note: "team-a", CreatedAt: time.Now()}

	mock.ExpectExec("INSERT INTO licenses (guid,note,created_at) VALUES (?,?,?)").
		WithArgs(license.GUID, license.Note, license.CreatedAt).
		WillReturnResult(sqlmock.NewResult(7, 1))

	// Act
	created, err := repo.CreateLicense(context.Background(), license)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "guid-1", created.GUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_CreateLicense_DuplicateGUID(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)
	license := models.License{GUID: "guid-1", CreatedAt: time.Now()}

	mock.ExpectExec("INSERT INTO licenses (guid,note,created_at) VALUES (?,?,?)").
		WithArgs(license.GUID, license.Note, license.CreatedAt).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "duplicate entry"})

	// Act
	_, err := repo.CreateLicense(context.Background(), license)

	// Assert
	assert.ErrorIs(t, err, ErrGUIDAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_ListLicenses(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, guid, note, created_at FROM licenses ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "guid", "note", "created_at"}).
			AddRow(2, "guid-2", "second", now).
			AddRow(1, "guid-1", "first", now.Add(-time.Hour)))

	// Act
	licenses, err := repo.ListLicenses(context.Background(), models.LicenseFilter{})

	// Assert
	require.NoError(t, err)
	require.Len(t, licenses, 2)
	assert.Equal(t, "guid-2", licenses[0].GUID)
	assert.Equal(t, "guid-1", licenses[1].GUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_FindLicenseByGUID(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, guid, note, created_at FROM licenses WHERE guid = ?").
		WithArgs("guid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "guid", "note", "created_at"}).
			AddRow(1, "guid-1", "team-a", now))

	// Act
	license, err := repo.FindLicenseByGUID(context.Background(), "guid-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), license.ID)
	assert.Equal(t, "team-a", license.Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_FindLicenseByGUID_NotFound(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT id, guid, note, created_at FROM licenses WHERE guid = ?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "guid", "note", "created_at"}))

	// Act
	_, err := repo.FindLicenseByGUID(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, err, ErrNoLicenseWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_DeleteLicense(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM licenses WHERE guid = ?").
		WithArgs("guid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := repo.DeleteLicense(context.Background(), "guid-1")

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_DeleteLicense_NotFound(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM licenses WHERE guid = ?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Act
	err := repo.DeleteLicense(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, err, ErrNoLicenseWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_CountLicenses(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT COUNT(*) FROM licenses").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	// Act
	count, err := repo.CountLicenses(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseRepository_ListLicenses_QueryError(t *testing.T) {
	// Arrange
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT id, guid, note, created_at FROM licenses ORDER BY created_at DESC, id DESC").
		WillReturnError(errors.New("connection lost"))

	// Act
	_, err := repo.ListLicenses(context.Background(), models.LicenseFilter{})

	// Assert
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
