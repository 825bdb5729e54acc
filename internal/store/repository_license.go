package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/models"
)

// licenseRepository is the MySQL-backed implementation of
// [LicenseRepository]. It manages the "licenses" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type licenseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLicenseRepository constructs a [LicenseRepository] backed by the
// provided database connection and logger.
func NewLicenseRepository(db *DB, logger *logger.Logger) LicenseRepository {
	logger.Debug().Msg("creating license repository")
	return &licenseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLicense persists a new license record and returns it with the
// server-assigned ID.
//
// Error handling:
//   - MySQL duplicate entry (1062) → [ErrGUIDAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *licenseRepository) CreateLicense(ctx context.Context, license models.License) (models.License, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertLicenseQuery(license).ToSql()
	if err != nil {
		return models.License{}, fmt.Errorf("build insert query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*licenseRepository.CreateLicense").Msg("error: insert failed")

		switch mysqlError(err) {
		case mysqlDuplicateEntry:
			return models.License{}, ErrGUIDAlreadyExists
		default:
			return models.License{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*licenseRepository.CreateLicense").Msg("error: last insert id")
		return models.License{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	license.ID = id
	return license, nil
}

// ListLicenses returns the licenses matching filter, newest first.
func (r *licenseRepository) ListLicenses(ctx context.Context, filter models.LicenseFilter) ([]models.License, error) {
	log := logger.FromContext(ctx)

	query, args, err := listLicensesQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*licenseRepository.ListLicenses").Msg("error: select failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	licenses := make([]models.License, 0)
	for rows.Next() {
		var license models.License
		if err := rows.Scan(&license.ID, &license.GUID, &license.Note, &license.CreatedAt); err != nil {
			log.Err(err).Str("func", "*licenseRepository.ListLicenses").Msg("error: scanning error")
			return nil, err
		}
		licenses = append(licenses, license)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return licenses, nil
}

// FindLicenseByGUID retrieves the license registered under guid.
//
// Error handling:
//   - no matching row → [ErrNoLicenseWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *licenseRepository) FindLicenseByGUID(ctx context.Context, guid string) (models.License, error) {
	log := logger.FromContext(ctx)

	query, args, err := findLicenseByGUIDQuery(guid).ToSql()
	if err != nil {
		return models.License{}, fmt.Errorf("build find query: %w", err)
	}

	var license models.License
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&license.ID, &license.GUID, &license.Note, &license.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.License{}, ErrNoLicenseWasFound
		}

		log.Err(err).Str("func", "*licenseRepository.FindLicenseByGUID").Msg("error: scanning error")
		return models.License{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return license, nil
}

// DeleteLicense removes the license registered under guid.
//
// Deleting an unknown GUID returns [ErrNoLicenseWasFound].
func (r *licenseRepository) DeleteLicense(ctx context.Context, guid string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteLicenseQuery(guid).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*licenseRepository.DeleteLicense").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoLicenseWasFound
	}

	return nil
}

// CountLicenses returns the number of stored licenses.
func (r *licenseRepository) CountLicenses(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, _, err := countLicensesQuery().ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		log.Err(err).Str("func", "*licenseRepository.CountLicenses").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
