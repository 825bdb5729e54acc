package store

import (
	"context"

	"github.com/MKhiriev/jrebel-license-server/internal/config"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
)

type Storages struct {
	LicenseRepository LicenseRepository
}

// NewStorages wires the persistence layer from the resolved database
// configuration.
//
// A nil cfg, a failed connection, or a failed migration all degrade to
// the in-memory repository with a logged warning; persistence problems
// never abort startup.
func NewStorages(ctx context.Context, cfg *config.MySQLConfig, log *logger.Logger) *Storages {
	if cfg == nil {
		return &Storages{LicenseRepository: NewMemoryLicenseRepository(log)}
	}

	db, err := NewConnectMySQL(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("database unreachable, falling back to in-memory storage")
		return &Storages{LicenseRepository: NewMemoryLicenseRepository(log)}
	}

	if err := db.Migrate(); err != nil {
		log.Warn().Err(err).Msg("database migration failed, falling back to in-memory storage")
		return &Storages{LicenseRepository: NewMemoryLicenseRepository(log)}
	}

	return &Storages{LicenseRepository: NewLicenseRepository(db, log)}
}
