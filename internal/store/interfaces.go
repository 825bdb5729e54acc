package store

import (
	"context"

	"github.com/MKhiriev/jrebel-license-server/models"
)

// LicenseRepository persists the activation GUIDs registered through the
// admin API.
type LicenseRepository interface {
	CreateLicense(ctx context.Context, license models.License) (models.License, error)
	ListLicenses(ctx context.Context, filter models.LicenseFilter) ([]models.License, error)
	FindLicenseByGUID(ctx context.Context, guid string) (models.License, error)
	DeleteLicense(ctx context.Context, guid string) error
	CountLicenses(ctx context.Context) (int, error)
}
