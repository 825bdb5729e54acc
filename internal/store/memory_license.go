package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/models"
)

// memoryLicenseRepository is the in-memory fallback implementation of
// [LicenseRepository], used when no database is configured. Licenses
// registered here do not survive a restart.
type memoryLicenseRepository struct {
	mu       sync.RWMutex
	licenses map[string]models.License
	nextID   int64
}

// NewMemoryLicenseRepository constructs an empty in-memory
// [LicenseRepository].
func NewMemoryLicenseRepository(logger *logger.Logger) LicenseRepository {
	logger.Warn().Msg("no database configured, licenses will not survive a restart")
	return &memoryLicenseRepository{
		licenses: make(map[string]models.License),
		nextID:   1,
	}
}

func (r *memoryLicenseRepository) CreateLicense(_ context.Context, license models.License) (models.License, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.licenses[license.GUID]; exists {
		return models.License{}, ErrGUIDAlreadyExists
	}

	license.ID = r.nextID
	r.nextID++
	if license.CreatedAt.IsZero() {
		license.CreatedAt = time.Now()
	}

	r.licenses[license.GUID] = license
	return license, nil
}

func (r *memoryLicenseRepository) ListLicenses(_ context.Context, filter models.LicenseFilter) ([]models.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	licenses := make([]models.License, 0, len(r.licenses))
	for _, license := range r.licenses {
		if filter.Note != "" && !strings.Contains(license.Note, filter.Note) {
			continue
		}
		licenses = append(licenses, license)
	}

	// newest first, matching the SQL ordering
	sort.Slice(licenses, func(i, j int) bool {
		if !licenses[i].CreatedAt.Equal(licenses[j].CreatedAt) {
			return licenses[i].CreatedAt.After(licenses[j].CreatedAt)
		}
		return licenses[i].ID > licenses[j].ID
	})

	if filter.Limit > 0 && uint64(len(licenses)) > filter.Limit {
		licenses = licenses[:filter.Limit]
	}

	return licenses, nil
}

func (r *memoryLicenseRepository) FindLicenseByGUID(_ context.Context, guid string) (models.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	license, exists := r.licenses[guid]
	if !exists {
		return models.License{}, ErrNoLicenseWasFound
	}

	return license, nil
}

func (r *memoryLicenseRepository) DeleteLicense(_ context.Context, guid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.licenses[guid]; !exists {
		return ErrNoLicenseWasFound
	}

	delete(r.licenses, guid)
	return nil
}

func (r *memoryLicenseRepository) CountLicenses(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.licenses), nil
}
