package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLicenseRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryLicenseRepository(logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateLicense(ctx, models.License{GUID: "guid-1", Note: "team-a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindLicenseByGUID(ctx, "guid-1")
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestMemoryLicenseRepository_DuplicateGUID(t *testing.T) {
	repo := NewMemoryLicenseRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.CreateLicense(ctx, models.License{GUID: "guid-1"})
	require.NoError(t, err)

	_, err = repo.CreateLicense(ctx, models.License{GUID: "guid-1"})
	assert.ErrorIs(t, err, ErrGUIDAlreadyExists)
}

func TestMemoryLicenseRepository_ListNewestFirst(t *testing.T) {
	repo := NewMemoryLicenseRepository(logger.Nop())
	ctx := context.Background()
	now := time.Now()

	_, err := repo.CreateLicense(ctx, models.License{GUID: "old", CreatedAt: now.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = repo.CreateLicense(ctx, models.License{GUID: "new", CreatedAt: now})
	require.NoError(t, err)

	licenses, err := repo.ListLicenses(ctx, models.LicenseFilter{})
	require.NoError(t, err)
	require.Len(t, licenses, 2)
	assert.Equal(t, "new", licenses[0].GUID)
	assert.Equal(t, "old", licenses[1].GUID)
}

func TestMemoryLicenseRepository_ListFilterAndLimit(t *testing.T) {
	repo := NewMemoryLicenseRepository(logger.Nop())
	ctx := context.Background()

	for _, license := range []models.License{
		{GUID: "a", Note: "team-a lead"},
		{GUID: "b", Note: "team-b"},
		{GUID: "c", Note: "team-a backup"},
	} {
		_, err := repo.CreateLicense(ctx, license)
		require.NoError(t, err)
	}

	licenses, err := repo.ListLicenses(ctx, models.LicenseFilter{Note: "team-a"})
	require.NoError(t, err)
	assert.Len(t, licenses, 2)

	limited, err := repo.ListLicenses(ctx, models.LicenseFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestMemoryLicenseRepository_DeleteAndCount(t *testing.T) {
	repo := NewMemoryLicenseRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.CreateLicense(ctx, models.License{GUID: "guid-1"})
	require.NoError(t, err)

	count, err := repo.CountLicenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.DeleteLicense(ctx, "guid-1"))

	count, err = repo.CountLicenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.ErrorIs(t, repo.DeleteLicense(ctx, "guid-1"), ErrNoLicenseWasFound)
	_, err = repo.FindLicenseByGUID(ctx, "guid-1")
	assert.ErrorIs(t, err, ErrNoLicenseWasFound)
}
