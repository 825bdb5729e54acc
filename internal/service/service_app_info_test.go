package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/jrebel-license-server/internal/config"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService(&config.Settings{Version: "1.2.3"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_MissingVersion(t *testing.T) {
	_, err := NewAppInfoService(&config.Settings{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
