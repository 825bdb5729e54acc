package service

import (
	"fmt"

	"github.com/MKhiriev/jrebel-license-server/internal/config"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/store"
)

type Services struct {
	LicenseService LicenseService
	AdminService   AdminService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, settings *config.Settings, signer *Signer, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(settings, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		LicenseService: NewLicenseService(signer, logger),
		AdminService:   NewAdminService(storages.LicenseRepository, settings, logger),
		AppInfoService: appInfoService,
	}, nil
}
