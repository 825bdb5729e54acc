package http

import (
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/metrics"
	"github.com/MKhiriev/jrebel-license-server/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}
