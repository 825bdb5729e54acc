package handler

import (
	"github.com/MKhiriev/jrebel-license-server/internal/handler/http"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/metrics"
	"github.com/MKhiriev/jrebel-license-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, m, logger),
	}
}
