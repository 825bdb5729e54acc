package workers

import (
	"context"

	"github.com/MKhiriev/jrebel-license-server/internal/kenger"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
)

// heartbeatWorker drives the service-registry registration and keeps the
// heartbeat goroutine alive for the process lifetime.
type heartbeatWorker struct {
	registry *kenger.ServiceRegistry
	logger   *logger.Logger
}

func NewHeartbeatWorker(registry *kenger.ServiceRegistry, log *logger.Logger) Worker {
	return &heartbeatWorker{
		registry: registry,
		logger:   log,
	}
}

func (w *heartbeatWorker) Run() {
	w.logger.Info().Msg("starting service registry heartbeat")
	w.registry.Start(context.Background())
}
