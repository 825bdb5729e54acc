package workers

import (
	"github.com/MKhiriev/jrebel-license-server/internal/kenger"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/metrics"
	"github.com/MKhiriev/jrebel-license-server/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers. registry may be nil when
// the instance does not register itself; the heartbeat worker is then
// simply not created.
func NewWorkers(registry *kenger.ServiceRegistry, repository store.LicenseRepository, m *metrics.Metrics, log *logger.Logger) *Workers {
	w := &Workers{}

	if registry != nil {
		w.workers = append(w.workers, NewHeartbeatWorker(registry, log))
	}
	w.workers = append(w.workers, NewStatsWorker(repository, m, log))

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
