package workers

import (
	"context"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/metrics"
	"github.com/MKhiriev/jrebel-license-server/internal/store"
	"github.com/robfig/cron/v3"
)

const statsSchedule = "@every 1h"

// statsWorker periodically publishes the stored-license count to the
// metrics gauge. The admin API updates the gauge on writes; this worker
// keeps it honest when rows change underneath the server (manual SQL,
// another instance on the same database).
type statsWorker struct {
	repository store.LicenseRepository
	metrics    *metrics.Metrics
	cron       *cron.Cron

	logger *logger.Logger
}

func NewStatsWorker(repository store.LicenseRepository, m *metrics.Metrics, log *logger.Logger) Worker {
	return &statsWorker{
		repository: repository,
		metrics:    m,
		cron:       cron.New(),
		logger:     log,
	}
}

func (w *statsWorker) Run() {
	w.publish()

	if _, err := w.cron.AddFunc(statsSchedule, w.publish); err != nil {
		w.logger.Err(err).Msg("error scheduling stats worker")
		return
	}

	w.cron.Start()
}

func (w *statsWorker) publish() {
	count, err := w.repository.CountLicenses(context.Background())
	if err != nil {
		w.logger.Warn().Err(err).Msg("error counting licenses")
		return
	}

	w.metrics.SetLicensesTotal(count)
}
