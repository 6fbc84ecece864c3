package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
)

// HealthWorker pings storage on a fixed interval and reports the result.
// Only transitions are logged so a healthy process stays quiet.
type HealthWorker struct {
	pinger   Pinger
	reporter StatusReporter
	interval time.Duration

	serving *bool

	logger *logger.Logger
}

func NewHealthWorker(pinger Pinger, reporter StatusReporter, interval time.Duration, logger *logger.Logger) *HealthWorker {
	return &HealthWorker{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (w *HealthWorker) Run(ctx context.Context) {
	w.probe(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

func (w *HealthWorker) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}
	serving := err == nil

	if w.serving == nil || *w.serving != serving {
		if serving {
			w.logger.Info().Msg("storage is reachable")
		} else {
			w.logger.Error().Err(err).Msg("storage is unreachable")
		}
	}
	w.serving = &serving

	if w.reporter != nil {
		w.reporter.SetServing(serving)
	}
}
