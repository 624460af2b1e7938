// File: internal/infra/sched/health_worker.go
package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"mnogo-rolly-bot/internal/domain/ports/gateway"
)

// HealthWorker periodically probes the order API so an outage shows up in the
// logs before a customer hits it. It only observes; no trigger is blocked on
// its verdict.
type HealthWorker struct {
	interval time.Duration
	gw       gateway.OrderGateway
	log      *zerolog.Logger

	healthy bool
}

func NewHealthWorker(interval time.Duration, gw gateway.OrderGateway, logger *zerolog.Logger) *HealthWorker {
	l := logger.With().Str("component", "HealthWorker").Logger()
	return &HealthWorker{
		interval: interval,
		gw:       gw,
		log:      &l,
		healthy:  true,
	}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Msg("Starting health worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping health worker")
			return ctx.Err()
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

// probe logs only on state transitions to keep a flapping API from flooding
// the log.
func (w *HealthWorker) probe(ctx context.Context) {
	err := w.gw.Health(ctx)
	switch {
	case err != nil && w.healthy:
		w.healthy = false
		w.log.Error().Err(err).Msg("order API is down")
	case err == nil && !w.healthy:
		w.healthy = true
		w.log.Info().Msg("order API recovered")
	}
}
