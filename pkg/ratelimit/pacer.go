// Package ratelimit implements the fixed-interval pacing of catalog requests.
// The public PokeAPI asks clients to be gentle; requests are issued strictly
// one after another with at least Interval between their starts.
package ratelimit

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// DefaultInterval is the pause between consecutive requests.
const DefaultInterval = 100 * time.Millisecond

// Prometheus metrics for request pacing.
var (
	pacerWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokeapi_pacer_waits_total",
		Help: "Total number of requests delayed by the pacer",
	})

	pacerWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pokeapi_pacer_wait_seconds",
		Help:    "Time requests spent waiting for the pacer",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
	})
)

// Pacer spaces out requests by a fixed interval. It is not safe for
// concurrent use; the client issues requests sequentially.
type Pacer struct {
	interval time.Duration
	last     time.Time
	logger   zerolog.Logger

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// NewPacer creates a pacer. An interval <= 0 disables pacing.
func NewPacer(interval time.Duration, logger zerolog.Logger) *Pacer {
	return &Pacer{
		interval: interval,
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}
}

// Interval returns the configured minimum spacing.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks until the next request may start, then marks it as started.
// It returns ctx.Err() if the context ends while waiting.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return nil
	}

	if !p.last.IsZero() {
		if wait := p.interval - p.now().Sub(p.last); wait > 0 {
			p.logger.Debug().Dur("wait", wait).Msg("Pacing request")
			pacerWaitsTotal.Inc()
			pacerWaitSeconds.Observe(wait.Seconds())

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-p.after(wait):
			}
		}
	}

	p.last = p.now()
	return nil
}
