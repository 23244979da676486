// Package metrics exposes the Prometheus metrics registered by the other
// packages. Metrics are declared next to the code that updates them (client,
// cache, ratelimit, batch) via promauto.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr until ctx is done. It returns once the
// listener is shut down.
func Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("Serving metrics")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - pokeapi_requests_total{route, status} (Counter): requests by route template and status
//   - pokeapi_request_duration_seconds{route} (Histogram): request duration
//   - pokeapi_errors_total{class} (Counter): errors by class (not_found, client, server, network)
//
// Pacing Metrics (pkg/ratelimit):
//   - pokeapi_pacer_waits_total (Counter): requests delayed by the pacer
//   - pokeapi_pacer_wait_seconds (Histogram): time spent waiting
//
// Cache Metrics (pkg/cache):
//   - pokeapi_cache_hits_total, pokeapi_cache_misses_total (Counter)
//   - pokeapi_cache_size_bytes (Gauge): bytes written this process
//   - pokeapi_cache_errors_total{operation} (Counter)
//
// Batch Metrics (pkg/batch):
//   - pokeapi_batch_records_total{result} (Counter): records fetched or skipped
//   - pokeapi_batch_build_seconds (Histogram): batch build duration
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(pokeapi_cache_hits_total[5m])) /
//   (sum(rate(pokeapi_cache_hits_total[5m])) + sum(rate(pokeapi_cache_misses_total[5m])))
//
//   # Skipped records per build
//   increase(pokeapi_batch_records_total{result="skipped"}[1h])
