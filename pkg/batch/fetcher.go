package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/AmitShokeen001/pokestats/pkg/logging"
	"github.com/AmitShokeen001/pokestats/pkg/pokemon"
)

// DefaultLimit is the size of the first-generation batch.
const DefaultLimit = 151

var (
	batchRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokeapi_batch_records_total",
		Help: "Records processed during batch builds by result",
	}, []string{"result"}) // "fetched", "skipped"

	batchBuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pokeapi_batch_build_seconds",
		Help:    "Duration of batch builds",
		Buckets: []float64{1, 5, 10, 30, 60, 120},
	})
)

// Config holds batch fetcher configuration.
type Config struct {
	// ProgressEvery logs progress after every N records (0 disables).
	ProgressEvery int
}

// DefaultConfig returns the default batch configuration.
func DefaultConfig() Config {
	return Config{
		ProgressEvery: 25,
	}
}

// RecordFetcher is implemented by catalog.Fetcher.
type RecordFetcher interface {
	FetchListing(ctx context.Context, limit int) (*pokemon.Listing, error)
	FetchByURL(ctx context.Context, rawURL string) (*pokemon.Record, error)
	FetchByIdentifier(ctx context.Context, nameOrID string) (*pokemon.Record, error)
}

// Fetcher builds batches sequentially.
type Fetcher struct {
	fetcher RecordFetcher
	config  Config
	logger  zerolog.Logger
}

// NewFetcher creates a new batch fetcher.
func NewFetcher(fetcher RecordFetcher, config Config) *Fetcher {
	if config.ProgressEvery < 0 {
		config.ProgressEvery = 0
	}
	return &Fetcher{
		fetcher: fetcher,
		config:  config,
		logger:  logging.NewLogger("batch"),
	}
}

// FetchBatch returns up to limit records in listing order. Records that fail
// to fetch are skipped. Cancelling ctx stops the build and returns ctx.Err().
func (f *Fetcher) FetchBatch(ctx context.Context, limit int) ([]pokemon.Record, error) {
	start := time.Now()
	defer func() { batchBuildSeconds.Observe(time.Since(start).Seconds()) }()

	listing, err := f.fetcher.FetchListing(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("build batch: %w", err)
	}

	refs := listing.Results
	if len(refs) > limit {
		refs = refs[:limit]
	}

	f.logger.Info().
		Int("references", len(refs)).
		Msg("Fetching batch records")

	records := make([]pokemon.Record, 0, len(refs))
	skipped := 0
	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			f.logger.Warn().Int("fetched", len(records)).Msg("Batch build cancelled")
			return nil, err
		}

		rec, err := f.fetchReference(ctx, ref)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			skipped++
			batchRecordsTotal.WithLabelValues("skipped").Inc()
			f.logger.Warn().Err(err).Str("record", ref.Name).Msg("Skipping record")
			continue
		}

		records = append(records, *rec)
		batchRecordsTotal.WithLabelValues("fetched").Inc()

		if f.config.ProgressEvery > 0 && (i+1)%f.config.ProgressEvery == 0 {
			f.logger.Debug().
				Int("processed", i+1).
				Int("total", len(refs)).
				Msg("Batch progress")
		}
	}

	f.logger.Info().
		Int("records", len(records)).
		Int("skipped", skipped).
		Dur("duration", time.Since(start)).
		Msg("Batch complete")

	return records, nil
}

// fetchReference prefers the reference URL and falls back to its name.
func (f *Fetcher) fetchReference(ctx context.Context, ref pokemon.Reference) (*pokemon.Record, error) {
	if ref.URL != "" {
		return f.fetcher.FetchByURL(ctx, ref.URL)
	}
	return f.fetcher.FetchByIdentifier(ctx, ref.Name)
}
