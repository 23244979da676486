package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/AmitShokeen001/pokestats/internal/config"
	"github.com/AmitShokeen001/pokestats/pkg/batch"
	"github.com/AmitShokeen001/pokestats/pkg/cache"
	"github.com/AmitShokeen001/pokestats/pkg/catalog"
	"github.com/AmitShokeen001/pokestats/pkg/client"
	"github.com/AmitShokeen001/pokestats/pkg/logging"
	"github.com/AmitShokeen001/pokestats/pkg/pokemon"
	"github.com/AmitShokeen001/pokestats/pkg/present"
	"github.com/AmitShokeen001/pokestats/pkg/stats"
)

// Report names accepted by the stats command.
const (
	ReportTypes    = "types"
	ReportAverages = "averages"
	ReportDistinct = "distinct"
	ReportMoves    = "moves"
	ReportTop3     = "top3"
	ReportAll      = "all"
)

var reportOrder = []string{ReportTypes, ReportAverages, ReportDistinct, ReportMoves, ReportTop3}

// RecordSource looks up single records; *catalog.Fetcher implements it.
type RecordSource interface {
	FetchByIdentifier(ctx context.Context, nameOrID string) (*pokemon.Record, error)
}

// App holds the state of one CLI run: the record source, the memoized batch
// and the output writer.
type App struct {
	records    RecordSource
	loader     *batch.Loader
	batchLimit int
	defaultID  string
	out        io.Writer
	logger     zerolog.Logger

	// cache is nil unless POKESTATS_REDIS_URL points at a reachable Redis.
	cache *cache.Manager

	closers []func() error
}

// newApp wires the catalog client, optional Redis cache and batch loader.
func newApp(ctx context.Context, cfg *config.Config, out io.Writer) (*App, error) {
	logger := logging.NewLogger("cli")
	app := &App{
		defaultID: cfg.DefaultIdentifier,
		out:       out,
		logger:    logger,
	}

	clientCfg := client.DefaultConfig(cfg.UserAgent)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.Timeout = cfg.HTTPTimeout
	clientCfg.RequestDelay = cfg.RequestDelay
	clientCfg.CacheTTL = cfg.CacheTTL

	if cfg.RedisURL != "" {
		store, closeFn, err := openCache(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("Response cache unavailable, continuing without it")
		} else {
			clientCfg.Cache = store
			app.cache = store
			app.closers = append(app.closers, closeFn)
			logger.Debug().Msg("Response cache enabled")
		}
	}

	c, err := client.New(clientCfg)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("create catalog client: %w", err)
	}

	fetcher := catalog.NewFetcher(c)
	app.records = fetcher
	app.loader = batch.NewLoader(batch.NewFetcher(fetcher, batch.DefaultConfig()), cfg.BatchLimit)
	app.batchLimit = cfg.BatchLimit
	return app, nil
}

func openCache(ctx context.Context, redisURL string) (*cache.Manager, func() error, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return cache.NewManager(rdb), rdb.Close, nil
}

// Close releases resources opened by newApp.
func (a *App) Close() {
	for _, fn := range a.closers {
		if err := fn(); err != nil {
			a.logger.Warn().Err(err).Msg("Close failed")
		}
	}
	a.closers = nil
}

// ShowRecord prints the human-readable and machine-readable views of a
// record. With jsonOnly only the machine-readable view is written.
func (a *App) ShowRecord(ctx context.Context, identifier string, jsonOnly bool) error {
	rec, err := a.records.FetchByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}

	if jsonOnly {
		return present.WriteRecordJSON(a.out, rec)
	}

	fmt.Fprintln(a.out, "\nHuman-readable format:")
	if err := present.WriteRecordText(a.out, rec); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "\nMachine-readable format:")
	return present.WriteRecordJSON(a.out, rec)
}

// ErrNoCache is returned by cache commands when no Redis cache is configured.
var ErrNoCache = errors.New("response cache is not configured (set POKESTATS_REDIS_URL)")

// ClearCache removes every cached catalog response.
func (a *App) ClearCache(ctx context.Context) error {
	if a.cache == nil {
		return ErrNoCache
	}
	removed, err := a.cache.Purge(ctx)
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	fmt.Fprintln(a.out, renderSuccess(fmt.Sprintf("Cleared %d cached responses", removed)))
	return nil
}

// Report loads the batch (once per App) and prints the named aggregate.
func (a *App) Report(ctx context.Context, name string) error {
	if name != ReportAll && !isReport(name) {
		return fmt.Errorf("unknown report %q (want one of %v or %s)", name, reportOrder, ReportAll)
	}

	if !a.loader.Loaded() {
		fmt.Fprintf(a.out, "Fetching data for %d Pokémon. Please wait...\n", a.batchLimit)
	}
	records, err := a.loader.Load(ctx)
	if err != nil {
		return err
	}

	if name == ReportAll {
		for i, r := range reportOrder {
			if i > 0 {
				fmt.Fprintln(a.out)
			}
			if err := a.writeReport(records, r); err != nil {
				return err
			}
		}
		return nil
	}
	return a.writeReport(records, name)
}

func (a *App) writeReport(records []pokemon.Record, name string) error {
	fmt.Fprintln(a.out)
	switch name {
	case ReportTypes:
		return present.WriteTypeCounts(a.out, stats.CountByType(records))
	case ReportAverages:
		avg, err := stats.AverageExperienceAndTopSpeedType(records)
		if err != nil {
			return err
		}
		return present.WriteAverages(a.out, avg)
	case ReportDistinct:
		abilities, moves := stats.DistinctAbilitiesAndMoves(records)
		return present.WriteDistinct(a.out, abilities, moves)
	case ReportMoves:
		return present.WritePrimaryMoves(a.out, stats.GroupByPrimaryTypeAndMoves(records))
	case ReportTop3:
		return present.WriteTop3(a.out, stats.Top3ByStatsWithMoveDiversity(records))
	default:
		return fmt.Errorf("unknown report %q", name)
	}
}

func isReport(name string) bool {
	for _, r := range reportOrder {
		if r == name {
			return true
		}
	}
	return false
}
