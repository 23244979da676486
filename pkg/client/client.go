// Package client provides the HTTP client for the PokeAPI catalog with
// request pacing, optional response caching and error classification.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/AmitShokeen001/pokestats/pkg/cache"
	"github.com/AmitShokeen001/pokestats/pkg/logging"
	"github.com/AmitShokeen001/pokestats/pkg/ratelimit"
)

// DefaultBaseURL is the public catalog endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Prometheus metrics for catalog requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokeapi_requests_total",
		Help: "Total catalog requests by route and status",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pokeapi_request_duration_seconds",
		Help:    "Catalog request duration in seconds by route",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"route"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokeapi_errors_total",
		Help: "Total catalog errors by class",
	}, []string{"class"})
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the catalog root, e.g. "https://pokeapi.co/api/v2".
	BaseURL string

	// UserAgent header sent with every request.
	UserAgent string

	// Timeout bounds a single HTTP round trip.
	Timeout time.Duration

	// RequestDelay is the minimum spacing between network requests (0 disables).
	RequestDelay time.Duration

	// Cache is optional; nil disables response caching.
	Cache cache.Store

	// CacheTTL is the fallback lifetime for cached responses without freshness headers.
	CacheTTL time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(userAgent string) Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		UserAgent:    userAgent,
		Timeout:      30 * time.Second,
		RequestDelay: ratelimit.DefaultInterval,
		CacheTTL:     cache.DefaultTTL,
	}
}

// Client is the catalog HTTP client. It issues requests sequentially and is
// not safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	pacer      *ratelimit.Pacer
	cache      cache.Store
	config     Config
	logger     zerolog.Logger
}

// New creates a new catalog client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url must be http or https (got %q)", cfg.BaseURL)
	}

	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	if cfg.RequestDelay < 0 {
		return nil, fmt.Errorf("request_delay must be >= 0 (got %s)", cfg.RequestDelay)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := logging.NewLogger("pokeapi-client")

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: base,
		pacer:   ratelimit.NewPacer(cfg.RequestDelay, logger),
		cache:   cfg.Cache,
		config:  cfg,
		logger:  logger,
	}, nil
}

// BaseURL returns the configured catalog root.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Do performs a GET request with caching, pacing and error classification.
// A nil error means a 2xx response whose body the caller must close; any
// other outcome is an *APIError (or a cache-independent request error).
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	endpoint := req.URL.Path
	route := c.routeLabel(endpoint)

	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(route).Observe(time.Since(startTime).Seconds())
	}()

	// Step 1: Check Cache
	cacheKey := cache.Key{
		Endpoint:    endpoint,
		QueryParams: req.URL.Query(),
	}

	if c.cache != nil {
		entry, err := c.cache.Get(ctx, cacheKey)
		switch {
		case err == nil:
			c.logger.Debug().Str("endpoint", endpoint).Bool("cache_hit", true).Msg("Serving cached response")
			requestsTotal.WithLabelValues(route, "cached").Inc()
			return cache.EntryToResponse(entry, req), nil
		case !errors.Is(err, cache.ErrCacheMiss):
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Cache get error")
		}
	}

	// Step 2: Pace
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for pacer: %w", err)
	}

	// Step 3: Execute HTTP Request
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Msg("Executing catalog request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues(route, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		return nil, &APIError{
			Endpoint:   endpoint,
			ErrorClass: ErrorClassNetwork,
			Message:    "request failed",
			Err:        err,
		}
	}

	requestsTotal.WithLabelValues(route, strconv.Itoa(resp.StatusCode)).Inc()

	// Step 4: Classify non-2xx
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()

		class := classifyStatus(resp.StatusCode)
		if class == "" {
			class = ErrorClassClient
		}
		errorsTotal.WithLabelValues(string(class)).Inc()

		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			Str("error_class", string(class)).
			Msg("Catalog request error")

		return nil, &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			ErrorClass: class,
			Message:    resp.Status,
		}
	}

	// Step 5: Update Cache on success
	if c.cache != nil && resp.StatusCode == http.StatusOK {
		entry, err := cache.ResponseToEntry(resp, c.config.CacheTTL)
		if err != nil {
			resp.Body.Close()
			return nil, &APIError{
				Endpoint:   endpoint,
				StatusCode: resp.StatusCode,
				ErrorClass: ErrorClassNetwork,
				Message:    "read body",
				Err:        err,
			}
		}
		if err := c.cache.Set(ctx, cacheKey, entry); err != nil {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Failed to cache response")
		} else {
			c.logger.Debug().Str("endpoint", endpoint).Dur("ttl", entry.TTL()).Msg("Cached response")
		}
	}

	return resp, nil
}

// Get fetches an endpoint relative to the base URL and returns its body.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	u := c.BaseURL()
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return c.fetch(ctx, u.String())
}

// GetURL fetches an absolute URL, such as a reference from a listing. The URL
// must point at the configured catalog host.
func (c *Client) GetURL(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if !strings.EqualFold(u.Host, c.baseURL.Host) {
		return nil, fmt.Errorf("url %q is outside catalog host %q", rawURL, c.baseURL.Host)
	}
	return c.fetch(ctx, u.String())
}

func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{
			Endpoint:   req.URL.Path,
			StatusCode: resp.StatusCode,
			ErrorClass: ErrorClassNetwork,
			Message:    "read body",
			Err:        err,
		}
	}
	return body, nil
}

// routeLabel collapses record paths to a template to bound metric cardinality.
func (c *Client) routeLabel(path string) string {
	rel := strings.TrimPrefix(path, strings.TrimRight(c.baseURL.Path, "/"))
	segments := strings.Split(strings.Trim(rel, "/"), "/")
	if len(segments) >= 2 {
		return "/" + segments[0] + "/{id}"
	}
	return "/" + segments[0]
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
