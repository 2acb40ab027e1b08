// Package client provides the core MyAnimeList API v2 client with request
// pacing, response caching, and error handling.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuromu/mal-client/pkg/cache"
	"github.com/kuromu/mal-client/pkg/endpoint"
	"github.com/kuromu/mal-client/pkg/pacer"
	"github.com/kuromu/mal-client/pkg/params"
)

// Prometheus metrics for client operations.
var (
	malRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mal_requests_total",
		Help: "Total API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	malRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mal_request_duration_seconds",
		Help:    "API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	malErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mal_errors_total",
		Help: "Total API errors by class",
	}, []string{"class"})
)

// ErrorClass represents a classification of HTTP errors.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents network/timeout errors.
	ErrorClassNetwork ErrorClass = "network"
)

// Client is the MyAnimeList API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	pacer      *pacer.Pacer
	builder    *params.Builder
	cache      *cache.Manager
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// ClientID is the MyAnimeList API client ID, sent as the
	// X-MAL-CLIENT-ID header on every request. Required.
	ClientID string

	// Delay is the minimum spacing between consecutive requests.
	// Zero means pacer.DefaultDelay; negative is rejected.
	Delay time.Duration

	// Limit is the session default page size. Zero means params.DefaultLimit;
	// non-positive explicit values are rejected.
	Limit int

	// NSFW includes not-safe-for-work entries in results by default.
	NSFW bool

	// AutoTruncate shortens over-long search queries instead of rejecting them.
	AutoTruncate bool

	// AnimeFields and MangaFields override the session default field
	// selections. Unknown or inapplicable names are dropped with a warning.
	AnimeFields []string
	MangaFields []string

	// Redis enables the response cache when set. Optional.
	Redis *redis.Client

	// CacheTTL is how long cached responses stay fresh. Zero means
	// cache.DefaultTTL. Ignored when Redis is nil.
	CacheTTL time.Duration

	// BaseURL overrides the API base URL (for testing).
	BaseURL string

	// HTTPClient overrides the underlying HTTP client (for testing).
	HTTPClient *http.Client
}

// New creates a client. Returns ErrInvalidConfiguration wrapped errors for
// structurally invalid settings.
func New(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: client ID is required", params.ErrInvalidConfiguration)
	}

	logger := log.With().Str("component", "mal-client").Logger()

	delay := cfg.Delay
	if delay == 0 {
		delay = pacer.DefaultDelay
	}
	p, err := pacer.New(delay, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", params.ErrInvalidConfiguration, err)
	}

	builder := params.NewBuilder(logger)
	if cfg.Limit != 0 {
		if err := builder.SetLimit(cfg.Limit); err != nil {
			return nil, err
		}
	}
	builder.SetIncludeNSFW(cfg.NSFW)
	builder.SetAutoTruncate(cfg.AutoTruncate)
	if cfg.AnimeFields != nil {
		builder.SetAnimeFields(cfg.AnimeFields)
	}
	if cfg.MangaFields != nil {
		builder.SetMangaFields(cfg.MangaFields)
	}

	var cacheManager *cache.Manager
	if cfg.Redis != nil {
		cacheManager = cache.NewManager(cfg.Redis, cfg.CacheTTL)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = endpoint.Base
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		clientID:   cfg.ClientID,
		pacer:      p,
		builder:    builder,
		cache:      cacheManager,
		config:     cfg,
		logger:     logger,
	}, nil
}

// Builder exposes the session parameter builder for default adjustments.
func (c *Client) Builder() *params.Builder { return c.builder }

// Pacer exposes the request pacer for delay adjustments.
func (c *Client) Pacer() *pacer.Pacer { return c.pacer }

// getJSON performs a paced, cached GET against a registered endpoint and
// decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, d endpoint.Descriptor, placeholders map[string]string, opts params.Options, out any) error {
	p, err := c.builder.Build(d, opts)
	if err != nil {
		return err
	}
	path := d.URL(placeholders)
	return c.fetch(ctx, d.Name, path, p, out)
}

// getPageURL performs a paced, cached GET against an absolute paging URL as
// returned in a response's paging block. Paging links already carry the API
// base (host and /v2 prefix), so they are requested as-is rather than
// re-joined with the configured base.
func (c *Client) getPageURL(ctx context.Context, name, rawURL string, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: bad paging url %q: %v", params.ErrInvalidArgument, rawURL, err)
	}

	p := make(map[string]string, len(u.Query()))
	for key, values := range u.Query() {
		if len(values) > 0 {
			p[key] = values[0]
		}
	}

	// Keep cache keys consistent with first-page requests, which are keyed
	// on the path relative to the base.
	keyPath := u.Path
	if base, err := url.Parse(c.baseURL); err == nil && base.Path != "" {
		keyPath = strings.TrimPrefix(keyPath, base.Path)
	}

	u.RawQuery = ""
	u.Fragment = ""
	return c.fetchURL(ctx, name, keyPath, u.String(), p, out)
}

func (c *Client) fetch(ctx context.Context, name, path string, p map[string]string, out any) error {
	return c.fetchURL(ctx, name, path, c.baseURL+path, p, out)
}

func (c *Client) fetchURL(ctx context.Context, name, keyPath, reqURL string, p map[string]string, out any) error {
	startTime := time.Now()
	defer func() {
		malRequestDuration.WithLabelValues(name).Observe(time.Since(startTime).Seconds())
	}()

	// Step 1: Check Cache
	cacheKey := cache.Key{Endpoint: keyPath, QueryParams: p}
	if c.cache != nil {
		entry, err := c.cache.Get(ctx, cacheKey)
		if err == nil {
			c.logger.Debug().
				Str("endpoint", name).
				Bool("cache_hit", true).
				Msg("Serving response from cache")
			malRequestsTotal.WithLabelValues(name, "cached").Inc()
			return json.Unmarshal(entry.Data, out)
		}
		if err != cache.ErrCacheMiss {
			c.logger.Warn().Err(err).Str("endpoint", name).Msg("Cache get error")
		}
	}

	// Step 2: Wait for a request slot
	c.pacer.Acquire()

	// Step 3: Build and execute the request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range p {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("X-MAL-CLIENT-ID", c.clientID)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", name).
		Str("url", req.URL.String()).
		Msg("Executing API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", name).Msg("HTTP request failed")
		malErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		malRequestsTotal.WithLabelValues(name, "network_error").Inc()
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		malErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return fmt.Errorf("read response body: %w", err)
	}

	malRequestsTotal.WithLabelValues(name, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	// Upstream errors are surfaced unchanged, no retry or translation.
	if resp.StatusCode != http.StatusOK {
		errClass := classifyStatus(resp.StatusCode)
		malErrorsTotal.WithLabelValues(string(errClass)).Inc()

		c.logger.Warn().
			Str("endpoint", name).
			Int("status_code", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("API request error")

		return newAPIError(resp.StatusCode, errClass, body)
	}

	// Step 4: Update cache on success
	if c.cache != nil {
		if err := c.cache.Store(ctx, cacheKey, body, resp.StatusCode); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to cache response")
		} else {
			c.logger.Debug().
				Str("endpoint", name).
				Dur("ttl", c.cache.TTL()).
				Msg("Cached response")
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classifyStatus categorizes an HTTP status for observability.
func classifyStatus(statusCode int) ErrorClass {
	switch {
	case statusCode >= 400 && statusCode < 500:
		return ErrorClassClient
	case statusCode >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}
