// Package client provides a typed client for the Enhetsregisteret API of the
// Brønnøysund Register Centre, with tracing, metrics and an optional
// in-process lookup cache.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Sternrassler/brreg-client/pkg/cache"
	"github.com/Sternrassler/brreg-client/pkg/logging"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Prometheus metrics for registry requests.
var (
	brregRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brreg_requests_total",
		Help: "Total registry requests by endpoint and status",
	}, []string{"endpoint", "status"})

	brregRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "brreg_request_duration_seconds",
		Help:    "Registry request duration in seconds by endpoint",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"endpoint"})

	brregErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brreg_errors_total",
		Help: "Total registry errors by class",
	}, []string{"class"})
)

const (
	// DefaultBaseURL is the public Enhetsregisteret API.
	DefaultBaseURL = "https://data.brreg.no/enhetsregisteret/api"

	// DefaultUserAgent identifies this library to the registry.
	DefaultUserAgent = "brreg-client/1.0 (+https://github.com/Sternrassler/brreg-client)"

	// AcceptEnhet pins the versioned media type for enhet lookups and searches.
	AcceptEnhet = "application/vnd.brreg.enhetsregisteret.enhet.v2+json;charset=UTF-8"

	// AcceptUnderenhet pins the versioned media type for underenhet lookups and searches.
	AcceptUnderenhet = "application/vnd.brreg.enhetsregisteret.underenhet.v2+json;charset=UTF-8"

	// AcceptJSON is used for role lookups.
	AcceptJSON = "application/json"

	tracerName = "github.com/Sternrassler/brreg-client/pkg/client"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// UserAgent header sent with every request.
	UserAgent string

	// Timeout per request. Zero means no client side timeout.
	Timeout time.Duration

	// HTTPClient is an optional base client. Its transport is wrapped for
	// tracing; CheckRedirect and Jar are kept.
	HTTPClient *http.Client

	// LookupCacheTTL enables the in-process cache for lookups by
	// organization number when positive. Searches are never cached here.
	LookupCacheTTL time.Duration

	// Logger overrides the component logger.
	Logger *zerolog.Logger

	// TracerProvider overrides the global OpenTelemetry tracer provider.
	TracerProvider trace.TracerProvider
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// Client is the Enhetsregisteret client. It is safe for concurrent use.
//
// A client owns one pooled HTTP session. New opens it; Close releases idle
// connections and makes further operations fail with ErrClientClosed until
// Open is called again.
type Client struct {
	config   Config
	baseURL  string
	logger   zerolog.Logger
	tracer   trace.Tracer
	provider trace.TracerProvider
	cache    *cache.Manager

	mu         sync.RWMutex
	httpClient *http.Client
	transport  http.RoundTripper
}

// New creates a new client and opens its HTTP session.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url must be http or https (got %q)", cfg.BaseURL)
	}

	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be >= 0 (got %s)", cfg.Timeout)
	}

	if cfg.LookupCacheTTL < 0 {
		return nil, fmt.Errorf("lookup cache ttl must be >= 0 (got %s)", cfg.LookupCacheTTL)
	}

	logger := logging.NewLogger("client")
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	c := &Client{
		config:   cfg,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		logger:   logger,
		tracer:   provider.Tracer(tracerName),
		provider: provider,
	}
	if cfg.LookupCacheTTL > 0 {
		c.cache = cache.NewManager(cfg.LookupCacheTTL)
	}

	c.Open()
	return c, nil
}

// Open (re)creates the HTTP session. It is a no-op on an open client.
func (c *Client) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient != nil {
		return
	}

	hc := &http.Client{}
	if c.config.HTTPClient != nil {
		hc.CheckRedirect = c.config.HTTPClient.CheckRedirect
		hc.Jar = c.config.HTTPClient.Jar
		hc.Timeout = c.config.HTTPClient.Timeout
		c.transport = c.config.HTTPClient.Transport
	}
	if c.transport == nil {
		c.transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	if c.config.Timeout > 0 {
		hc.Timeout = c.config.Timeout
	}
	hc.Transport = otelhttp.NewTransport(c.transport, otelhttp.WithTracerProvider(c.provider))

	c.httpClient = hc
}

// Close releases idle connections. Until Open is called, every operation
// fails with ErrClientClosed, including lookups the cache could answer.
// Closing a closed client is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient == nil {
		return nil
	}
	if ci, ok := c.transport.(interface{ CloseIdleConnections() }); ok {
		ci.CloseIdleConnections()
	}
	c.httpClient = nil
	return nil
}

// LookupCache returns the lookup cache, or nil when it is disabled.
func (c *Client) LookupCache() *cache.Manager {
	return c.cache
}

func (c *Client) session() (*http.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.httpClient == nil {
		return nil, ErrClientClosed
	}
	return c.httpClient, nil
}

// request describes one GET against the registry.
type request struct {
	op       string
	route    string // route template, used as metric label
	path     string
	rawQuery string
	accept   string

	// lookup marks a by-id request: 404 and 410 are results, not errors,
	// and the response may be served from the lookup cache.
	lookup bool
}

// get performs a GET request and returns status and body. For lookups a
// 404 or 410 status is returned with a nil error; every other non-2xx
// status is a *RestError.
func (c *Client) get(ctx context.Context, r request) (int, []byte, error) {
	target := c.baseURL + r.path
	if r.rawQuery != "" {
		target += "?" + r.rawQuery
	}

	hc, err := c.session()
	if err != nil {
		return 0, nil, &Error{Op: r.op, Err: err}
	}

	key := cache.Key{Endpoint: r.path}
	if r.lookup && c.cache != nil {
		if entry, err := c.cache.Get(key); err == nil {
			c.logger.Debug().
				Str("endpoint", r.route).
				Str("url", target).
				Int("status", entry.StatusCode).
				Dur("age", entry.Age()).
				Msg("Lookup cache hit")
			return entry.StatusCode, entry.Data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, &Error{Op: r.op, Err: fmt.Errorf("create request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", r.accept)
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := hc.Do(req)
	duration := time.Since(start)
	brregRequestDuration.WithLabelValues(r.route).Observe(duration.Seconds())

	if err != nil {
		brregErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		brregRequestsTotal.WithLabelValues(r.route, "network_error").Inc()
		c.logger.Warn().
			Err(err).
			Str("endpoint", r.route).
			Str("url", target).
			Str("request_id", requestID).
			Str("error_class", string(ErrorClassNetwork)).
			Msg("Registry request failed")
		return 0, nil, newTransportError(http.MethodGet, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		brregErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		brregRequestsTotal.WithLabelValues(r.route, "network_error").Inc()
		restErr := newTransportError(http.MethodGet, target, fmt.Errorf("read body: %w", err))
		restErr.StatusCode = resp.StatusCode
		return 0, nil, restErr
	}

	status := resp.StatusCode
	brregRequestsTotal.WithLabelValues(r.route, strconv.Itoa(status)).Inc()

	c.logger.Debug().
		Str("method", http.MethodGet).
		Str("endpoint", r.route).
		Str("url", target).
		Int("status", status).
		Dur("duration", duration).
		Str("request_id", requestID).
		Msg("Registry request")

	if !isSuccess(status) && !(r.lookup && isMissing(status)) {
		restErr := newStatusError(http.MethodGet, target, status)
		brregErrorsTotal.WithLabelValues(string(restErr.Class)).Inc()
		c.logger.Warn().
			Str("endpoint", r.route).
			Str("url", target).
			Int("status", status).
			Str("request_id", requestID).
			Str("error_class", string(restErr.Class)).
			Msg("Registry request error")
		return 0, nil, restErr
	}

	if r.lookup && c.cache != nil && cache.Cacheable(status) {
		if err := c.cache.Set(key, cache.NewEntry(status, body)); err != nil {
			c.logger.Warn().Err(err).Str("endpoint", r.route).Msg("Failed to cache response")
		}
	}

	return status, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// isMissing reports whether status means "not found" or "gone".
func isMissing(status int) bool {
	return status == http.StatusNotFound || status == http.StatusGone
}
