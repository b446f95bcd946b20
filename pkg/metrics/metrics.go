// Package metrics provides the Prometheus registry and HTTP handler for the
// Enhetsregisteret client. All metrics are defined in their respective
// packages (client, cache, pagination) via promauto to maintain modularity
// and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Handler returns an HTTP handler exposing all registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - brreg_requests_total{endpoint, status} (Counter): Requests by route template and HTTP status
//   - brreg_request_duration_seconds{endpoint} (Histogram): Request duration by route template
//   - brreg_errors_total{class} (Counter): REST errors by class (client, server, network)
//
// Lookup Cache Metrics (pkg/cache):
//   - brreg_lookup_cache_hits_total{kind} (Counter): Hits by kind (positive, negative)
//   - brreg_lookup_cache_misses_total (Counter): Misses
//   - brreg_lookup_cache_entries (Gauge): Entries currently held
//
// Cursor Metrics (pkg/pagination):
//   - brreg_cursor_page_hits_total (Counter): Pages served from a cursor cache
//   - brreg_cursor_page_fetches_total (Counter): Pages fetched from the registry
//   - brreg_cursor_page_errors_total (Counter): Failed page fetches
//
// The endpoint label is always a route template such as /enheter/{id}, never
// a raw organization number.
//
// Example Prometheus Queries:
//
//   # Lookup Cache Hit Rate
//   sum(rate(brreg_lookup_cache_hits_total[5m])) /
//   (sum(rate(brreg_lookup_cache_hits_total[5m])) + rate(brreg_lookup_cache_misses_total[5m]))
//
//   # Cursor Cache Efficiency
//   rate(brreg_cursor_page_hits_total[5m]) / rate(brreg_cursor_page_fetches_total[5m])
//
//   # Request Error Rate
//   rate(brreg_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(brreg_request_duration_seconds_bucket[5m]))
