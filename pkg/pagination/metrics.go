package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageHits counts pages served from a cursor's cache.
	PageHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brreg_cursor_page_hits_total",
			Help: "Total number of cursor pages served from cache",
		},
	)

	// PageFetches counts pages requested from the Fetcher.
	PageFetches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brreg_cursor_page_fetches_total",
			Help: "Total number of cursor page fetches",
		},
	)

	// PageErrors counts failed page fetches.
	PageErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brreg_cursor_page_errors_total",
			Help: "Total number of failed cursor page fetches",
		},
	)
)
