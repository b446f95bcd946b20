package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup cache metrics. Hits are labelled "positive" for stored 200
// responses and "negative" for stored 404/410 answers.
var (
	lookupHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brreg_lookup_cache_hits_total",
		Help: "Lookup cache hits by kind",
	}, []string{"kind"})

	lookupMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brreg_lookup_cache_misses_total",
		Help: "Lookup cache misses, including expired entries",
	})

	lookupEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brreg_lookup_cache_entries",
		Help: "Entries held by the lookup cache, expired or not",
	})
)
