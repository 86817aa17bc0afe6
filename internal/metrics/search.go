package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// SearchesTotal counts search requests by tab and outcome.
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quiltly",
			Name:      "searches_total",
			Help:      "Total number of search requests by tab and outcome",
		},
		[]string{"tab", "status"},
	)

	// SearchDuration measures end-to-end search latency by tab.
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quiltly",
			Name:      "search_duration_seconds",
			Help:      "Search request duration in seconds by tab",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"tab"},
	)

	// SearchCandidates tracks how many candidates each fetcher loaded before
	// scoring. The engine is full-fetch-then-rank, so this is its principal
	// scalability signal.
	SearchCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quiltly",
			Name:      "search_candidates",
			Help:      "Candidates fetched per search by entity type",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"entity"},
	)
)

var registerSearch sync.Once

// RegisterSearchMetrics registers engine metrics explicitly (no init()).
// Safe to call more than once.
func RegisterSearchMetrics() {
	registerSearch.Do(func() {
		prometheus.MustRegister(SearchesTotal)
		prometheus.MustRegister(SearchDuration)
		prometheus.MustRegister(SearchCandidates)
	})
}
