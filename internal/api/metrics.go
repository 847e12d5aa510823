package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rankingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "astra_rankings_total",
		Help: "Ranking requests by outcome.",
	}, []string{"outcome"})

	rankingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "astra_ranking_duration_seconds",
		Help:    "End-to-end ranking computation latency.",
		Buckets: prometheus.DefBuckets,
	})

	integritySkips = promauto.NewCounter(prometheus.CounterOpts{
		Name: "astra_integrity_skips_total",
		Help: "Historical records excluded from aggregation for integrity reasons.",
	})
)
