package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	statsQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "league_stats_queries_total",
		Help: "Aggregate stat queries by scope kind and outcome",
	}, []string{"scope", "outcome"})

	statsQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "league_stats_query_duration_seconds",
		Help:    "Duration of locate + aggregate query round trips",
		Buckets: prometheus.DefBuckets,
	})

	tablesDiscovered = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "league_stats_tables_discovered",
		Help:    "Number of per-game tables found per catalog lookup",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})

	tablesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_stats_tables_skipped_total",
		Help: "Catalog entries rejected by table name validation",
	})

	noTablesFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_stats_no_tables_total",
		Help: "Requests for a scope with no per-game tables",
	})
)
