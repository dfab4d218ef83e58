package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClicksRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clickrec_clicks_recorded_total",
			Help: "Total number of clicks appended to the ledger",
		},
		[]string{"source"}, // "http", "queue"
	)

	LedgerResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clickrec_ledger_resets_total",
			Help: "Total number of click history resets",
		},
		[]string{"result"}, // "reset", "not_found"
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clickrec_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"result"}, // "success", "not_found", "error"
	)

	CategoryLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clickrec_category_lookup_duration_seconds",
			Help:    "Duration of sub-category lookups against the category store",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "result"},
	)

	CategoryCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clickrec_category_cache_total",
			Help: "Sub-category cache lookups by outcome",
		},
		[]string{"outcome"}, // "hit", "miss", "error"
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clickrec_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	FeedSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clickrec_feed_subscribers",
			Help: "Number of connected click feed subscribers",
		},
	)
)
