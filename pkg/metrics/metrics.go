package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContentCacheLookups counts cache lookups by content kind and result (hit|miss).
	ContentCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estateview_content_cache_lookups_total",
			Help: "Total number of content cache lookups",
		},
		[]string{"kind", "result"},
	)

	// ProviderFailures counts content provider calls that ended in an error.
	ProviderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estateview_content_provider_failures_total",
			Help: "Total number of failed content provider fetches",
		},
		[]string{"kind"},
	)

	// ProviderLatency measures content provider fetch latency.
	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estateview_content_provider_latency_seconds",
			Help:    "Content provider fetch latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// SnapshotDuration measures how long a full dashboard aggregation takes.
	SnapshotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estateview_dashboard_snapshot_duration_seconds",
			Help:    "Dashboard snapshot computation duration",
			Buckets: prometheus.DefBuckets,
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estateview_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
