package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Event ingestion metrics
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerochat_collector_events_total",
			Help: "Total number of events received, by outcome",
		},
		[]string{"status"},
	)

	EventBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aerochat_collector_event_bytes_total",
			Help: "Total bytes of event payloads received",
		},
	)

	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aerochat_collector_ingest_duration_seconds",
			Help:    "Duration of event ingestion in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Downstream metrics
	StorageErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aerochat_collector_storage_errors_total",
			Help: "Total number of storage write errors",
		},
	)

	CacheErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aerochat_collector_cache_errors_total",
			Help: "Total number of recent-cache write errors",
		},
	)

	FanoutErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aerochat_collector_fanout_errors_total",
			Help: "Total number of fan-out publish errors",
		},
	)
)
