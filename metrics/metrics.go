package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contest_api_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contest_api_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "contest_api_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contest_api_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contest_api_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// SubmissionsStored counts submission files accepted and stored
	SubmissionsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contest_api_submissions_stored_total",
			Help: "Total number of submission files stored, by competition",
		},
		[]string{"competition"},
	)

	// SubmissionsRejected counts submission files rejected before storage
	SubmissionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contest_api_submissions_rejected_total",
			Help: "Total number of submission files rejected, by reason",
		},
		[]string{"reason"},
	)

	// ScoreBroadcasts counts score updates pushed to scoreboard clients
	ScoreBroadcasts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contest_api_score_broadcasts_total",
			Help: "Total number of score updates broadcast over websockets",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "contest_api_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "contest_api_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// CacheHits counts the number of session cache hits
    CacheHits = promauto.NewCounter(
        prometheus.CounterOpts{
            Name: "contest_api_cache_hits_total",
            Help: "Total number of session cache hits",
        },
    )

    // CacheMisses counts the number of session cache misses
    CacheMisses = promauto.NewCounter(
        prometheus.CounterOpts{
            Name: "contest_api_cache_misses_total",
            Help: "Total number of session cache misses",
        },
    )

    // SystemCPUUsage tracks CPU usage percentage
    SystemCPUUsage = promauto.NewGaugeVec(
        prometheus.GaugeOpts{
            Name: "contest_api_system_cpu_usage_percent",
            Help: "CPU usage percentage by core",
        },
        []string{"core"},
    )

    // SystemDiskUsage tracks disk usage of the upload volume
    SystemDiskUsage = promauto.NewGaugeVec(
        prometheus.GaugeOpts{
            Name: "contest_api_system_disk_usage_bytes",
            Help: "Disk usage statistics in bytes",
        },
        []string{"path", "type"}, // type is "used", "free" or "total"
    )

    // SystemLoadAverage tracks system load averages
    SystemLoadAverage = promauto.NewGaugeVec(
        prometheus.GaugeOpts{
            Name: "contest_api_system_load_average",
            Help: "System load average",
        },
        []string{"period"}, // "1min", "5min", "15min"
    )
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
