// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gullyconnect_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gullyconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LikeOutcomes counts like attempts by outcome ("created" for a fresh
	// engagement row, "duplicate" for an idempotent repeat).
	LikeOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gullyconnect_like_outcomes_total",
		Help: "Total like attempts by outcome",
	}, []string{"outcome"})

	// PostsCreated counts created posts by area.
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gullyconnect_posts_created_total",
		Help: "Total posts created by area",
	}, []string{"area"})

	// CommentsCreated counts created comments, split root vs reply.
	CommentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gullyconnect_comments_created_total",
		Help: "Total comments created by thread level",
	}, []string{"level"})

	// CacheHits counts cache-aside lookups by key prefix and result.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gullyconnect_cache_lookups_total",
		Help: "Cache-aside lookups by key prefix and result",
	}, []string{"prefix", "result"})
)

// ObserveQuery records the latency of a database query begun at start.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
