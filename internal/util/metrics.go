package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AdminLoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_logins_total",
		Help: "Total number of admin login attempts",
	}, []string{"result"})

	OrderStatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_updates_total",
		Help: "Total number of order status updates",
	}, []string{"new_status"})

	OrderStatusUpdateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_update_failures_total",
		Help: "Total number of failed order status updates",
	}, []string{"reason"})

	StatsCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stats_cache_hits_total",
		Help: "Total number of statistics served from the cache",
	})

	StatsCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stats_cache_misses_total",
		Help: "Total number of statistics computed from the database",
	})

	StatsQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stats_query_latency_seconds",
		Help:    "Latency of statistics aggregation queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"period"})

	NotificationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_notifications_created_total",
		Help: "Total number of admin notifications written by the worker",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
