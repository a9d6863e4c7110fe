// Package metrics содержит Prometheus-метрики сервиса сигналов.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Переходы жизненного цикла сигналов по типу события
	SignalTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paper_signal_transitions_total",
			Help: "Total number of committed signal lifecycle transitions",
		},
		[]string{"event_type"},
	)

	BroadcastFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paper_signal_broadcast_failures_total",
			Help: "Total number of signal events that could not be published",
		},
		[]string{"event_type"},
	)

	SignalsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paper_signal_purged_total",
			Help: "Total number of retired signals removed by the reaper",
		},
	)

	// WebSocket
	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "paper_signal_websocket_clients",
			Help: "Current number of connected websocket clients",
		},
	)

	WebSocketDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paper_signal_websocket_dropped_total",
			Help: "Total number of websocket clients disconnected for a full send queue",
		},
	)

	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paper_signal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// GinMiddleware замеряет длительность запросов по шаблону маршрута
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
