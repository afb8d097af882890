package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "membora_http_requests_total",
		Help: "Total HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "membora_http_request_duration_seconds",
		Help:    "HTTP request latency by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// Metrics records per-route request counts and latencies. Uses the gin
// route pattern, not the raw path, to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unknown"
		}

		httpRequestsTotal.WithLabelValues(
			route,
			ctx.Request.Method,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()

		httpRequestDuration.WithLabelValues(
			route,
			ctx.Request.Method,
		).Observe(time.Since(start).Seconds())
	}
}
