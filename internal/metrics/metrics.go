package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opsboard_http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "opsboard_http_request_duration_seconds",
			Help:    "HTTP request duration by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opsboard_login_attempts_total",
			Help: "Login attempts by outcome (success, failure)",
		},
		[]string{"outcome"},
	)

	TaskOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opsboard_task_operations_total",
			Help: "Task lifecycle operations by kind and operation",
		},
		[]string{"kind", "operation"},
	)

	RecordsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opsboard_records_inserted_total",
			Help: "Append-only records inserted by collection",
		},
		[]string{"collection"},
	)
)

// Middleware observes every request. The route template (not the raw URL) is
// used as the path label to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
