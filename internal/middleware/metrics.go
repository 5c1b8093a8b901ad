package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Total number of HTTP request errors",
		},
		[]string{"method", "path", "status", "error_type"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	chatRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_chat_requests_total",
			Help: "Chat requests handled by the AI assistant, by outcome",
		},
		[]string{"outcome"},
	)

	bookingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Bookings created, by type",
		},
		[]string{"type"},
	)
)

func Metrics(reg *prometheus.Registry) gin.HandlerFunc {
	reg.MustRegister(httpRequestsTotal, httpRequestErrorsTotal, httpRequestDuration,
		chatRequestsTotal, bookingsTotal)

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		duration := time.Since(start).Seconds()

		httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()

		if status >= 400 && status < 500 {
			httpRequestErrorsTotal.WithLabelValues(method, path, statusStr, "client").Inc()
		} else if status >= 500 {
			httpRequestErrorsTotal.WithLabelValues(method, path, statusStr, "server").Inc()
		}

		httpRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)
	}
}

// CountChat records one chat request with outcome "ok", "escalated" or
// "upstream_error".
func CountChat(outcome string) {
	chatRequestsTotal.WithLabelValues(outcome).Inc()
}

// CountBooking records a created booking ("test_ride" or "service").
func CountBooking(bookingType string) {
	bookingsTotal.WithLabelValues(bookingType).Inc()
}
