// Package metrics provides Prometheus metrics for the cart service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartMutationsTotal counts engine operations by outcome (changed, unchanged, rejected).
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations by operation and result",
		},
		[]string{"operation", "result"},
	)

	// OutOfStockTotal counts stock rejections.
	OutOfStockTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_out_of_stock_total",
			Help: "Total number of cart operations rejected by a stock bound",
		},
	)

	// PersistenceWritesTotal counts cart document writes by result (success, error, dropped).
	PersistenceWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_persistence_writes_total",
			Help: "Total number of cart persistence writes by result",
		},
		[]string{"result"},
	)

	// CartLoadsTotal counts session rehydrations by result (loaded, absent, discarded, error).
	CartLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_loads_total",
			Help: "Total number of cart document loads by result",
		},
		[]string{"result"},
	)

	// PersistenceWriteDuration tracks cart document write latency.
	PersistenceWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cart_persistence_write_duration_seconds",
			Help:    "Cart persistence write duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// CheckoutRequestsTotal counts checkout attempts by result.
	CheckoutRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_requests_total",
			Help: "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)

	// CheckoutDuration tracks time spent waiting on checkout creation.
	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "Checkout creation duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// SessionCacheSize tracks live cart sessions held in memory.
	SessionCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_session_cache_size",
			Help: "Number of cart sessions held in memory",
		},
	)

	// SessionCacheOperationsTotal tracks session cache lookups and evictions.
	SessionCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_session_cache_operations_total",
			Help: "Total number of session cache operations",
		},
		[]string{"operation", "result"},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, statusCode).Inc()
	}
}

// RecordCartMutation records one engine operation.
func RecordCartMutation(operation, result string) {
	CartMutationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordOutOfStock records a stock rejection.
func RecordOutOfStock() {
	OutOfStockTotal.Inc()
}

// RecordCartLoad records one cart document load.
func RecordCartLoad(result string) {
	CartLoadsTotal.WithLabelValues(result).Inc()
}

// RecordPersistenceWrite records a cart document write.
func RecordPersistenceWrite(result string, duration time.Duration) {
	PersistenceWritesTotal.WithLabelValues(result).Inc()
	if duration > 0 {
		PersistenceWriteDuration.Observe(duration.Seconds())
	}
}

// RecordCheckout records a checkout attempt.
func RecordCheckout(result string, duration time.Duration) {
	CheckoutRequestsTotal.WithLabelValues(result).Inc()
	CheckoutDuration.Observe(duration.Seconds())
}

// RecordSessionCacheOperation records a session cache operation.
func RecordSessionCacheOperation(operation, result string) {
	SessionCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateSessionCacheSize sets the live session gauge.
func UpdateSessionCacheSize(size int) {
	SessionCacheSize.Set(float64(size))
}

// SetCircuitBreakerState records a breaker state as its numeric value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
