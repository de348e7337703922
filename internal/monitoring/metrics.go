package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for storaged.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Filesystem operation metrics
	OpsTotal   *prometheus.CounterVec
	OpDuration *prometheus.HistogramVec

	// I/O volume
	BytesRead    prometheus.Counter
	BytesWritten prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector registered on reg. A nil reg
// uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storaged_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storaged_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		OpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storaged_fs_operations_total",
				Help: "Total number of filesystem operations",
			},
			[]string{"operation", "status"},
		),
		OpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storaged_fs_operation_duration_seconds",
				Help:    "Filesystem operation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"operation"},
		),

		BytesRead: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "storaged_fs_bytes_read_total",
				Help: "Total bytes read from files",
			},
		),
		BytesWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "storaged_fs_bytes_written_total",
				Help: "Total bytes written to files",
			},
		),

		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "storaged_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}

	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric.
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordOp records a filesystem operation.
func (m *Metrics) RecordOp(operation, status string, duration time.Duration) {
	m.OpsTotal.WithLabelValues(operation, status).Inc()
	m.OpDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// AddBytesRead accumulates file bytes served.
func (m *Metrics) AddBytesRead(n int) {
	m.BytesRead.Add(float64(n))
}

// AddBytesWritten accumulates file bytes accepted.
func (m *Metrics) AddBytesWritten(n int) {
	m.BytesWritten.Add(float64(n))
}
