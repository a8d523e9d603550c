// Package metrics exposes Prometheus collectors for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "holocron",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "holocron",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "holocron",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path"},
	)

	rowsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "holocron",
			Subsystem: "store",
			Name:      "rows_created_total",
			Help:      "Total number of rows inserted through the API, by table.",
		},
		[]string{"table"},
	)

	rowsDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "holocron",
			Subsystem: "store",
			Name:      "rows_deleted_total",
			Help:      "Total number of rows deleted through the API, by table.",
		},
		[]string{"table"},
	)

	tableRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "holocron",
			Subsystem: "store",
			Name:      "table_rows",
			Help:      "Row count per table at the last stats report.",
		},
		[]string{"table"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		rowsCreated,
		rowsDeleted,
		tableRows,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{DisableCompression: true})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	})
}

// RecordCreated counts a row inserted into table.
func RecordCreated(table string) {
	rowsCreated.WithLabelValues(table).Inc()
}

// RecordDeleted counts a row deleted from table.
func RecordDeleted(table string) {
	rowsDeleted.WithLabelValues(table).Inc()
}

// SetTableRows records the current row count of table.
func SetTableRows(table string, rows int64) {
	tableRows.WithLabelValues(table).Set(float64(rows))
}

// TableRows returns the gauge for table.
func TableRows(table string) prometheus.Gauge {
	return tableRows.WithLabelValues(table)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// canonicalPath collapses numeric path segments so ids do not explode label
// cardinality: /user/42 becomes /user/:id.
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		if _, err := strconv.ParseInt(part, 10, 64); err == nil {
			parts[i] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
