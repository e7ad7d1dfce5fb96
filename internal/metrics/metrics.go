package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finch_collector"

// Metrics holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	photoUploads    *prometheus.CounterVec
	photoBytes      prometheus.Counter
	feedings        *prometheus.CounterVec
	associations    *prometheus.CounterVec
	underfedFinches prometheus.Gauge
}

// New creates the collectors and registers them, along with the Go runtime
// and process collectors, on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		photoUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photo_uploads_total",
			Help:      "Photo ingestion attempts by outcome.",
		}, []string{"outcome"}),
		photoBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photo_upload_bytes_total",
			Help:      "Bytes written to the photo object store.",
		}),
		feedings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedings_total",
			Help:      "Feeding submissions by outcome.",
		}, []string{"outcome"}),
		associations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "toy_associations_total",
			Help:      "Finch/toy association changes by action.",
		}, []string{"action"}),
		underfedFinches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "underfed_finches",
			Help:      "Finches not fully fed today at the last reminder run.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.photoUploads,
		m.photoBytes,
		m.feedings,
		m.associations,
		m.underfedFinches,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// PhotoUpload records the outcome of one photo ingestion and the bytes stored
func (m *Metrics) PhotoUpload(outcome string, size int64) {
	if m == nil {
		return
	}
	m.photoUploads.WithLabelValues(outcome).Inc()
	if size > 0 {
		m.photoBytes.Add(float64(size))
	}
}

// Feeding records the outcome of one feeding submission
func (m *Metrics) Feeding(outcome string) {
	if m == nil {
		return
	}
	m.feedings.WithLabelValues(outcome).Inc()
}

// Association records an associate or disassociate call
func (m *Metrics) Association(action string) {
	if m == nil {
		return
	}
	m.associations.WithLabelValues(action).Inc()
}

// SetUnderfed records how many finches the reminder job found underfed
func (m *Metrics) SetUnderfed(n int) {
	if m == nil {
		return
	}
	m.underfedFinches.Set(float64(n))
}
