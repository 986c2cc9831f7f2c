// Package metrics exposes Prometheus metrics for the HTTP API and the business workflows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bizdesk"

// Metrics holds every collector registered by the service
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AIRequests          *prometheus.CounterVec
	AIRequestDuration   *prometheus.HistogramVec
	PurchaseOrders      prometheus.Counter
	StatusChanges       *prometheus.CounterVec
	ReportCacheLookups  *prometheus.CounterVec
}

// New creates the collectors on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AIRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ai_requests_total",
				Help:      "Text generation calls by feature and outcome",
			},
			[]string{"feature", "outcome"},
		),
		AIRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ai_request_duration_seconds",
				Help:      "Duration of text generation calls in seconds",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
			},
			[]string{"feature"},
		),
		PurchaseOrders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_orders_generated_total",
			Help:      "Purchase orders created from accepted offers",
		}),
		StatusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "status_changes_total",
				Help:      "Status changes by entity and new status",
			},
			[]string{"entity", "status"},
		),
		ReportCacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_cache_lookups_total",
				Help:      "Report cache lookups by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.AIRequests,
		m.AIRequestDuration,
		m.PurchaseOrders,
		m.StatusChanges,
		m.ReportCacheLookups,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the registry, mainly for tests
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// ObserveAI records the outcome of a text generation call
func (m *Metrics) ObserveAI(feature, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.AIRequests.WithLabelValues(feature, outcome).Inc()
	m.AIRequestDuration.WithLabelValues(feature).Observe(d.Seconds())
}

// StatusChanged counts a status change of entity
func (m *Metrics) StatusChanged(entity, status string) {
	if m == nil {
		return
	}
	m.StatusChanges.WithLabelValues(entity, status).Inc()
}

// PurchaseOrdersCreated adds n generated purchase orders
func (m *Metrics) PurchaseOrdersCreated(n int) {
	if m == nil {
		return
	}
	m.PurchaseOrders.Add(float64(n))
}

// CacheLookup counts a report cache hit or miss
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ReportCacheLookups.WithLabelValues(result).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and latency labelled by the matched chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
