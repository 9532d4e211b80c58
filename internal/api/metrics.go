package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"survey-labeler/internal/reconcile"
)

const metricsNamespace = "survey_labeler"

// Metrics collects request and reconciliation counters on a private
// registry. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	columns     prometheus.Counter
	notFound    prometheus.Counter
	undecodable prometheus.Counter
}

// NewMetrics creates and registers the API metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		columns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "columns_reconciled_total",
			Help:      "Dataset columns reconciled.",
		}),
		notFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "labels_not_found_total",
			Help:      "Columns left without a label.",
		}),
		undecodable: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "undecodable_syntax_total",
			Help:      "Syntax uploads rejected as undecodable.",
		}),
	}

	m.registry.MustRegister(m.requests, m.duration, m.columns, m.notFound, m.undecodable)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records the route, status and latency of every request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		m.requests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) observeReconcile(res *reconcile.Result) {
	if m == nil {
		return
	}

	m.columns.Add(float64(len(res.Columns)))
	m.notFound.Add(float64(res.Report.Summary().NotFound))
}

func (m *Metrics) observeUndecodable() {
	if m == nil {
		return
	}

	m.undecodable.Inc()
}
