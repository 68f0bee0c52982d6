package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "erp_ui"

// Metrics holds the Prometheus collectors of the UI server on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	proxied         *prometheus.CounterVec
	proxyDuration   *prometheus.HistogramVec
	revocations     *prometheus.CounterVec
}

// NewMetrics registers the HTTP, proxy and revocation collectors plus the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route pattern and status code.",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		proxied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "backend_requests_total",
			Help:      "Requests forwarded to the REST backend, by outcome.",
		}, []string{"method", "outcome"}),
		proxyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Round-trip latency of proxied backend requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		revocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "token_revocations_total",
			Help:      "Logout revocations and rejected revoked tokens.",
		}, []string{"event"}),
	}
	reg.MustRegister(
		m.requests, m.requestDuration, m.proxied, m.proxyDuration, m.revocations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Middleware records request counts and latency by the matched ServeMux
// pattern, so label cardinality stays bounded.
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(ww.status)).Inc()
			m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

func (m *Metrics) observeProxy(method, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.proxied.WithLabelValues(method, outcome).Inc()
	m.proxyDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) countRevocation(event string) {
	if m == nil {
		return
	}
	m.revocations.WithLabelValues(event).Inc()
}
