// Package metrics exposes Prometheus request metrics for the shell server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/louisbranch/appshell/internal/services/shell/platform/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "appshell"
	subsystem = "http"
)

// RouteFunc names the route a request is counted under. It must return a
// bounded set of values.
type RouteFunc func(r *http.Request) string

// Metrics holds the shell collectors registered on one registry.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	navEntries      prometheus.Gauge
}

// New registers the shell collectors on registry; nil creates a private one.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total HTTP requests by route, status and HTMX partial flag",
		}, []string{"route", "status", "htmx"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		navEntries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "navigation",
			Name:      "entries",
			Help:      "Number of entries in the navigation registry",
		}),
	}
}

// SetNavigationEntries records the registry size.
func (m *Metrics) SetNavigationEntries(n int) {
	m.navEntries.Set(float64(n))
}

// Middleware counts and times requests under the route named by route.
func (m *Metrics) Middleware(route RouteFunc) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := httpx.NewStatusRecorder(w)
			next.ServeHTTP(rec, r)

			name := "unknown"
			if route != nil {
				name = route(r)
			}
			m.requestsTotal.WithLabelValues(name, strconv.Itoa(rec.Status), strconv.FormatBool(httpx.IsHTMXRequest(r))).Inc()
			m.requestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
