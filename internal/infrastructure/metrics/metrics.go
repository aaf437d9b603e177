// Package metrics expone las métricas Prometheus del servicio: tráfico HTTP,
// logins por rol y transiciones de los dashboards.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/dolphnet-api/internal/application/ports"
)

var _ ports.MetricsRecorder = (*Metrics)(nil)

// Metrics colectores registrados en un registro propio.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	loginsTotal         *prometheus.CounterVec
	transitionsTotal    *prometheus.CounterVec
}

// New crea y registra los colectores, junto con los del runtime de Go y del proceso.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		loginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dolphnet_logins_total",
				Help: "Total number of logins by role",
			},
			[]string{"role"},
		),
		transitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dolphnet_transitions_total",
				Help: "Total number of dashboard transitions",
			},
			[]string{"dashboard", "action"},
		),
	}
	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.loginsTotal,
		m.transitionsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveHTTP registra una petición terminada. route es el patrón de la ruta, no la URL.
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// LoginRecorded implementa ports.MetricsRecorder.
func (m *Metrics) LoginRecorded(role string) {
	m.loginsTotal.WithLabelValues(role).Inc()
}

// TransitionRecorded implementa ports.MetricsRecorder.
func (m *Metrics) TransitionRecorded(dashboard, action string) {
	m.transitionsTotal.WithLabelValues(dashboard, action).Inc()
}

// Handler handler HTTP de exposición para GET /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry registro subyacente (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
