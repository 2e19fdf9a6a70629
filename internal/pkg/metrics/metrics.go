package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	// notification deliveries that failed, by channel (amqp, websocket, email)
	notificationFailures *prometheus.CounterVec
	// domain actions, e.g. collaboration_requested, event_registered
	domainEvents *prometheus.CounterVec
}

// New creates the collectors on a fresh registry that also carries the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "impactlink",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "impactlink",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		notificationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "impactlink",
				Name:      "notification_failures_total",
				Help:      "Notifications that could not be delivered",
			},
			[]string{"channel"},
		),
		domainEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "impactlink",
				Name:      "domain_events_total",
				Help:      "Domain events emitted by type",
			},
			[]string{"type"},
		),
	}
	reg.MustRegister(m.requests, m.duration, m.notificationFailures, m.domainEvents)
	return m
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// NotificationFailed counts a failed delivery on channel
func (m *Metrics) NotificationFailed(channel string) {
	m.notificationFailures.WithLabelValues(channel).Inc()
}

// DomainEvent counts an emitted domain event
func (m *Metrics) DomainEvent(eventType string) {
	m.domainEvents.WithLabelValues(eventType).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
