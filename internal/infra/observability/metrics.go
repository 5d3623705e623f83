package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wanderlust"

// Metrics owns its registry so every app (and test) gets an isolated set.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests   *prometheus.CounterVec
	HTTPLatency    *prometheus.HistogramVec
	SessionEvents  *prometheus.CounterVec
	Bookings       *prometheus.CounterVec
	ArchiveEvents  *prometheus.CounterVec
	Notifications  *prometheus.CounterVec
	CatalogLatency *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		HTTPLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		SessionEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "session_events_total", Help: "Session store reads/writes/misses/rejects."},
			[]string{"key", "event"}, // event: hit|miss|write|delete|corrupt|error
		),
		Bookings: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "bookings_total", Help: "Booking workflow outcomes."},
			[]string{"item_type", "outcome"}, // outcome: selected|invalid|confirmed|rejected
		),
		ArchiveEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "archive_events_total", Help: "Confirmation archive writes."},
			[]string{"event"}, // event: append|error
		),
		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "notifications_total", Help: "Confirmation notifications."},
			[]string{"channel", "status"},
		),
		CatalogLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "catalog_lookup_duration_seconds",
				Help:    "Listing source lookup duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	m.registry.MustRegister(
		m.HTTPRequests, m.HTTPLatency, m.SessionEvents, m.Bookings,
		m.ArchiveEvents, m.Notifications, m.CatalogLatency,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) ObserveSession(key, event string) {
	m.SessionEvents.WithLabelValues(key, event).Inc()
}

func (m *Metrics) ObserveBooking(itemType, outcome string) {
	m.Bookings.WithLabelValues(itemType, outcome).Inc()
}

func (m *Metrics) ObserveArchive(event string) {
	m.ArchiveEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) ObserveNotification(channel string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	m.Notifications.WithLabelValues(channel, status).Inc()
}

func (m *Metrics) ObserveCatalog(operation string, dur time.Duration) {
	m.CatalogLatency.WithLabelValues(operation).Observe(dur.Seconds())
}
