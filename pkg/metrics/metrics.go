package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Все методы безопасны для вызова на nil (метрики выключены)
type Metrics struct {
	registry *prometheus.Registry
	service  string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	ReservationsCreated  *prometheus.CounterVec
	ReservationConflicts *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		service:  serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		ReservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_created_total",
			Help: "Total number of created reservations",
		}, []string{"service"}),

		ReservationConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_conflicts_total",
			Help: "Total number of reservation attempts rejected because the slot was taken",
		}, []string{"service"}),

		NotificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Total number of failed reservation notifications",
		}, []string{"service", "channel"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.ReservationsCreated,
		m.ReservationConflicts,
		m.NotificationFailures,
	)

	return m
}

// Handler HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) IncReservationCreated() {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(m.service).Inc()
}

func (m *Metrics) IncReservationConflict() {
	if m == nil {
		return
	}
	m.ReservationConflicts.WithLabelValues(m.service).Inc()
}

func (m *Metrics) IncNotificationFailure(channel string) {
	if m == nil {
		return
	}
	m.NotificationFailures.WithLabelValues(m.service, channel).Inc()
}
