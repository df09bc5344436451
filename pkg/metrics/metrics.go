package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome исход попытки создать занятие
const (
	OutcomeCreated = "created"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// Metrics набор метрик сервиса.
// Все методы безопасно вызывать на nil - тогда метрики просто не собираются.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	occurrencesTotal    *prometheus.CounterVec
	writeConflictsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (в тестах - prometheus.NewRegistry())
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		occurrencesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduling_occurrences_total",
			Help: "Booking occurrences processed, by source and outcome",
		}, []string{"service", "source", "outcome"}),
		writeConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduling_write_conflicts_total",
			Help: "Bookings rejected by the write-time conflict check",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.occurrencesTotal,
		m.writeConflictsTotal,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

// SetPoolStats обновляет метрики пула соединений
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.service, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(m.service, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(m.service, "idle").Set(float64(stats.Idle))
}

// RecordOccurrences фиксирует итог создания занятий (одиночного или пакетного)
func (m *Metrics) RecordOccurrences(source string, created, skipped, failed int) {
	if m == nil {
		return
	}
	m.occurrencesTotal.WithLabelValues(m.service, source, OutcomeCreated).Add(float64(created))
	m.occurrencesTotal.WithLabelValues(m.service, source, OutcomeSkipped).Add(float64(skipped))
	m.occurrencesTotal.WithLabelValues(m.service, source, OutcomeFailed).Add(float64(failed))
}

// RecordWriteConflict фиксирует отказ при повторной проверке пересечений перед записью
func (m *Metrics) RecordWriteConflict() {
	if m == nil {
		return
	}
	m.writeConflictsTotal.WithLabelValues(m.service).Inc()
}
