package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	// Движок доступности
	EngineComputations *prometheus.CounterVec
	EngineDuration     *prometheus.HistogramVec

	// Пересчет ближайшей доступности
	RefreshTotal *prometheus.CounterVec
	EventsTotal  *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),

		EngineComputations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_computations_total",
			Help:        "Availability engine computations by operation and outcome",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
		EngineDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "availability_computation_duration_seconds",
			Help:        "Availability engine computation latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"operation"}),

		RefreshTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "next_available_refresh_total",
			Help:        "Next-available refreshes by trigger source and result",
			ConstLabels: constLabels,
		}, []string{"source", "result"}),
		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "change_events_total",
			Help:        "Consumed storage change events by type and result",
			ConstLabels: constLabels,
		}, []string{"event_type", "result"}),
	}
}

// ObserveComputation фиксирует одно вычисление движка
func (m *Metrics) ObserveComputation(operation, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.EngineComputations.WithLabelValues(operation, outcome).Inc()
	m.EngineDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// IncRefresh фиксирует результат пересчета ближайшей доступности
func (m *Metrics) IncRefresh(source, result string) {
	if m == nil {
		return
	}
	m.RefreshTotal.WithLabelValues(source, result).Inc()
}

// IncEvent фиксирует обработку события изменения
func (m *Metrics) IncEvent(eventType, result string) {
	if m == nil {
		return
	}
	m.EventsTotal.WithLabelValues(eventType, result).Inc()
}
