package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics контейнер prometheus-метрик сервиса
// Регистрирует коллекторы в дефолтном registry, который отдается через promhttp
type Metrics struct {
	serviceName string

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     prometheus.Gauge
	dbConnsIdle     prometheus.Gauge
	dbConnsInUse    prometheus.Gauge

	availabilityComputeDuration prometheus.Histogram
	cacheHits                   prometheus.Counter
	cacheMisses                 prometheus.Counter
	cacheCoalesced              prometheus.Counter
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total count of HTTP requests by method, path and status.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds.",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests currently being served.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),

		dbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query duration in seconds by operation.",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"operation"},
		),
		dbConnsOpen: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_connections_open",
				Help:        "Number of open database connections.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
		dbConnsIdle: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_connections_idle",
				Help:        "Number of idle database connections.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
		dbConnsInUse: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_connections_in_use",
				Help:        "Number of database connections currently in use.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),

		availabilityComputeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "availability_month_compute_duration_seconds",
				Help:        "Duration of a full month availability computation.",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "availability_cache_hits_total",
				Help:        "Count of availability cache hits.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
		cacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "availability_cache_misses_total",
				Help:        "Count of availability cache misses.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
		cacheCoalesced: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "availability_cache_coalesced_total",
				Help:        "Count of requests served by an in-flight computation for the same key.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestsInFlight,
		m.dbQueryDuration,
		m.dbConnsOpen,
		m.dbConnsIdle,
		m.dbConnsInUse,
		m.availabilityComputeDuration,
		m.cacheHits,
		m.cacheMisses,
		m.cacheCoalesced,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncRequestsInFlight увеличивает счетчик запросов в обработке
func (m *Metrics) IncRequestsInFlight() {
	m.httpRequestsInFlight.Inc()
}

// DecRequestsInFlight уменьшает счетчик запросов в обработке
func (m *Metrics) DecRequestsInFlight() {
	m.httpRequestsInFlight.Dec()
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBConnectionStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBConnectionStats(open, idle, inUse int) {
	m.dbConnsOpen.Set(float64(open))
	m.dbConnsIdle.Set(float64(idle))
	m.dbConnsInUse.Set(float64(inUse))
}

// ObserveAvailabilityCompute фиксирует длительность расчета месяца
func (m *Metrics) ObserveAvailabilityCompute(duration time.Duration) {
	m.availabilityComputeDuration.Observe(duration.Seconds())
}

// IncCacheHit фиксирует попадание в кэш доступности
func (m *Metrics) IncCacheHit() {
	m.cacheHits.Inc()
}

// IncCacheMiss фиксирует промах кэша доступности
func (m *Metrics) IncCacheMiss() {
	m.cacheMisses.Inc()
}

// IncCacheCoalesced фиксирует запрос, склеенный с уже идущим расчетом
func (m *Metrics) IncCacheCoalesced() {
	m.cacheCoalesced.Inc()
}
