package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор метрик дашборда
type Metrics struct {
	httpRequestsTotal      *prometheus.CounterVec
	httpRequestDuration    *prometheus.HistogramVec
	backendRequestsTotal   *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec
	roomsLoaded            prometheus.Gauge
	refreshTotal           *prometheus.CounterVec
}

// New регистрирует метрики в реестре по умолчанию (его отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		backendRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_requests_total",
			Help:        "Total number of calls to the hotel backend",
			ConstLabels: constLabels,
		}, []string{"call", "outcome"}),

		backendRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Hotel backend call duration in seconds",
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			ConstLabels: constLabels,
		}, []string{"call"}),

		roomsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "dashboard_rooms_loaded",
			Help:        "Number of rooms in the last applied refresh",
			ConstLabels: constLabels,
		}),

		refreshTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "dashboard_refresh_total",
			Help:        "Room list refreshes by outcome (applied, stale, failed)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBackendCall учитывает вызов бэкенда гостиницы
func (m *Metrics) ObserveBackendCall(call, outcome string, duration time.Duration) {
	m.backendRequestsTotal.WithLabelValues(call, outcome).Inc()
	m.backendRequestDuration.WithLabelValues(call).Observe(duration.Seconds())
}

// ObserveRefresh учитывает обновление списка номеров
func (m *Metrics) ObserveRefresh(outcome string, roomsLoaded int) {
	m.refreshTotal.WithLabelValues(outcome).Inc()
	if outcome == RefreshApplied {
		m.roomsLoaded.Set(float64(roomsLoaded))
	}
}

// Исходы обновления списка номеров
const (
	RefreshApplied = "applied"
	RefreshStale   = "stale"
	RefreshFailed  = "failed"
)
