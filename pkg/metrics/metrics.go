package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Каждый экземпляр использует собственный registry, поэтому в тестах можно создавать несколько
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	laneOccupancy *prometheus.GaugeVec
	laneStatus    *prometheus.GaugeVec
	poolOccupancy prometheus.Gauge

	reservationsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		laneOccupancy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "pool_lane_occupancy",
			Help:        "Current number of swimmers assigned to a lane",
			ConstLabels: constLabels,
		}, []string{"lane"}),
		laneStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "pool_lane_status",
			Help:        "Current lane status (1 for the active status)",
			ConstLabels: constLabels,
		}, []string{"lane", "status"}),
		poolOccupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "pool_occupancy_percent",
			Help:        "Pool-wide occupancy percentage",
			ConstLabels: constLabels,
		}),
		reservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "pool_reservations_total",
			Help:        "Reservation operations by outcome",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.laneOccupancy,
		m.laneStatus,
		m.poolOccupancy,
		m.reservationsTotal,
	)

	return m
}

// Handler возвращает http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает registry (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetLane обновляет занятость и статус дорожки
func (m *Metrics) SetLane(number int, occupancy int, status string) {
	lane := strconv.Itoa(number)
	m.laneOccupancy.WithLabelValues(lane).Set(float64(occupancy))
	m.laneStatus.DeletePartialMatch(prometheus.Labels{"lane": lane})
	m.laneStatus.WithLabelValues(lane, status).Set(1)
}

// SetPoolOccupancy обновляет общий процент занятости бассейна
func (m *Metrics) SetPoolOccupancy(percent float64) {
	m.poolOccupancy.Set(percent)
}

// IncReservation увеличивает счетчик операций с бронированиями
func (m *Metrics) IncReservation(operation, result string) {
	m.reservationsTotal.WithLabelValues(operation, result).Inc()
}
