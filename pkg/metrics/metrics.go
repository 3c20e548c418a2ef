// Package metrics коллекторы Prometheus для HTTP-слоя и бронирований.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal      *prometheus.CounterVec
	httpRequestDuration    *prometheus.HistogramVec
	bookingsCreatedTotal   prometheus.Counter
	bookingsCancelledTotal prometheus.Counter
}

// New создает и регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of successfully created bookings",
			ConstLabels: constLabels,
		}),
		bookingsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of cancelled bookings",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest учитывает завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncBookingCreated увеличивает счётчик созданных бронирований
func (m *Metrics) IncBookingCreated() {
	m.bookingsCreatedTotal.Inc()
}

// IncBookingCancelled увеличивает счётчик отменённых бронирований
func (m *Metrics) IncBookingCancelled() {
	m.bookingsCancelledTotal.Inc()
}

// RegisterActiveBookings регистрирует gauge, читающий количество
// активных бронирований напрямую из реестра
func (m *Metrics) RegisterActiveBookings(serviceName string, count func() float64) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "bookings_active",
		Help:        "Current number of active bookings",
		ConstLabels: prometheus.Labels{"service": serviceName},
	}, count)
}

// Nop заглушка, используется при выключенных метриках
type Nop struct{}

// IncBookingCreated no-op
func (Nop) IncBookingCreated() {}

// IncBookingCancelled no-op
func (Nop) IncBookingCancelled() {}
