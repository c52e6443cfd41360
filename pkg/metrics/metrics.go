package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains all collectors of the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Requests sent to the exchange API
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec

	// Error notifications shown to users
	NotificationsTotal prometheus.Counter
}

// New creates collectors and registers them in the given registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_api_requests_total",
				Help: "Total number of requests sent to the exchange API",
			},
			[]string{"method", "endpoint", "status"},
		),
		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_api_request_duration_seconds",
				Help:    "Duration of requests sent to the exchange API",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		NotificationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Total number of error notifications raised on pages",
			},
		),
	}
}

// ObserveAPIRequest records a finished request. Status code 0 means that no response was received.
func (m *Metrics) ObserveAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}

	status := "error"
	if statusCode != 0 {
		status = strconv.Itoa(statusCode)
	}

	m.APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// IncNotifications increments the notifications counter.
func (m *Metrics) IncNotifications() {
	if m == nil {
		return
	}

	m.NotificationsTotal.Inc()
}

// Handler returns an HTTP handler that exposes metrics from the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
