package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the holiday API.
type Metrics struct {
	// Requests by route pattern and HTTP status
	Requests *prometheus.CounterVec

	// Request latency by route pattern
	RequestLatency *prometheus.HistogramVec

	// Holiday lookups by outcome: "holiday", "workday", "invalid"
	Lookups *prometheus.CounterVec
}

// New creates a new Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bank_holidays_requests_total",
			Help: "Total HTTP requests by route and status",
		}, []string{"route", "status"}),

		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bank_holidays_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"route"}),

		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bank_holidays_lookups_total",
			Help: "Holiday membership checks by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	if m != nil {
		m.Requests.WithLabelValues(route, statusLabel(status)).Inc()
		m.RequestLatency.WithLabelValues(route).Observe(d.Seconds())
	}
}

// IncrementLookup records a membership check outcome.
func (m *Metrics) IncrementLookup(outcome string) {
	if m != nil {
		m.Lookups.WithLabelValues(outcome).Inc()
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
