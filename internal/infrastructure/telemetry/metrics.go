package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "isignthis_psp"

// Metrics groups the collectors exported on /metrics. A nil *Metrics is valid
// and records nothing, so components can be built without a registry.
type Metrics struct {
	GatewayRequests     *prometheus.CounterVec
	GatewayDuration     *prometheus.HistogramVec
	UnmappedStates      *prometheus.CounterVec
	CallbackValidations *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and prometheus.NewRegistry() in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GatewayRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_requests_total",
			Help:      "Requests sent to the iSignThis gateway by method and outcome.",
		}, []string{"method", "outcome"}),
		GatewayDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_request_duration_seconds",
			Help:      "Latency of requests sent to the iSignThis gateway.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		UnmappedStates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmapped_payment_states_total",
			Help:      "Gateway payment states with no known mapping.",
		}, []string{"state"}),
		CallbackValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "callback_validations_total",
			Help:      "Inbound callback authorization checks by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveGatewayRequest(method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GatewayRequests.WithLabelValues(method, outcome).Inc()
	m.GatewayDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) IncUnmappedState(state string) {
	if m == nil {
		return
	}
	m.UnmappedStates.WithLabelValues(state).Inc()
}

func (m *Metrics) IncCallbackValidation(valid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.CallbackValidations.WithLabelValues(result).Inc()
}
