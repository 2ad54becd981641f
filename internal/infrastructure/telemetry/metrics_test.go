package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveGatewayRequest("GET", "success", 10*time.Millisecond)
	m.ObserveGatewayRequest("GET", "success", 20*time.Millisecond)
	m.ObserveGatewayRequest("POST", "provider_error", time.Millisecond)
	m.IncUnmappedState("weird")
	m.IncCallbackValidation(true)
	m.IncCallbackValidation(false)
	m.IncCallbackValidation(false)

	if got := testutil.ToFloat64(m.GatewayRequests.WithLabelValues("GET", "success")); got != 2 {
		t.Fatalf("expected 2 GET requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.GatewayRequests.WithLabelValues("POST", "provider_error")); got != 1 {
		t.Fatalf("expected 1 failed POST, got %v", got)
	}
	if got := testutil.ToFloat64(m.UnmappedStates.WithLabelValues("weird")); got != 1 {
		t.Fatalf("expected 1 unmapped state, got %v", got)
	}
	if got := testutil.ToFloat64(m.CallbackValidations.WithLabelValues("invalid")); got != 2 {
		t.Fatalf("expected 2 invalid callbacks, got %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveGatewayRequest("GET", "success", time.Millisecond)
	m.IncUnmappedState("x")
	m.IncCallbackValidation(true)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "", "nonsense"} {
		logger, err := NewLogger(level)
		if err != nil {
			t.Fatalf("level %q: unexpected error: %v", level, err)
		}
		if logger == nil {
			t.Fatalf("level %q: expected logger", level)
		}
	}
}
