package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFormMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFormMetrics(reg)

	m.ObserveSubmission("ok")
	m.ObserveSubmission("ok")
	m.ObserveSubmission("invalid")
	m.ObserveNotification("error")

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("expected 2 ok submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("invalid")); got != 1 {
		t.Errorf("expected 1 invalid submission, got %v", got)
	}
	if got := testutil.ToFloat64(m.notificationTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("expected 1 notification error, got %v", got)
	}
}

func TestFormMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *FormMetrics
	m.ObserveSubmission("ok")
	m.ObserveNotification("ok")
	m.ObserveSubmitLatency(0.1)
}
