package metrics

import "github.com/prometheus/client_golang/prometheus"

// FormMetrics exposes counters/histograms for the lead-capture flow.
type FormMetrics struct {
	submissionsTotal  *prometheus.CounterVec
	notificationTotal *prometheus.CounterVec
	submitLatency     prometheus.Histogram
}

func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homesite",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Total contact form submissions by outcome",
		}, []string{"status"}),
		notificationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homesite",
			Subsystem: "contact",
			Name:      "notifications_total",
			Help:      "Total lead notification emails by outcome",
		}, []string{"status"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "homesite",
			Subsystem: "contact",
			Name:      "submit_latency_seconds",
			Help:      "Latency of the contact submission pipeline",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.notificationTotal, m.submitLatency)
	return m
}

func (m *FormMetrics) ObserveSubmission(status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
}

func (m *FormMetrics) ObserveNotification(status string) {
	if m == nil {
		return
	}
	m.notificationTotal.WithLabelValues(status).Inc()
}

func (m *FormMetrics) ObserveSubmitLatency(seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.Observe(seconds)
}
