package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/relaykit/relay/internal/domain"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	MessagesSent    *prometheus.CounterVec
	MessagesFailed  *prometheus.CounterVec
	DispatchLatency *prometheus.HistogramVec
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "messages_sent_total",
			Help: "Total number of successfully dispatched messages.",
		}, []string{"category", "medium"}),

		MessagesFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "messages_failed_total",
			Help: "Total number of messages whose delivery channel reported a failure.",
		}, []string{"medium"}),

		DispatchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "message_dispatch_seconds",
			Help:    "End-to-end dispatch latency from request to channel ack.",
			Buckets: prometheus.DefBuckets,
		}, []string{"medium"}),
	}

	reg.MustRegister(
		m.MessagesSent,
		m.MessagesFailed,
		m.DispatchLatency,
	)

	return m
}

// DispatchHooks returns the metric callback functions expected by
// dispatch.Hooks. Centralises the prometheus observation calls so the
// dispatcher stays metrics-agnostic.
func (m *Metrics) DispatchHooks() (
	onSent func(domain.Category, domain.Medium, time.Duration),
	onFailed func(domain.Medium),
) {
	onSent = func(c domain.Category, med domain.Medium, latency time.Duration) {
		m.MessagesSent.WithLabelValues(string(c), string(med)).Inc()
		m.DispatchLatency.WithLabelValues(string(med)).Observe(latency.Seconds())
	}
	onFailed = func(med domain.Medium) {
		m.MessagesFailed.WithLabelValues(string(med)).Inc()
	}
	return
}
