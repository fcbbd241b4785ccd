package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fan-out metrics. Labelled by channel (push, email, whatsapp) and
// outcome (sent, failed) so dashboards can watch per-channel delivery.
var (
	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tora",
		Subsystem: "notify",
		Name:      "dispatch_total",
		Help:      "Notification dispatch attempts by channel and outcome.",
	}, []string{"channel", "outcome"})

	tokensDeactivatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tora",
		Subsystem: "notify",
		Name:      "tokens_deactivated_total",
		Help:      "Device tokens deactivated after provider rejection.",
	})

	providerStateGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "tora",
		Subsystem: "notify",
		Name:      "provider_state",
		Help:      "Provider client state (0 initializing, 1 ready, 2 failed).",
	}, []string{"provider"})
)

func recordDispatch(channel string, sent, failed int) {
	if sent > 0 {
		dispatchTotal.WithLabelValues(channel, "sent").Add(float64(sent))
	}
	if failed > 0 {
		dispatchTotal.WithLabelValues(channel, "failed").Add(float64(failed))
	}
}

// RecordProviderState publishes a provider's lifecycle state.
func RecordProviderState(provider string, state ClientState) {
	providerStateGauge.WithLabelValues(provider).Set(float64(state))
}
