package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Webhook events received, by event type prefix and result",
		},
		[]string{"family", "result"},
	)

	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transaction_decisions_total",
			Help: "Decisions computed after projection",
		},
		[]string{"decision"},
	)

	EnrichmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichments_total",
			Help: "Enrichment passes, by outcome",
		},
		[]string{"outcome"},
	)

	InternalRiskScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "internal_risk_scores",
			Help:    "Distribution of internal rule scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	ClaimLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrichment_claim_latency_seconds",
			Help:    "Time from claim to release for one transaction",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		EventsTotal,
		DecisionsTotal,
		EnrichmentsTotal,
		InternalRiskScores,
		ClaimLatency,
	)
}
