package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClaimsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claims_processed_total",
		Help: "Total number of claim submissions processed, labelled by lane and result.",
	}, []string{"lane", "result"})

	FraudAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "claims_fraud_alerts_total",
		Help: "Total number of fraud alerts emitted.",
	})

	HighPriorityNotifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "claims_high_priority_notifications_total",
		Help: "Total number of high-priority claim notifications emitted.",
	})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claims_events_published_total",
		Help: "Total number of events published, labelled by channel.",
	}, []string{"channel"})

	PublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claims_publish_failures_total",
		Help: "Total number of failed event publishes, labelled by channel.",
	}, []string{"channel"})

	MessagesConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claims_messages_consumed_total",
		Help: "Total number of intake messages consumed, labelled by queue and outcome.",
	}, []string{"queue", "outcome"})

	ProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "claims_processing_duration_ms",
		Help:    "End-to-end claim processing latency in milliseconds.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	PoliciesExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "claims_policies_expired_total",
		Help: "Total number of policies marked expired by the sweep worker.",
	})
)
