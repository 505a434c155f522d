package events

import (
	"fmt"
	"time"

	"claims-processor/pkg/logger"
	"claims-processor/pkg/rabbitmq"
	"claims-processor/pkg/utilities"
	"claims-processor/src/dto"
	"claims-processor/src/metrics"
	"claims-processor/src/model"
)

// Channel names, matching the queue each publisher alias routes to.
const (
	ChannelProcessedClaims    = "processed-claims"
	ChannelFraudAlerts        = "fraud-alerts"
	ChannelClaimEvents        = "claim-events"
	ChannelClaimSubmissions   = "claim-submissions"
	ChannelHighPriorityClaims = "high-priority-claims"
)

const (
	ProcessedClaimsPublisherAlias    rabbitmq.PublisherAlias = "ProcessedClaimsPublisher"
	FraudAlertsPublisherAlias        rabbitmq.PublisherAlias = "FraudAlertsPublisher"
	ClaimEventsPublisherAlias        rabbitmq.PublisherAlias = "ClaimEventsPublisher"
	ClaimSubmissionsPublisherAlias   rabbitmq.PublisherAlias = "ClaimSubmissionsPublisher"
	HighPriorityClaimsPublisherAlias rabbitmq.PublisherAlias = "HighPriorityClaimsPublisher"
)

// EventProducer fans processing outcomes out to the named channels.
// Downstream sends are fire-and-forget: a publish failure is logged and
// counted, never propagated, because the claim is already committed. The two
// intake publishes are the exception and surface their failure.
type EventProducer struct {
	processedClaims    rabbitmq.IRabbitmqPublisher
	fraudAlerts        rabbitmq.IRabbitmqPublisher
	claimEvents        rabbitmq.IRabbitmqPublisher
	claimSubmissions   rabbitmq.IRabbitmqPublisher
	highPriorityClaims rabbitmq.IRabbitmqPublisher
	logger             *logger.Logger
}

func NewEventProducer(registry *rabbitmq.Registry) (*EventProducer, error) {
	producer := &EventProducer{logger: logger.Default()}

	wiring := []struct {
		target *rabbitmq.IRabbitmqPublisher
		alias  rabbitmq.PublisherAlias
	}{
		{&producer.processedClaims, ProcessedClaimsPublisherAlias},
		{&producer.fraudAlerts, FraudAlertsPublisherAlias},
		{&producer.claimEvents, ClaimEventsPublisherAlias},
		{&producer.claimSubmissions, ClaimSubmissionsPublisherAlias},
		{&producer.highPriorityClaims, HighPriorityClaimsPublisherAlias},
	}

	for _, w := range wiring {
		publisher, err := registry.Publisher(w.alias)
		if err != nil {
			return nil, err
		}
		*w.target = publisher
	}

	return producer, nil
}

// NewEventProducerFromPublishers wires a producer directly; used by tests.
func NewEventProducerFromPublishers(processedClaims, fraudAlerts, claimEvents, claimSubmissions, highPriorityClaims rabbitmq.IRabbitmqPublisher) *EventProducer {
	return &EventProducer{
		processedClaims:    processedClaims,
		fraudAlerts:        fraudAlerts,
		claimEvents:        claimEvents,
		claimSubmissions:   claimSubmissions,
		highPriorityClaims: highPriorityClaims,
		logger:             logger.Default(),
	}
}

func (p *EventProducer) SendProcessedClaimEvent(claim *model.Claim, assessment *model.ClaimAssessment) {
	event := ProcessedClaimEvent{
		EventType:        EventTypeClaimProcessed,
		ClaimNumber:      claim.ClaimNumber,
		PolicyNumber:     claim.PolicyNumber,
		ClaimType:        claim.ClaimType,
		ClaimedAmount:    claim.ClaimedAmount,
		ApprovedAmount:   assessment.ApprovedAmount,
		RiskScore:        assessment.RiskScore,
		FraudFlag:        assessment.FraudFlag,
		ProcessingTimeMs: assessment.ProcessingTimeMs,
		Timestamp:        time.Now(),
	}

	p.logger.Infof("[EVENT-PRODUCER] Sending processed claim event to %s for: %s", ChannelProcessedClaims, claim.ClaimNumber)
	p.send(p.processedClaims, ChannelProcessedClaims, claim.ClaimNumber, event)
}

func (p *EventProducer) SendUrgentProcessedClaimEvent(claim *model.Claim, assessment *model.ClaimAssessment) {
	event := UrgentProcessedClaimEvent{
		EventType:        EventTypeUrgentClaimProcessed,
		ClaimNumber:      claim.ClaimNumber,
		PolicyNumber:     claim.PolicyNumber,
		Priority:         claim.Priority,
		ApprovedAmount:   assessment.ApprovedAmount,
		ProcessingTimeMs: assessment.ProcessingTimeMs,
		Timestamp:        time.Now(),
	}

	p.logger.Infof("[EVENT-PRODUCER] Sending urgent processed claim event for: %s", claim.ClaimNumber)
	p.send(p.processedClaims, ChannelProcessedClaims, claim.ClaimNumber, event)
}

func (p *EventProducer) SendFraudAlert(claim *model.Claim, assessment *model.ClaimAssessment) {
	alert := FraudAlert{
		AlertType:       AlertTypeFraudDetected,
		ClaimNumber:     claim.ClaimNumber,
		PolicyNumber:    claim.PolicyNumber,
		ClaimedAmount:   claim.ClaimedAmount,
		RiskScore:       assessment.RiskScore,
		AssessorID:      assessment.AssessorID,
		AssessmentNotes: assessment.AssessmentNotes,
		Timestamp:       time.Now(),
	}

	p.logger.Warnf("[EVENT-PRODUCER] Sending FRAUD ALERT to %s for claim: %s (Risk Score: %d)",
		ChannelFraudAlerts, claim.ClaimNumber, assessment.RiskScore)
	p.send(p.fraudAlerts, ChannelFraudAlerts, claim.ClaimNumber, alert)
	metrics.FraudAlerts.Inc()
}

func (p *EventProducer) SendHighPriorityNotification(claim *model.Claim, assessment *model.ClaimAssessment) {
	notification := HighPriorityNotification{
		NotificationType: NotificationTypeHighPriority,
		ClaimNumber:      claim.ClaimNumber,
		PolicyNumber:     claim.PolicyNumber,
		ClaimType:        claim.ClaimType,
		Priority:         claim.Priority,
		ClaimedAmount:    claim.ClaimedAmount,
		Timestamp:        time.Now(),
	}

	p.logger.Infof("[EVENT-PRODUCER] Sending high priority notification for claim: %s", claim.ClaimNumber)
	p.send(p.claimEvents, ChannelClaimEvents, claim.ClaimNumber, notification)
	metrics.HighPriorityNotifications.Inc()
}

func (p *EventProducer) SendClaimLifecycleEvent(claim *model.Claim, eventType string) {
	event := ClaimLifecycleEvent{
		EventType:    eventType,
		ClaimNumber:  claim.ClaimNumber,
		PolicyNumber: claim.PolicyNumber,
		Status:       claim.Status,
		Priority:     claim.Priority,
		ClaimType:    claim.ClaimType,
		Timestamp:    time.Now(),
	}

	p.logger.Infof("[EVENT-PRODUCER] Sending lifecycle event %s for claim: %s", eventType, claim.ClaimNumber)
	p.send(p.claimEvents, ChannelClaimEvents, claim.ClaimNumber, event)
}

// PublishClaimSubmission puts a submission on the standard intake channel.
// Unlike the downstream sends, a failure here must reach the caller: nothing
// has been persisted yet and the submitter needs to know.
func (p *EventProducer) PublishClaimSubmission(submission dto.ClaimSubmission) error {
	p.logger.Infof("[EVENT-PRODUCER] Publishing claim to %s: %s", ChannelClaimSubmissions, submission.ClaimNumber)

	if err := p.claimSubmissions.Publish(submission); err != nil {
		metrics.PublishFailures.WithLabelValues(ChannelClaimSubmissions).Inc()
		p.logger.Errorf(err, "[EVENT-PRODUCER] Failed to publish claim submission: %s", submission.ClaimNumber)
		return fmt.Errorf("failed to publish claim submission: %w", err)
	}

	metrics.EventsPublished.WithLabelValues(ChannelClaimSubmissions).Inc()
	return nil
}

// PublishHighPriorityClaim puts a submission on the expedited intake channel.
func (p *EventProducer) PublishHighPriorityClaim(submission dto.ClaimSubmission) error {
	p.logger.Infof("[EVENT-PRODUCER] Publishing high priority claim to %s: %s", ChannelHighPriorityClaims, submission.ClaimNumber)

	if err := p.highPriorityClaims.Publish(submission); err != nil {
		metrics.PublishFailures.WithLabelValues(ChannelHighPriorityClaims).Inc()
		p.logger.Errorf(err, "[EVENT-PRODUCER] Failed to publish high priority claim: %s", submission.ClaimNumber)
		return fmt.Errorf("failed to publish high priority claim: %w", err)
	}

	metrics.EventsPublished.WithLabelValues(ChannelHighPriorityClaims).Inc()
	return nil
}

func (p *EventProducer) send(publisher rabbitmq.IRabbitmqPublisher, channel, claimNumber string, event utilities.Serializable) {
	if err := publisher.Publish(event); err != nil {
		metrics.PublishFailures.WithLabelValues(channel).Inc()
		p.logger.Errorf(err, "[EVENT-PRODUCER] Failed to publish to %s for claim: %s", channel, claimNumber)
		return
	}
	metrics.EventsPublished.WithLabelValues(channel).Inc()
}
