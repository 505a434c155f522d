package processor

import (
	"fmt"
	"time"

	"claims-processor/pkg/logger"
	"claims-processor/src/dto"
	"claims-processor/src/events"
	"claims-processor/src/metrics"
	"claims-processor/src/model"
)

const (
	laneStandard  = "standard"
	laneExpedited = "expedited"

	resultProcessed = "processed"
	resultRejected  = "rejected"
	resultFailed    = "failed"
)

type ClaimStore interface {
	CreateOrUpdate(claim *model.Claim) error
}

type AssessmentStore interface {
	Create(assessment *model.ClaimAssessment) error
}

type PolicyChecker interface {
	Exists(policyNumber string) (bool, error)
}

type Assessor interface {
	PerformStandardAssessment(claim *model.Claim) *model.ClaimAssessment
	PerformExpressAssessment(claim *model.Claim) *model.ClaimAssessment
}

type EventSink interface {
	SendProcessedClaimEvent(claim *model.Claim, assessment *model.ClaimAssessment)
	SendUrgentProcessedClaimEvent(claim *model.Claim, assessment *model.ClaimAssessment)
	SendFraudAlert(claim *model.Claim, assessment *model.ClaimAssessment)
	SendHighPriorityNotification(claim *model.Claim, assessment *model.ClaimAssessment)
	SendClaimLifecycleEvent(claim *model.Claim, eventType string)
}

// Processor runs the two intake lanes end to end: policy check, claim
// persistence, assessment, assessment persistence and event fan-out.
type Processor struct {
	claims      ClaimStore
	assessments AssessmentStore
	policies    PolicyChecker
	assessor    Assessor
	sink        EventSink
	logger      *logger.Logger
}

func NewProcessor(claims ClaimStore, assessments AssessmentStore, policies PolicyChecker, assessor Assessor, sink EventSink) *Processor {
	return &Processor{
		claims:      claims,
		assessments: assessments,
		policies:    policies,
		assessor:    assessor,
		sink:        sink,
		logger:      logger.Default(),
	}
}

// ProcessClaimSubmission runs a standard-lane submission. Policy validation
// happens before anything is persisted, so a rejected claim leaves no rows
// behind.
func (p *Processor) ProcessClaimSubmission(submission dto.ClaimSubmission) error {
	started := time.Now()
	claim := BuildClaimFromSubmission(submission)

	p.logger.Infof("[CLAIM-PROCESSOR] Processing claim submission: %s for policy: %s",
		claim.ClaimNumber, claim.PolicyNumber)

	exists, err := p.policies.Exists(claim.PolicyNumber)
	if err != nil {
		metrics.ClaimsProcessed.WithLabelValues(laneStandard, resultFailed).Inc()
		return newProcessingError(claim.ClaimNumber, CodeClaimProcessing,
			fmt.Errorf("policy lookup failed for %s: %w", claim.PolicyNumber, err))
	}
	if !exists {
		p.logger.Warnf("[VALIDATION] Policy not found or inactive: %s for claim: %s",
			claim.PolicyNumber, claim.ClaimNumber)
		metrics.ClaimsProcessed.WithLabelValues(laneStandard, resultRejected).Inc()
		return newProcessingError(claim.ClaimNumber, CodePolicyNotFound,
			fmt.Errorf("%w: %s", ErrPolicyNotFound, claim.PolicyNumber))
	}

	if err := p.claims.CreateOrUpdate(claim); err != nil {
		metrics.ClaimsProcessed.WithLabelValues(laneStandard, resultFailed).Inc()
		return newProcessingError(claim.ClaimNumber, CodePersistence,
			fmt.Errorf("failed to persist claim: %w", err))
	}
	p.logger.Infof("[DATABASE] Claim persisted: %s", claim.ClaimNumber)

	assessment := p.assessor.PerformStandardAssessment(claim)
	if err := p.assessments.Create(assessment); err != nil {
		metrics.ClaimsProcessed.WithLabelValues(laneStandard, resultFailed).Inc()
		return newProcessingError(claim.ClaimNumber, CodePersistence,
			fmt.Errorf("failed to persist assessment: %w", err))
	}

	if assessment.FraudFlag {
		p.logger.Warnf("[FRAUD-DETECTION] Claim flagged for review: %s | Risk Score: %d",
			claim.ClaimNumber, assessment.RiskScore)
		p.sink.SendFraudAlert(claim, assessment)
	}

	if claim.Priority == model.ClaimPriorityHigh || claim.Priority == model.ClaimPriorityUrgent {
		p.logger.Infof("[PRIORITY] High priority claim detected: %s (%s)", claim.ClaimNumber, claim.Priority)
		p.sink.SendHighPriorityNotification(claim, assessment)
	}

	p.sink.SendProcessedClaimEvent(claim, assessment)
	p.sink.SendClaimLifecycleEvent(claim, events.EventTypeClaimProcessed)

	metrics.ClaimsProcessed.WithLabelValues(laneStandard, resultProcessed).Inc()
	metrics.ProcessingDuration.Observe(float64(time.Since(started).Milliseconds()))

	p.logger.Infof("[CLAIM-PROCESSOR] Claim processed: %s | Status: %s | Approved: %s",
		claim.ClaimNumber, claim.Status, assessment.ApprovedAmount)
	return nil
}

// ProcessHighPriorityClaim runs an expedited-lane submission. The lane skips
// the fraud check and uses the fixed express formula.
func (p *Processor) ProcessHighPriorityClaim(submission dto.ClaimSubmission) error {
	started := time.Now()
	claim := BuildHighPriorityClaim(submission)

	p.logger.Infof("[CLAIM-PROCESSOR] Processing HIGH PRIORITY claim: %s for policy: %s",
		claim.ClaimNumber, claim.PolicyNumber)

	exists, err := p.policies.Exists(claim.PolicyNumber)
	if err != nil {
		metrics.ClaimsProcessed.WithLabelValues(laneExpedited, resultFailed).Inc()
		return newProcessingError(claim.ClaimNumber, CodeClaimProcessing,
			fmt.Errorf("policy lookup failed for %s: %w", claim.PolicyNumber, err))
	}
	if !exists {
		p.logger.Warnf("[VALIDATION] Policy not found or inactive: %s for claim: %s",
			claim.PolicyNumber, claim.ClaimNumber)
		metrics.ClaimsProcessed.WithLabelValues(laneExpedited, resultRejected).Inc()
		return newProcessingError(claim.ClaimNumber, CodePolicyNotFound,
			fmt.Errorf("%w: %s", ErrPolicyNotFound, claim.PolicyNumber))
	}

	if err := p.claims.CreateOrUpdate(claim); err != nil {
		metrics.ClaimsProcessed.WithLabelValues(laneExpedited, resultFailed).Inc()
		return newProcessingError(claim.ClaimNumber, CodePersistence,
			fmt.Errorf("failed to persist claim: %w", err))
	}
	p.logger.Infof("[DATABASE] High priority claim persisted: %s", claim.ClaimNumber)

	assessment := p.assessor.PerformExpressAssessment(claim)
	if err := p.assessments.Create(assessment); err != nil {
		metrics.ClaimsProcessed.WithLabelValues(laneExpedited, resultFailed).Inc()
		return newProcessingError(claim.ClaimNumber, CodePersistence,
			fmt.Errorf("failed to persist assessment: %w", err))
	}

	// The expedited lane never fraud-checks or re-notifies on priority: the
	// express assessment fixes the fraud flag false and the claim is already
	// HIGH priority from the builder.
	p.sink.SendUrgentProcessedClaimEvent(claim, assessment)
	p.sink.SendClaimLifecycleEvent(claim, events.EventTypeHighPriorityClaimProcessed)

	metrics.ClaimsProcessed.WithLabelValues(laneExpedited, resultProcessed).Inc()
	metrics.ProcessingDuration.Observe(float64(time.Since(started).Milliseconds()))

	p.logger.Infof("[CLAIM-PROCESSOR] High priority claim processed: %s | Approved: %s | Time: %dms",
		claim.ClaimNumber, assessment.ApprovedAmount, assessment.ProcessingTimeMs)
	return nil
}
