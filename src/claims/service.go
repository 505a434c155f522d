package claims

import (
	"fmt"

	"claims-processor/pkg/logger"
	"claims-processor/src/assessment"
	"claims-processor/src/dto"
	"claims-processor/src/model"
)

type IntakePublisher interface {
	PublishClaimSubmission(submission dto.ClaimSubmission) error
	PublishHighPriorityClaim(submission dto.ClaimSubmission) error
}

// Service is the REST-facing claims API: it validates submissions, hands them
// to the intake queues and answers claim queries from the database.
type Service struct {
	repository  Repository
	assessments assessment.Repository
	intake      IntakePublisher
	logger      *logger.Logger
}

func NewService(repository Repository, assessments assessment.Repository, intake IntakePublisher) *Service {
	return &Service{
		repository:  repository,
		assessments: assessments,
		intake:      intake,
		logger:      logger.Default(),
	}
}

// SubmitClaim validates a submission and publishes it on the standard intake
// channel. Processing happens asynchronously; the caller only learns that the
// submission was accepted.
func (s *Service) SubmitClaim(submission dto.ClaimSubmission) error {
	if err := submission.Validate(); err != nil {
		return fmt.Errorf("invalid claim submission: %w", err)
	}

	s.logger.Infof("[CLAIMS-API] Accepting claim submission for policy: %s", submission.PolicyNumber)
	return s.intake.PublishClaimSubmission(submission)
}

// SubmitUrgentClaim validates a submission, forces URGENT priority and
// publishes it on the expedited intake channel.
func (s *Service) SubmitUrgentClaim(submission dto.ClaimSubmission) error {
	if err := submission.Validate(); err != nil {
		return fmt.Errorf("invalid claim submission: %w", err)
	}

	submission.Priority = model.ClaimPriorityUrgent
	s.logger.Infof("[CLAIMS-API] Accepting URGENT claim submission for policy: %s", submission.PolicyNumber)
	return s.intake.PublishHighPriorityClaim(submission)
}

func (s *Service) GetClaimByNumber(claimNumber string) (*model.Claim, error) {
	return s.repository.FindByClaimNumber(claimNumber)
}

func (s *Service) GetClaimsByPolicy(policyNumber string) ([]model.Claim, error) {
	return s.repository.FindByPolicyNumber(policyNumber)
}

func (s *Service) GetPendingClaims() ([]model.Claim, error) {
	return s.repository.FindPendingClaims()
}

func (s *Service) GetLatestAssessment(claimNumber string) (*model.ClaimAssessment, error) {
	return s.assessments.FindLatestByClaimNumber(claimNumber)
}
