package processor

import (
	"strings"

	"claims-processor/src/dto"
	"claims-processor/src/model"

	"github.com/google/uuid"
)

func generateClaimNumber(prefix string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + strings.ToUpper(token)
}

// BuildClaimFromSubmission maps a standard-lane submission onto a new claim.
// A missing claim number gets a generated CLM- token; a missing priority
// defaults to NORMAL.
func BuildClaimFromSubmission(submission dto.ClaimSubmission) *model.Claim {
	claimNumber := submission.ClaimNumber
	if claimNumber == "" {
		claimNumber = generateClaimNumber("CLM-")
	}

	priority := submission.Priority
	if priority == "" {
		priority = model.ClaimPriorityNormal
	}

	return &model.Claim{
		ClaimNumber:   claimNumber,
		PolicyNumber:  submission.PolicyNumber,
		ClaimType:     submission.ClaimType,
		IncidentDate:  submission.IncidentDate,
		ClaimedAmount: submission.ClaimedAmount,
		Description:   submission.Description,
		Status:        model.ClaimStatusSubmitted,
		Priority:      priority,
	}
}

// BuildHighPriorityClaim maps an expedited-lane submission onto a new claim.
// The lane forces HIGH priority and starts the claim directly in review.
func BuildHighPriorityClaim(submission dto.ClaimSubmission) *model.Claim {
	claimNumber := submission.ClaimNumber
	if claimNumber == "" {
		claimNumber = generateClaimNumber("HP-")
	}

	return &model.Claim{
		ClaimNumber:   claimNumber,
		PolicyNumber:  submission.PolicyNumber,
		ClaimType:     submission.ClaimType,
		IncidentDate:  submission.IncidentDate,
		ClaimedAmount: submission.ClaimedAmount,
		Description:   submission.Description,
		Status:        model.ClaimStatusUnderReview,
		Priority:      model.ClaimPriorityHigh,
	}
}
