package processor

import (
	"errors"
	"fmt"
)

// ErrPolicyNotFound marks a submission that referenced no active policy. The
// consumer must not requeue these; retrying cannot make the policy appear.
var ErrPolicyNotFound = errors.New("policy not found or inactive")

const (
	CodeClaimProcessing             = "CLAIM_PROCESSING_ERROR"
	CodePolicyNotFound              = "POLICY_NOT_FOUND"
	CodePersistence                 = "PERSISTENCE_ERROR"
	CodeClaimSubmissionFailed       = "CLAIM_SUBMISSION_FAILED"
	CodeUrgentClaimSubmissionFailed = "URGENT_CLAIM_SUBMISSION_FAILED"
)

// ProcessingError wraps a pipeline failure with the claim it belongs to and a
// stable code that callers can branch on.
type ProcessingError struct {
	ClaimNumber string
	Code        string
	Err         error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s [claim %s]: %v", e.Code, e.ClaimNumber, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func newProcessingError(claimNumber, code string, err error) *ProcessingError {
	return &ProcessingError{ClaimNumber: claimNumber, Code: code, Err: err}
}
