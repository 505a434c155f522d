package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"claims-processor/src/model"

	"github.com/shopspring/decimal"
)

// ClaimSubmission is the intake payload, both on the REST edge and on the
// intake queues.
type ClaimSubmission struct {
	ClaimNumber   string              `json:"claimNumber,omitempty"`
	PolicyNumber  string              `json:"policyNumber"`
	ClaimType     model.ClaimType     `json:"claimType"`
	IncidentDate  model.Date          `json:"incidentDate"`
	ClaimedAmount decimal.Decimal     `json:"claimedAmount"`
	Description   string              `json:"description"`
	Priority      model.ClaimPriority `json:"priority,omitempty"`

	PolicyholderID    string `json:"policyholderId,omitempty"`
	PolicyholderName  string `json:"policyholderName,omitempty"`
	PolicyholderEmail string `json:"policyholderEmail,omitempty"`
}

func (cs ClaimSubmission) Serialize() ([]byte, error) {
	return json.Marshal(cs)
}

// Validate enforces the REST-edge submission rules. Messages arriving on the
// intake queues are assumed to have passed this gate already.
func (cs ClaimSubmission) Validate() error {
	if cs.PolicyNumber == "" {
		return errors.New("policy number is required")
	}
	if len(cs.PolicyNumber) > 50 {
		return errors.New("policy number must not exceed 50 characters")
	}
	if cs.ClaimType == "" {
		return errors.New("claim type is required")
	}
	if !cs.ClaimType.Valid() {
		return fmt.Errorf("unknown claim type: %q", cs.ClaimType)
	}
	if cs.IncidentDate.IsZero() {
		return errors.New("incident date is required")
	}
	if cs.IncidentDate.After(time.Now()) {
		return errors.New("incident date cannot be in the future")
	}
	if cs.ClaimedAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("claimed amount must be greater than 0")
	}
	if cs.Description == "" {
		return errors.New("description is required")
	}
	if len(cs.Description) > 1000 {
		return errors.New("description must not exceed 1000 characters")
	}
	if cs.Priority != "" && !cs.Priority.Valid() {
		return fmt.Errorf("unknown claim priority: %q", cs.Priority)
	}
	return nil
}
