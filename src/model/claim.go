package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ClaimType string

const (
	ClaimTypeAccident          ClaimType = "ACCIDENT"
	ClaimTypeIllness           ClaimType = "ILLNESS"
	ClaimTypePropertyDamage    ClaimType = "PROPERTY_DAMAGE"
	ClaimTypeTheft             ClaimType = "THEFT"
	ClaimTypeNaturalDisaster   ClaimType = "NATURAL_DISASTER"
	ClaimTypeTravelCancelation ClaimType = "TRAVEL_CANCELATION"
	ClaimTypeDeath             ClaimType = "DEATH"
	ClaimTypeDisability        ClaimType = "DISABILITY"
	ClaimTypeOther             ClaimType = "OTHER"
)

func (ct ClaimType) Valid() bool {
	switch ct {
	case ClaimTypeAccident, ClaimTypeIllness, ClaimTypePropertyDamage,
		ClaimTypeTheft, ClaimTypeNaturalDisaster, ClaimTypeTravelCancelation,
		ClaimTypeDeath, ClaimTypeDisability, ClaimTypeOther:
		return true
	}
	return false
}

func (ct *ClaimType) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed := ClaimType(value)
	if !parsed.Valid() {
		return fmt.Errorf("unknown claim type: %q", value)
	}

	*ct = parsed
	return nil
}

type ClaimStatus string

const (
	ClaimStatusSubmitted   ClaimStatus = "SUBMITTED"
	ClaimStatusUnderReview ClaimStatus = "UNDER_REVIEW"
	ClaimStatusApproved    ClaimStatus = "APPROVED"
	ClaimStatusRejected    ClaimStatus = "REJECTED"
	ClaimStatusPaid        ClaimStatus = "PAID"
	ClaimStatusClosed      ClaimStatus = "CLOSED"
)

type ClaimPriority string

const (
	ClaimPriorityLow    ClaimPriority = "LOW"
	ClaimPriorityNormal ClaimPriority = "NORMAL"
	ClaimPriorityHigh   ClaimPriority = "HIGH"
	ClaimPriorityUrgent ClaimPriority = "URGENT"
)

func (cp ClaimPriority) Valid() bool {
	switch cp {
	case ClaimPriorityLow, ClaimPriorityNormal, ClaimPriorityHigh, ClaimPriorityUrgent:
		return true
	}
	return false
}

func (cp *ClaimPriority) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed := ClaimPriority(value)
	if !parsed.Valid() {
		return fmt.Errorf("unknown claim priority: %q", value)
	}

	*cp = parsed
	return nil
}

// Claim is created exactly once per submission; this pipeline only ever
// mutates status and priority afterwards.
type Claim struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ClaimNumber   string          `gorm:"column:claim_number;uniqueIndex;size:50;not null" json:"claimNumber"`
	PolicyNumber  string          `gorm:"column:policy_number;size:50;not null" json:"policyNumber"`
	ClaimType     ClaimType       `gorm:"column:claim_type;size:30;not null" json:"claimType"`
	IncidentDate  Date            `gorm:"column:incident_date;not null" json:"incidentDate"`
	ClaimDate     time.Time       `gorm:"column:claim_date;autoCreateTime" json:"claimDate"`
	ClaimedAmount decimal.Decimal `gorm:"column:claimed_amount;type:decimal(15,2);not null" json:"claimedAmount"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Status        ClaimStatus     `gorm:"size:20;not null" json:"status"`
	Priority      ClaimPriority   `gorm:"size:10;not null" json:"priority"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Claim) TableName() string {
	return "claims"
}
