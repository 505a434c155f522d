package events

import (
	"time"

	"claims-processor/pkg/utilities"
	"claims-processor/src/model"

	"github.com/shopspring/decimal"
)

const (
	EventTypeClaimProcessed             = "CLAIM_PROCESSED"
	EventTypeUrgentClaimProcessed       = "URGENT_CLAIM_PROCESSED"
	EventTypeHighPriorityClaimProcessed = "HIGH_PRIORITY_CLAIM_PROCESSED"
	AlertTypeFraudDetected              = "FRAUD_DETECTED"
	NotificationTypeHighPriority        = "HIGH_PRIORITY_CLAIM"
)

type ProcessedClaimEvent struct {
	EventType        string          `json:"eventType"`
	ClaimNumber      string          `json:"claimNumber"`
	PolicyNumber     string          `json:"policyNumber"`
	ClaimType        model.ClaimType `json:"claimType"`
	ClaimedAmount    decimal.Decimal `json:"claimedAmount"`
	ApprovedAmount   decimal.Decimal `json:"approvedAmount"`
	RiskScore        int             `json:"riskScore"`
	FraudFlag        bool            `json:"fraudFlag"`
	ProcessingTimeMs int             `json:"processingTimeMs"`
	Timestamp        time.Time       `json:"timestamp"`
}

func (e ProcessedClaimEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type UrgentProcessedClaimEvent struct {
	EventType        string              `json:"eventType"`
	ClaimNumber      string              `json:"claimNumber"`
	PolicyNumber     string              `json:"policyNumber"`
	Priority         model.ClaimPriority `json:"priority"`
	ApprovedAmount   decimal.Decimal     `json:"approvedAmount"`
	ProcessingTimeMs int                 `json:"processingTimeMs"`
	Timestamp        time.Time           `json:"timestamp"`
}

func (e UrgentProcessedClaimEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type FraudAlert struct {
	AlertType       string          `json:"alertType"`
	ClaimNumber     string          `json:"claimNumber"`
	PolicyNumber    string          `json:"policyNumber"`
	ClaimedAmount   decimal.Decimal `json:"claimedAmount"`
	RiskScore       int             `json:"riskScore"`
	AssessorID      string          `json:"assessorId"`
	AssessmentNotes string          `json:"assessmentNotes"`
	Timestamp       time.Time       `json:"timestamp"`
}

func (e FraudAlert) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type HighPriorityNotification struct {
	NotificationType string              `json:"notificationType"`
	ClaimNumber      string              `json:"claimNumber"`
	PolicyNumber     string              `json:"policyNumber"`
	ClaimType        model.ClaimType     `json:"claimType"`
	Priority         model.ClaimPriority `json:"priority"`
	ClaimedAmount    decimal.Decimal     `json:"claimedAmount"`
	Timestamp        time.Time           `json:"timestamp"`
}

func (e HighPriorityNotification) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type ClaimLifecycleEvent struct {
	EventType    string              `json:"eventType"`
	ClaimNumber  string              `json:"claimNumber"`
	PolicyNumber string              `json:"policyNumber"`
	Status       model.ClaimStatus   `json:"status"`
	Priority     model.ClaimPriority `json:"priority"`
	ClaimType    model.ClaimType     `json:"claimType"`
	Timestamp    time.Time           `json:"timestamp"`
}

func (e ClaimLifecycleEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}
