package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimAssessment rows are append-only: every processing run inserts a new
// one, and the latest row for a claim number is the current assessment.
type ClaimAssessment struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ClaimNumber     string          `gorm:"column:claim_number;index;size:50;not null" json:"claimNumber"`
	AssessorID      string          `gorm:"column:assessor_id;size:50" json:"assessorId"`
	AssessmentDate  time.Time       `gorm:"column:assessment_date;autoCreateTime" json:"assessmentDate"`
	ApprovedAmount  decimal.Decimal `gorm:"column:approved_amount;type:decimal(15,2)" json:"approvedAmount"`
	RiskScore       int             `gorm:"column:risk_score" json:"riskScore"`
	FraudFlag       bool            `gorm:"column:fraud_flag;not null" json:"fraudFlag"`
	AssessmentNotes string          `gorm:"column:assessment_notes;type:text" json:"assessmentNotes"`
	ProcessingTimeMs int            `gorm:"column:processing_time_ms" json:"processingTimeMs"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ClaimAssessment) TableName() string {
	return "claim_assessments"
}
