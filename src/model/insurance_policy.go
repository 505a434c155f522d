package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PolicyType string

const (
	PolicyTypeLife     PolicyType = "LIFE"
	PolicyTypeHealth   PolicyType = "HEALTH"
	PolicyTypeAuto     PolicyType = "AUTO"
	PolicyTypeProperty PolicyType = "PROPERTY"
	PolicyTypeTravel   PolicyType = "TRAVEL"
)

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "ACTIVE"
	PolicyStatusExpired   PolicyStatus = "EXPIRED"
	PolicyStatusCancelled PolicyStatus = "CANCELLED"
	PolicyStatusSuspended PolicyStatus = "SUSPENDED"
)

type InsurancePolicy struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	PolicyNumber   string          `gorm:"column:policy_number;uniqueIndex;size:50;not null" json:"policyNumber"`
	PolicyholderID string          `gorm:"column:policyholder_id;size:50;not null" json:"policyholderId"`
	PolicyType     PolicyType      `gorm:"column:policy_type;size:30;not null" json:"policyType"`
	CoverageAmount decimal.Decimal `gorm:"column:coverage_amount;type:decimal(15,2);not null" json:"coverageAmount"`
	PremiumAmount  decimal.Decimal `gorm:"column:premium_amount;type:decimal(10,2);not null" json:"premiumAmount"`
	Currency       string          `gorm:"size:3;not null" json:"currency"`
	StartDate      Date            `gorm:"column:start_date;not null" json:"startDate"`
	EndDate        Date            `gorm:"column:end_date;not null" json:"endDate"`
	Status         PolicyStatus    `gorm:"size:20;not null" json:"status"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (InsurancePolicy) TableName() string {
	return "insurance_policies"
}
