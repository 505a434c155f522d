package database

import (
	"time"

	"claims-processor/pkg/logger"
	"claims-processor/src/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedSampleData inserts a handful of active policies so the policy gate can
// pass on a fresh local database. Keyed by policy number, so reruns are
// harmless.
func SeedSampleData(db *gorm.DB) error {
	seedLogger := logger.Default()

	policies := []model.InsurancePolicy{
		samplePolicy("POL001", "PH001", model.PolicyTypeAuto, "45000.00", "120.50"),
		samplePolicy("POL002", "PH002", model.PolicyTypeHealth, "80000.00", "210.00"),
		samplePolicy("POL003", "PH003", model.PolicyTypeProperty, "250000.00", "95.75"),
		samplePolicy("POL004", "PH004", model.PolicyTypeTravel, "15000.00", "30.00"),
	}

	for _, policy := range policies {
		result := db.Where(model.InsurancePolicy{PolicyNumber: policy.PolicyNumber}).
			FirstOrCreate(&policy)
		if result.Error != nil {
			seedLogger.Error(result.Error, "Error inserting sample policy")
			return result.Error
		}
	}

	seedLogger.Infof("Seeded %d sample policies", len(policies))
	return nil
}

func samplePolicy(policyNumber, policyholderID string, policyType model.PolicyType, coverage, premium string) model.InsurancePolicy {
	now := time.Now().UTC()
	return model.InsurancePolicy{
		PolicyNumber:   policyNumber,
		PolicyholderID: policyholderID,
		PolicyType:     policyType,
		CoverageAmount: decimal.RequireFromString(coverage),
		PremiumAmount:  decimal.RequireFromString(premium),
		Currency:       "USD",
		StartDate:      model.NewDate(now.Year()-1, now.Month(), 1),
		EndDate:        model.NewDate(now.Year()+1, now.Month(), 1),
		Status:         model.PolicyStatusActive,
	}
}
