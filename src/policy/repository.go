package policy

import (
	"time"

	"claims-processor/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	ExistsByPolicyNumber(policyNumber string) (bool, error)
	FindByPolicyNumber(policyNumber string) (*model.InsurancePolicy, error)
	FindExpiringPolicies(daysFromNow int) ([]model.InsurancePolicy, error)
	UpdatePolicyStatus(policyNumber string, newStatus model.PolicyStatus) (bool, error)
	CreateOrUpdate(policy *model.InsurancePolicy) error
	CountActivePolicies() (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// ExistsByPolicyNumber reports whether an ACTIVE policy record exists.
func (r *gormRepository) ExistsByPolicyNumber(policyNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&model.InsurancePolicy{}).
		Where("policy_number = ? AND status = ?", policyNumber, model.PolicyStatusActive).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) FindByPolicyNumber(policyNumber string) (*model.InsurancePolicy, error) {
	var policy model.InsurancePolicy
	err := r.db.Where("policy_number = ?", policyNumber).First(&policy).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *gormRepository) FindExpiringPolicies(daysFromNow int) ([]model.InsurancePolicy, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, daysFromNow).Format("2006-01-02")

	var results []model.InsurancePolicy
	err := r.db.Where("end_date <= ? AND status = ?", cutoff, model.PolicyStatusActive).
		Find(&results).Error
	return results, err
}

func (r *gormRepository) UpdatePolicyStatus(policyNumber string, newStatus model.PolicyStatus) (bool, error) {
	result := r.db.Model(&model.InsurancePolicy{}).
		Where("policy_number = ?", policyNumber).
		Update("status", newStatus)
	return result.RowsAffected > 0, result.Error
}

func (r *gormRepository) CreateOrUpdate(policy *model.InsurancePolicy) error {
	var existing model.InsurancePolicy
	err := r.db.Where("policy_number = ?", policy.PolicyNumber).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(policy).Error
	}
	if err != nil {
		return err
	}

	policy.ID = existing.ID
	policy.CreatedAt = existing.CreatedAt
	return r.db.Save(policy).Error
}

func (r *gormRepository) CountActivePolicies() (int64, error) {
	var count int64
	err := r.db.Model(&model.InsurancePolicy{}).
		Where("status = ?", model.PolicyStatusActive).
		Count(&count).Error
	return count, err
}
