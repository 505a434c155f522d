package assessment

import (
	"claims-processor/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	Create(assessment *model.ClaimAssessment) error
	FindLatestByClaimNumber(claimNumber string) (*model.ClaimAssessment, error)
	FindByClaimNumber(claimNumber string) ([]model.ClaimAssessment, error)
	FindFraudulentClaims() ([]model.ClaimAssessment, error)
	CountByClaimNumber(claimNumber string) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new assessment row. Assessments are append-only: each
// processing run adds one, it never replaces earlier rows.
func (r *gormRepository) Create(assessment *model.ClaimAssessment) error {
	return r.db.Create(assessment).Error
}

func (r *gormRepository) FindLatestByClaimNumber(claimNumber string) (*model.ClaimAssessment, error) {
	var assessment model.ClaimAssessment
	err := r.db.Where("claim_number = ?", claimNumber).
		Order("id DESC").
		First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *gormRepository) FindByClaimNumber(claimNumber string) ([]model.ClaimAssessment, error) {
	var results []model.ClaimAssessment
	err := r.db.Where("claim_number = ?", claimNumber).Find(&results).Error
	return results, err
}

func (r *gormRepository) FindFraudulentClaims() ([]model.ClaimAssessment, error) {
	var results []model.ClaimAssessment
	err := r.db.Where("fraud_flag = ?", true).Find(&results).Error
	return results, err
}

func (r *gormRepository) CountByClaimNumber(claimNumber string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ClaimAssessment{}).
		Where("claim_number = ?", claimNumber).
		Count(&count).Error
	return count, err
}
