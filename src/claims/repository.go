package claims

import (
	"errors"

	"claims-processor/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	CreateOrUpdate(claim *model.Claim) error
	FindByClaimNumber(claimNumber string) (*model.Claim, error)
	FindByPolicyNumber(policyNumber string) ([]model.Claim, error)
	FindByStatus(status model.ClaimStatus) ([]model.Claim, error)
	FindPendingClaims() ([]model.Claim, error)
	UpdateClaimStatus(claimNumber string, newStatus model.ClaimStatus) (bool, error)
	CountClaims() (int64, error)
	ListAll() ([]model.Claim, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// CreateOrUpdate upserts by claim number: resubmitting the same claim number
// updates the existing row instead of inserting a duplicate.
func (r *gormRepository) CreateOrUpdate(claim *model.Claim) error {
	var existing model.Claim
	err := r.db.Where("claim_number = ?", claim.ClaimNumber).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(claim).Error
	}
	if err != nil {
		return err
	}

	claim.ID = existing.ID
	claim.ClaimDate = existing.ClaimDate
	return r.db.Save(claim).Error
}

func (r *gormRepository) FindByClaimNumber(claimNumber string) (*model.Claim, error) {
	var claim model.Claim
	err := r.db.Where("claim_number = ?", claimNumber).First(&claim).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *gormRepository) FindByPolicyNumber(policyNumber string) ([]model.Claim, error) {
	var results []model.Claim
	err := r.db.Where("policy_number = ?", policyNumber).Find(&results).Error
	return results, err
}

func (r *gormRepository) FindByStatus(status model.ClaimStatus) ([]model.Claim, error) {
	var results []model.Claim
	err := r.db.Where("status = ?", status).Find(&results).Error
	return results, err
}

func (r *gormRepository) FindPendingClaims() ([]model.Claim, error) {
	var results []model.Claim
	err := r.db.Where("status IN ?", []model.ClaimStatus{
		model.ClaimStatusSubmitted,
		model.ClaimStatusUnderReview,
	}).Find(&results).Error
	return results, err
}

func (r *gormRepository) UpdateClaimStatus(claimNumber string, newStatus model.ClaimStatus) (bool, error) {
	result := r.db.Model(&model.Claim{}).
		Where("claim_number = ?", claimNumber).
		Update("status", newStatus)
	return result.RowsAffected > 0, result.Error
}

func (r *gormRepository) CountClaims() (int64, error) {
	var count int64
	err := r.db.Model(&model.Claim{}).Count(&count).Error
	return count, err
}

func (r *gormRepository) ListAll() ([]model.Claim, error) {
	var results []model.Claim
	err := r.db.Find(&results).Error
	return results, err
}
