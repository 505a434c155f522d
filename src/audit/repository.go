package audit

import "gorm.io/gorm"

type Repository interface {
	Create(entry *LogAuditEntry) error
	FindByService(service string) ([]LogAuditEntry, error)
	FindByLevel(level string) ([]LogAuditEntry, error)
	FindRecent(limit int) ([]LogAuditEntry, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(entry *LogAuditEntry) error {
	return r.db.Create(entry).Error
}

func (r *gormRepository) FindByService(service string) ([]LogAuditEntry, error) {
	var results []LogAuditEntry
	err := r.db.Where("service = ?", service).Order("id DESC").Find(&results).Error
	return results, err
}

func (r *gormRepository) FindByLevel(level string) ([]LogAuditEntry, error) {
	var results []LogAuditEntry
	err := r.db.Where("level = ?", level).Order("id DESC").Find(&results).Error
	return results, err
}

func (r *gormRepository) FindRecent(limit int) ([]LogAuditEntry, error) {
	var results []LogAuditEntry
	err := r.db.Order("id DESC").Limit(limit).Find(&results).Error
	return results, err
}
