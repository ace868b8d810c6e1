package storage

import (
	"errors"
	"time"

	"community-guard/internal/models"

	"gorm.io/gorm"
)

// AppealRepository handles database operations for appeals.
type AppealRepository struct {
	db *gorm.DB
}

// NewAppealRepository creates a new AppealRepository
func NewAppealRepository(db *gorm.DB) *AppealRepository {
	return &AppealRepository{db: db}
}

// MigrateTable ensures the Appeal table exists
func (r *AppealRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.Appeal{})
}

// Create inserts a new appeal.
func (r *AppealRepository) Create(appeal *models.Appeal) error {
	return r.db.Create(appeal).Error
}

// GetByID returns an appeal, or nil if absent.
func (r *AppealRepository) GetByID(id uint) (*models.Appeal, error) {
	var appeal models.Appeal
	err := r.db.First(&appeal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appeal, nil
}

// UpdateResolution sets the status, reason and resolution time of an appeal.
func (r *AppealRepository) UpdateResolution(id uint, status, statusReason string, resolvedAt time.Time) error {
	return r.db.Model(&models.Appeal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"status_reason": statusReason,
			"resolved_at":   resolvedAt,
		}).Error
}

// ListAll returns every appeal, most recent first.
func (r *AppealRepository) ListAll() ([]models.Appeal, error) {
	var appeals []models.Appeal
	result := r.db.Order("created_at DESC, id DESC").Find(&appeals)
	return appeals, result.Error
}

// ListPending returns open and on-hold appeals, most recent first.
func (r *AppealRepository) ListPending() ([]models.Appeal, error) {
	var appeals []models.Appeal
	result := r.db.Where("status IN ?", []string{models.AppealOpen, models.AppealOnHold}).
		Order("created_at DESC, id DESC").
		Find(&appeals)
	return appeals, result.Error
}
