package storage

import (
	"community-guard/internal/models"

	"gorm.io/gorm"
)

// BanLogRepository handles database operations for the ban audit log.
type BanLogRepository struct {
	db *gorm.DB
}

// NewBanLogRepository creates a new BanLogRepository
func NewBanLogRepository(db *gorm.DB) *BanLogRepository {
	return &BanLogRepository{db: db}
}

// MigrateTable ensures the BanLogEntry table exists
func (r *BanLogRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.BanLogEntry{})
}

// Create appends a ban/unban transition to the audit log.
func (r *BanLogRepository) Create(entry *models.BanLogEntry) error {
	return r.db.Create(entry).Error
}

// ListAll returns the full audit log, most recent first.
func (r *BanLogRepository) ListAll() ([]models.BanLogEntry, error) {
	var entries []models.BanLogEntry
	result := r.db.Order("created_at DESC, id DESC").Find(&entries)
	return entries, result.Error
}
