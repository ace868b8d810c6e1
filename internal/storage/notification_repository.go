package storage

import (
	"community-guard/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository handles database operations for announcements.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// MigrateTable ensures the Notification table exists
func (r *NotificationRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.Notification{})
}

// Create inserts a new announcement.
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// ListRecent returns up to limit announcements, most recent first.
func (r *NotificationRepository) ListRecent(limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	result := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&notifications)
	return notifications, result.Error
}
