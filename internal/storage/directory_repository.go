package storage

import (
	"community-guard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DirectoryRepository handles database operations for the user directory.
type DirectoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository creates a new DirectoryRepository
func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// MigrateTable ensures the UserDirectoryEntry table exists
func (r *DirectoryRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.UserDirectoryEntry{})
}

// Upsert writes a directory entry, overwriting any previous one.
func (r *DirectoryRepository) Upsert(entry *models.UserDirectoryEntry) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_key"}},
		UpdateAll: true,
	}).Create(entry).Error
}

// SearchByNickname returns all entries with exactly the given nickname.
func (r *DirectoryRepository) SearchByNickname(nickname string) ([]models.UserDirectoryEntry, error) {
	var entries []models.UserDirectoryEntry
	result := r.db.Where("nickname = ?", nickname).Find(&entries)
	return entries, result.Error
}
