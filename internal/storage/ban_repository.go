package storage

import (
	"errors"

	"community-guard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BanRepository handles database operations for the current-ban table.
type BanRepository struct {
	db *gorm.DB
}

// NewBanRepository creates a new BanRepository
func NewBanRepository(db *gorm.DB) *BanRepository {
	return &BanRepository{db: db}
}

// MigrateTable ensures the Ban table exists
func (r *BanRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.Ban{})
}

// Get returns the ban row for a user, or nil if absent.
func (r *BanRepository) Get(userKey string) (*models.Ban, error) {
	var ban models.Ban
	err := r.db.Where("user_key = ?", userKey).First(&ban).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ban, nil
}

// Upsert overwrites (not merges) the user's ban row.
func (r *BanRepository) Upsert(ban *models.Ban) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_key"}},
		UpdateAll: true,
	}).Create(ban).Error
}

// Delete removes the user's ban row. Deleting an absent row is a no-op.
func (r *BanRepository) Delete(userKey string) error {
	return r.db.Where("user_key = ?", userKey).Delete(&models.Ban{}).Error
}

// DeleteMany removes the ban rows for the given users in one statement.
func (r *BanRepository) DeleteMany(userKeys []string) error {
	if len(userKeys) == 0 {
		return nil
	}
	return r.db.Where("user_key IN ?", userKeys).Delete(&models.Ban{}).Error
}

// ListAll returns every ban row, expired or not.
func (r *BanRepository) ListAll() ([]models.Ban, error) {
	var bans []models.Ban
	result := r.db.Find(&bans)
	return bans, result.Error
}
