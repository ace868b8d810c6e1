package storage

import (
	"errors"

	"community-guard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CounterRepository handles database operations for punishment counters.
type CounterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new CounterRepository
func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// MigrateTable ensures the PunishmentCounters table exists
func (r *CounterRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.PunishmentCounters{})
}

// Get returns the user's counters, or nil if no row exists yet.
func (r *CounterRepository) Get(userKey string) (*models.PunishmentCounters, error) {
	var counters models.PunishmentCounters
	err := r.db.Where("user_key = ?", userKey).First(&counters).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &counters, nil
}

// Upsert writes the user's counters, creating the row on first punishment.
func (r *CounterRepository) Upsert(counters *models.PunishmentCounters) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_key"}},
		UpdateAll: true,
	}).Create(counters).Error
}
