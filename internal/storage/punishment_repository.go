package storage

import (
	"errors"
	"time"

	"community-guard/internal/models"

	"gorm.io/gorm"
)

// PunishmentRepository handles database operations for the punishment ledger.
type PunishmentRepository struct {
	db *gorm.DB
}

// NewPunishmentRepository creates a new PunishmentRepository
func NewPunishmentRepository(db *gorm.DB) *PunishmentRepository {
	return &PunishmentRepository{db: db}
}

// MigrateTable ensures the PunishmentRecord table exists
func (r *PunishmentRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.PunishmentRecord{})
}

// Create appends a single ledger record.
func (r *PunishmentRepository) Create(record *models.PunishmentRecord) error {
	return r.db.Create(record).Error
}

// CreateBatch appends the given ledger records in one atomic multi-row
// insert. Either all records commit or none do.
func (r *PunishmentRepository) CreateBatch(records []*models.PunishmentRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(records).Error
}

// GetByID returns a ledger record, or nil if absent.
func (r *PunishmentRepository) GetByID(id uint) (*models.PunishmentRecord, error) {
	var record models.PunishmentRecord
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByUserSince returns a user's records created at or after the cutoff,
// most recent first.
func (r *PunishmentRepository) ListByUserSince(userKey string, cutoff time.Time) ([]models.PunishmentRecord, error) {
	var records []models.PunishmentRecord
	result := r.db.Where("user_key = ? AND created_at >= ?", userKey, cutoff).
		Order("created_at DESC, id DESC").
		Find(&records)
	return records, result.Error
}

// ListAll returns the full ledger, most recent first.
func (r *PunishmentRepository) ListAll() ([]models.PunishmentRecord, error) {
	var records []models.PunishmentRecord
	result := r.db.Order("created_at DESC, id DESC").Find(&records)
	return records, result.Error
}

// LatestUnacknowledged returns the user's most recent unacknowledged record,
// or nil if every record has been acknowledged.
func (r *PunishmentRepository) LatestUnacknowledged(userKey string) (*models.PunishmentRecord, error) {
	var record models.PunishmentRecord
	err := r.db.Where("user_key = ? AND acknowledged = ?", userKey, false).
		Order("created_at DESC, id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Acknowledge marks a record as acknowledged at the given time.
func (r *PunishmentRepository) Acknowledge(id uint, at time.Time) error {
	return r.db.Model(&models.PunishmentRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"acknowledged": true, "acknowledged_at": at}).Error
}
