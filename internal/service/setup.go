package service

import (
	"fmt"

	"community-guard/internal/models"
	"community-guard/internal/storage"

	"gorm.io/gorm"
)

var (
	punishmentRepository   *storage.PunishmentRepository
	counterRepository      *storage.CounterRepository
	banRepository          *storage.BanRepository
	banLogRepository       *storage.BanLogRepository
	appealRepository       *storage.AppealRepository
	directoryRepository    *storage.DirectoryRepository
	notificationRepository *storage.NotificationRepository

	banNotifier BanNotifier
)

// BanNotifier receives every ban/unban transition after it is written to the
// audit log. A failed notification only affects moderator alerting, so
// implementations handle their own errors.
type BanNotifier interface {
	NotifyBanChange(entry models.BanLogEntry)
}

// SetBanNotifier installs the moderator alert hook. Passing nil disables it.
func SetBanNotifier(n BanNotifier) {
	banNotifier = n
}

// Setup initializes the repositories and ensures all tables exist.
func Setup(db *gorm.DB) error {
	punishmentRepository = storage.NewPunishmentRepository(db)
	if err := punishmentRepository.MigrateTable(); err != nil {
		return fmt.Errorf("migrating PunishmentRecord table: %w", err)
	}
	counterRepository = storage.NewCounterRepository(db)
	if err := counterRepository.MigrateTable(); err != nil {
		return fmt.Errorf("migrating PunishmentCounters table: %w", err)
	}
	banRepository = storage.NewBanRepository(db)
	if err := banRepository.MigrateTable(); err != nil {
		return fmt.Errorf("migrating Ban table: %w", err)
	}
	banLogRepository = storage.NewBanLogRepository(db)
	if err := banLogRepository.MigrateTable(); err != nil {
		return fmt.Errorf("migrating BanLogEntry table: %w", err)
	}
	appealRepository = storage.NewAppealRepository(db)
	if err := appealRepository.MigrateTable(); err != nil {
		return fmt.Errorf("migrating Appeal table: %w", err)
	}
	directoryRepository = storage.NewDirectoryRepository(db)
	if err := directoryRepository.MigrateTable(); err != nil {
		return fmt.Errorf("migrating UserDirectoryEntry table: %w", err)
	}
	notificationRepository = storage.NewNotificationRepository(db)
	if err := notificationRepository.MigrateTable(); err != nil {
		return fmt.Errorf("migrating Notification table: %w", err)
	}
	return nil
}
