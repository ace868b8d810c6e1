package service

import (
	"fmt"
	"time"

	"community-guard/internal/identity"
	"community-guard/internal/models"
)

const defaultHistoryYears = 3

// FetchRecentPunishments returns the user's ledger records from the last
// `years` years, most recent first. Non-positive years falls back to the
// default window.
func FetchRecentPunishments(user string, years int) ([]models.PunishmentRecord, error) {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return nil, newValidationError(msgEmailRequired)
	}
	if years <= 0 {
		years = defaultHistoryYears
	}
	cutoff := time.Now().AddDate(-years, 0, 0)

	records, err := punishmentRepository.ListByUserSince(normalized, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing recent punishments: %w", err)
	}
	return records, nil
}

// FetchPunishmentHistory returns the complete ledger across all users, most
// recent first.
func FetchPunishmentHistory() ([]models.PunishmentRecord, error) {
	records, err := punishmentRepository.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listing punishment history: %w", err)
	}
	return records, nil
}

// FetchPendingPunishment returns the user's most recent unacknowledged
// record, or nil when everything has been acknowledged.
func FetchPendingPunishment(user string) (*models.PunishmentRecord, error) {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return nil, newValidationError(msgEmailRequired)
	}
	record, err := punishmentRepository.LatestUnacknowledged(normalized)
	if err != nil {
		return nil, fmt.Errorf("reading pending punishment: %w", err)
	}
	return record, nil
}

// AcknowledgePunishment flips the acknowledged flag of one of the user's own
// ledger records. It is the only mutation a ledger record ever sees; records
// of other users return ErrNotOwner untouched.
func AcknowledgePunishment(user string, id uint) error {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return newValidationError(msgEmailRequired)
	}
	record, err := punishmentRepository.GetByID(id)
	if err != nil {
		return fmt.Errorf("reading punishment record: %w", err)
	}
	if record == nil {
		return ErrNotFound
	}
	if record.UserKey != normalized {
		return ErrNotOwner
	}
	if err := punishmentRepository.Acknowledge(id, time.Now()); err != nil {
		return fmt.Errorf("acknowledging punishment: %w", err)
	}
	return nil
}
