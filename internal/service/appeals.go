package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"community-guard/internal/identity"
	"community-guard/internal/models"
)

const minAppealLength = 5

// CreateAppeal files an open appeal for the given user, optionally tied to a
// specific ledger record.
func CreateAppeal(user string, punishmentID uint, message string) (*models.Appeal, error) {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return nil, newValidationError(msgEmailRequired)
	}
	if utf8.RuneCountInString(strings.TrimSpace(message)) < minAppealLength {
		return nil, newValidationError(msgAppealTooShort)
	}

	appeal := &models.Appeal{
		UserKey:      normalized,
		PunishmentID: punishmentID,
		Message:      message,
		Status:       models.AppealOpen,
	}
	if err := appealRepository.Create(appeal); err != nil {
		return nil, fmt.Errorf("creating appeal: %w", err)
	}
	return appeal, nil
}

// ResolveAppeal sets the status, reason and resolution time of an appeal.
// When revoke is true the user's active ban is cleared as well; passing
// revoke is a caller convention (true for approvals), not enforced here.
func ResolveAppeal(id uint, status, statusReason string, revoke bool) error {
	switch status {
	case models.AppealOpen, models.AppealApproved, models.AppealRejected, models.AppealOnHold:
	default:
		return newValidationError(msgInvalidStatus)
	}

	appeal, err := appealRepository.GetByID(id)
	if err != nil {
		return fmt.Errorf("reading appeal: %w", err)
	}
	if appeal == nil {
		return ErrNotFound
	}

	if err := appealRepository.UpdateResolution(id, status, statusReason, time.Now()); err != nil {
		return fmt.Errorf("resolving appeal: %w", err)
	}

	if revoke {
		if err := ClearBan(appeal.UserKey); err != nil {
			return err
		}
	}
	return nil
}

// FetchAppeals returns every appeal, most recent first.
func FetchAppeals() ([]models.Appeal, error) {
	appeals, err := appealRepository.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listing appeals: %w", err)
	}
	return appeals, nil
}

// FetchPendingAppeals returns the moderator work queue: open and on-hold
// appeals, most recent first.
func FetchPendingAppeals() ([]models.Appeal, error) {
	appeals, err := appealRepository.ListPending()
	if err != nil {
		return nil, fmt.Errorf("listing pending appeals: %w", err)
	}
	return appeals, nil
}
