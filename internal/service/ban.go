package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"community-guard/internal/identity"
	"community-guard/internal/logger"
	"community-guard/internal/models"
)

// FetchActiveBan returns the user's current ban, or nil when there is none.
// A ban whose expiry has passed is deleted on the spot before returning nil,
// so an expired row is never observed as active. Repeated calls are
// idempotent; racing readers deleting the same stale row is harmless.
func FetchActiveBan(user string) (*models.Ban, error) {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return nil, newValidationError(msgEmailRequired)
	}

	ban, err := banRepository.Get(normalized)
	if err != nil {
		return nil, fmt.Errorf("reading ban: %w", err)
	}
	if ban == nil {
		return nil, nil
	}
	if ban.Expired(time.Now()) {
		if err := banRepository.Delete(normalized); err != nil {
			return nil, fmt.Errorf("removing expired ban: %w", err)
		}
		return nil, nil
	}
	return ban, nil
}

// ListActiveBans returns all live bans sorted by creation time descending,
// rows without a creation time last. Expired rows encountered on the way are
// deleted in one statement.
func ListActiveBans() ([]models.Ban, error) {
	bans, err := banRepository.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listing bans: %w", err)
	}

	now := time.Now()
	active := make([]models.Ban, 0, len(bans))
	var expired []string
	for _, ban := range bans {
		if ban.Expired(now) {
			expired = append(expired, ban.UserKey)
			continue
		}
		active = append(active, ban)
	}

	if len(expired) > 0 {
		if err := banRepository.DeleteMany(expired); err != nil {
			return nil, fmt.Errorf("removing expired bans: %w", err)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		ci, cj := active[i].CreatedAt, active[j].CreatedAt
		if cj.IsZero() {
			return !ci.IsZero()
		}
		if ci.IsZero() {
			return false
		}
		return ci.After(cj)
	})

	return active, nil
}

// SaveBan overwrites the user's ban row and appends a "ban" entry to the
// audit log. An empty reason falls back to the default.
func SaveBan(user, reason string, until *time.Time, createdBy string) error {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return newValidationError(msgEmailRequired)
	}
	return saveBanRow(normalized, reason, until, identity.Normalize(createdBy))
}

func saveBanRow(userKey, reason string, until *time.Time, createdBy string) error {
	if strings.TrimSpace(reason) == "" {
		reason = defaultBanReason
	}
	ban := &models.Ban{
		UserKey:   userKey,
		Reason:    reason,
		Until:     until,
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}
	if err := banRepository.Upsert(ban); err != nil {
		return fmt.Errorf("saving ban: %w", err)
	}
	return recordBanLog(userKey, models.BanActionBan, reason, until, createdBy)
}

// ClearBan deletes the user's ban row (a no-op when absent) and appends an
// "unban" entry to the audit log.
func ClearBan(user string) error {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return newValidationError(msgEmailRequired)
	}
	if err := banRepository.Delete(normalized); err != nil {
		return fmt.Errorf("clearing ban: %w", err)
	}
	return recordBanLog(normalized, models.BanActionUnban, unbanReason, nil, "")
}

// FetchBanLogs returns the full ban/unban audit trail, most recent first.
func FetchBanLogs() ([]models.BanLogEntry, error) {
	entries, err := banLogRepository.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listing ban logs: %w", err)
	}
	return entries, nil
}

func recordBanLog(userKey, action, reason string, until *time.Time, createdBy string) error {
	if strings.TrimSpace(reason) == "" {
		reason = defaultBanLogReason
	}
	entry := &models.BanLogEntry{
		UserKey:   userKey,
		Action:    action,
		Reason:    reason,
		Until:     until,
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}
	if err := banLogRepository.Create(entry); err != nil {
		return fmt.Errorf("recording ban log: %w", err)
	}
	if banNotifier != nil {
		banNotifier.NotifyBanChange(*entry)
	}
	logger.Infof("ban log: %s %s", action, userKey)
	return nil
}
