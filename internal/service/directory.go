package service

import (
	"fmt"
	"strings"
	"time"

	"community-guard/internal/identity"
	"community-guard/internal/models"
)

// SaveDirectoryEntry records a user's display info so moderators can find
// the user key by nickname. The entry is overwritten on every profile save.
func SaveDirectoryEntry(user, nickname, photoURL string) error {
	normalized := identity.Normalize(user)
	if normalized == "" {
		return newValidationError(msgEmailRequired)
	}
	entry := &models.UserDirectoryEntry{
		UserKey:   normalized,
		Nickname:  strings.TrimSpace(nickname),
		PhotoURL:  strings.TrimSpace(photoURL),
		UpdatedAt: time.Now(),
	}
	if err := directoryRepository.Upsert(entry); err != nil {
		return fmt.Errorf("saving directory entry: %w", err)
	}
	return nil
}

// SearchUsersByNickname returns directory entries whose nickname matches
// exactly. A blank query returns nothing.
func SearchUsersByNickname(nickname string) ([]models.UserDirectoryEntry, error) {
	trimmed := strings.TrimSpace(nickname)
	if trimmed == "" {
		return []models.UserDirectoryEntry{}, nil
	}
	entries, err := directoryRepository.SearchByNickname(trimmed)
	if err != nil {
		return nil, fmt.Errorf("searching user directory: %w", err)
	}
	return entries, nil
}
