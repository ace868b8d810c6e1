package service

import (
	"fmt"
	"strings"

	"community-guard/internal/identity"
	"community-guard/internal/models"
)

const defaultNotificationLimit = 20

// SendNotification publishes a site-wide announcement.
func SendNotification(message, link, createdBy string) (*models.Notification, error) {
	trimmedMessage := strings.TrimSpace(message)
	if trimmedMessage == "" {
		return nil, newValidationError(msgMessageRequired)
	}
	notification := &models.Notification{
		Message:   trimmedMessage,
		Link:      strings.TrimSpace(link),
		CreatedBy: identity.Normalize(createdBy),
	}
	if err := notificationRepository.Create(notification); err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}
	return notification, nil
}

// ListNotifications returns the latest announcements, most recent first.
func ListNotifications(limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	notifications, err := notificationRepository.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return notifications, nil
}
