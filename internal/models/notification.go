package models

import "time"

// Notification is a site-wide announcement shown in the community banner.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Link      string    `gorm:"default:''" json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `gorm:"default:''" json:"createdBy"`
}
