package models

import "time"

// UserDirectoryEntry maps a user key to display info so moderators can look
// up a target by nickname.
type UserDirectoryEntry struct {
	UserKey   string    `gorm:"primaryKey" json:"user"`
	Nickname  string    `gorm:"index;default:''" json:"nickname"`
	PhotoURL  string    `gorm:"default:''" json:"photoURL"`
	UpdatedAt time.Time `json:"updatedAt"`
}
