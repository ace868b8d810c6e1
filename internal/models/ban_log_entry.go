package models

import "time"

// Ban log actions.
const (
	BanActionBan   = "ban"
	BanActionUnban = "unban"
)

// BanLogEntry records one ban/unban transition for administrative review.
// Entries are append-only and never mutated or deleted.
type BanLogEntry struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserKey   string     `gorm:"index;not null" json:"user"`
	Action    string     `gorm:"type:varchar(8);not null" json:"action"`
	Reason    string     `gorm:"type:text" json:"reason"`
	Until     *time.Time `json:"until,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `gorm:"default:''" json:"createdBy"`
}
