package models

import "time"

// Ban is the current active suspension for a user, one row per user,
// overwritten in place. A row whose Until is in the past is stale and is
// removed lazily by the reader that observes it.
type Ban struct {
	UserKey string `gorm:"primaryKey" json:"user"`
	Reason  string `gorm:"type:text" json:"reason"`
	// Until is nil for indefinite suspensions, which never expire on read.
	Until     *time.Time `json:"until,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `gorm:"default:''" json:"createdBy"`
}

// Expired reports whether the ban is stale at the given instant.
func (b *Ban) Expired(now time.Time) bool {
	return b.Until != nil && !b.Until.After(now)
}
