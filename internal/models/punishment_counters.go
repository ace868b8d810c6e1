package models

import "time"

// PunishmentCounters is the per-user mutable aggregate the escalation engine
// reads and writes. Absent rows are treated as the zero state rather than
// created eagerly.
type PunishmentCounters struct {
	UserKey      string `gorm:"primaryKey" json:"user"`
	WarningCount int    `gorm:"default:0" json:"warningCount"`
	// CautionRemainder is the unconverted caution left after pairing two
	// cautions into one warning. Always 0 or 1.
	CautionRemainder int       `gorm:"default:0" json:"cautionRemainder"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
