package models

import "time"

// Punishment types, lightest to heaviest. Two cautions convert to one
// warning; accumulated warnings drive automatic suspensions.
const (
	PunishmentCaution    = "caution"
	PunishmentWarning    = "warning"
	PunishmentSuspension = "suspension"
)

// AutoFromCaution tags warning records generated by caution conversion.
const AutoFromCaution = "caution"

// PunishmentRecord is one entry in the append-only punishment ledger.
// Records are immutable once written, except for the acknowledgment fields
// which flip exactly once when the punished user dismisses the notice.
type PunishmentRecord struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserKey string `gorm:"index;not null" json:"user"`
	Type    string `gorm:"type:varchar(16);not null" json:"type"`
	// Count is the quantity added in this event for caution/warning records.
	Count int `gorm:"default:0" json:"count,omitempty"`
	// DurationDays applies to suspension records only. nil means no ban was
	// created; 0 means permanent; N>0 means N days from creation.
	DurationDays   *int       `json:"durationDays,omitempty"`
	Until          *time.Time `json:"until,omitempty"`
	Reason         string     `gorm:"type:text" json:"reason"`
	CreatedBy      string     `gorm:"default:''" json:"createdBy"`
	AutoFrom       string     `gorm:"default:''" json:"autoFrom,omitempty"`
	Acknowledged   bool       `gorm:"default:false" json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
