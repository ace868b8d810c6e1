package models

import "time"

// Appeal statuses. Status transitions are performed only by moderators;
// appeals start open.
const (
	AppealOpen     = "open"
	AppealApproved = "approved"
	AppealRejected = "rejected"
	AppealOnHold   = "onHold"
)

// Appeal is a punished user's contest of a punishment.
type Appeal struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserKey string `gorm:"index;not null" json:"user"`
	// PunishmentID optionally references the contested ledger record.
	PunishmentID uint       `gorm:"default:0" json:"punishmentId,omitempty"`
	Message      string     `gorm:"type:text" json:"message"`
	Status       string     `gorm:"type:varchar(16);default:'open'" json:"status"`
	StatusReason string     `gorm:"type:text" json:"statusReason,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ResolvedAt   *time.Time `json:"resolvedAt,omitempty"`
}
