package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	HousekeepingKindCleaning  = "cleaning"
	HousekeepingKindTurndown  = "turndown"
	HousekeepingKindDeepClean = "deep_clean"
)

const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

func ValidHousekeepingKind(k string) bool {
	switch k {
	case HousekeepingKindCleaning, HousekeepingKindTurndown, HousekeepingKindDeepClean:
		return true
	}
	return false
}

type HousekeepingTask struct {
	gorm.Model

	RoomID   uint   `gorm:"index;column:room_id" json:"roomId"`
	Kind     string `gorm:"size:32" json:"kind"`
	Status   string `gorm:"size:32;default:open;index" json:"status"`
	Assignee string `gorm:"size:255" json:"assignee"`
	Notes    string `gorm:"type:text" json:"notes"`

	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
