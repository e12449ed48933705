package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MaintenancePriorityLow    = "low"
	MaintenancePriorityNormal = "normal"
	MaintenancePriorityHigh   = "high"
	MaintenancePriorityUrgent = "urgent"
)

const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusResolved   = "resolved"
)

func ValidMaintenancePriority(p string) bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityNormal, MaintenancePriorityHigh, MaintenancePriorityUrgent:
		return true
	}
	return false
}

type MaintenanceRequest struct {
	gorm.Model

	RoomID      uint   `gorm:"index;column:room_id" json:"roomId"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Priority    string `gorm:"size:16;default:normal" json:"priority"`
	Status      string `gorm:"size:32;default:open;index" json:"status"`

	ReportedBy string     `gorm:"size:255" json:"reportedBy"`
	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolvedAt,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
