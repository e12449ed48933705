package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string          `json:"typeName" gorm:"size:100;uniqueIndex"`
	Description string          `json:"description"`
	BaseRate    decimal.Decimal `json:"baseRate" gorm:"column:base_rate;type:decimal(10,2)"`
	MaxGuests   uint            `json:"maxGuests" gorm:"column:max_guests"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
