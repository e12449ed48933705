package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Room kinds offered by the resort.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
	RoomTypeFamily = "family"
)

// Operational room statuses. The booking lifecycle drives occupied/cleaning;
// open maintenance requests drive maintenance.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusCleaning    = "cleaning"
	RoomStatusMaintenance = "maintenance"
)

func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeFamily:
		return true
	}
	return false
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusCleaning, RoomStatusMaintenance:
		return true
	}
	return false
}

type Room struct {
	gorm.Model

	RoomTypeID *uint  `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Type          string          `json:"type" gorm:"size:32"`
	Status        string          `json:"status" gorm:"size:32;default:available"`
	Floor         string          `json:"floor" gorm:"type:varchar(10)"`
	PricePerNight decimal.Decimal `json:"pricePerNight" gorm:"column:price_per_night;type:decimal(10,2)"`
	Capacity      int             `json:"capacity" gorm:"column:capacity"`
	Description   string          `json:"description" gorm:"type:text"`

	RoomType RoomType `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
}

// PublicRoom is the guest-facing projection: no soft-delete bookkeeping and
// no operational status beyond what the booking flow needs.
type PublicRoom struct {
	ID            uint            `json:"id"`
	RoomNumber    string          `json:"roomNumber"`
	Type          string          `json:"type"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Capacity      int             `json:"capacity"`
	Floor         string          `json:"floor"`
	Description   string          `json:"description"`
}

func (r Room) Public() PublicRoom {
	return PublicRoom{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Floor:         r.Floor,
		Description:   r.Description,
	}
}
