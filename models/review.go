package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model

	RoomID    uint  `gorm:"index;column:room_id" json:"roomId"`
	BookingID *uint `gorm:"index;column:booking_id" json:"bookingId,omitempty"`

	GuestName string `gorm:"size:255" json:"guestName"`
	Rating    int    `gorm:"column:rating" json:"rating"` // 1..5
	Comment   string `gorm:"type:text" json:"comment"`

	// staff moderation flag; only approved reviews are shown publicly
	Approved bool `gorm:"default:false;index" json:"approved"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
