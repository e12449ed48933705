package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"moonlight-backend/stay"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"referenceCode"`

	// client-supplied key so a retried submission cannot create a second booking
	IdempotencyKey *string `gorm:"column:idempotency_key;uniqueIndex;size:64" json:"idempotencyKey,omitempty"`

	RoomID     uint  `gorm:"index;column:room_id" json:"roomId"`
	CustomerID *uint `gorm:"index;column:customer_id" json:"customerId,omitempty"`

	GuestName  string `gorm:"size:255" json:"guestName"`
	GuestEmail string `gorm:"size:255" json:"guestEmail"`
	GuestPhone string `gorm:"size:50" json:"guestPhone"`

	// calendar dates only; the DATE column type strips any time component
	CheckInDate  time.Time `gorm:"column:check_in_date;type:date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date;type:date" json:"checkOutDate"`

	Nights     int             `gorm:"column:nights" json:"nights"`
	NumGuests  int             `gorm:"column:num_guests" json:"numGuests"`
	Status     string          `gorm:"column:status;size:32;index" json:"status"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)" json:"totalPrice"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at" json:"cancelledAt,omitempty"`

	Room     Room      `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
}

// StayBooking converts to the scheduler's view of this booking.
func (b Booking) StayBooking() stay.Booking {
	return stay.Booking{
		ID:       b.ID,
		CheckIn:  stay.DateOf(b.CheckInDate),
		CheckOut: stay.DateOf(b.CheckOutDate),
		Status:   stay.BookingStatus(b.Status),
	}
}

// PublicBooking is what the guest-facing room calendar exposes: just the
// occupied windows, no guest identity.
type PublicBooking struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Status       string `json:"status"`
}

func (b Booking) Public() PublicBooking {
	return PublicBooking{
		CheckInDate:  stay.DateOf(b.CheckInDate).String(),
		CheckOutDate: stay.DateOf(b.CheckOutDate).String(),
		Status:       b.Status,
	}
}
