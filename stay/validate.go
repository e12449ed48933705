package stay

import "github.com/shopspring/decimal"

// Room is the scheduler's view of a room: its rate and how many guests it
// sleeps.
type Room struct {
	ID            uint
	PricePerNight decimal.Decimal
	Capacity      int
}

// Request is a candidate stay window as produced by a booking form. It is
// transient and never persisted as-is.
type Request struct {
	RoomID    uint `json:"roomId"`
	CheckIn   Date `json:"checkIn"`
	CheckOut  Date `json:"checkOut"`
	NumGuests int  `json:"numGuests"`
}

// ValidateRequest enforces the structural invariants on a stay request:
// both dates present, check-out strictly after check-in, check-in not before
// today (same-day check-in is allowed), and a guest count between 1 and the
// room's capacity. today is the caller's local calendar date.
//
// Pure: it returns the validated request and touches nothing else.
func ValidateRequest(room Room, req Request, today Date) (Request, error) {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return Request{}, ErrMissingDates
	}
	if !req.CheckOut.After(req.CheckIn) {
		return Request{}, ErrInvalidRange
	}
	if req.CheckIn.Before(today) {
		return Request{}, ErrPastDate
	}
	if req.NumGuests < 1 {
		return Request{}, ErrInvalidGuestCount
	}
	if req.NumGuests > room.Capacity {
		return Request{}, ErrCapacityExceeded
	}
	return req, nil
}

// EarliestCheckOut returns the lower bound a checkout picker must enforce
// once a check-in date is chosen: check-in plus one night.
func EarliestCheckOut(checkIn Date) Date {
	return checkIn.AddDays(1)
}
