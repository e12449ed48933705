// Package stay decides whether a requested stay window can be booked for a
// room and what it costs. It is a pure library: the caller supplies a
// snapshot of the room's existing bookings, and a successful result means
// "provisionally available"; the authoritative conflict check still happens
// where the booking is persisted.
package stay

import "github.com/shopspring/decimal"

// Draft is a booking ready to be submitted to the store. Status is always
// pending; the store owns every later transition.
type Draft struct {
	RoomID     uint            `json:"roomId"`
	CheckIn    Date            `json:"checkIn"`
	CheckOut   Date            `json:"checkOut"`
	NumGuests  int             `json:"numGuests"`
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     BookingStatus   `json:"status"`
}

// Scheduler runs the validate → check availability → price pipeline. The
// clock is injected so tests can pin "today".
type Scheduler struct {
	today func() Date
}

func NewScheduler(today func() Date) *Scheduler {
	if today == nil {
		today = Today
	}
	return &Scheduler{today: today}
}

// Schedule evaluates one stay request against a snapshot of the room's
// bookings. On success it returns a pending Draft priced at the canonical
// two-decimal precision. On failure the error is one of the validation
// sentinels or a *ConflictError carrying the overlapping bookings.
//
// Stateless and side-effect free: the same inputs always yield the same
// result.
func (s *Scheduler) Schedule(room Room, existing []Booking, req Request, charges []ExtraCharge) (Draft, error) {
	validated, err := ValidateRequest(room, req, s.today())
	if err != nil {
		return Draft{}, err
	}

	if conflicts := Conflicts(existing, validated.CheckIn, validated.CheckOut); len(conflicts) > 0 {
		return Draft{}, &ConflictError{Conflicts: conflicts}
	}

	nights, err := DaysBetween(validated.CheckIn, validated.CheckOut)
	if err != nil {
		return Draft{}, err
	}
	quote, err := PriceStay(room.PricePerNight, nights, charges)
	if err != nil {
		return Draft{}, err
	}

	return Draft{
		RoomID:     room.ID,
		CheckIn:    validated.CheckIn,
		CheckOut:   validated.CheckOut,
		NumGuests:  validated.NumGuests,
		Nights:     nights,
		TotalPrice: quote.InvoiceTotal(),
		Status:     StatusPending,
	}, nil
}

// Evaluate is Schedule without persisting intent: it returns the full priced
// quote for a valid, available request. Used by quote endpoints.
func (s *Scheduler) Evaluate(room Room, existing []Booking, req Request, charges []ExtraCharge) (Quote, error) {
	validated, err := ValidateRequest(room, req, s.today())
	if err != nil {
		return Quote{}, err
	}
	if conflicts := Conflicts(existing, validated.CheckIn, validated.CheckOut); len(conflicts) > 0 {
		return Quote{}, &ConflictError{Conflicts: conflicts}
	}
	nights, err := DaysBetween(validated.CheckIn, validated.CheckOut)
	if err != nil {
		return Quote{}, err
	}
	return PriceStay(room.PricePerNight, nights, charges)
}
