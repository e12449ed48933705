package stay

// BookingStatus is the lifecycle state of a booking. Transitions are
// forward-only (pending → confirmed → checked_in → checked_out) except for
// cancellation, which is allowed from pending or confirmed.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// Blocks reports whether a booking in this status occupies its stay window.
// Checked-out and cancelled bookings never block new reservations.
func (s BookingStatus) Blocks() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from s to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCheckedOut
	}
	return false
}

// Booking is the slice of a reservation the scheduler cares about: its stay
// window and whether it still blocks the room.
type Booking struct {
	ID       uint          `json:"id"`
	CheckIn  Date          `json:"checkIn"`
	CheckOut Date          `json:"checkOut"`
	Status   BookingStatus `json:"status"`
}

// Conflicts returns the subset of existing bookings whose stay windows
// overlap [checkIn, checkOut). Only bookings in a blocking status are
// considered; the caller is expected to have validated the candidate window
// already.
func Conflicts(existing []Booking, checkIn, checkOut Date) []Booking {
	var conflicts []Booking
	for _, b := range existing {
		if !b.Status.Blocks() {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// Available reports whether [checkIn, checkOut) is free of active bookings.
func Available(existing []Booking, checkIn, checkOut Date) bool {
	return len(Conflicts(existing, checkIn, checkOut)) == 0
}
