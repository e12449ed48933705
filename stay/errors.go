package stay

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingDates      = errors.New("check-in and check-out dates are required")
	ErrInvalidRange      = errors.New("check-out must be after check-in")
	ErrPastDate          = errors.New("check-in date is in the past")
	ErrInvalidGuestCount = errors.New("at least one guest is required")
	ErrCapacityExceeded  = errors.New("guest count exceeds room capacity")
	ErrNegativeCharge    = errors.New("extra charge amount must not be negative")
)

// ConflictError reports that the requested stay window overlaps one or more
// active bookings. It carries the overlapping bookings so callers can tell
// the guest which dates are taken.
type ConflictError struct {
	Conflicts []Booking
}

func (e *ConflictError) Error() string {
	ranges := make([]string, 0, len(e.Conflicts))
	for _, b := range e.Conflicts {
		ranges = append(ranges, fmt.Sprintf("[%s, %s)", b.CheckIn, b.CheckOut))
	}
	return fmt.Sprintf("requested stay overlaps %d active booking(s): %s",
		len(e.Conflicts), strings.Join(ranges, ", "))
}

// IsConflictError unwraps err into a *ConflictError, or nil.
func IsConflictError(err error) *ConflictError {
	if err == nil {
		return nil
	}
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr
	}
	return nil
}

// BackendRejectionError means the authoritative store refused a booking that
// had already passed the provisional local checks, typically a lost race.
// Callers must drop any cached availability for the room and re-fetch before
// trying again.
type BackendRejectionError struct {
	Reason string
	Err    error
}

func (e *BackendRejectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("booking rejected by store: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("booking rejected by store: %s", e.Reason)
}

func (e *BackendRejectionError) Unwrap() error {
	return e.Err
}

// IsBackendRejection unwraps err into a *BackendRejectionError, or nil.
func IsBackendRejection(err error) *BackendRejectionError {
	if err == nil {
		return nil
	}
	var rejErr *BackendRejectionError
	if errors.As(err, &rejErr) {
		return rejErr
	}
	return nil
}
