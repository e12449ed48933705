package stay

import "testing"

func booking(t *testing.T, id uint, checkIn, checkOut string, status BookingStatus) Booking {
	t.Helper()
	return Booking{
		ID:       id,
		CheckIn:  mustDate(t, checkIn),
		CheckOut: mustDate(t, checkOut),
		Status:   status,
	}
}

func TestStatusBlocks(t *testing.T) {
	blocking := map[BookingStatus]bool{
		StatusPending:    true,
		StatusConfirmed:  true,
		StatusCheckedIn:  true,
		StatusCheckedOut: false,
		StatusCancelled:  false,
	}
	for status, want := range blocking {
		if got := status.Blocks(); got != want {
			t.Errorf("%s.Blocks() = %v, want %v", status, got, want)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCheckedIn, false},
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCheckedOut, false},
		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusCheckedIn, StatusCancelled, false},
		{StatusCheckedOut, StatusCheckedIn, false},
		{StatusCancelled, StatusConfirmed, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.allowed {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name     string
		existing []Booking
		checkIn  string
		checkOut string
		wantIDs  []uint
	}{
		{
			name:     "no bookings always available",
			existing: nil,
			checkIn:  "2024-06-10", checkOut: "2024-06-12",
			wantIDs: nil,
		},
		{
			name: "back to back is free",
			existing: []Booking{
				booking(t, 1, "2024-06-10", "2024-06-12", StatusConfirmed),
			},
			checkIn: "2024-06-12", checkOut: "2024-06-14",
			wantIDs: nil,
		},
		{
			name: "overlap with confirmed",
			existing: []Booking{
				booking(t, 1, "2024-06-10", "2024-06-12", StatusConfirmed),
			},
			checkIn: "2024-06-11", checkOut: "2024-06-13",
			wantIDs: []uint{1},
		},
		{
			name: "cancelled and checked out never block",
			existing: []Booking{
				booking(t, 1, "2024-06-10", "2024-06-12", StatusCancelled),
				booking(t, 2, "2024-06-10", "2024-06-12", StatusCheckedOut),
			},
			checkIn: "2024-06-10", checkOut: "2024-06-12",
			wantIDs: nil,
		},
		{
			name: "pending blocks",
			existing: []Booking{
				booking(t, 7, "2024-06-05", "2024-06-15", StatusPending),
			},
			checkIn: "2024-06-14", checkOut: "2024-06-16",
			wantIDs: []uint{7},
		},
		{
			name: "multiple conflicts all reported",
			existing: []Booking{
				booking(t, 1, "2024-06-08", "2024-06-11", StatusConfirmed),
				booking(t, 2, "2024-06-11", "2024-06-13", StatusCheckedIn),
				booking(t, 3, "2024-06-13", "2024-06-20", StatusCancelled),
			},
			checkIn: "2024-06-10", checkOut: "2024-06-14",
			wantIDs: []uint{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Conflicts(tt.existing, mustDate(t, tt.checkIn), mustDate(t, tt.checkOut))
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d conflicts, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("conflict[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}

			available := Available(tt.existing, mustDate(t, tt.checkIn), mustDate(t, tt.checkOut))
			if available != (len(tt.wantIDs) == 0) {
				t.Errorf("Available = %v inconsistent with %d conflicts", available, len(tt.wantIDs))
			}
		})
	}
}
