package stay

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func testRoom(capacity int, rate string) Room {
	return Room{ID: 1, PricePerNight: decimal.RequireFromString(rate), Capacity: capacity}
}

func TestValidateRequest(t *testing.T) {
	today := Date{2024, 6, 10}
	room := testRoom(2, "100")

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "valid same-day check-in",
			req:  Request{RoomID: 1, CheckIn: Date{2024, 6, 10}, CheckOut: Date{2024, 6, 12}, NumGuests: 2},
		},
		{
			name: "valid future stay",
			req:  Request{RoomID: 1, CheckIn: Date{2024, 7, 1}, CheckOut: Date{2024, 7, 5}, NumGuests: 1},
		},
		{
			name:    "missing check-in",
			req:     Request{RoomID: 1, CheckOut: Date{2024, 6, 12}, NumGuests: 1},
			wantErr: ErrMissingDates,
		},
		{
			name:    "missing check-out",
			req:     Request{RoomID: 1, CheckIn: Date{2024, 6, 10}, NumGuests: 1},
			wantErr: ErrMissingDates,
		},
		{
			name:    "equal dates",
			req:     Request{RoomID: 1, CheckIn: Date{2024, 6, 10}, CheckOut: Date{2024, 6, 10}, NumGuests: 1},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "inverted range",
			req:     Request{RoomID: 1, CheckIn: Date{2024, 6, 12}, CheckOut: Date{2024, 6, 10}, NumGuests: 1},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "check-in yesterday",
			req:     Request{RoomID: 1, CheckIn: Date{2024, 6, 9}, CheckOut: Date{2024, 6, 12}, NumGuests: 1},
			wantErr: ErrPastDate,
		},
		{
			name:    "zero guests",
			req:     Request{RoomID: 1, CheckIn: Date{2024, 6, 10}, CheckOut: Date{2024, 6, 12}, NumGuests: 0},
			wantErr: ErrInvalidGuestCount,
		},
		{
			name:    "negative guests",
			req:     Request{RoomID: 1, CheckIn: Date{2024, 6, 10}, CheckOut: Date{2024, 6, 12}, NumGuests: -1},
			wantErr: ErrInvalidGuestCount,
		},
		{
			name:    "over capacity",
			req:     Request{RoomID: 1, CheckIn: Date{2024, 6, 10}, CheckOut: Date{2024, 6, 12}, NumGuests: 3},
			wantErr: ErrCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRequest(room, tt.req, today)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.req {
				t.Errorf("validated request mutated: got %+v, want %+v", got, tt.req)
			}
		})
	}
}

func TestCapacityCheckIgnoresDates(t *testing.T) {
	// over-capacity must fail regardless of what the dates look like
	today := Date{2024, 6, 10}
	room := testRoom(2, "100")

	reqs := []Request{
		{RoomID: 1, CheckIn: Date{2024, 6, 10}, CheckOut: Date{2024, 6, 12}, NumGuests: 3},
		{RoomID: 1, CheckIn: Date{2025, 1, 1}, CheckOut: Date{2025, 2, 1}, NumGuests: 5},
	}
	for _, req := range reqs {
		if _, err := ValidateRequest(room, req, today); !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("numGuests=%d capacity=2: got %v, want ErrCapacityExceeded", req.NumGuests, err)
		}
	}
}

func TestEarliestCheckOut(t *testing.T) {
	tests := []struct {
		checkIn string
		want    string
	}{
		{checkIn: "2024-06-10", want: "2024-06-11"},
		{checkIn: "2024-06-30", want: "2024-07-01"},
		{checkIn: "2024-12-31", want: "2025-01-01"},
	}
	for _, tt := range tests {
		got := EarliestCheckOut(mustDate(t, tt.checkIn))
		if got.String() != tt.want {
			t.Errorf("EarliestCheckOut(%s) = %s, want %s", tt.checkIn, got, tt.want)
		}
	}
}
