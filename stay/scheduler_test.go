package stay

import (
	"errors"
	"reflect"
	"testing"
)

func fixedToday(d Date) func() Date {
	return func() Date { return d }
}

func TestScheduleSuccess(t *testing.T) {
	sched := NewScheduler(fixedToday(Date{2024, 6, 1}))
	room := testRoom(2, "100")
	existing := []Booking{
		booking(t, 1, "2024-06-10", "2024-06-12", StatusConfirmed),
	}
	req := Request{
		RoomID:    room.ID,
		CheckIn:   mustDate(t, "2024-06-12"),
		CheckOut:  mustDate(t, "2024-06-14"),
		NumGuests: 2,
	}

	draft, err := sched.Schedule(room, existing, req, nil)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if draft.Status != StatusPending {
		t.Errorf("Status = %s, want pending", draft.Status)
	}
	if draft.Nights != 2 {
		t.Errorf("Nights = %d, want 2", draft.Nights)
	}
	if !draft.TotalPrice.Equal(dec("200")) {
		t.Errorf("TotalPrice = %s, want 200", draft.TotalPrice)
	}
	if draft.RoomID != room.ID || draft.NumGuests != 2 {
		t.Errorf("draft fields %+v do not match request", draft)
	}
}

func TestScheduleConflict(t *testing.T) {
	sched := NewScheduler(fixedToday(Date{2024, 6, 1}))
	room := testRoom(2, "100")
	existing := []Booking{
		booking(t, 42, "2024-06-10", "2024-06-12", StatusConfirmed),
	}
	req := Request{
		RoomID:    room.ID,
		CheckIn:   mustDate(t, "2024-06-11"),
		CheckOut:  mustDate(t, "2024-06-13"),
		NumGuests: 2,
	}

	_, err := sched.Schedule(room, existing, req, nil)
	conflictErr := IsConflictError(err)
	if conflictErr == nil {
		t.Fatalf("got %v, want *ConflictError", err)
	}
	if len(conflictErr.Conflicts) != 1 || conflictErr.Conflicts[0].ID != 42 {
		t.Errorf("Conflicts = %+v, want the existing booking", conflictErr.Conflicts)
	}
}

func TestScheduleValidationOrder(t *testing.T) {
	// validation runs before the availability check, so a broken request
	// never reports a conflict even when the room is fully booked
	sched := NewScheduler(fixedToday(Date{2024, 6, 1}))
	room := testRoom(2, "100")
	existing := []Booking{
		booking(t, 1, "2024-01-01", "2024-12-31", StatusConfirmed),
	}

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "equal dates",
			req:     Request{RoomID: 1, CheckIn: mustDate(t, "2024-06-10"), CheckOut: mustDate(t, "2024-06-10"), NumGuests: 1},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "past check-in",
			req:     Request{RoomID: 1, CheckIn: mustDate(t, "2024-05-31"), CheckOut: mustDate(t, "2024-06-02"), NumGuests: 1},
			wantErr: ErrPastDate,
		},
		{
			name:    "capacity exceeded",
			req:     Request{RoomID: 1, CheckIn: mustDate(t, "2024-06-10"), CheckOut: mustDate(t, "2024-06-12"), NumGuests: 3},
			wantErr: ErrCapacityExceeded,
		},
		{
			name:    "missing dates",
			req:     Request{RoomID: 1, NumGuests: 1},
			wantErr: ErrMissingDates,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sched.Schedule(room, existing, tt.req, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
			if IsConflictError(err) != nil {
				t.Error("validation failure must not surface as a conflict")
			}
		})
	}
}

func TestScheduleWithExtraCharges(t *testing.T) {
	sched := NewScheduler(fixedToday(Date{2024, 6, 1}))
	room := testRoom(4, "80")
	req := Request{
		RoomID:    room.ID,
		CheckIn:   mustDate(t, "2024-06-10"),
		CheckOut:  mustDate(t, "2024-06-13"),
		NumGuests: 2,
	}
	charges := []ExtraCharge{{Description: "Minibar", Amount: dec("25")}}

	draft, err := sched.Schedule(room, nil, req, charges)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if !draft.TotalPrice.Equal(dec("265")) {
		t.Errorf("TotalPrice = %s, want 265 (240 + 25)", draft.TotalPrice)
	}
}

func TestScheduleIdempotent(t *testing.T) {
	sched := NewScheduler(fixedToday(Date{2024, 6, 1}))
	room := testRoom(2, "100")
	existing := []Booking{
		booking(t, 1, "2024-06-01", "2024-06-05", StatusCheckedIn),
		booking(t, 2, "2024-06-20", "2024-06-25", StatusPending),
	}
	req := Request{
		RoomID:    room.ID,
		CheckIn:   mustDate(t, "2024-06-10"),
		CheckOut:  mustDate(t, "2024-06-12"),
		NumGuests: 2,
	}

	first, err1 := sched.Schedule(room, existing, req, nil)
	second, err2 := sched.Schedule(room, existing, req, nil)
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same inputs produced different drafts:\n%+v\n%+v", first, second)
	}
}

func TestEvaluateQuote(t *testing.T) {
	sched := NewScheduler(fixedToday(Date{2024, 6, 1}))
	room := testRoom(2, "100")

	quote, err := sched.Evaluate(room, nil, Request{
		RoomID:    room.ID,
		CheckIn:   mustDate(t, "2024-06-12"),
		CheckOut:  mustDate(t, "2024-06-14"),
		NumGuests: 2,
	}, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if quote.Nights != 2 || !quote.Total.Equal(dec("200")) {
		t.Errorf("quote = %+v, want 2 nights at 200", quote)
	}

	_, err = sched.Evaluate(room, []Booking{
		booking(t, 9, "2024-06-12", "2024-06-14", StatusConfirmed),
	}, Request{
		RoomID:    room.ID,
		CheckIn:   mustDate(t, "2024-06-13"),
		CheckOut:  mustDate(t, "2024-06-15"),
		NumGuests: 1,
	}, nil)
	if IsConflictError(err) == nil {
		t.Fatalf("got %v, want conflict", err)
	}
}

func TestBackendRejectionAccessor(t *testing.T) {
	inner := errors.New("duplicate key")
	err := error(&BackendRejectionError{Reason: "overlapping stay persisted first", Err: inner})

	rej := IsBackendRejection(err)
	if rej == nil {
		t.Fatal("IsBackendRejection returned nil")
	}
	if !errors.Is(err, inner) {
		t.Error("BackendRejectionError must unwrap to its cause")
	}
	if IsBackendRejection(errors.New("other")) != nil {
		t.Error("unrelated error must not match")
	}
}
