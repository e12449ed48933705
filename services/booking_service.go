// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moonlight-backend/models"
	"moonlight-backend/stay"
	"moonlight-backend/utils"
)

var (
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrRoomNotFound      = errors.New("room_not_found")
	ErrInvalidTransition = errors.New("invalid_status_transition")
)

// BookingService wraps *gorm.DB and owns the booking lifecycle. The clock is
// injected so transition and scheduling behavior can be pinned in tests.
type BookingService struct {
	DB    *gorm.DB
	now   func() time.Time
	sched *stay.Scheduler
}

func NewBookingService(db *gorm.DB) *BookingService {
	return NewBookingServiceWithClock(db, time.Now)
}

func NewBookingServiceWithClock(db *gorm.DB, now func() time.Time) *BookingService {
	return &BookingService{
		DB:    db,
		now:   now,
		sched: stay.NewScheduler(func() stay.Date { return stay.DateOf(now()) }),
	}
}

// CreateBookingInput carries one submission attempt. Dates are calendar
// dates; the guest contact fields are denormalized onto the booking.
type CreateBookingInput struct {
	RoomID     uint
	CheckIn    stay.Date
	CheckOut   stay.Date
	NumGuests  int
	GuestName  string
	GuestEmail string
	GuestPhone string
	CustomerID *uint

	ExtraCharges   []stay.ExtraCharge
	IdempotencyKey *string
}

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func (s *BookingService) loadRoom(tx *gorm.DB, roomID uint, lock bool) (models.Room, error) {
	var room models.Room
	q := tx
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("db error loading room %d: %w", roomID, err)
	}
	return room, nil
}

// activeForRoom loads the bookings that still block the room, ordered by
// check-in.
func activeForRoom(tx *gorm.DB, roomID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := tx.
		Where("room_id = ? AND status IN ?", roomID,
			[]string{string(stay.StatusPending), string(stay.StatusConfirmed), string(stay.StatusCheckedIn)}).
		Order("check_in_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load active bookings for room %d: %w", roomID, err)
	}
	return list, nil
}

func toStayBookings(list []models.Booking) []stay.Booking {
	out := make([]stay.Booking, 0, len(list))
	for _, b := range list {
		out = append(out, b.StayBooking())
	}
	return out
}

// ActiveForRoom is the public snapshot used by the guest room calendar.
func (s *BookingService) ActiveForRoom(roomID uint) ([]models.Booking, error) {
	if _, err := s.loadRoom(s.DB, roomID, false); err != nil {
		return nil, err
	}
	return activeForRoom(s.DB, roomID)
}

// Quote validates and prices a stay against the current snapshot without
// persisting anything. The result is provisional; Create re-checks under a
// lock.
func (s *BookingService) Quote(roomID uint, checkIn, checkOut stay.Date, numGuests int, charges []stay.ExtraCharge) (stay.Quote, error) {
	room, err := s.loadRoom(s.DB, roomID, false)
	if err != nil {
		return stay.Quote{}, err
	}
	existing, err := activeForRoom(s.DB, roomID)
	if err != nil {
		return stay.Quote{}, err
	}
	return s.sched.Evaluate(
		stay.Room{ID: room.ID, PricePerNight: room.PricePerNight, Capacity: room.Capacity},
		toStayBookings(existing),
		stay.Request{RoomID: roomID, CheckIn: checkIn, CheckOut: checkOut, NumGuests: numGuests},
		charges,
	)
}

// Create runs the full scheduling pipeline and persists the booking. The
// availability decision is made inside a transaction holding a row lock on
// the room, so two overlapping submissions serialize and the second one gets
// the conflict. A replayed idempotency key returns the original booking
// instead of creating a duplicate.
func (s *BookingService) Create(input CreateBookingInput) (models.Booking, error) {
	var result models.Booking

	if input.IdempotencyKey != nil {
		var prior models.Booking
		err := s.DB.Where("idempotency_key = ?", *input.IdempotencyKey).First(&prior).Error
		if err == nil {
			return s.GetByID(prior.ID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// lock the room row: concurrent creates for the same room queue here
		room, err := s.loadRoom(tx, input.RoomID, true)
		if err != nil {
			return err
		}

		existing, err := activeForRoom(tx, input.RoomID)
		if err != nil {
			return err
		}

		draft, err := s.sched.Schedule(
			stay.Room{ID: room.ID, PricePerNight: room.PricePerNight, Capacity: room.Capacity},
			toStayBookings(existing),
			stay.Request{RoomID: input.RoomID, CheckIn: input.CheckIn, CheckOut: input.CheckOut, NumGuests: input.NumGuests},
			input.ExtraCharges,
		)
		if err != nil {
			return err
		}

		ref, err := utils.GenerateBookingReference()
		if err != nil {
			return fmt.Errorf("failed to generate booking reference: %w", err)
		}

		booking := models.Booking{
			ReferenceCode:  ref,
			IdempotencyKey: input.IdempotencyKey,
			RoomID:         draft.RoomID,
			CustomerID:     input.CustomerID,
			GuestName:      strings.TrimSpace(input.GuestName),
			GuestEmail:     strings.TrimSpace(input.GuestEmail),
			GuestPhone:     strings.TrimSpace(input.GuestPhone),
			CheckInDate:    draft.CheckIn.Time(time.UTC),
			CheckOutDate:   draft.CheckOut.Time(time.UTC),
			Nights:         draft.Nights,
			NumGuests:      draft.NumGuests,
			Status:         string(draft.Status),
			TotalPrice:     draft.TotalPrice,
		}

		if err := tx.Create(&booking).Error; err != nil {
			if isDuplicateKey(err) {
				if strings.Contains(err.Error(), "idempotency_key") {
					// concurrent replay of the same submission; surface the original below
					return nil
				}
				return &stay.BackendRejectionError{Reason: "store rejected booking", Err: err}
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}

		result = booking
		return nil
	})
	if txErr != nil {
		return models.Booking{}, txErr
	}

	if result.ID == 0 && input.IdempotencyKey != nil {
		var prior models.Booking
		if err := s.DB.Where("idempotency_key = ?", *input.IdempotencyKey).First(&prior).Error; err != nil {
			return models.Booking{}, fmt.Errorf("failed to load replayed booking: %w", err)
		}
		return s.GetByID(prior.ID)
	}

	return s.GetByID(result.ID)
}

func (s *BookingService) GetByID(bookingID uint) (models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Preload("Room").Preload("Room.RoomType").Preload("Customer").First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bk, ErrBookingNotFound
		}
		return bk, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return bk, nil
}

func (s *BookingService) GetByReference(ref string) (models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Preload("Room").Where("reference_code = ?", ref).First(&bk).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bk, ErrBookingNotFound
		}
		return bk, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return bk, nil
}

// ListFilter narrows the staff booking list.
type ListFilter struct {
	Status string
	RoomID uint
	From   *stay.Date
	To     *stay.Date
}

func (s *BookingService) GetAll(filter ListFilter) ([]models.Booking, error) {
	q := s.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Customer").
		Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}
	if filter.From != nil {
		q = q.Where("check_out_date > ?", filter.From.Time(time.UTC))
	}
	if filter.To != nil {
		q = q.Where("check_in_date < ?", filter.To.Time(time.UTC))
	}

	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// transition moves a booking to next after validating the forward-only rule.
// roomStatus, when non-empty, is applied to the room in the same transaction.
func (s *BookingService) transition(bookingID uint, next stay.BookingStatus, roomStatus string, stamp func(*models.Booking, time.Time)) (models.Booking, error) {
	now := s.now().UTC()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		current := stay.BookingStatus(booking.Status)
		if !current.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
		}

		booking.Status = string(next)
		if stamp != nil {
			stamp(&booking, now)
		}
		if err := tx.Save(&booking).Error; err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if roomStatus != "" {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", booking.RoomID).
				Update("status", roomStatus).Error; err != nil {
				return fmt.Errorf("failed to update room status: %w", err)
			}
		}

		// checkout hands the room to housekeeping
		if next == stay.StatusCheckedOut {
			task := models.HousekeepingTask{
				RoomID: booking.RoomID,
				Kind:   models.HousekeepingKindCleaning,
				Status: models.TaskStatusOpen,
				Notes:  fmt.Sprintf("Post-checkout clean for booking %s", booking.ReferenceCode),
			}
			if err := tx.Create(&task).Error; err != nil {
				return fmt.Errorf("failed to open housekeeping task: %w", err)
			}
		}

		return nil
	})
	if txErr != nil {
		return models.Booking{}, txErr
	}

	return s.GetByID(bookingID)
}

func (s *BookingService) Confirm(bookingID uint) (models.Booking, error) {
	return s.transition(bookingID, stay.StatusConfirmed, "", nil)
}

func (s *BookingService) CheckIn(bookingID uint) (models.Booking, error) {
	return s.transition(bookingID, stay.StatusCheckedIn, models.RoomStatusOccupied,
		func(b *models.Booking, now time.Time) { b.CheckedInAt = &now })
}

func (s *BookingService) CheckOut(bookingID uint) (models.Booking, error) {
	return s.transition(bookingID, stay.StatusCheckedOut, models.RoomStatusCleaning,
		func(b *models.Booking, now time.Time) { b.CheckedOutAt = &now })
}

func (s *BookingService) Cancel(bookingID uint) (models.Booking, error) {
	return s.transition(bookingID, stay.StatusCancelled, "",
		func(b *models.Booking, now time.Time) { b.CancelledAt = &now })
}

func (s *BookingService) Delete(bookingID uint) error {
	res := s.DB.Delete(&models.Booking{}, bookingID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
