package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"moonlight-backend/models"
	"moonlight-backend/stay"
	"moonlight-backend/utils"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice_not_found")
	ErrInvoiceWrongState    = errors.New("invoice_wrong_state")
	ErrBookingAlreadyBilled = errors.New("booking_already_billed")
)

type InvoiceService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db, now: time.Now}
}

// BuildInvoiceLines derives the line items for a booking plus staff extra
// charges, using exact decimal arithmetic throughout. Pure; exported for
// tests.
func BuildInvoiceLines(booking models.Booking, room models.Room, charges []stay.ExtraCharge) ([]models.InvoiceItem, stay.Quote, error) {
	quote, err := stay.PriceStay(room.PricePerNight, booking.Nights, charges)
	if err != nil {
		return nil, stay.Quote{}, err
	}

	items := []models.InvoiceItem{
		{
			Description: fmt.Sprintf("Room %s, %d night(s) @ %s", room.RoomNumber, booking.Nights, room.PricePerNight.StringFixed(2)),
			Quantity:    booking.Nights,
			UnitAmount:  room.PricePerNight,
			Amount:      quote.BaseAmount,
		},
	}
	for _, c := range charges {
		items = append(items, models.InvoiceItem{
			Description: c.Description,
			Quantity:    1,
			UnitAmount:  c.Amount,
			Amount:      c.Amount,
		})
	}
	return items, quote, nil
}

// GenerateForBooking creates a draft invoice for a booking. A booking can
// carry at most one non-void invoice.
func (s *InvoiceService) GenerateForBooking(bookingID uint, charges []stay.ExtraCharge) (models.Invoice, error) {
	var result models.Invoice

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Preload("Room").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		var existingCount int64
		if err := tx.Model(&models.Invoice{}).
			Where("booking_id = ? AND status <> ?", bookingID, models.InvoiceStatusVoid).
			Count(&existingCount).Error; err != nil {
			return err
		}
		if existingCount > 0 {
			return ErrBookingAlreadyBilled
		}

		items, quote, err := BuildInvoiceLines(booking, booking.Room, charges)
		if err != nil {
			return err
		}

		number, err := utils.GenerateInvoiceNumber(s.now())
		if err != nil {
			return fmt.Errorf("failed to generate invoice number: %w", err)
		}

		chargesJSON, err := json.Marshal(charges)
		if err != nil {
			return fmt.Errorf("failed to snapshot extra charges: %w", err)
		}

		invoice := models.Invoice{
			InvoiceNumber: number,
			BookingID:     booking.ID,
			Status:        models.InvoiceStatusDraft,
			Subtotal:      quote.BaseAmount.Round(2),
			Total:         quote.InvoiceTotal(),
			ExtraCharges:  datatypes.JSON(chargesJSON),
			Items:         items,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		result = invoice
		return nil
	})
	if txErr != nil {
		return models.Invoice{}, txErr
	}

	return s.GetByID(result.ID)
}

func (s *InvoiceService) GetByID(id uint) (models.Invoice, error) {
	var inv models.Invoice
	if err := s.DB.Preload("Items").Preload("Booking").Preload("Booking.Room").First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inv, ErrInvoiceNotFound
		}
		return inv, fmt.Errorf("failed to retrieve invoice: %w", err)
	}
	return inv, nil
}

// InvoiceFilter narrows the invoice list by status and issue-date window.
type InvoiceFilter struct {
	Status string
	From   *stay.Date
	To     *stay.Date
}

func (s *InvoiceService) GetAll(filter InvoiceFilter) ([]models.Invoice, error) {
	q := s.DB.Preload("Items").Preload("Booking").Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		q = q.Where("issue_date >= ?", filter.From.Time(time.UTC))
	}
	if filter.To != nil {
		q = q.Where("issue_date < ?", filter.To.Time(time.UTC))
	}
	var list []models.Invoice
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	return list, nil
}

func (s *InvoiceService) setStatus(id uint, from []string, to string, stamp func(*models.Invoice, time.Time)) (models.Invoice, error) {
	now := s.now().UTC()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var inv models.Invoice
		if err := tx.First(&inv, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		allowed := false
		for _, f := range from {
			if inv.Status == f {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %s -> %s", ErrInvoiceWrongState, inv.Status, to)
		}

		inv.Status = to
		if stamp != nil {
			stamp(&inv, now)
		}
		return tx.Save(&inv).Error
	})
	if txErr != nil {
		return models.Invoice{}, txErr
	}
	return s.GetByID(id)
}

func (s *InvoiceService) Issue(id uint) (models.Invoice, error) {
	return s.setStatus(id, []string{models.InvoiceStatusDraft}, models.InvoiceStatusIssued,
		func(inv *models.Invoice, now time.Time) {
			day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			inv.IssueDate = &day
		})
}

func (s *InvoiceService) MarkPaid(id uint) (models.Invoice, error) {
	return s.setStatus(id, []string{models.InvoiceStatusIssued}, models.InvoiceStatusPaid,
		func(inv *models.Invoice, now time.Time) { inv.PaidAt = &now })
}

func (s *InvoiceService) Void(id uint) (models.Invoice, error) {
	return s.setStatus(id, []string{models.InvoiceStatusDraft, models.InvoiceStatusIssued}, models.InvoiceStatusVoid, nil)
}
