// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"moonlight-backend/services"
	"moonlight-backend/stay"
	"moonlight-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type ExtraChargeItem struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

type CreateBookingRequest struct {
	RoomID     uint   `json:"roomId" binding:"required"`
	CheckIn    string `json:"checkInDate" binding:"required"`
	CheckOut   string `json:"checkOutDate" binding:"required"`
	NumGuests  int    `json:"numGuests" binding:"required"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	ExtraCharges   []ExtraChargeItem `json:"extraCharges"`
	IdempotencyKey string            `json:"idempotencyKey"`
}

type QuoteRequest struct {
	RoomID    uint   `json:"roomId" binding:"required"`
	CheckIn   string `json:"checkInDate" binding:"required"`
	CheckOut  string `json:"checkOutDate" binding:"required"`
	NumGuests int    `json:"numGuests" binding:"required"`

	ExtraCharges []ExtraChargeItem `json:"extraCharges"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc  *services.BookingService
	CustomerSvc *services.CustomerService
}

func NewBookingController(bookingSvc *services.BookingService, customerSvc *services.CustomerService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, CustomerSvc: customerSvc}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Invalid id in path")
		return 0, false
	}
	return uint(id), true
}

func parseDatePair(c *gin.Context, checkIn, checkOut string) (stay.Date, stay.Date, bool) {
	ci, err := stay.ParseDate(checkIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "checkInDate must be formatted YYYY-MM-DD")
		return stay.Date{}, stay.Date{}, false
	}
	co, err := stay.ParseDate(checkOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "checkOutDate must be formatted YYYY-MM-DD")
		return stay.Date{}, stay.Date{}, false
	}
	return ci, co, true
}

func parseExtraCharges(c *gin.Context, items []ExtraChargeItem) ([]stay.ExtraCharge, bool) {
	if len(items) == 0 {
		return nil, true
	}
	charges := make([]stay.ExtraCharge, 0, len(items))
	for _, item := range items {
		amount, err := stay.ParseAmount(item.Amount)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "error.invalidAmount", "Extra charge amounts must be decimal numbers")
			return nil, false
		}
		charges = append(charges, stay.ExtraCharge{Description: item.Description, Amount: amount})
	}
	return charges, true
}

// idempotencyKey prefers the Idempotency-Key header over the payload field.
func idempotencyKey(c *gin.Context, payloadKey string) (*string, bool) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		raw = payloadKey
	}
	key, err := utils.NormalizeIdempotencyKey(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidIdempotencyKey", "Idempotency key is too long")
		return nil, false
	}
	return key, true
}

func (ctrl *BookingController) create(c *gin.Context, allowCharges bool) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload",
			"roomId, checkInDate, checkOutDate, numGuests and guestName are required", err.Error())
		return
	}

	ci, co, ok := parseDatePair(c, payload.CheckIn, payload.CheckOut)
	if !ok {
		return
	}

	var charges []stay.ExtraCharge
	if allowCharges {
		if charges, ok = parseExtraCharges(c, payload.ExtraCharges); !ok {
			return
		}
	}

	key, ok := idempotencyKey(c, payload.IdempotencyKey)
	if !ok {
		return
	}

	customer, err := ctrl.CustomerSvc.FindOrCreateByEmail(payload.GuestName, payload.GuestEmail, payload.GuestPhone)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	customerID := customer.ID

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		RoomID:         payload.RoomID,
		CheckIn:        ci,
		CheckOut:       co,
		NumGuests:      payload.NumGuests,
		GuestName:      payload.GuestName,
		GuestEmail:     payload.GuestEmail,
		GuestPhone:     payload.GuestPhone,
		CustomerID:     &customerID,
		ExtraCharges:   charges,
		IdempotencyKey: key,
	})
	if err != nil {
		if !respondSchedulingError(c, err) {
			respondServiceError(c, err)
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// CreateBooking is the staff form: extra charges allowed.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	ctrl.create(c, true)
}

// CreateSelfBooking is guest self-service: no extra charges.
func (ctrl *BookingController) CreateSelfBooking(c *gin.Context) {
	ctrl.create(c, false)
}

// QuoteBooking prices a stay without persisting it. The answer is
// provisional: submission re-checks availability authoritatively.
func (ctrl *BookingController) QuoteBooking(c *gin.Context) {
	var payload QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload",
			"roomId, checkInDate, checkOutDate and numGuests are required", err.Error())
		return
	}

	ci, co, ok := parseDatePair(c, payload.CheckIn, payload.CheckOut)
	if !ok {
		return
	}
	charges, ok := parseExtraCharges(c, payload.ExtraCharges)
	if !ok {
		return
	}

	quote, err := ctrl.BookingSvc.Quote(payload.RoomID, ci, co, payload.NumGuests, charges)
	if err != nil {
		if !respondSchedulingError(c, err) {
			respondServiceError(c, err)
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"nights":      quote.Nights,
		"baseAmount":  quote.BaseAmount,
		"extraAmount": quote.ExtraAmount,
		"total":       quote.InvoiceTotal(),
		"guestTotal":  quote.GuestTotal(),
	})
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	filter := services.ListFilter{Status: c.Query("status")}
	if roomID, err := strconv.ParseUint(c.Query("roomId"), 10, 32); err == nil {
		filter.RoomID = uint(roomID)
	}
	if from, err := stay.ParseDate(c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := stay.ParseDate(c.Query("to")); err == nil {
		filter.To = &to
	}

	bookings, err := ctrl.BookingSvc.GetAll(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookingByReference lets a guest look up their confirmation by the
// reference code on their booking.
func (ctrl *BookingController) GetBookingByReference(c *gin.Context) {
	ref := strings.TrimSpace(c.Param("code"))
	if ref == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidReference", "Reference code is required")
		return
	}
	booking, err := ctrl.BookingSvc.GetByReference(ref)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetRoomBookingsPublic exposes a room's occupied windows for the guest
// calendar: dates and status only, no guest identity.
func (ctrl *BookingController) GetRoomBookingsPublic(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bookings, err := ctrl.BookingSvc.ActiveForRoom(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	public := make([]interface{}, 0, len(bookings))
	for _, b := range bookings {
		public = append(public, b.Public())
	}
	utils.JSONSuccess(c, http.StatusOK, public)
}

func (ctrl *BookingController) transition(c *gin.Context, do func(uint) (interface{}, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	booking, err := do(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	ctrl.transition(c, func(id uint) (interface{}, error) { return ctrl.BookingSvc.Confirm(id) })
}

func (ctrl *BookingController) CheckInBooking(c *gin.Context) {
	ctrl.transition(c, func(id uint) (interface{}, error) { return ctrl.BookingSvc.CheckIn(id) })
}

func (ctrl *BookingController) CheckOutBooking(c *gin.Context) {
	ctrl.transition(c, func(id uint) (interface{}, error) { return ctrl.BookingSvc.CheckOut(id) })
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	ctrl.transition(c, func(id uint) (interface{}, error) { return ctrl.BookingSvc.Cancel(id) })
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
