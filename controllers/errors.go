package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlight-backend/services"
	"moonlight-backend/stay"
	"moonlight-backend/utils"
)

// respondSchedulingError maps the stay error taxonomy to HTTP responses.
// Returns true when it handled the error.
func respondSchedulingError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, stay.ErrMissingDates):
		utils.JSONError(c, http.StatusBadRequest, "error.missingDates", "Check-in and check-out dates are required")
	case errors.Is(err, stay.ErrInvalidRange):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRange", "Check-out date must be after check-in date")
	case errors.Is(err, stay.ErrPastDate):
		utils.JSONError(c, http.StatusBadRequest, "error.pastDate", "Check-in date cannot be in the past")
	case errors.Is(err, stay.ErrInvalidGuestCount):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidGuestCount", "At least one guest is required")
	case errors.Is(err, stay.ErrCapacityExceeded):
		utils.JSONError(c, http.StatusBadRequest, "error.capacityExceeded", "Guest count exceeds the room capacity")
	case errors.Is(err, stay.ErrNegativeCharge):
		utils.JSONError(c, http.StatusBadRequest, "error.negativeCharge", "Extra charge amounts must not be negative")
	default:
		if conflictErr := stay.IsConflictError(err); conflictErr != nil {
			utils.JSONErrorDetails(c, http.StatusConflict, "error.datesConflict",
				"The requested dates overlap an existing booking", conflictErr.Conflicts)
			return true
		}
		if rejErr := stay.IsBackendRejection(err); rejErr != nil {
			utils.JSONError(c, http.StatusConflict, "error.storeRejected",
				"The booking was rejected by the store; refresh availability and try again")
			return true
		}
		return false
	}
	return true
}

// respondServiceError maps common service sentinels; falls back to 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "Booking not found")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.roomNotFound", "Room not found")
	case errors.Is(err, services.ErrRoomTypeNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.roomTypeNotFound", "Room type not found")
	case errors.Is(err, services.ErrInvoiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.invoiceNotFound", "Invoice not found")
	case errors.Is(err, services.ErrCustomerNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.customerNotFound", "Customer not found")
	case errors.Is(err, services.ErrStaffNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.staffNotFound", "Staff member not found")
	case errors.Is(err, services.ErrRoleNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.roleNotFound", "Role not found")
	case errors.Is(err, services.ErrReviewNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.reviewNotFound", "Review not found")
	case errors.Is(err, services.ErrTaskNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.taskNotFound", "Housekeeping task not found")
	case errors.Is(err, services.ErrRequestNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.maintenanceNotFound", "Maintenance request not found")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "error.invalidTransition", "The booking cannot move to that status")
	case errors.Is(err, services.ErrInvoiceWrongState):
		utils.JSONError(c, http.StatusConflict, "error.invoiceWrongState", "The invoice cannot move to that status")
	case errors.Is(err, services.ErrTaskWrongState):
		utils.JSONError(c, http.StatusConflict, "error.taskWrongState", "The task cannot move to that status")
	case errors.Is(err, services.ErrBookingAlreadyBilled):
		utils.JSONError(c, http.StatusConflict, "error.alreadyBilled", "The booking already has an invoice")
	case errors.Is(err, services.ErrInvalidRoom):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRoom", err.Error())
	case errors.Is(err, services.ErrInvalidRating):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRating", "Rating must be between 1 and 5")
	case errors.Is(err, services.ErrEmptyWindow):
		utils.JSONError(c, http.StatusBadRequest, "error.emptyWindow", "The report window must span at least one day")
	default:
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "Internal server error", err.Error())
	}
}
