package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moonlight-backend/models"
	"moonlight-backend/services"
	"moonlight-backend/utils"
)

type ReviewPayload struct {
	RoomID    uint   `json:"roomId" binding:"required"`
	BookingID *uint  `json:"bookingId"`
	GuestName string `json:"guestName" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type ReviewModerationPayload struct {
	Approved *bool `json:"approved" binding:"required"`
}

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

// CreateReview is the public endpoint; reviews start unapproved.
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var payload ReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "roomId, guestName and rating are required", err.Error())
		return
	}
	review, err := ctrl.ReviewSvc.Create(models.Review{
		RoomID:    payload.RoomID,
		BookingID: payload.BookingID,
		GuestName: payload.GuestName,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

func (ctrl *ReviewController) GetPublicReviews(c *gin.Context) {
	var roomID uint
	if raw := c.Query("roomId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "error.invalidQuery", "roomId must be a positive integer")
			return
		}
		roomID = uint(parsed)
	}
	reviews, err := ctrl.ReviewSvc.GetPublic(roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := ctrl.ReviewSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

func (ctrl *ReviewController) ModerateReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload ReviewModerationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "approved is required", err.Error())
		return
	}
	review, err := ctrl.ReviewSvc.SetApproved(id, *payload.Approved)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, review)
}

func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.ReviewSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
