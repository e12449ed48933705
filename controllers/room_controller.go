package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"moonlight-backend/models"
	"moonlight-backend/services"
	"moonlight-backend/utils"
)

type RoomPayload struct {
	RoomNumber    string `json:"roomNumber" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Status        string `json:"status"`
	Floor         string `json:"floor"`
	PricePerNight string `json:"pricePerNight" binding:"required"`
	Capacity      int    `json:"capacity" binding:"required"`
	Description   string `json:"description"`
	RoomTypeID    *uint  `json:"roomTypeId"`
}

type RoomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func (p RoomPayload) toModel(c *gin.Context) (models.Room, bool) {
	price, err := decimal.NewFromString(p.PricePerNight)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidAmount", "pricePerNight must be a decimal number")
		return models.Room{}, false
	}
	return models.Room{
		RoomNumber:    p.RoomNumber,
		Type:          p.Type,
		Status:        p.Status,
		Floor:         p.Floor,
		PricePerNight: price,
		Capacity:      p.Capacity,
		Description:   p.Description,
		RoomTypeID:    p.RoomTypeID,
	}, true
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload",
			"roomNumber, type, pricePerNight and capacity are required", err.Error())
		return
	}
	room, ok := payload.toModel(c)
	if !ok {
		return
	}
	created, err := ctrl.RoomSvc.Create(room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll(services.RoomFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetPublicRooms lists rooms bookable by guests, sanitized.
func (ctrl *RoomController) GetPublicRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetPublic()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetPublicRoomByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room.Public())
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload",
			"roomNumber, type, pricePerNight and capacity are required", err.Error())
		return
	}
	room, okPayload := payload.toModel(c)
	if !okPayload {
		return
	}
	room.ID = id
	updated, err := ctrl.RoomSvc.Update(room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload RoomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "status is required")
		return
	}
	room, err := ctrl.RoomSvc.UpdateStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
