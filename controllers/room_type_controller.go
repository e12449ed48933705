package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"moonlight-backend/models"
	"moonlight-backend/services"
	"moonlight-backend/utils"
)

type RoomTypePayload struct {
	TypeName    string `json:"typeName" binding:"required"`
	Description string `json:"description"`
	BaseRate    string `json:"baseRate"`
	MaxGuests   uint   `json:"maxGuests"`
}

type RoomTypeController struct {
	Svc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{Svc: svc}
}

func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.Svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var payload RoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "typeName is required", err.Error())
		return
	}

	rate := decimal.Zero
	if payload.BaseRate != "" {
		parsed, err := decimal.NewFromString(payload.BaseRate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "error.invalidAmount", "baseRate must be a decimal number")
			return
		}
		rate = parsed
	}

	created, err := ctrl.Svc.Create(models.RoomType{
		TypeName:    payload.TypeName,
		Description: payload.Description,
		BaseRate:    rate,
		MaxGuests:   payload.MaxGuests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.Svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
