package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlight-backend/models"
	"moonlight-backend/services"
	"moonlight-backend/utils"
)

type StaffPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Password string `json:"password"`
	Active   *bool  `json:"active"`
}

type StaffController struct {
	StaffSvc *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{StaffSvc: svc}
}

func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	var payload StaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "fullName and email are required", err.Error())
		return
	}
	staff, err := ctrl.StaffSvc.Create(models.Staff{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Position: payload.Position,
	}, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, staff)
}

func (ctrl *StaffController) GetStaff(c *gin.Context) {
	staff, err := ctrl.StaffSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

func (ctrl *StaffController) UpdateStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload StaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "fullName and email are required", err.Error())
		return
	}
	active := true
	if payload.Active != nil {
		active = *payload.Active
	}
	staff, err := ctrl.StaffSvc.Update(models.Staff{
		ID:       id,
		FullName: payload.FullName,
		Phone:    payload.Phone,
		Position: payload.Position,
		Active:   active,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

func (ctrl *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.StaffSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
